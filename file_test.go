package minipng

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWriteFile(t *testing.T) {
	b, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), DefaultFilename)
	if err := WriteFile(path, b); err != nil {
		t.Fatal(err)
	}
	got, err := ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 67 {
		t.Errorf("len = %d, want 67", len(got))
	}
	if diff := cmp.Diff(b, got); diff != "" {
		t.Errorf("ReadFile() mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.png")
	if err := os.WriteFile(path, make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFile(path, []byte{1, 2, 3}); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]byte{1, 2, 3}, got); diff != "" {
		t.Errorf("file mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no", "such", "dir", "out.png")
	err := WriteFile(path, []byte{1})
	if !errors.Is(err, ErrIO) {
		t.Fatalf("WriteFile() error = %v, want ErrIO", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("WriteFile() error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestReadFileError(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.png"))
	if !errors.Is(err, ErrIO) {
		t.Errorf("ReadFile() error = %v, want ErrIO", err)
	}
}
