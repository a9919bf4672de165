package minipng

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var wantPNG = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a,
	0x00, 0x00, 0x00, 0x0d, 0x49, 0x48, 0x44, 0x52,
	0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01, 0x08, 0x06, 0x00, 0x00, 0x00,
	0x1f, 0x15, 0xc4, 0x89,
	0x00, 0x00, 0x00, 0x0a, 0x49, 0x44, 0x41, 0x54,
	0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00, 0x05, 0x00, 0x01,
	0x0d, 0x0a, 0x2d, 0xb4,
	0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func TestBuild(t *testing.T) {
	got, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(wantPNG, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
	if len(got) != 67 {
		t.Errorf("len = %d, want 67", len(got))
	}
	if !bytes.HasPrefix(got, []byte{0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a}) {
		t.Errorf("got % X, want png signature", got[:8])
	}
	iend := []byte{0x00, 0x00, 0x00, 0x00, 0x49, 0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82}
	if diff := cmp.Diff(iend, got[len(got)-12:]); diff != "" {
		t.Errorf("IEND mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	b, err := Build()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Error("Build() is not deterministic")
	}
}

func TestHeader(t *testing.T) {
	h := Header{
		Width:     0x01020304,
		Height:    0x0a0b0c0d,
		BitDepth:  8,
		ColorType: ColorTypeRGBA,
	}
	b := h.Bytes()
	want := []byte{0x01, 0x02, 0x03, 0x04, 0x0a, 0x0b, 0x0c, 0x0d, 8, 6, 0, 0, 0}
	if diff := cmp.Diff(want, b); diff != "" {
		t.Errorf("Bytes() mismatch (-want +got):\n%s", diff)
	}
	got, err := parseHeader(b)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(h, got); diff != "" {
		t.Errorf("parseHeader() mismatch (-want +got):\n%s", diff)
	}
	if _, err := parseHeader(b[:12]); err == nil {
		t.Error("parseHeader() error = nil, want error")
	}
}
