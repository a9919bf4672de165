package minipng

import (
	"fmt"
	"os"

	"github.com/k1LoW/errors"
)

// WriteFile creates or truncates path and writes b to it.
// The file is closed on every return path and a close error is reported.
func WriteFile(path string, b []byte) (err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w: %w", path, ErrIO, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close %s: %w: %w", path, ErrIO, cerr))
		}
	}()
	if _, err := f.Write(b); err != nil {
		return fmt.Errorf("failed to write %s: %w: %w", path, ErrIO, err)
	}
	return nil
}

// ReadFile reads the whole file at path.
func ReadFile(path string) (_ []byte, err error) {
	defer func() {
		err = errors.WithStack(err)
	}()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w: %w", path, ErrIO, err)
	}
	return b, nil
}
