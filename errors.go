package minipng

import "errors"

var (
	// ErrInvalidArgument is returned when a chunk cannot be built from the given type and data.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO is returned when reading or writing a file fails.
	ErrIO = errors.New("io error")
	// ErrMalformed is returned when a byte stream is not a well-formed PNG.
	ErrMalformed = errors.New("malformed png")
)
