package convertutils

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a codec argument is unbound (nil).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrShortBuffer is returned when a destination cannot hold the codec output.
	// It matches ErrInvalidArgument under errors.Is.
	ErrShortBuffer = fmt.Errorf("%w: destination buffer too short", ErrInvalidArgument)
)

// ArgumentError names the codec argument that was rejected.
type ArgumentError struct {
	Arg string
	Err error
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Arg, e.Err)
}

func (e *ArgumentError) Unwrap() error { return e.Err }
