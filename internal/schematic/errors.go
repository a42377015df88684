package schematic

import (
	"errors"
	"fmt"
)

// ErrNotGzip is returned by Read when the input lacks the gzip envelope.
// Callers holding a raw tag file re-compress it first; see source.Open.
var ErrNotGzip = errors.New("schematic: input is not gzip compressed")

// FormatError reports input that is not an Alpha schematic or is malformed.
type FormatError struct {
	Msg string
	Err error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("schematic: %s: %v", e.Msg, e.Err)
	}
	return "schematic: " + e.Msg
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErr(err error, format string, args ...any) *FormatError {
	return &FormatError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// VoxelError records one voxel that could not be decoded and was replaced
// with air. Coordinates are in stack space.
type VoxelError struct {
	X, Y, Z int
	ID      uint16
	Err     error
}

func (e *VoxelError) Error() string {
	return fmt.Sprintf("voxel (%d,%d,%d) id %d: %v", e.X, e.Y, e.Z, e.ID, e.Err)
}

func (e *VoxelError) Unwrap() error {
	return e.Err
}
