package world

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is wrapped by errors from geometric operations called
// with out-of-range parameters.
var ErrInvalidArgument = errors.New("invalid argument")

// IndexError reports a coordinate outside a slice.
type IndexError struct {
	X, Y          int
	Width, Height int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("world: position (%d,%d) outside %dx%d slice", e.X, e.Y, e.Width, e.Height)
}

// LayerError reports a layer index outside a stack.
type LayerError struct {
	Z      int
	Layers int
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("world: layer %d outside stack of %d layers", e.Z, e.Layers)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
