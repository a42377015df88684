// Package world holds the schematic's voxel volume: horizontal slices stacked
// bottom to top, with the geometric edits and wire connectivity pass that
// operate on them.
package world

import (
	"fmt"

	"github.com/go-theft-craft/schematic/internal/block"
)

// Stack is an ordered set of equally sized slices. Layer 0 is the bottom.
type Stack struct {
	width, height int
	layers        []*Slice
}

// NewStack creates a stack of all-air layers.
func NewStack(layers, width, height int) *Stack {
	s := &Stack{width: width, height: height}
	for i := 0; i < layers; i++ {
		s.layers = append(s.layers, NewSlice(width, height))
	}
	return s
}

// Layers returns the number of slices.
func (s *Stack) Layers() int { return len(s.layers) }

// Width returns the slice extent along x.
func (s *Stack) Width() int { return s.width }

// Height returns the slice extent along y.
func (s *Stack) Height() int { return s.height }

// Layer returns a copy of the slice at z. Turning or cropping the copy does
// not reach the stack; all layers change size together through Turn, Trim
// and CutOff.
func (s *Stack) Layer(z int) (*Slice, error) {
	l, err := s.layer(z)
	if err != nil {
		return nil, err
	}
	return l.Clone(), nil
}

func (s *Stack) layer(z int) (*Slice, error) {
	if z < 0 || z >= len(s.layers) {
		return nil, &LayerError{Z: z, Layers: len(s.layers)}
	}
	return s.layers[z], nil
}

// AddSlice appends a copy of sl on top. Its size must match the existing
// slices.
func (s *Stack) AddSlice(sl *Slice) error {
	if sl == nil {
		return invalid("nil slice")
	}
	if len(s.layers) > 0 && (sl.width != s.width || sl.height != s.height) {
		return invalid("slice is %dx%d, stack is %dx%d", sl.width, sl.height, s.width, s.height)
	}
	if len(s.layers) == 0 {
		s.width, s.height = sl.width, sl.height
	}
	s.layers = append(s.layers, sl.Clone())
	return nil
}

// At returns the voxel at (x, y) on layer z.
func (s *Stack) At(x, y, z int) (block.Block, error) {
	l, err := s.layer(z)
	if err != nil {
		return block.Block{}, err
	}
	return l.At(x, y)
}

// Set stores a copy of b at (x, y) on layer z.
func (s *Stack) Set(x, y, z int, b block.Block) error {
	l, err := s.layer(z)
	if err != nil {
		return err
	}
	return l.Set(x, y, b)
}

// ForEach calls fn with a copy of every voxel, bottom layer first, row by row.
func (s *Stack) ForEach(fn func(x, y, z int, b block.Block)) {
	for z, l := range s.layers {
		l.ForEach(func(x, y int, b block.Block) {
			fn(x, y, z, b)
		})
	}
}

// IsEmpty reports whether the stack holds no non-air voxel.
func (s *Stack) IsEmpty() bool {
	for _, l := range s.layers {
		if !l.IsEmpty() {
			return false
		}
	}
	return true
}

// Turn rotates every layer a quarter around the vertical axis.
func (s *Stack) Turn(clockwise bool) {
	for _, l := range s.layers {
		l.Turn(clockwise)
	}
	s.width, s.height = s.height, s.width
}

// Trim drops all-air layers from the bottom and top, then crops the air
// margin that every remaining layer shares on each side.
func (s *Stack) Trim() {
	lo, hi := 0, len(s.layers)
	for lo < hi && s.layers[lo].IsEmpty() {
		lo++
	}
	for hi > lo && s.layers[hi-1].IsEmpty() {
		hi--
	}
	if lo == hi {
		s.layers, s.width, s.height = nil, 0, 0
		return
	}
	layers := s.layers[lo:hi]

	left, top, right, bottom := s.width, s.height, s.width, s.height
	for _, l := range layers {
		left = min(left, l.AirspaceLeft())
		top = min(top, l.AirspaceTop())
		right = min(right, l.AirspaceRight())
		bottom = min(bottom, l.AirspaceBottom())
	}
	for _, l := range layers {
		l.cut(left, top, right, bottom)
	}

	s.layers = layers
	s.width -= left + right
	s.height -= top + bottom
}

// CutOff removes top and bottom layers and crops north (low y), east
// (high x), south (high y) and west (low x) from every remaining layer.
// Nothing changes if any amount is out of range.
func (s *Stack) CutOff(top, bottom, north, east, south, west int) error {
	n := len(s.layers)
	if top < 0 || bottom < 0 {
		return invalid("negative layer cut (top=%d bottom=%d)", top, bottom)
	}
	if top >= n || bottom >= n || top+bottom >= n {
		return invalid("cut top=%d bottom=%d leaves nothing of %d layers", top, bottom, n)
	}
	if err := checkCut(s.width, s.height, west, north, east, south); err != nil {
		return fmt.Errorf("crop layers: %w", err)
	}

	layers := s.layers[bottom : n-top]
	for _, l := range layers {
		l.cut(west, north, east, south)
	}
	s.layers = layers
	s.width -= west + east
	s.height -= north + south
	return nil
}

// Clone returns a deep copy of s.
func (s *Stack) Clone() *Stack {
	c := &Stack{width: s.width, height: s.height}
	for _, l := range s.layers {
		c.layers = append(c.layers, l.Clone())
	}
	return c
}

// Equal reports whether s and o have the same shape and voxels.
func (s *Stack) Equal(o *Stack) bool {
	if len(s.layers) != len(o.layers) || s.width != o.width || s.height != o.height {
		return false
	}
	for i, l := range s.layers {
		if !l.Equal(o.layers[i]) {
			return false
		}
	}
	return true
}
