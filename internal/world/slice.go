package world

import (
	"github.com/go-theft-craft/schematic/internal/block"
)

// Slice is one horizontal layer of voxels. Every cell holds a value; air is
// the zero Block.
type Slice struct {
	width, height int
	blocks        []block.Block
}

// NewSlice creates an all-air slice. It panics if a dimension is negative.
func NewSlice(width, height int) *Slice {
	if width < 0 || height < 0 {
		panic("world: negative slice dimension")
	}
	return &Slice{
		width:  width,
		height: height,
		blocks: make([]block.Block, width*height),
	}
}

// Width returns the extent along x.
func (s *Slice) Width() int { return s.width }

// Height returns the extent along y.
func (s *Slice) Height() int { return s.height }

func (s *Slice) contains(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Slice) at(x, y int) block.Block {
	return s.blocks[x+y*s.width]
}

func (s *Slice) put(x, y int, b block.Block) {
	s.blocks[x+y*s.width] = b
}

// At returns a copy of the voxel at (x, y).
func (s *Slice) At(x, y int) (block.Block, error) {
	if !s.contains(x, y) {
		return block.Block{}, &IndexError{X: x, Y: y, Width: s.width, Height: s.height}
	}
	return s.at(x, y).Clone(), nil
}

// Set stores a copy of b at (x, y).
func (s *Slice) Set(x, y int, b block.Block) error {
	if !s.contains(x, y) {
		return &IndexError{X: x, Y: y, Width: s.width, Height: s.height}
	}
	s.put(x, y, b.Clone())
	return nil
}

// ForEach calls fn with a copy of every voxel, row by row.
func (s *Slice) ForEach(fn func(x, y int, b block.Block)) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			fn(x, y, s.at(x, y).Clone())
		}
	}
}

// IsEmpty reports whether every voxel is air.
func (s *Slice) IsEmpty() bool {
	for _, b := range s.blocks {
		if !b.IsAir() {
			return false
		}
	}
	return true
}

// Turn rotates the slice a quarter around the vertical axis. Each voxel's
// orientation turns with it.
func (s *Slice) Turn(clockwise bool) {
	oldW, oldH := s.width, s.height
	newW, newH := oldH, oldW
	blocks := make([]block.Block, len(s.blocks))

	for y := 0; y < oldH; y++ {
		for x := 0; x < oldW; x++ {
			nx, ny := y, oldW-1-x
			if clockwise {
				nx, ny = oldH-1-y, x
			}
			blocks[nx+ny*newW] = s.at(x, y).Rotate(clockwise)
		}
	}

	s.width, s.height, s.blocks = newW, newH, blocks
}

// CutOff removes the given number of columns and rows from each edge. At
// least one column and one row must remain.
func (s *Slice) CutOff(left, top, right, bottom int) error {
	if err := checkCut(s.width, s.height, left, top, right, bottom); err != nil {
		return err
	}
	s.cut(left, top, right, bottom)
	return nil
}

func checkCut(width, height, left, top, right, bottom int) error {
	if left < 0 || top < 0 || right < 0 || bottom < 0 {
		return invalid("negative cut (left=%d top=%d right=%d bottom=%d)", left, top, right, bottom)
	}
	if left >= width || right >= width || left+right >= width {
		return invalid("cut left=%d right=%d leaves nothing of width %d", left, right, width)
	}
	if top >= height || bottom >= height || top+bottom >= height {
		return invalid("cut top=%d bottom=%d leaves nothing of height %d", top, bottom, height)
	}
	return nil
}

func (s *Slice) cut(left, top, right, bottom int) {
	if left == 0 && top == 0 && right == 0 && bottom == 0 {
		return
	}
	newW := s.width - left - right
	newH := s.height - top - bottom
	blocks := make([]block.Block, newW*newH)
	for y := 0; y < newH; y++ {
		row := (y+top)*s.width + left
		copy(blocks[y*newW:(y+1)*newW], s.blocks[row:row+newW])
	}
	s.width, s.height, s.blocks = newW, newH, blocks
}

func (s *Slice) columnIsAir(x int) bool {
	for y := 0; y < s.height; y++ {
		if !s.at(x, y).IsAir() {
			return false
		}
	}
	return true
}

func (s *Slice) rowIsAir(y int) bool {
	for x := 0; x < s.width; x++ {
		if !s.at(x, y).IsAir() {
			return false
		}
	}
	return true
}

// AirspaceLeft counts the all-air columns at the low-x edge.
func (s *Slice) AirspaceLeft() int {
	n := 0
	for n < s.width && s.columnIsAir(n) {
		n++
	}
	return n
}

// AirspaceRight counts the all-air columns at the high-x edge.
func (s *Slice) AirspaceRight() int {
	n := 0
	for n < s.width && s.columnIsAir(s.width-1-n) {
		n++
	}
	return n
}

// AirspaceTop counts the all-air rows at the low-y edge.
func (s *Slice) AirspaceTop() int {
	n := 0
	for n < s.height && s.rowIsAir(n) {
		n++
	}
	return n
}

// AirspaceBottom counts the all-air rows at the high-y edge.
func (s *Slice) AirspaceBottom() int {
	n := 0
	for n < s.height && s.rowIsAir(s.height-1-n) {
		n++
	}
	return n
}

// Clone returns a deep copy of s.
func (s *Slice) Clone() *Slice {
	c := &Slice{width: s.width, height: s.height, blocks: make([]block.Block, len(s.blocks))}
	for i, b := range s.blocks {
		c.blocks[i] = b.Clone()
	}
	return c
}

// Equal reports whether s and o have the same size and voxels.
func (s *Slice) Equal(o *Slice) bool {
	if s.width != o.width || s.height != o.height {
		return false
	}
	for i, b := range s.blocks {
		if !b.Equal(o.blocks[i]) {
			return false
		}
	}
	return true
}
