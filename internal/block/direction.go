package block

import "strings"

// Directions is a set of horizontal cardinal directions. North is -y and
// east is +x in slice coordinates.
type Directions uint8

const (
	North Directions = 1 << iota
	East
	South
	West

	NoDirections  Directions = 0
	AllDirections            = North | East | South | West
)

// Cardinals lists the four directions in clockwise order starting at north.
var Cardinals = [4]Directions{North, East, South, West}

// Has reports whether every direction in o is set in d.
func (d Directions) Has(o Directions) bool {
	return d&o == o
}

// Offset returns the slice-coordinate step for a single direction.
func (d Directions) Offset() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	}
	return 0, 0
}

// Rotate turns every direction in the set by a quarter.
func (d Directions) Rotate(clockwise bool) Directions {
	d &= AllDirections
	if clockwise {
		return (d<<1 | d>>3) & AllDirections
	}
	return (d>>1 | d<<3) & AllDirections
}

func (d Directions) String() string {
	if d&AllDirections == 0 {
		return "none"
	}
	var parts []string
	for i, name := range [4]string{"north", "east", "south", "west"} {
		if d.Has(Cardinals[i]) {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}
