package world

import "github.com/go-theft-craft/schematic/internal/block"

// Connect recomputes the connections of every wire and tripwire voxel.
// Redstone wire also links to wire one layer up or down when crossLayer is
// set; tripwire only ever links within its layer. Connections are not kept
// up to date by edits, so run Connect again after placing, turning or
// cropping.
func (s *Stack) Connect(crossLayer bool) {
	for z, l := range s.layers {
		var below, above *Slice
		if crossLayer {
			if z > 0 {
				below = s.layers[z-1]
			}
			if z+1 < len(s.layers) {
				above = s.layers[z+1]
			}
		}
		connectLayer(l, below, above)
	}
}

// Connect recomputes wire and tripwire connections within the slice.
func (s *Slice) Connect() {
	connectLayer(s, nil, nil)
}

func connectLayer(l, below, above *Slice) {
	for y := 0; y < l.height; y++ {
		for x := 0; x < l.width; x++ {
			b := l.at(x, y)
			switch b.Kind() {
			case block.KindWire:
				l.put(x, y, b.WithConnections(wireConnections(l, below, above, x, y)))
			case block.KindTripwire:
				l.put(x, y, b.WithConnections(tripwireConnections(l, x, y)))
			}
		}
	}
}

func wireConnections(l, below, above *Slice, x, y int) block.Directions {
	climbs := above != nil && !above.at(x, y).BlocksWire()

	var mask block.Directions
	for _, d := range block.Cardinals {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if !l.contains(nx, ny) {
			continue
		}
		n := l.at(nx, ny)
		switch {
		case n.ConnectsToWire():
			mask |= d
		case climbs && above.at(nx, ny).IsWire():
			mask |= d
		case below != nil && !n.BlocksWire() && below.at(nx, ny).IsWire():
			mask |= d
		}
	}
	return mask
}

func tripwireConnections(l *Slice, x, y int) block.Directions {
	var mask block.Directions
	for _, d := range block.Cardinals {
		dx, dy := d.Offset()
		nx, ny := x+dx, y+dy
		if l.contains(nx, ny) && l.at(nx, ny).ConnectsToTripwire() {
			mask |= d
		}
	}
	return mask
}
