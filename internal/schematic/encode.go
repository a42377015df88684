package schematic

import (
	"math"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/world"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

// Encode builds the root compound for s. Block ids are written to a single
// byte; ids above 255 do not survive. Entities are always written empty.
func Encode(s *world.Stack) (nbt.Compound, error) {
	dim := dimensions{width: s.Width(), length: s.Height(), height: s.Layers()}
	if s.Layers() == 0 {
		dim = dimensions{}
	}
	for _, v := range []int{dim.width, dim.length, dim.height} {
		if v > math.MaxInt16 {
			return nil, formatErr(nil, "dimension %d does not fit the format", v)
		}
	}

	blocks := make([]byte, dim.volume())
	data := make([]byte, dim.volume())
	tiles := nbt.List{Type: nbt.TagCompound}

	var encErr error
	s.ForEach(func(x, y, z int, b block.Block) {
		if encErr != nil {
			return
		}
		if err := b.Validate(); err != nil {
			encErr = formatErr(err, "voxel (%d,%d,%d)", x, y, z)
			return
		}
		i := dim.index(x, y, z)
		blocks[i] = byte(b.ID)
		data[i] = b.Data

		if !b.Kind().HasTileEntity() {
			return
		}
		te, err := TileEntity(b, x, y, z)
		if err != nil {
			encErr = formatErr(err, "voxel (%d,%d,%d)", x, y, z)
			return
		}
		tiles.Items = append(tiles.Items, te)
	})
	if encErr != nil {
		return nil, encErr
	}

	return nbt.Compound{
		"Materials":    Materials,
		"Width":        int16(dim.width),
		"Length":       int16(dim.length),
		"Height":       int16(dim.height),
		"Blocks":       blocks,
		"Data":         data,
		"TileEntities": tiles,
		"Entities":     nbt.List{Type: nbt.TagCompound},
	}, nil
}
