// Package schematic converts between Alpha schematic tag trees and voxel
// stacks.
//
// The file's Width runs along slice x, its Length along slice y and its
// Height counts layers. Blocks and Data are laid out layer by layer, row by
// row, so the voxel at stack position (x, y, z) lives at index
// x + (y + z*Length)*Width.
package schematic

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/world"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

// Materials is the only sub-format the codec reads and writes.
const Materials = "Alpha"

// Result is the outcome of a decode.
type Result struct {
	Stack *world.Stack

	// Recovered lists every problem that was worked around: voxels replaced
	// with air and tile entities that could not be placed.
	Recovered []error
}

// HadErrors reports whether any voxel or tile entity was recovered.
func (r *Result) HadErrors() bool {
	return len(r.Recovered) > 0
}

// Decoder turns a root compound into a Result.
type Decoder struct {
	// Log receives one warning per recovered problem. Nil uses slog.Default.
	Log *slog.Logger

	// Resolver builds voxels for ids without tile entity payloads. Nil uses
	// block.DefaultResolver.
	Resolver block.Resolver
}

// Decode decodes root with a zero Decoder.
func Decode(root nbt.Compound) (*Result, error) {
	return (&Decoder{}).Decode(root)
}

func (d *Decoder) log() *slog.Logger {
	if d.Log != nil {
		return d.Log
	}
	return slog.Default()
}

func (d *Decoder) resolver() block.Resolver {
	if d.Resolver != nil {
		return d.Resolver
	}
	return block.DefaultResolver
}

type dimensions struct {
	width, length, height int
}

func (dim dimensions) volume() int {
	return dim.width * dim.length * dim.height
}

func (dim dimensions) index(x, y, z int) int {
	return x + (y+z*dim.length)*dim.width
}

func (dim dimensions) contains(x, y, z int) bool {
	return x >= 0 && x < dim.width && y >= 0 && y < dim.length && z >= 0 && z < dim.height
}

// Decode validates root and builds the voxel stack. Structural problems fail
// the whole decode with a *FormatError. A voxel whose payload cannot be
// decoded becomes air and is listed in Result.Recovered.
func (d *Decoder) Decode(root nbt.Compound) (*Result, error) {
	materials, err := root.String("Materials")
	if err != nil {
		return nil, formatErr(err, "no materials")
	}
	if !strings.EqualFold(materials, Materials) {
		return nil, formatErr(nil, "unsupported materials %q", materials)
	}

	dim, err := readDimensions(root)
	if err != nil {
		return nil, err
	}

	blocks, err := root.ByteArray("Blocks")
	if err != nil {
		return nil, formatErr(err, "read blocks")
	}
	data, err := root.ByteArray("Data")
	if err != nil {
		return nil, formatErr(err, "read data")
	}
	if len(blocks) < dim.volume() || len(data) < dim.volume() {
		return nil, formatErr(nil, "%d blocks and %d data values for %dx%dx%d volume",
			len(blocks), len(data), dim.width, dim.length, dim.height)
	}

	res := &Result{Stack: world.NewStack(dim.height, dim.width, dim.length)}

	tiles, err := d.indexTileEntities(root, dim, res)
	if err != nil {
		return nil, err
	}

	for z := 0; z < dim.height; z++ {
		for y := 0; y < dim.length; y++ {
			for x := 0; x < dim.width; x++ {
				i := dim.index(x, y, z)
				id := uint16(blocks[i])
				b, err := d.resolve(id, data[i], tiles[i])
				if err != nil {
					verr := &VoxelError{X: x, Y: y, Z: z, ID: id, Err: err}
					d.log().Warn("replaced undecodable voxel with air",
						"x", x, "y", y, "z", z, "id", id, "error", err)
					res.Recovered = append(res.Recovered, verr)
					continue
				}
				_ = res.Stack.Set(x, y, z, b)
			}
		}
	}
	return res, nil
}

func readDimensions(root nbt.Compound) (dimensions, error) {
	var dim dimensions
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"Width", &dim.width},
		{"Length", &dim.length},
		{"Height", &dim.height},
	} {
		v, err := root.Short(f.name)
		if err != nil {
			return dim, formatErr(err, "read dimensions")
		}
		if v < 0 {
			return dim, formatErr(nil, "negative %s %d", f.name, v)
		}
		*f.dst = int(v)
	}
	return dim, nil
}

// indexTileEntities maps flat voxel index to tile entity. Entries without
// usable coordinates, and any later entry for an occupied index, are
// recovered and skipped.
func (d *Decoder) indexTileEntities(root nbt.Compound, dim dimensions, res *Result) (map[int]nbt.Compound, error) {
	tiles := make(map[int]nbt.Compound)
	if !root.Has("TileEntities") {
		return tiles, nil
	}
	list, err := root.Compounds("TileEntities")
	if err != nil {
		return nil, formatErr(err, "read tile entities")
	}

	for n, te := range list {
		x, y, z, err := tileEntityPos(te)
		if err == nil && !dim.contains(x, y, z) {
			err = fmt.Errorf("position (%d,%d,%d) outside volume", x, y, z)
		}
		if err != nil {
			d.log().Warn("ignored tile entity", "index", n, "error", err)
			res.Recovered = append(res.Recovered, fmt.Errorf("tile entity %d: %w", n, err))
			continue
		}
		i := dim.index(x, y, z)
		if _, dup := tiles[i]; dup {
			err = fmt.Errorf("second tile entity at (%d,%d,%d)", x, y, z)
			d.log().Warn("ignored tile entity", "index", n, "error", err)
			res.Recovered = append(res.Recovered, fmt.Errorf("tile entity %d: %w", n, err))
			continue
		}
		tiles[i] = te
	}
	return tiles, nil
}

// tileEntityPos returns the tile entity position in stack space: the file's
// x, z and y become stack x, y and layer.
func tileEntityPos(te nbt.Compound) (x, y, z int, err error) {
	fx, err := te.Int("x")
	if err != nil {
		return 0, 0, 0, err
	}
	fy, err := te.Int("y")
	if err != nil {
		return 0, 0, 0, err
	}
	fz, err := te.Int("z")
	if err != nil {
		return 0, 0, 0, err
	}
	return int(fx), int(fz), int(fy), nil
}

func (d *Decoder) resolve(id uint16, data uint8, te nbt.Compound) (block.Block, error) {
	if !block.KindOf(id).HasTileEntity() {
		return d.resolver().Resolve(id, data)
	}

	b := block.New(id, data)
	if te == nil {
		return b, nil
	}

	got, err := te.String("id")
	if err != nil {
		return block.Block{}, err
	}
	if want := tileEntityID(id); got != want {
		return block.Block{}, formatErr(nil, "tile entity %q on block %d, want %q", got, id, want)
	}

	meta, err := decodeMeta(b, te)
	if err != nil {
		return block.Block{}, fmt.Errorf("decode %s: %w", got, err)
	}
	b.Meta = meta
	return b, nil
}
