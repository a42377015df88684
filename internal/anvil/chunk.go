// Package anvil places voxel stacks into Anvil region files, the world
// format of 1.8: columns of 16x16 chunks made of 16-high sections, grouped
// 32x32 chunks per region file.
//
// Stack x runs along world x, stack y along world z and layers along world y.
package anvil

import (
	"bytes"
	"fmt"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/schematic"
	"github.com/go-theft-craft/schematic/internal/world"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

const (
	sectionsPerChunk = 16
	worldHeight      = sectionsPerChunk * 16
	plainsBiome      = 1
)

// ChunkPos identifies a chunk column by chunk coordinates.
type ChunkPos struct {
	X, Z int
}

// Region returns the coordinates of the region file holding the chunk.
func (p ChunkPos) Region() (rx, rz int) {
	return p.X >> 5, p.Z >> 5
}

// Origin is the world position of stack voxel (0, 0, 0).
type Origin struct {
	X, Y, Z int
}

type section struct {
	blocks [4096]byte
	add    [2048]byte
	data   [2048]byte
	hasAdd bool
}

func (s *section) set(i int, b block.Block) {
	s.blocks[i] = byte(b.ID)
	if b.ID > 0xFF {
		s.hasAdd = true
		setNibble(s.add[:], i, byte(b.ID>>8))
	}
	setNibble(s.data[:], i, b.Data)
}

// Chunk is one chunk column filled from a stack.
type Chunk struct {
	Pos      ChunkPos
	sections [sectionsPerChunk]*section
	heights  [256]int32
	tiles    []nbt.Compound
}

// Place splits s into the chunks it covers when its voxel (0, 0, 0) sits at
// at. Air voxels leave their sections untouched, so sections holding only air
// are not written.
func Place(s *world.Stack, at Origin) (map[ChunkPos]*Chunk, error) {
	if at.Y < 0 || at.Y+s.Layers() > worldHeight {
		return nil, fmt.Errorf("%w: layers %d..%d outside world height %d",
			world.ErrInvalidArgument, at.Y, at.Y+s.Layers()-1, worldHeight)
	}

	chunks := make(map[ChunkPos]*Chunk)
	var err error
	s.ForEach(func(x, y, z int, b block.Block) {
		if err != nil || b.IsAir() {
			return
		}
		wx, wy, wz := at.X+x, at.Y+z, at.Z+y
		pos := ChunkPos{X: wx >> 4, Z: wz >> 4}
		c, ok := chunks[pos]
		if !ok {
			c = &Chunk{Pos: pos}
			chunks[pos] = c
		}

		sec := c.sections[wy>>4]
		if sec == nil {
			sec = &section{}
			c.sections[wy>>4] = sec
		}
		lx, ly, lz := wx&0xF, wy&0xF, wz&0xF
		sec.set(ly*256+lz*16+lx, b)
		if h := int32(wy + 1); h > c.heights[lz*16+lx] {
			c.heights[lz*16+lx] = h
		}

		if b.Kind().HasTileEntity() {
			te, teErr := schematic.TileEntity(b, wx, wz, wy)
			if teErr != nil {
				err = fmt.Errorf("voxel (%d,%d,%d): %w", x, y, z, teErr)
				return
			}
			c.tiles = append(c.tiles, te)
		}
	})
	if err != nil {
		return nil, err
	}
	return chunks, nil
}

// Encode streams the uncompressed chunk tag tree.
func (c *Chunk) Encode() ([]byte, error) {
	var buf bytes.Buffer
	w := nbt.NewWriter(&buf)
	w.BeginCompound("")
	w.BeginCompound("Level")
	w.WriteInt("xPos", int32(c.Pos.X))
	w.WriteInt("zPos", int32(c.Pos.Z))
	w.WriteTagByte("TerrainPopulated", 1)
	w.WriteLong("LastUpdate", 0)

	var count int32
	for _, sec := range c.sections {
		if sec != nil {
			count++
		}
	}
	light := bytes.Repeat([]byte{0xFF}, 2048)
	w.BeginList("Sections", nbt.TagCompound, count)
	for y, sec := range c.sections {
		if sec == nil {
			continue
		}
		w.WriteTagByte("Y", byte(y))
		w.WriteByteArray("Blocks", sec.blocks[:])
		if sec.hasAdd {
			w.WriteByteArray("Add", sec.add[:])
		}
		w.WriteByteArray("Data", sec.data[:])
		w.WriteByteArray("BlockLight", light)
		w.WriteByteArray("SkyLight", light)
		w.EndCompound()
	}

	w.WriteByteArray("Biomes", bytes.Repeat([]byte{plainsBiome}, 256))
	w.WriteIntArray("HeightMap", c.heights[:])
	w.BeginList("Entities", nbt.TagCompound, 0)
	w.BeginList("TileEntities", nbt.TagCompound, int32(len(c.tiles)))
	for _, te := range c.tiles {
		w.WriteListItem(te)
	}
	w.EndCompound()
	w.EndCompound()

	if err := w.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// setNibble sets a 4-bit value at the given block index in a nibble array.
func setNibble(arr []byte, index int, val byte) {
	byteIdx := index / 2
	if index%2 == 0 {
		arr[byteIdx] = (arr[byteIdx] & 0xF0) | (val & 0x0F)
	} else {
		arr[byteIdx] = (arr[byteIdx] & 0x0F) | ((val & 0x0F) << 4)
	}
}

// nibble reads the 4-bit value at index.
func nibble(arr []byte, index int) byte {
	if index%2 == 0 {
		return arr[index/2] & 0x0F
	}
	return arr[index/2] >> 4
}
