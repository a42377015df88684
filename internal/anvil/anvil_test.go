package anvil

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/world"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

func TestNibbles(t *testing.T) {
	arr := make([]byte, 4)
	setNibble(arr, 0, 0x3)
	setNibble(arr, 1, 0xA)
	setNibble(arr, 6, 0xF)
	assert.Equal(t, []byte{0xA3, 0, 0, 0x0F}, arr)
	assert.Equal(t, byte(0xA), nibble(arr, 1))
	assert.Equal(t, byte(0x3), nibble(arr, 0))
	assert.Equal(t, byte(0), nibble(arr, 7))
}

func TestChunkPosRegion(t *testing.T) {
	rx, rz := ChunkPos{X: 33, Z: -1}.Region()
	assert.Equal(t, 1, rx)
	assert.Equal(t, -1, rz)
}

func TestPlace(t *testing.T) {
	s := world.NewStack(2, 18, 2)
	require.NoError(t, s.Set(0, 0, 0, block.New(block.Stone, 5)))
	require.NoError(t, s.Set(17, 1, 1, block.New(block.Chest, 3)))

	chunks, err := Place(s, Origin{X: 0, Y: 64, Z: 0})
	require.NoError(t, err)
	require.Len(t, chunks, 2)

	c0 := chunks[ChunkPos{0, 0}]
	require.NotNil(t, c0)
	sec := c0.sections[4]
	require.NotNil(t, sec)
	assert.Equal(t, byte(block.Stone), sec.blocks[0])
	assert.Equal(t, byte(5), nibble(sec.data[:], 0))
	assert.Equal(t, int32(65), c0.heights[0])
	assert.Empty(t, c0.tiles)

	c1 := chunks[ChunkPos{1, 0}]
	require.NotNil(t, c1)
	require.Len(t, c1.tiles, 1)
	te := c1.tiles[0]
	assert.Equal(t, "Chest", te["id"])
	assert.Equal(t, int32(17), te["x"])
	assert.Equal(t, int32(65), te["y"])
	assert.Equal(t, int32(1), te["z"])
}

func TestPlaceNegativeOrigin(t *testing.T) {
	s := world.NewStack(1, 1, 1)
	require.NoError(t, s.Set(0, 0, 0, block.New(block.Stone, 0)))

	chunks, err := Place(s, Origin{X: -1, Y: 0, Z: -1})
	require.NoError(t, err)
	c := chunks[ChunkPos{-1, -1}]
	require.NotNil(t, c)
	assert.Equal(t, byte(block.Stone), c.sections[0].blocks[15*16+15])
}

func TestPlaceRejectsHeight(t *testing.T) {
	s := world.NewStack(10, 1, 1)
	_, err := Place(s, Origin{Y: 250})
	assert.True(t, errors.Is(err, world.ErrInvalidArgument))

	_, err = Place(s, Origin{Y: -1})
	assert.True(t, errors.Is(err, world.ErrInvalidArgument))
}

func TestPlaceHighIDs(t *testing.T) {
	s := world.NewStack(1, 1, 1)
	require.NoError(t, s.Set(0, 0, 0, block.New(0x1A5, 2)))

	chunks, err := Place(s, Origin{})
	require.NoError(t, err)
	sec := chunks[ChunkPos{0, 0}].sections[0]
	assert.True(t, sec.hasAdd)
	assert.Equal(t, byte(0xA5), sec.blocks[0])
	assert.Equal(t, byte(0x1), nibble(sec.add[:], 0))
}

func TestEncodeWritesAddOnlyWhenNeeded(t *testing.T) {
	s := world.NewStack(17, 1, 1)
	require.NoError(t, s.Set(0, 0, 0, block.New(0x1A5, 2)))
	require.NoError(t, s.Set(0, 0, 16, block.New(block.Stone, 0)))

	chunks, err := Place(s, Origin{})
	require.NoError(t, err)
	data, err := chunks[ChunkPos{0, 0}].Encode()
	require.NoError(t, err)

	_, root, err := nbt.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	level, err := root.Compound("Level")
	require.NoError(t, err)
	sections, err := level.Compounds("Sections")
	require.NoError(t, err)
	require.Len(t, sections, 2)

	assert.Equal(t, int8(0), sections[0]["Y"])
	add, err := sections[0].ByteArray("Add")
	require.NoError(t, err)
	assert.Equal(t, byte(0x1), nibble(add, 0))

	assert.Equal(t, int8(1), sections[1]["Y"])
	assert.False(t, sections[1].Has("Add"))
}

func TestSaveAndReadChunk(t *testing.T) {
	s := world.NewStack(1, 2, 1)
	require.NoError(t, s.Set(0, 0, 0, block.New(block.Stone, 1)))
	require.NoError(t, s.Set(1, 0, 0, block.Block{ID: block.StandingSign,
		Meta: block.Sign{Lines: [4]string{"hello"}}}))

	chunks, err := Place(s, Origin{X: 31*16 + 15, Y: 10, Z: 0})
	require.NoError(t, err)

	dir := t.TempDir()
	paths, err := Save(dir, chunks)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "r.0.0.mca"), filepath.Join(dir, "r.1.0.mca")}, paths)

	root, err := ReadChunk(paths[0], ChunkPos{31, 0})
	require.NoError(t, err)
	level, err := root.Compound("Level")
	require.NoError(t, err)
	assert.Equal(t, int32(31), level["xPos"])

	sections, err := level.Compounds("Sections")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, int8(0), sections[0]["Y"])
	blocks, err := sections[0].ByteArray("Blocks")
	require.NoError(t, err)
	assert.Equal(t, byte(block.Stone), blocks[10*256+15])
	data, err := sections[0].ByteArray("Data")
	require.NoError(t, err)
	assert.Equal(t, byte(1), nibble(data, 10*256+15))

	heights := level["HeightMap"].([]int32)
	assert.Equal(t, int32(11), heights[15])

	root, err = ReadChunk(paths[1], ChunkPos{32, 0})
	require.NoError(t, err)
	level, err = root.Compound("Level")
	require.NoError(t, err)
	tiles, err := level.Compounds("TileEntities")
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, "Sign", tiles[0]["id"])
	assert.Equal(t, "hello", tiles[0]["Text1"])
	assert.Equal(t, int32(512), tiles[0]["x"])
	assert.Equal(t, int32(10), tiles[0]["y"])

	_, err = ReadChunk(paths[0], ChunkPos{0, 0})
	assert.ErrorIs(t, err, ErrChunkMissing)
}

func TestEncodeOmitsEmptySections(t *testing.T) {
	c := &Chunk{Pos: ChunkPos{2, 3}}
	data, err := c.Encode()
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	chunks := map[ChunkPos]*Chunk{c.Pos: c}
	paths, err := Save(t.TempDir(), chunks)
	require.NoError(t, err)
	root, err := ReadChunk(paths[0], c.Pos)
	require.NoError(t, err)
	level, err := root.Compound("Level")
	require.NoError(t, err)
	l, err := level.List("Sections")
	require.NoError(t, err)
	assert.Empty(t, l.Items)
	assert.Equal(t, nbt.TagCompound, l.Type)
}
