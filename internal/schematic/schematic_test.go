package schematic

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/internal/world"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

func quietDecoder() *Decoder {
	return &Decoder{Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// emptyRoot builds an all-air Alpha root of the given file dimensions.
func emptyRoot(width, length, height int) nbt.Compound {
	n := width * length * height
	return nbt.Compound{
		"Materials":    "Alpha",
		"Width":        int16(width),
		"Length":       int16(length),
		"Height":       int16(height),
		"Blocks":       make([]byte, n),
		"Data":         make([]byte, n),
		"TileEntities": nbt.List{Type: nbt.TagCompound},
		"Entities":     nbt.List{Type: nbt.TagCompound},
	}
}

func addTileEntity(root nbt.Compound, te nbt.Compound) {
	l := root["TileEntities"].(nbt.List)
	l.Items = append(l.Items, te)
	root["TileEntities"] = l
}

func mustAt(t *testing.T, s *world.Stack, x, y, z int) block.Block {
	t.Helper()
	b, err := s.At(x, y, z)
	require.NoError(t, err)
	return b
}

func TestEncodeAxisRelabeling(t *testing.T) {
	s := world.NewStack(1, 3, 2)
	root, err := Encode(s)
	require.NoError(t, err)

	assert.Equal(t, int16(3), root["Width"])
	assert.Equal(t, int16(2), root["Length"])
	assert.Equal(t, int16(1), root["Height"])
	assert.Equal(t, "Alpha", root["Materials"])
	assert.Empty(t, root["Entities"].(nbt.List).Items)

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Stack.Width())
	assert.Equal(t, 2, res.Stack.Height())
	assert.Equal(t, 1, res.Stack.Layers())
}

func TestEncodeLinearization(t *testing.T) {
	s := world.NewStack(2, 4, 3)
	require.NoError(t, s.Set(3, 2, 1, block.New(block.Stone, 5)))

	root, err := Encode(s)
	require.NoError(t, err)

	i := 3 + (2+1*3)*4
	assert.Equal(t, byte(block.Stone), root["Blocks"].([]byte)[i])
	assert.Equal(t, byte(5), root["Data"].([]byte)[i])
}

func TestTileEntityAssociation(t *testing.T) {
	root := emptyRoot(4, 3, 2)
	i := 1 + (0*3+2)*4
	root["Blocks"].([]byte)[i] = byte(block.Chest)
	addTileEntity(root, nbt.Compound{
		"id": "Chest", "x": int32(1), "y": int32(0), "z": int32(2),
		"Items": nbt.List{Type: nbt.TagCompound, Items: []any{
			nbt.Compound{"id": int16(264), "Damage": int16(0), "Count": int8(5), "Slot": int8(3)},
		}},
	})

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	require.False(t, res.HadErrors())

	chest := mustAt(t, res.Stack, 1, 2, 0)
	require.Equal(t, block.KindContainer, chest.Kind())
	items := chest.Meta.(block.Container).Items
	require.Len(t, items, block.ChestSlots)
	assert.Equal(t, block.Item{ID: 264, Count: 5}, items[3])

	out, err := Encode(res.Stack)
	require.NoError(t, err)
	tiles, err := out.Compounds("TileEntities")
	require.NoError(t, err)
	require.Len(t, tiles, 1)
	assert.Equal(t, int32(1), tiles[0]["x"])
	assert.Equal(t, int32(0), tiles[0]["y"])
	assert.Equal(t, int32(2), tiles[0]["z"])
	assert.Equal(t, byte(block.Chest), out["Blocks"].([]byte)[i])
}

func richStack(t *testing.T) *world.Stack {
	t.Helper()
	s := world.NewStack(2, 4, 3)

	chest := block.New(block.Chest, 3)
	items := chest.Meta.(block.Container).Items
	items[0] = block.Item{ID: 276, Count: 1, Name: "Excalibur"}
	items[26] = block.Item{ID: block.LeatherChestplate, Count: 1, Color: 0x336699, HasColor: true}
	require.NoError(t, s.Set(0, 0, 0, chest))

	disp := block.New(block.Dispenser, 2)
	disp.Meta.(block.Container).Items[8] = block.Item{ID: 262, Count: 64}
	require.NoError(t, s.Set(1, 0, 0, disp))

	hopper := block.New(block.Hopper, 0)
	hopper.Meta.(block.Container).Items[4] = block.Item{ID: 1, Damage: 3, Count: 2}
	require.NoError(t, s.Set(2, 0, 0, hopper))

	require.NoError(t, s.Set(3, 0, 0, block.New(block.Dropper, 1)))
	require.NoError(t, s.Set(0, 1, 0, block.New(block.TrappedChest, 4)))
	require.NoError(t, s.Set(1, 1, 0, block.Block{ID: block.NoteBlock, Meta: block.Note{Pitch: 12}}))
	require.NoError(t, s.Set(2, 1, 0, block.Block{ID: block.StandingSign, Data: 8,
		Meta: block.Sign{Lines: [4]string{"Welcome", "", "to", "spawn"}}}))
	require.NoError(t, s.Set(3, 1, 0, block.Block{ID: block.WallSign, Data: 2, Meta: block.Sign{}}))

	brew := block.BrewingMeta{BrewTime: 200}
	brew.Items[3] = block.Item{ID: 372, Count: 1}
	require.NoError(t, s.Set(0, 2, 0, block.Block{ID: block.BrewingStand, Meta: brew}))
	require.NoError(t, s.Set(1, 2, 0, block.Block{ID: block.CommandBlock,
		Meta: block.Command{Command: "/say hi", SuccessCount: 1}}))
	require.NoError(t, s.Set(2, 2, 0, block.Block{ID: block.Beacon,
		Meta: block.BeaconMeta{Primary: 1, Secondary: 10, Levels: 4}}))
	require.NoError(t, s.Set(3, 2, 0, block.Block{ID: block.Skull, Data: 1,
		Meta: block.MobHead{Type: 3, Rot: 7, Owner: "Notch"}}))

	require.NoError(t, s.Set(0, 0, 1, block.New(block.RedstoneWire, 0)))
	require.NoError(t, s.Set(1, 0, 1, block.New(block.Tripwire, 0)))
	require.NoError(t, s.Set(2, 0, 1, block.New(block.OakStairs, 6)))
	return s
}

func TestRoundTrip(t *testing.T) {
	s := richStack(t)

	root, err := Encode(s)
	require.NoError(t, err)
	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	require.False(t, res.HadErrors(), "recovered: %v", res.Recovered)

	assert.True(t, s.Equal(res.Stack))

	chest := mustAt(t, res.Stack, 0, 0, 0).Meta.(block.Container)
	assert.Equal(t, "Excalibur", chest.Items[0].Name)
	color, ok := chest.Items[26].EffectiveColor()
	assert.True(t, ok)
	assert.Equal(t, int32(0x336699), color)

	head := mustAt(t, res.Stack, 3, 2, 0).Meta.(block.MobHead)
	assert.Equal(t, "Notch", head.Owner)
}

func TestReadWrite(t *testing.T) {
	s := richStack(t)

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, s))
	assert.True(t, IsGzip(buf.Bytes()))

	res, err := quietDecoder().Read(&buf)
	require.NoError(t, err)
	assert.True(t, s.Equal(res.Stack))
}

func TestReadRejectsRawTagTree(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, nbt.Marshal(&buf, "Schematic", emptyRoot(1, 1, 1)))

	_, err := quietDecoder().Read(&buf)
	assert.ErrorIs(t, err, ErrNotGzip)
}

func TestDecodeMaterials(t *testing.T) {
	root := emptyRoot(1, 1, 1)
	root["Materials"] = "alpha"
	_, err := quietDecoder().Decode(root)
	assert.NoError(t, err)

	root["Materials"] = "Classic"
	_, err = quietDecoder().Decode(root)
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))

	delete(root, "Materials")
	_, err = quietDecoder().Decode(root)
	assert.True(t, errors.As(err, &fe))
}

func TestDecodeRejectsShortArrays(t *testing.T) {
	root := emptyRoot(2, 2, 2)
	root["Data"] = make([]byte, 7)

	_, err := quietDecoder().Decode(root)
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestDecodeSynthesizesMissingTileEntity(t *testing.T) {
	root := emptyRoot(2, 1, 1)
	root["Blocks"].([]byte)[0] = byte(block.Hopper)
	root["Blocks"].([]byte)[1] = byte(block.StandingSign)

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	assert.False(t, res.HadErrors())

	hopper := mustAt(t, res.Stack, 0, 0, 0)
	assert.Len(t, hopper.Meta.(block.Container).Items, block.HopperSlots)
	assert.Equal(t, block.KindSign, mustAt(t, res.Stack, 1, 0, 0).Kind())
}

func TestDecodeRecoversMismatchedKindTag(t *testing.T) {
	root := emptyRoot(3, 1, 1)
	blocks := root["Blocks"].([]byte)
	blocks[0] = byte(block.Stone)
	blocks[1] = byte(block.Chest)
	blocks[2] = byte(block.NoteBlock)
	addTileEntity(root, nbt.Compound{"id": "Sign", "x": int32(1), "y": int32(0), "z": int32(0)})
	addTileEntity(root, nbt.Compound{"id": "Music", "x": int32(2), "y": int32(0), "z": int32(0), "note": int8(9)})

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	require.True(t, res.HadErrors())
	require.Len(t, res.Recovered, 1)

	var verr *VoxelError
	require.True(t, errors.As(res.Recovered[0], &verr))
	assert.Equal(t, 1, verr.X)
	assert.Equal(t, block.Chest, verr.ID)
	var fe *FormatError
	assert.True(t, errors.As(verr, &fe))

	assert.True(t, mustAt(t, res.Stack, 1, 0, 0).IsAir())
	assert.Equal(t, block.Stone, mustAt(t, res.Stack, 0, 0, 0).ID)
	assert.Equal(t, block.Note{Pitch: 9}, mustAt(t, res.Stack, 2, 0, 0).Meta)
}

func TestDecodeRecoversOutOfRangeSlot(t *testing.T) {
	root := emptyRoot(1, 1, 1)
	root["Blocks"].([]byte)[0] = byte(block.Hopper)
	addTileEntity(root, nbt.Compound{
		"id": "Hopper", "x": int32(0), "y": int32(0), "z": int32(0),
		"Items": nbt.List{Type: nbt.TagCompound, Items: []any{
			nbt.Compound{"id": int16(1), "Count": int8(1), "Slot": int8(5)},
		}},
	})

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	assert.True(t, res.HadErrors())
	assert.True(t, mustAt(t, res.Stack, 0, 0, 0).IsAir())
}

func TestDecodeRecoversMisplacedTileEntity(t *testing.T) {
	root := emptyRoot(1, 1, 1)
	addTileEntity(root, nbt.Compound{"id": "Chest", "x": int32(4), "y": int32(0), "z": int32(0)})
	addTileEntity(root, nbt.Compound{"id": "Chest", "y": int32(0), "z": int32(0)})

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	assert.Len(t, res.Recovered, 2)
}

func TestDecodeKeepsFirstOfDuplicateTileEntities(t *testing.T) {
	root := emptyRoot(1, 1, 1)
	root["Blocks"].([]byte)[0] = byte(block.Chest)
	addTileEntity(root, nbt.Compound{
		"id": "Chest", "x": int32(0), "y": int32(0), "z": int32(0),
		"Items": nbt.List{Type: nbt.TagCompound, Items: []any{
			nbt.Compound{"id": int16(264), "Damage": int16(0), "Count": int8(3), "Slot": int8(0)},
		}},
	})
	addTileEntity(root, nbt.Compound{
		"id": "Chest", "x": int32(0), "y": int32(0), "z": int32(0),
		"Items": nbt.List{Type: nbt.TagCompound},
	})

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	require.Len(t, res.Recovered, 1)
	assert.Contains(t, res.Recovered[0].Error(), "tile entity 1")

	chest := mustAt(t, res.Stack, 0, 0, 0)
	items := chest.Meta.(block.Container).Items
	assert.Equal(t, uint16(264), items[0].ID)
	assert.Equal(t, uint8(3), items[0].Count)
}

func TestDecodeItemVariants(t *testing.T) {
	root := emptyRoot(1, 1, 1)
	root["Blocks"].([]byte)[0] = byte(block.Dropper)
	addTileEntity(root, nbt.Compound{
		"id": "Dropper", "x": int32(0), "y": int32(0), "z": int32(0),
		"Items": nbt.List{Type: nbt.TagCompound, Items: []any{
			nbt.Compound{"id": "minecraft:diamond", "Damage": int16(0), "Count": int8(2), "Slot": int8(0)},
			nbt.Compound{"id": int16(276), "Count": int8(1), "Slot": int8(1),
				"tag": nbt.Compound{"display": nbt.Compound{"Name": "Blade", "color": int32(7)}}},
			nbt.Compound{"id": int16(block.LeatherBoots), "Count": int8(1), "Slot": int8(2),
				"tag": nbt.Compound{"display": nbt.Compound{"color": int32(7)}}},
		}},
	})

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	require.False(t, res.HadErrors(), "recovered: %v", res.Recovered)

	items := mustAt(t, res.Stack, 0, 0, 0).Meta.(block.Container).Items
	assert.Equal(t, uint16(264), items[0].ID)
	assert.Equal(t, "Blade", items[1].Name)
	assert.False(t, items[1].HasColor, "swords ignore color")
	assert.True(t, items[2].HasColor)
	assert.Equal(t, int32(7), items[2].Color)
	for _, it := range items[3:] {
		assert.True(t, it.IsEmpty())
	}
}

func TestDecodeUnknownItemNameRecovers(t *testing.T) {
	root := emptyRoot(1, 1, 1)
	root["Blocks"].([]byte)[0] = byte(block.Chest)
	addTileEntity(root, nbt.Compound{
		"id": "Chest", "x": int32(0), "y": int32(0), "z": int32(0),
		"Items": nbt.List{Type: nbt.TagCompound, Items: []any{
			nbt.Compound{"id": "minecraft:not_a_thing", "Count": int8(1), "Slot": int8(0)},
		}},
	})

	res, err := quietDecoder().Decode(root)
	require.NoError(t, err)
	assert.True(t, res.HadErrors())
}

func TestDecodeUsesResolver(t *testing.T) {
	root := emptyRoot(2, 1, 1)
	root["Blocks"].([]byte)[0] = 42
	root["Blocks"].([]byte)[1] = byte(block.Chest)

	var seen []uint16
	d := quietDecoder()
	d.Resolver = block.ResolverFunc(func(id uint16, data uint8) (block.Block, error) {
		seen = append(seen, id)
		if id == 42 {
			return block.Block{}, errors.New("no such block")
		}
		return block.New(id, data), nil
	})

	res, err := d.Decode(root)
	require.NoError(t, err)
	assert.Equal(t, []uint16{42}, seen, "tile entity kinds bypass the resolver")
	assert.Len(t, res.Recovered, 1)
	assert.Equal(t, block.Chest, mustAt(t, res.Stack, 1, 0, 0).ID)
}

func TestEncodeTruncatesHighIDs(t *testing.T) {
	s := world.NewStack(1, 1, 1)
	require.NoError(t, s.Set(0, 0, 0, block.New(300, 0)))

	root, err := Encode(s)
	require.NoError(t, err)
	assert.Equal(t, byte(300&0xFF), root["Blocks"].([]byte)[0])
}

func TestEncodeRejectsMismatchedPayload(t *testing.T) {
	s := world.NewStack(1, 1, 1)
	require.NoError(t, s.Set(0, 0, 0, block.Block{ID: block.Stone, Meta: block.Sign{}}))

	_, err := Encode(s)
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}

func TestWriteText(t *testing.T) {
	s := world.NewStack(2, 2, 2)
	require.NoError(t, s.Set(1, 0, 0, block.New(block.Stone, 0)))
	require.NoError(t, s.Set(0, 1, 1, block.New(block.Chest, 0)))

	var buf strings.Builder
	require.NoError(t, WriteText(&buf, s))

	want := "-- layer 0 --\n0 1\n0 0\n-- layer 1 --\n0 0\n54 0\n"
	assert.Equal(t, want, buf.String())
}
