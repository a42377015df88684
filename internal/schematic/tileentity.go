package schematic

import (
	"fmt"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

// tileEntityID returns the kind tag written in a tile entity's "id" field.
func tileEntityID(id uint16) string {
	switch id {
	case block.Chest, block.TrappedChest:
		return "Chest"
	case block.Dispenser:
		return "Trap"
	case block.Hopper:
		return "Hopper"
	case block.Dropper:
		return "Dropper"
	case block.NoteBlock:
		return "Music"
	case block.StandingSign, block.WallSign:
		return "Sign"
	case block.BrewingStand:
		return "Cauldron"
	case block.CommandBlock:
		return "Control"
	case block.Beacon:
		return "Beacon"
	case block.Skull:
		return "Skull"
	}
	return ""
}

var signKeys = [4]string{"Text1", "Text2", "Text3", "Text4"}

// decodeMeta fills the payload of b from its tile entity.
func decodeMeta(b block.Block, te nbt.Compound) (block.Meta, error) {
	switch m := b.Meta.(type) {
	case block.Container:
		if err := readItems(te, m.Items); err != nil {
			return nil, err
		}
		return m, nil

	case block.BrewingMeta:
		if err := readItems(te, m.Items[:]); err != nil {
			return nil, err
		}
		if te.Has("BrewTime") {
			t, err := te.Int("BrewTime")
			if err != nil {
				return nil, err
			}
			m.BrewTime = t
		}
		return m, nil

	case block.Note:
		p, err := te.Byte("note")
		if err != nil {
			return nil, err
		}
		m.Pitch = uint8(p)
		return m, nil

	case block.Sign:
		for i, k := range signKeys {
			line, err := te.String(k)
			if err != nil {
				return nil, err
			}
			m.Lines[i] = line
		}
		return m, nil

	case block.Command:
		cmd, err := te.String("Command")
		if err != nil {
			return nil, err
		}
		m.Command = cmd
		if te.Has("SuccessCount") {
			if m.SuccessCount, err = te.Int("SuccessCount"); err != nil {
				return nil, err
			}
		}
		return m, nil

	case block.BeaconMeta:
		var err error
		if m.Primary, err = te.Int("Primary"); err != nil {
			return nil, err
		}
		if m.Secondary, err = te.Int("Secondary"); err != nil {
			return nil, err
		}
		if m.Levels, err = te.Int("Levels"); err != nil {
			return nil, err
		}
		return m, nil

	case block.MobHead:
		st, err := te.Byte("SkullType")
		if err != nil {
			return nil, err
		}
		m.Type = st
		if te.Has("Rot") {
			rot, err := te.Byte("Rot")
			if err != nil {
				return nil, err
			}
			m.Rot = uint8(rot) & 0xF
		}
		m.Owner, err = skullOwner(te)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
	return nil, fmt.Errorf("block %d has no tile entity payload", b.ID)
}

func skullOwner(te nbt.Compound) (string, error) {
	if te.Has("ExtraType") {
		return te.String("ExtraType")
	}
	if te.Has("Owner") {
		owner, err := te.Compound("Owner")
		if err != nil {
			return "", err
		}
		if owner.Has("Name") {
			return owner.String("Name")
		}
	}
	return "", nil
}

// TileEntity builds the tile entity for b at stack position (x, y, z). The
// compound stores x, z and y as its x, y and z tags. Voxels without a payload
// yield an error.
func TileEntity(b block.Block, x, y, z int) (nbt.Compound, error) {
	te := nbt.Compound{
		"id": tileEntityID(b.ID),
		"x":  int32(x),
		"y":  int32(z),
		"z":  int32(y),
	}
	switch m := b.Meta.(type) {
	case block.Container:
		te["Items"] = writeItems(m.Items)
	case block.BrewingMeta:
		te["Items"] = writeItems(m.Items[:])
		te["BrewTime"] = m.BrewTime
	case block.Note:
		te["note"] = int8(m.Pitch)
	case block.Sign:
		for i, k := range signKeys {
			te[k] = m.Lines[i]
		}
	case block.Command:
		te["Command"] = m.Command
		te["SuccessCount"] = m.SuccessCount
	case block.BeaconMeta:
		te["Primary"] = m.Primary
		te["Secondary"] = m.Secondary
		te["Levels"] = m.Levels
	case block.MobHead:
		te["SkullType"] = m.Type
		te["Rot"] = int8(m.Rot)
		if m.Owner != "" {
			te["ExtraType"] = m.Owner
		}
	default:
		return nil, fmt.Errorf("block %d carries no tile entity payload", b.ID)
	}
	return te, nil
}
