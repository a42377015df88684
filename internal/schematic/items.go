package schematic

import (
	"fmt"

	"github.com/go-theft-craft/schematic/internal/block"
	"github.com/go-theft-craft/schematic/pkg/nbt"
)

// readItems fills slots from the tile entity's "Items" list. Slots the list
// does not mention stay empty; a slot index outside slots is an error.
func readItems(te nbt.Compound, slots []block.Item) error {
	for i := range slots {
		slots[i] = block.EmptyItem
	}
	if !te.Has("Items") {
		return nil
	}
	entries, err := te.Compounds("Items")
	if err != nil {
		return err
	}
	for _, e := range entries {
		slot, it, err := decodeItem(e)
		if err != nil {
			return err
		}
		if slot < 0 || slot >= len(slots) {
			return fmt.Errorf("item slot %d outside %d-slot inventory", slot, len(slots))
		}
		slots[slot] = it
	}
	return nil
}

func decodeItem(c nbt.Compound) (int, block.Item, error) {
	var it block.Item

	id, err := itemID(c)
	if err != nil {
		return 0, it, err
	}
	it.ID = id

	if c.Has("Damage") {
		if it.Damage, err = c.Short("Damage"); err != nil {
			return 0, it, err
		}
	}
	count, err := c.Byte("Count")
	if err != nil {
		return 0, it, err
	}
	it.Count = uint8(count)

	slot, err := c.Byte("Slot")
	if err != nil {
		return 0, it, err
	}

	if err := readDisplay(c, &it); err != nil {
		return 0, it, err
	}
	return int(slot), it, nil
}

// itemID accepts the numeric short id of older files and the namespaced
// string id of newer ones.
func itemID(c nbt.Compound) (uint16, error) {
	switch v := c["id"].(type) {
	case int16:
		return uint16(v), nil
	case int32:
		return uint16(v), nil
	case string:
		id, ok := block.ItemIDByName(v)
		if !ok {
			return 0, fmt.Errorf("unknown item name %q", v)
		}
		return id, nil
	case nil:
		return 0, &nbt.TagError{Name: "id", Want: nbt.TagShort}
	default:
		return 0, &nbt.TagError{Name: "id", Want: nbt.TagShort, Got: nbt.TypeOf(v)}
	}
}

func readDisplay(c nbt.Compound, it *block.Item) error {
	if !c.Has("tag") {
		return nil
	}
	tag, err := c.Compound("tag")
	if err != nil {
		return err
	}
	if !tag.Has("display") {
		return nil
	}
	display, err := tag.Compound("display")
	if err != nil {
		return err
	}
	if display.Has("Name") {
		if it.Name, err = display.String("Name"); err != nil {
			return err
		}
	}
	if it.Colorable() && display.Has("color") {
		if it.Color, err = display.Int("color"); err != nil {
			return err
		}
		it.HasColor = true
	}
	return nil
}

// writeItems encodes the non-empty slots.
func writeItems(slots []block.Item) nbt.List {
	l := nbt.List{Type: nbt.TagCompound}
	for i, it := range slots {
		if it.IsEmpty() {
			continue
		}
		e := nbt.Compound{
			"id":     int16(it.ID),
			"Damage": it.Damage,
			"Count":  int8(it.Count),
			"Slot":   int8(i),
		}
		display := nbt.Compound{}
		if it.Name != "" {
			display["Name"] = it.Name
		}
		if color, ok := it.EffectiveColor(); ok {
			display["color"] = color
		}
		if len(display) > 0 {
			e["tag"] = nbt.Compound{"display": display}
		}
		l.Items = append(l.Items, e)
	}
	return l
}
