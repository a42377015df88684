package block

import (
	"fmt"
	"strings"
)

// Item is one inventory stack. An ID of zero is an empty slot.
type Item struct {
	ID     uint16
	Damage int16
	Count  uint8

	// Name overrides the display name when non-empty.
	Name string

	// Color is the dye color of colorable items. It is ignored unless
	// HasColor is set and the item kind is colorable.
	Color    int32
	HasColor bool
}

// EmptyItem is a convenience value for an empty slot.
var EmptyItem = Item{}

// IsEmpty returns true if the slot contains no item.
func (i Item) IsEmpty() bool {
	return i.ID == 0
}

// Equal compares id, damage and stack size.
func (i Item) Equal(o Item) bool {
	return i.ID == o.ID && i.Damage == o.Damage && i.Count == o.Count
}

// Colorable reports whether the item kind carries a dye color.
func (i Item) Colorable() bool {
	return ColorableItem(i.ID)
}

// EffectiveColor returns the color and whether it applies to this item.
func (i Item) EffectiveColor() (int32, bool) {
	if !i.HasColor || !i.Colorable() {
		return 0, false
	}
	return i.Color, true
}

func (i Item) String() string {
	if i.IsEmpty() {
		return "empty"
	}
	return fmt.Sprintf("%dx%d:%d", i.Count, i.ID, i.Damage)
}

// Leather armor item ids.
const (
	LeatherHelmet     uint16 = 298
	LeatherChestplate uint16 = 299
	LeatherLeggings   uint16 = 300
	LeatherBoots      uint16 = 301
)

// ColorableItem reports whether items with this id can be dyed.
func ColorableItem(id uint16) bool {
	return id >= LeatherHelmet && id <= LeatherBoots
}

// namespacedItems maps the names newer tools write in item "id" tags back to
// numeric ids.
var namespacedItems = map[string]uint16{
	"air":                    0,
	"stone":                  1,
	"grass":                  2,
	"dirt":                   3,
	"cobblestone":            4,
	"planks":                 5,
	"sapling":                6,
	"sand":                   12,
	"gravel":                 13,
	"gold_ore":               14,
	"iron_ore":               15,
	"coal_ore":               16,
	"log":                    17,
	"glass":                  20,
	"dispenser":              23,
	"sandstone":              24,
	"noteblock":              25,
	"golden_rail":            27,
	"detector_rail":          28,
	"wool":                   35,
	"gold_block":             41,
	"iron_block":             42,
	"tnt":                    46,
	"torch":                  50,
	"chest":                  54,
	"diamond_block":          57,
	"crafting_table":         58,
	"furnace":                61,
	"ladder":                 65,
	"rail":                   66,
	"lever":                  69,
	"redstone_torch":         76,
	"stone_button":           77,
	"cactus":                 81,
	"pumpkin":                86,
	"netherrack":             87,
	"glowstone":              89,
	"trapdoor":               96,
	"tripwire_hook":          131,
	"emerald_block":          133,
	"command_block":          137,
	"beacon":                 138,
	"trapped_chest":          146,
	"hopper":                 154,
	"dropper":                158,
	"iron_shovel":            256,
	"iron_pickaxe":           257,
	"iron_axe":               258,
	"flint_and_steel":        259,
	"apple":                  260,
	"bow":                    261,
	"arrow":                  262,
	"coal":                   263,
	"diamond":                264,
	"iron_ingot":             265,
	"gold_ingot":             266,
	"iron_sword":             267,
	"diamond_sword":          276,
	"diamond_pickaxe":        278,
	"stick":                  280,
	"string":                 287,
	"gunpowder":              289,
	"wheat":                  296,
	"bread":                  297,
	"leather_helmet":         298,
	"leather_chestplate":     299,
	"leather_leggings":       300,
	"leather_boots":          301,
	"redstone":               331,
	"sign":                   323,
	"bucket":                 325,
	"water_bucket":           326,
	"lava_bucket":            327,
	"minecart":               328,
	"saddle":                 329,
	"snowball":               332,
	"leather":                334,
	"paper":                  339,
	"book":                   340,
	"slime_ball":             341,
	"egg":                    344,
	"compass":                345,
	"clock":                  347,
	"glowstone_dust":         348,
	"dye":                    351,
	"bone":                   352,
	"sugar":                  353,
	"repeater":               356,
	"ender_pearl":            368,
	"blaze_rod":              369,
	"potion":                 373,
	"glass_bottle":           374,
	"brewing_stand":          379,
	"experience_bottle":      384,
	"emerald":                388,
	"skull":                  397,
	"nether_star":            399,
	"comparator":             404,
	"quartz":                 406,
	"name_tag":               421,
	"command_block_minecart": 422,
}

// ItemIDByName resolves a namespaced item name such as "minecraft:chest" to
// its numeric id. The namespace is optional.
func ItemIDByName(name string) (uint16, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.TrimPrefix(name, "minecraft:")
	id, ok := namespacedItems[name]
	return id, ok
}
