package block

// rotator turns data bits a quarter clockwise.
type rotator func(data uint8) uint8

// cycle rotates the bits under mask through order, which lists the encoded
// values for north, east, south and west. Values not in order are kept.
func cycle(mask uint8, order [4]uint8) rotator {
	return func(data uint8) uint8 {
		v := data & mask
		for i, o := range order {
			if o == v {
				return data&^mask | order[(i+1)%4]
			}
		}
		return data
	}
}

// swap exchanges two encoded values under mask.
func swap(mask, a, b uint8) rotator {
	return func(data uint8) uint8 {
		switch data & mask {
		case a:
			return data&^mask | b
		case b:
			return data&^mask | a
		}
		return data
	}
}

func chain(rs ...rotator) rotator {
	return func(data uint8) uint8 {
		for _, r := range rs {
			data = r(data)
		}
		return data
	}
}

var (
	// stairs: 0 east, 1 west, 2 south, 3 north; bit 4 is upside-down.
	stairs = cycle(0x3, [4]uint8{3, 0, 2, 1})
	// ladders, wall signs, chests, furnaces and the piston/dispenser family.
	wallFacing = cycle(0x7, [4]uint8{2, 5, 3, 4})
	// torches and buttons: 1 east, 2 west, 3 south, 4 north.
	attachFacing = cycle(0x7, [4]uint8{4, 1, 3, 2})
	// pumpkins, beds, fence gates, tripwire hooks: 0 south, 1 west, 2 north, 3 east.
	southFirst = cycle(0x3, [4]uint8{2, 3, 0, 1})
	// repeaters, comparators, cocoa: 0 north, 1 east, 2 south, 3 west.
	northFirst = cycle(0x3, [4]uint8{0, 1, 2, 3})
	// trapdoors: 0 south, 1 north, 2 east, 3 west.
	trapdoor = cycle(0x3, [4]uint8{1, 2, 0, 3})
	// standing signs and banners use sixteen steps starting at south.
	sixteenths rotator = func(data uint8) uint8 { return data&^0xF | (data+4)&0xF }
	// vines: bit set of 1 south, 2 west, 4 north, 8 east.
	vine rotator = func(data uint8) uint8 {
		v := data & 0xF
		return data&^0xF | (v<<1|v>>3)&0xF
	}
	// lever: wall facings like torches, 5/6 floor and 0/7 ceiling alternate axis.
	lever = chain(attachFacing, swap(0x7, 5, 6), swap(0x7, 0, 7))
	// straight rails: 0 north-south, 1 east-west, 2..5 ascending east, west, north, south.
	straightRail = chain(swap(0x7, 0, 1), cycle(0x7, [4]uint8{4, 2, 5, 3}))
	// rails additionally curve: 6 south-east, 7 south-west, 8 north-west, 9 north-east.
	rail = chain(swap(0xF, 0, 1), cycle(0xF, [4]uint8{4, 2, 5, 3}), cycle(0xF, [4]uint8{9, 6, 7, 8}))
	// logs and hay: bits 0x4 east-west, 0x8 north-south.
	axis      = swap(0xC, 0x4, 0x8)
	quartzBar = swap(0x7, 3, 4)
)

// doors rotate the lower half only: 0 east, 1 south, 2 west, 3 north.
func door(data uint8) uint8 {
	if data&0x8 != 0 {
		return data
	}
	return cycle(0x3, [4]uint8{3, 0, 1, 2})(data)
}

var rotators = map[uint16]rotator{}

func register(r rotator, ids ...uint16) {
	for _, id := range ids {
		rotators[id] = r
	}
}

func init() {
	register(stairs, OakStairs, CobbleStairs, BrickStairs, StoneBrickStair, NetherStairs,
		SandstoneStairs, SpruceStairs, BirchStairs, JungleStairs, QuartzStairs,
		AcaciaStairs, DarkOakStairs, RedSandStairs)
	register(wallFacing, Ladder, WallSign, Chest, TrappedChest, EnderChest, Furnace, LitFurnace,
		Dispenser, Dropper, Hopper, Piston, StickyPiston, PistonHead, WallBanner, Skull)
	register(attachFacing, Torch, RedstoneTorch, UnlitRSTorch, StoneButton, WoodenButton)
	register(southFirst, Pumpkin, JackOLantern, Bed, FenceGate, TripwireHook, EndPortalFrame, Anvil)
	for id := SpruceGate; id <= AcaciaGate; id++ {
		register(southFirst, id)
	}
	register(northFirst, Repeater, PoweredRepeater, Comparator, PoweredComp, Cocoa)
	register(trapdoor, Trapdoor, IronTrapdoor)
	register(sixteenths, StandingSign, StandingBanner)
	register(vine, Vine)
	register(lever, Lever)
	register(straightRail, PoweredRail, DetectorRail, ActivatorRail)
	register(rail, Rail)
	register(axis, Log, Log2, HayBale)
	register(quartzBar, QuartzBlock)
	register(door, OakDoor, IronDoor)
	for id := SpruceDoor; id <= DarkOakDoor; id++ {
		register(door, id)
	}
}

// Rotate returns b turned a quarter around the vertical axis. Orientation
// encoded in the data bits or the payload turns with it.
func (b Block) Rotate(clockwise bool) Block {
	turns := 1
	if !clockwise {
		turns = 3
	}
	b = b.Clone()
	r, ok := rotators[b.ID]
	for i := 0; i < turns; i++ {
		if ok {
			b.Data = r(b.Data)
		}
		b.Meta = rotateMeta(b.Meta)
	}
	return b
}

func rotateMeta(m Meta) Meta {
	switch v := m.(type) {
	case MobHead:
		v.Rot = (v.Rot + 4) & 0xF
		return v
	case Wire:
		v.Connections = v.Connections.Rotate(true)
		return v
	case TripwireMeta:
		v.Connections = v.Connections.Rotate(true)
		return v
	}
	return m
}
