package block

// IsWire reports whether b is redstone wire.
func (b Block) IsWire() bool {
	return b.Kind() == KindWire
}

// IsTripwire reports whether b is tripwire.
func (b Block) IsTripwire() bool {
	return b.Kind() == KindTripwire
}

// IsPowerSource reports whether b is a device that redstone wire visibly
// connects to.
func (b Block) IsPowerSource() bool {
	switch b.ID {
	case RedstoneTorch, UnlitRSTorch, Lever, StonePlate, WoodenPlate, GoldPlate, IronPlate,
		StoneButton, WoodenButton, DetectorRail, Repeater, PoweredRepeater, FenceGate:
		return true
	}
	return b.ID >= SpruceGate && b.ID <= AcaciaGate
}

// ConnectsToWire reports whether redstone wire next to b connects to it.
func (b Block) ConnectsToWire() bool {
	return b.IsWire() || b.IsPowerSource()
}

// ConnectsToTripwire reports whether tripwire next to b connects to it.
func (b Block) ConnectsToTripwire() bool {
	return b.IsTripwire() || b.ID == TripwireHook
}

// BlocksWire reports whether b interrupts wire climbing between layers.
func (b Block) BlocksWire() bool {
	switch b.ID {
	case Air, Glass, StainedGlass, MobSpawner, Ice, Bed, Torch, RedstoneTorch, UnlitRSTorch,
		StandingSign, WallSign, Ladder, StoneSlab, WoodSlab, Fence, NetherFence:
		return false
	}
	if b.ID >= SpruceFence && b.ID <= AcaciaFence {
		return false
	}
	return !isStairs(b.ID)
}

func isStairs(id uint16) bool {
	switch id {
	case OakStairs, CobbleStairs, BrickStairs, StoneBrickStair, NetherStairs, SandstoneStairs,
		SpruceStairs, BirchStairs, JungleStairs, QuartzStairs, AcaciaStairs, DarkOakStairs,
		RedSandStairs:
		return true
	}
	return false
}

// Connections returns the inferred connections of a wire or tripwire voxel.
func (b Block) Connections() Directions {
	switch m := b.Meta.(type) {
	case Wire:
		return m.Connections
	case TripwireMeta:
		return m.Connections
	}
	return NoDirections
}

// WithConnections returns b with its connections replaced. Voxels that are
// neither wire nor tripwire are returned unchanged.
func (b Block) WithConnections(d Directions) Block {
	switch b.Meta.(type) {
	case Wire:
		b.Meta = Wire{Connections: d}
	case TripwireMeta:
		b.Meta = TripwireMeta{Connections: d}
	}
	return b
}
