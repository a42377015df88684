package block

// Block IDs referenced by the model. The full id table is owned by the
// catalog package; only ids that change behaviour here are named.
const (
	Air             uint16 = 0
	Stone           uint16 = 1
	Dispenser       uint16 = 23
	NoteBlock       uint16 = 25
	Bed             uint16 = 26
	PoweredRail     uint16 = 27
	DetectorRail    uint16 = 28
	StickyPiston    uint16 = 29
	Piston          uint16 = 33
	PistonHead      uint16 = 34
	Glass           uint16 = 20
	Log             uint16 = 17
	DoubleStoneSlab uint16 = 43
	StoneSlab       uint16 = 44
	Torch           uint16 = 50
	MobSpawner      uint16 = 52
	OakStairs       uint16 = 53
	Chest           uint16 = 54
	RedstoneWire    uint16 = 55
	Furnace         uint16 = 61
	LitFurnace      uint16 = 62
	StandingSign    uint16 = 63
	OakDoor         uint16 = 64
	Ladder          uint16 = 65
	Rail            uint16 = 66
	CobbleStairs    uint16 = 67
	WallSign        uint16 = 68
	Lever           uint16 = 69
	StonePlate      uint16 = 70
	IronDoor        uint16 = 71
	WoodenPlate     uint16 = 72
	RedstoneTorch   uint16 = 75
	UnlitRSTorch    uint16 = 76
	StoneButton     uint16 = 77
	Ice             uint16 = 79
	Fence           uint16 = 85
	Pumpkin         uint16 = 86
	JackOLantern    uint16 = 91
	Repeater        uint16 = 93
	PoweredRepeater uint16 = 94
	StainedGlass    uint16 = 95
	Trapdoor        uint16 = 96
	Vine            uint16 = 106
	FenceGate       uint16 = 107
	BrickStairs     uint16 = 108
	StoneBrickStair uint16 = 109
	NetherFence     uint16 = 113
	NetherStairs    uint16 = 114
	BrewingStand    uint16 = 117
	EndPortalFrame  uint16 = 120
	DoubleWoodSlab  uint16 = 125
	WoodSlab        uint16 = 126
	Cocoa           uint16 = 127
	SandstoneStairs uint16 = 128
	EnderChest      uint16 = 130
	TripwireHook    uint16 = 131
	Tripwire        uint16 = 132
	SpruceStairs    uint16 = 134
	BirchStairs     uint16 = 135
	JungleStairs    uint16 = 136
	CommandBlock    uint16 = 137
	Beacon          uint16 = 138
	WoodenButton    uint16 = 143
	Skull           uint16 = 144
	Anvil           uint16 = 145
	TrappedChest    uint16 = 146
	GoldPlate       uint16 = 147
	IronPlate       uint16 = 148
	Comparator      uint16 = 149
	PoweredComp     uint16 = 150
	Hopper          uint16 = 154
	QuartzBlock     uint16 = 155
	QuartzStairs    uint16 = 156
	ActivatorRail   uint16 = 157
	Dropper         uint16 = 158
	Log2            uint16 = 162
	AcaciaStairs    uint16 = 163
	DarkOakStairs   uint16 = 164
	IronTrapdoor    uint16 = 167
	HayBale         uint16 = 170
	StandingBanner  uint16 = 176
	WallBanner      uint16 = 177
	RedSandStairs   uint16 = 180
	SpruceGate      uint16 = 183
	AcaciaGate      uint16 = 187
	SpruceFence     uint16 = 188
	AcaciaFence     uint16 = 192
	SpruceDoor      uint16 = 193
	DarkOakDoor     uint16 = 197
)
