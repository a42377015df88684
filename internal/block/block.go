// Package block models a single schematic voxel and the inventory items that
// container voxels hold.
package block

import (
	"fmt"
	"slices"
)

// Kind identifies the structurally distinct voxel variants.
type Kind uint8

const (
	KindSimple Kind = iota
	KindContainer
	KindNote
	KindSign
	KindBrewingStand
	KindCommand
	KindBeacon
	KindMobHead
	KindWire
	KindTripwire
)

var kindNames = [...]string{
	KindSimple:       "simple",
	KindContainer:    "container",
	KindNote:         "note",
	KindSign:         "sign",
	KindBrewingStand: "brewing_stand",
	KindCommand:      "command",
	KindBeacon:       "beacon",
	KindMobHead:      "mob_head",
	KindWire:         "wire",
	KindTripwire:     "tripwire",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", k)
}

// HasTileEntity reports whether voxels of this kind are persisted with a
// tile entity.
func (k Kind) HasTileEntity() bool {
	switch k {
	case KindContainer, KindNote, KindSign, KindBrewingStand, KindCommand, KindBeacon, KindMobHead:
		return true
	}
	return false
}

// Meta is the kind-specific payload of a voxel. The set of implementations
// is closed: Container, Note, Sign, BrewingMeta, Command, BeaconMeta,
// MobHead, Wire and TripwireMeta.
type Meta interface {
	Kind() Kind
	clone() Meta
}

// Container holds the inventory of a chest, trapped chest, dispenser,
// dropper or hopper.
type Container struct {
	Items []Item
}

// Note holds a note block pitch (0..24).
type Note struct {
	Pitch uint8
}

// Sign holds the four text lines of a standing or wall sign.
type Sign struct {
	Lines [4]string
}

// BrewingMeta holds three bottle slots, the ingredient slot and the
// remaining brew time.
type BrewingMeta struct {
	Items    [BrewingStandSlots]Item
	BrewTime int32
}

// Command holds a command block's command text and last signal strength.
type Command struct {
	Command      string
	SuccessCount int32
}

// BeaconMeta holds the selected effects and pyramid level of a beacon.
type BeaconMeta struct {
	Primary   int32
	Secondary int32
	Levels    int32
}

// MobHead holds the skull type, the floor rotation (0..15) and the owner
// name for player heads.
type MobHead struct {
	Type  int8
	Rot   uint8
	Owner string
}

// Wire holds the inferred connections of a redstone wire voxel.
type Wire struct {
	Connections Directions
}

// TripwireMeta holds the inferred connections of a tripwire voxel.
type TripwireMeta struct {
	Connections Directions
}

func (Container) Kind() Kind    { return KindContainer }
func (Note) Kind() Kind         { return KindNote }
func (Sign) Kind() Kind         { return KindSign }
func (BrewingMeta) Kind() Kind  { return KindBrewingStand }
func (Command) Kind() Kind      { return KindCommand }
func (BeaconMeta) Kind() Kind   { return KindBeacon }
func (MobHead) Kind() Kind      { return KindMobHead }
func (Wire) Kind() Kind         { return KindWire }
func (TripwireMeta) Kind() Kind { return KindTripwire }

func (m Container) clone() Meta {
	m.Items = slices.Clone(m.Items)
	return m
}
func (m Note) clone() Meta         { return m }
func (m Sign) clone() Meta         { return m }
func (m BrewingMeta) clone() Meta  { return m }
func (m Command) clone() Meta      { return m }
func (m BeaconMeta) clone() Meta   { return m }
func (m MobHead) clone() Meta      { return m }
func (m Wire) clone() Meta         { return m }
func (m TripwireMeta) clone() Meta { return m }

// Slot counts of the container family.
const (
	ChestSlots        = 27
	DispenserSlots    = 9
	HopperSlots       = 5
	BrewingStandSlots = 4
)

// Block is one voxel: a block id, its data bits and an optional payload.
// The zero value is air.
type Block struct {
	ID   uint16
	Data uint8
	Meta Meta
}

// New returns the voxel for id and data with the default payload for the
// id's kind: empty inventories, blank signs, zero pitch and so on.
func New(id uint16, data uint8) Block {
	b := Block{ID: id, Data: data}
	switch KindOf(id) {
	case KindContainer:
		b.Meta = Container{Items: make([]Item, ContainerSize(id))}
	case KindNote:
		b.Meta = Note{}
	case KindSign:
		b.Meta = Sign{}
	case KindBrewingStand:
		b.Meta = BrewingMeta{}
	case KindCommand:
		b.Meta = Command{}
	case KindBeacon:
		b.Meta = BeaconMeta{}
	case KindMobHead:
		b.Meta = MobHead{}
	case KindWire:
		b.Meta = Wire{}
	case KindTripwire:
		b.Meta = TripwireMeta{}
	}
	return b
}

// KindOf returns the variant that voxels with the given id carry.
func KindOf(id uint16) Kind {
	switch id {
	case Chest, TrappedChest, Dispenser, Dropper, Hopper:
		return KindContainer
	case NoteBlock:
		return KindNote
	case StandingSign, WallSign:
		return KindSign
	case BrewingStand:
		return KindBrewingStand
	case CommandBlock:
		return KindCommand
	case Beacon:
		return KindBeacon
	case Skull:
		return KindMobHead
	case RedstoneWire:
		return KindWire
	case Tripwire:
		return KindTripwire
	}
	return KindSimple
}

// ContainerSize returns the number of inventory slots of a container id, or
// zero if id is not a container.
func ContainerSize(id uint16) int {
	switch id {
	case Chest, TrappedChest:
		return ChestSlots
	case Dispenser, Dropper:
		return DispenserSlots
	case Hopper:
		return HopperSlots
	}
	return 0
}

// Kind returns the variant of b.
func (b Block) Kind() Kind {
	if b.Meta == nil {
		return KindSimple
	}
	return b.Meta.Kind()
}

// IsAir reports whether b is air.
func (b Block) IsAir() bool {
	return b.ID == Air
}

// Validate checks that the payload matches the id.
func (b Block) Validate() error {
	want := KindOf(b.ID)
	if b.Kind() != want {
		return fmt.Errorf("block %d:%d carries %s payload, want %s", b.ID, b.Data, b.Kind(), want)
	}
	if c, ok := b.Meta.(Container); ok && len(c.Items) != ContainerSize(b.ID) {
		return fmt.Errorf("block %d:%d has %d inventory slots, want %d", b.ID, b.Data, len(c.Items), ContainerSize(b.ID))
	}
	return nil
}

// Clone returns a copy of b that shares no memory with it.
func (b Block) Clone() Block {
	if b.Meta != nil {
		b.Meta = b.Meta.clone()
	}
	return b
}

// Equal reports whether a and b have the same id, data and payload.
func (b Block) Equal(o Block) bool {
	if b.ID != o.ID || b.Data != o.Data || b.Kind() != o.Kind() {
		return false
	}
	switch m := b.Meta.(type) {
	case nil:
		return true
	case Container:
		return slices.EqualFunc(m.Items, o.Meta.(Container).Items, Item.Equal)
	case BrewingMeta:
		n := o.Meta.(BrewingMeta)
		return m.BrewTime == n.BrewTime && slices.EqualFunc(m.Items[:], n.Items[:], Item.Equal)
	default:
		return b.Meta == o.Meta
	}
}

func (b Block) String() string {
	return fmt.Sprintf("%d:%d", b.ID, b.Data)
}
