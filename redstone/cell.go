package redstone

// Kind identifies a cell's variant. It is the closed tag set spec.md names,
// extended with reserved identifiers carried over from the original
// component enumeration (see SPEC_FULL.md §3A) for documentation purposes.
// No cell of a reserved Kind is ever constructed: the schematic codec has no
// block-id mapping for them, the same as the original it is ported from, so
// an id it doesn't recognise simply decodes to empty space.
type Kind uint8

const (
	KindAir Kind = iota
	KindSolidBlock
	KindGlassBlock
	KindRedstoneBlock
	KindRedstoneDust
	KindRedstoneTorch
	KindSwitch

	// Reserved tags named in the original Component::ID enumeration but
	// never implemented as cells or produced by the codec.
	KindHalfBlock
	KindSandBlock
	KindSlimeBlock
	KindWoodenButton
	KindStoneButton
	KindTripwireHook
	KindWoodenPressurePlate
	KindStonePressurePlate
	KindRepeater
	KindComparator
	KindHopper
	KindDropper
	KindDispenser
	KindRegularPiston
	KindStickyPiston
	KindDiamond
	KindBed
	KindCart
	KindRail
	KindPoweredRail
	KindDetectorRail
	KindTripwire
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindAir:
		return "air"
	case KindSolidBlock:
		return "solid_block"
	case KindGlassBlock:
		return "glass_block"
	case KindRedstoneBlock:
		return "redstone_block"
	case KindRedstoneDust:
		return "redstone_dust"
	case KindRedstoneTorch:
		return "redstone_torch"
	case KindSwitch:
		return "switch"
	default:
		return "reserved"
	}
}

// Cell is the interface every cell variant implements. Update reads the
// grid and its own coordinate and writes its new state, scheduling further
// work on the engine as needed. Clone returns an independent deep copy, and
// Equal implements the per-variant equality relation spec.md's data model
// table names.
type Cell interface {
	Kind() Kind
	Update(e *Engine, pos Pos)
	Clone() Cell
	Equal(other Cell) bool
}
