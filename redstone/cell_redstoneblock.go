package redstone

// RedstoneBlock is a permanent, unconditional power source: adjacent
// RedstoneDust reads it as level 15 at all times, and a RedstoneTorch
// mounted against it is off. SolidBlock neighbours do not read it. It never
// schedules work; it has nothing to react to.
type RedstoneBlock struct{}

// Kind implements Cell.
func (RedstoneBlock) Kind() Kind { return KindRedstoneBlock }

// Update implements Cell. RedstoneBlock has no dynamics.
func (RedstoneBlock) Update(*Engine, Pos) {}

// Clone implements Cell.
func (b RedstoneBlock) Clone() Cell { return b }

// Equal implements Cell.
func (RedstoneBlock) Equal(other Cell) bool {
	_, ok := other.(RedstoneBlock)
	return ok
}
