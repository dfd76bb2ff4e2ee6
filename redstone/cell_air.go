package redstone

// Air is empty space. It never schedules work and carries no state beyond
// its Kind.
type Air struct{}

// Kind implements Cell.
func (Air) Kind() Kind { return KindAir }

// Update implements Cell. Air has no dynamics.
func (Air) Update(*Engine, Pos) {}

// Clone implements Cell.
func (a Air) Clone() Cell { return a }

// Equal implements Cell.
func (Air) Equal(other Cell) bool {
	_, ok := other.(Air)
	return ok
}
