package redstone

// Switch is a binary power source mounted against one face of another
// cell, named by Direction (the direction from the switch towards the
// block it's attached to). Unlike the other cells, its state never
// changes from within Update: it only flips when a caller invokes Flip.
type Switch struct {
	IsOn      bool
	Direction Direction
}

// Kind implements Cell.
func (*Switch) Kind() Kind { return KindSwitch }

// Update implements Cell. A switch has no internal dynamics; its
// neighbours read IsOn and Direction directly.
func (*Switch) Update(*Engine, Pos) {}

// Flip toggles the switch's state and schedules its neighbours for
// re-evaluation. Callers pass the engine and the switch's own coordinate
// explicitly rather than the switch holding a back-reference to either,
// so a Switch value never outlives or dangles against the engine that
// last ran it.
func (s *Switch) Flip(e *Engine, pos Pos) {
	s.IsOn = !s.IsOn
	e.UpdateSurrounding(pos)
}

// Clone implements Cell.
func (s *Switch) Clone() Cell {
	c := *s
	return &c
}

// Equal implements Cell.
func (s *Switch) Equal(other Cell) bool {
	o, ok := other.(*Switch)
	return ok && o.IsOn == s.IsOn && o.Direction == s.Direction
}
