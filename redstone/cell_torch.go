package redstone

// RedstoneTorch is a power source mounted against one face of another
// cell, named by Direction (the direction from the torch towards the
// block it's attached to). It inverts the power level of that block: on
// when unpowered, off when powered.
//
// A torch's off transition is delayed: empirically it takes one game tick
// to turn on but three to turn off. This is modelled with a 3-slot history
// of its pending on/off state; an off transition only commits once the
// state from two ticks ago was also off, otherwise the torch reverts to on
// for this tick and retries next tick.
type RedstoneTorch struct {
	IsOn      bool
	Direction Direction

	prev         [3]bool
	lastSeenTick int
}

// NewRedstoneTorch constructs a torch attached in the given direction,
// initially on or off.
func NewRedstoneTorch(on bool, dir Direction) *RedstoneTorch {
	return &RedstoneTorch{
		IsOn:         on,
		Direction:    dir,
		prev:         [3]bool{on, on, on},
		lastSeenTick: -1,
	}
}

// Kind implements Cell.
func (*RedstoneTorch) Kind() Kind { return KindRedstoneTorch }

// Update implements Cell. It reads the power level of the block the torch
// is mounted to and inverts it, subject to the off-delay described above.
func (t *RedstoneTorch) Update(e *Engine, pos Pos) {
	prior := t.IsOn
	t.IsOn = true

	switch n := e.Map().At(pos.Side(t.Direction)).(type) {
	case RedstoneBlock:
		t.IsOn = false
	case *SolidBlock:
		if n.EffectiveLevel() > 0 {
			t.IsOn = false
		}
	}

	committed := prior
	if prior != t.IsOn {
		committed = t.IsOn
		switch {
		case t.IsOn:
			e.UpdateSurrounding(pos)
		case !t.prev[2]:
			e.UpdateSurrounding(pos)
		default:
			t.IsOn = true
			e.MarkNextUpdate(pos)
		}
	}

	if e.TickNumber() != t.lastSeenTick {
		t.prev[2] = t.prev[1]
		t.prev[1] = t.prev[0]
		t.lastSeenTick = e.TickNumber()
	}
	t.prev[0] = committed
}

// Clone implements Cell.
func (t *RedstoneTorch) Clone() Cell {
	c := *t
	return &c
}

// Equal implements Cell. Only the observable state (on/off and mount
// direction) participates; the delay history does not.
func (t *RedstoneTorch) Equal(other Cell) bool {
	o, ok := other.(*RedstoneTorch)
	return ok && o.IsOn == t.IsOn && o.Direction == t.Direction
}
