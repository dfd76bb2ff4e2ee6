package redstone

// RedstoneDust is a wire: it carries a power Level of 0-15 and a 4-bit mask
// of which cardinal Direction it visually/electrically connects to. It also
// conducts diagonally across a one-block step up or down when nothing
// solid blocks the corner.
type RedstoneDust struct {
	// Level is this dust's power level, 0 (unpowered) to 15.
	Level uint8
	// Direction is a bitmask of the cardinal directions this dust connects
	// to, queryable through HasDirection.
	Direction uint8

	// diagonals tracks which of the 8 diagonal neighbours (4 up, 4 down,
	// each over one of the 4 horizontal directions) are currently eligible
	// to be checked for a diagonal dust connection.
	diagonals [8]bool
}

// diagSlot describes one of the 8 diagonal neighbour positions a dust cell
// checks: one horizontal step plus one vertical step.
type diagSlot struct {
	up    bool
	horiz Direction
}

// diagSlots enumerates the 8 diagonal neighbours in a fixed order: the 4
// upward diagonals (south, east, north, west), then the 4 downward ones in
// the same horizontal order.
var diagSlots = [8]diagSlot{
	{up: true, horiz: South},
	{up: true, horiz: East},
	{up: true, horiz: North},
	{up: true, horiz: West},
	{up: false, horiz: South},
	{up: false, horiz: East},
	{up: false, horiz: North},
	{up: false, horiz: West},
}

func horizIndex(d Direction) int {
	switch d {
	case South:
		return 0
	case East:
		return 1
	case North:
		return 2
	case West:
		return 3
	}
	return 0
}

func downDiagIndex(d Direction) int {
	return 4 + horizIndex(d)
}

func (s diagSlot) pos(base Pos) Pos {
	p := base.Side(s.horiz)
	if s.up {
		p.Y++
	} else {
		p.Y--
	}
	return p
}

// bitFor is the cardinal-direction bit RedstoneDust's Direction mask uses:
// north 0x8, east 0x4, south 0x2, west 0x1.
func bitFor(d Direction) uint8 {
	switch d {
	case North:
		return 0x8
	case East:
		return 0x4
	case South:
		return 0x2
	case West:
		return 0x1
	}
	return 0
}

// HasDirection reports whether this dust connects in the given cardinal
// direction.
func (d *RedstoneDust) HasDirection(dir Direction) bool {
	return d.Direction&bitFor(dir) != 0
}

// attachDirection records a connection towards the neighbour that lies in
// direction towards (the direction from that neighbour back to this dust):
// the bit set is for the opposite, physical side the neighbour occupies.
func (d *RedstoneDust) attachDirection(towards Direction) {
	d.Direction |= bitFor(towards.Opposite())
}

// raiseFrom folds in a neighbour's power level attenuated by one hop,
// never going below zero and never lowering the level already found.
func (d *RedstoneDust) raiseFrom(neighbourLevel uint8) {
	if neighbourLevel == 0 {
		return
	}
	if c := neighbourLevel - 1; c > d.Level {
		d.Level = c
	}
}

// Kind implements Cell.
func (*RedstoneDust) Kind() Kind { return KindRedstoneDust }

// Update implements Cell. It recomputes Level and Direction from the six
// axis-aligned neighbours, then from any diagonal dust not blocked by an
// adjacent solid block, and schedules every cell it connected to for
// re-evaluation if either value changed.
func (d *RedstoneDust) Update(e *Engine, pos Pos) {
	old := *d
	d.Level = 0
	d.Direction = 0
	for i := range d.diagonals {
		d.diagonals[i] = true
	}

	m := e.Map()
	for _, dir := range neighbourOffsets {
		towards := dir.Opposite()
		switch n := m.At(pos.Side(dir)).(type) {
		case RedstoneBlock:
			d.attachDirection(towards)
			d.Level = 15
		case *RedstoneDust:
			d.attachDirection(towards)
			d.raiseFrom(n.Level)
		case *RedstoneTorch:
			d.attachDirection(towards)
			if n.IsOn {
				d.Level = 15
			}
		case *Switch:
			d.attachDirection(towards)
			if n.IsOn {
				d.Level = 15
			}
		case *SolidBlock:
			switch towards {
			case Down:
				for i := 0; i < 4; i++ {
					d.diagonals[i] = false
				}
				if n.StronglyPowered {
					d.Level = 15
				}
			case Up:
				if n.StronglyPowered {
					d.Level = 15
				}
			default:
				d.diagonals[downDiagIndex(dir)] = false
				if n.StronglyPowered {
					d.Level = 15
				}
			}
		}
	}

	for i, slot := range diagSlots {
		if !d.diagonals[i] {
			continue
		}
		nd, ok := m.At(slot.pos(pos)).(*RedstoneDust)
		if !ok {
			d.diagonals[i] = false
			continue
		}
		d.Direction |= 1 << uint(i%4)
		d.raiseFrom(nd.Level)
	}

	if d.Level != old.Level || d.Direction != old.Direction {
		e.UpdateSurrounding(pos)
		for i, slot := range diagSlots {
			if d.diagonals[i] {
				e.MarkUpdate(slot.pos(pos))
			}
		}
	} else {
		*d = old
	}
}

// Clone implements Cell.
func (d *RedstoneDust) Clone() Cell {
	c := *d
	return &c
}

// Equal implements Cell.
func (d *RedstoneDust) Equal(other Cell) bool {
	o, ok := other.(*RedstoneDust)
	return ok && o.Level == d.Level && o.Direction == d.Direction
}
