package redstone

// SolidBlock is an opaque block. Redstone dust on top of or beside it, a
// lit torch directly below it, and switches mounted against it drive its
// power state; dust and torches in turn read that state off of it.
type SolidBlock struct {
	// PowerLevel is the weak power this block carries, 0-15, from dust
	// resting on top of or beside it.
	PowerLevel uint8
	// StronglyPowered is set by a lit torch mounted below this block or an
	// engaged switch mounted against one of its faces. A strongly powered
	// block always reports an EffectiveLevel of 15.
	StronglyPowered bool
}

// Kind implements Cell.
func (*SolidBlock) Kind() Kind { return KindSolidBlock }

// EffectiveLevel is the power level this block radiates to its neighbours:
// 15 if it is strongly powered, otherwise its weak PowerLevel.
func (b *SolidBlock) EffectiveLevel() uint8 {
	if b.StronglyPowered {
		return 15
	}
	return b.PowerLevel
}

// Update implements Cell. It recomputes PowerLevel and StronglyPowered from
// the six neighbouring cells and, if either changed, schedules the
// surrounding cells for re-evaluation. A dust cell directly beneath a solid
// block is deliberately ignored: only dust above or beside, a torch below,
// or a switch mounted against a face can power it.
func (b *SolidBlock) Update(e *Engine, pos Pos) {
	old := *b
	b.PowerLevel = 0
	b.StronglyPowered = false

	m := e.Map()
	for _, dir := range neighbourOffsets {
		towards := dir.Opposite()
		switch n := m.At(pos.Side(dir)).(type) {
		case *RedstoneDust:
			switch towards {
			case Down:
				b.onDustAbove(n)
			case Up:
				// dust laid directly beneath a solid block never powers it
			default:
				b.onDustBeside(n, towards)
			}
		case *RedstoneTorch:
			if towards == Up && n.IsOn {
				b.StronglyPowered = true
			}
		case *Switch:
			if n.Direction == towards && n.IsOn {
				b.StronglyPowered = true
			}
		}
	}

	if *b != old {
		e.UpdateSurrounding(pos)
	} else {
		*b = old
	}
}

func (b *SolidBlock) onDustAbove(d *RedstoneDust) {
	if d.Level > b.PowerLevel {
		b.PowerLevel = d.Level
	}
}

func (b *SolidBlock) onDustBeside(d *RedstoneDust, towards Direction) {
	if d.HasDirection(towards) && d.Level > b.PowerLevel {
		b.PowerLevel = d.Level
	}
}

// Clone implements Cell.
func (b *SolidBlock) Clone() Cell {
	c := *b
	return &c
}

// Equal implements Cell.
func (b *SolidBlock) Equal(other Cell) bool {
	o, ok := other.(*SolidBlock)
	return ok && *o == *b
}
