package redstone

import "testing"

// TestDustLineAttenuatesFromSource lays a straight wire of dust next to a
// permanent source and checks that level drops by one per hop, floored at
// zero past 15 hops.
func TestDustLineAttenuatesFromSource(t *testing.T) {
	const dustCells = 19
	g := NewGrid(Size{X: dustCells + 1, Y: 1, Z: 1})
	g.Set(Pos{X: 0}, RedstoneBlock{})
	for x := 1; x <= dustCells; x++ {
		g.Set(Pos{X: x}, &RedstoneDust{})
	}

	e := NewEngine(Config{})
	e.SetMap(g)

	if !e.IsStill() {
		t.Fatalf("dust line should settle during SetMap's implicit run")
	}
	for x := 1; x <= dustCells; x++ {
		want := 16 - x
		if want < 0 {
			want = 0
		}
		got := e.Map().At(Pos{X: x}).(*RedstoneDust).Level
		if int(got) != want {
			t.Fatalf("dust at x=%d: level = %d, want %d", x, got, want)
		}
	}
}

// TestSolidBlockPowersFromDustAbove checks the unconditional rule: a solid
// block always takes the level of dust sitting directly on top of it,
// regardless of that dust's connection bitmask.
func TestSolidBlockPowersFromDustAbove(t *testing.T) {
	g := NewGrid(Size{X: 2, Y: 2, Z: 1})
	g.Set(Pos{X: 0, Y: 0}, &SolidBlock{})
	g.Set(Pos{X: 0, Y: 1}, &RedstoneDust{})
	g.Set(Pos{X: 1, Y: 1}, RedstoneBlock{})

	e := NewEngine(Config{})
	e.SetMap(g)

	if !e.IsStill() {
		t.Fatalf("grid should settle during SetMap's implicit run")
	}
	dust := e.Map().At(Pos{X: 0, Y: 1}).(*RedstoneDust)
	if dust.Level != 15 {
		t.Fatalf("dust beside the redstone block should read level 15, got %d", dust.Level)
	}
	solid := e.Map().At(Pos{X: 0, Y: 0}).(*SolidBlock)
	if solid.PowerLevel != 15 {
		t.Fatalf("solid block under a level-15 dust should read power_level 15, got %d", solid.PowerLevel)
	}
}

// TestSolidBlockStronglyPoweredByTorchBelow checks that a torch strongly
// powers only the block directly above it, not the block it is mounted
// against.
func TestSolidBlockStronglyPoweredByTorchBelow(t *testing.T) {
	g := NewGrid(Size{X: 1, Y: 3, Z: 1})
	g.Set(Pos{Y: 0}, &SolidBlock{})
	g.Set(Pos{Y: 1}, NewRedstoneTorch(false, Down))
	g.Set(Pos{Y: 2}, &SolidBlock{})

	e := NewEngine(Config{})
	e.SetMap(g)

	if !e.IsStill() {
		t.Fatalf("grid should settle during SetMap's implicit run")
	}
	floor := e.Map().At(Pos{Y: 0}).(*SolidBlock)
	if floor.StronglyPowered {
		t.Fatalf("the block a torch stands on must not be strongly powered by it")
	}
	roof := e.Map().At(Pos{Y: 2}).(*SolidBlock)
	if !roof.StronglyPowered {
		t.Fatalf("the block directly above a lit torch must be strongly powered")
	}
}

// TestRedstoneTorchMountedAgainstRedstoneBlockStaysOff checks that a torch
// attached to a permanent source is unconditionally off, per spec.md §4.3's
// torch rule table.
func TestRedstoneTorchMountedAgainstRedstoneBlockStaysOff(t *testing.T) {
	g := NewGrid(Size{X: 2, Y: 1, Z: 1})
	g.Set(Pos{X: 0}, RedstoneBlock{})
	g.Set(Pos{X: 1}, NewRedstoneTorch(false, West))

	e := NewEngine(Config{})
	e.SetMap(g)

	if !e.IsStill() {
		t.Fatalf("grid should settle during SetMap's implicit run")
	}
	torch := e.Map().At(Pos{X: 1}).(*RedstoneTorch)
	if torch.IsOn {
		t.Fatalf("a torch mounted against a redstone block must be off, got on")
	}
}

// TestTorchDelayedShutoff exercises the torch's three-tick-history rule: a
// torch that should turn off reverts to on for the first few ticks after
// its input is powered, and only commits off once its two-tick-old state
// was also pending off.
func TestTorchDelayedShutoff(t *testing.T) {
	g := NewGrid(Size{X: 3, Y: 1, Z: 1})
	g.Set(Pos{X: 0}, &Switch{Direction: East})
	g.Set(Pos{X: 1}, &SolidBlock{})
	g.Set(Pos{X: 2}, NewRedstoneTorch(true, West))

	e := NewEngine(Config{})
	e.SetMap(g)
	if !e.IsStill() {
		t.Fatalf("grid should settle during SetMap's implicit run")
	}

	sw := e.Map().At(Pos{X: 0}).(*Switch)
	torch := e.Map().At(Pos{X: 2}).(*RedstoneTorch)
	sw.Flip(e, Pos{X: 0})

	for i, wantOn := range []bool{true, true, true, false} {
		e.Run()
		if torch.IsOn != wantOn {
			t.Fatalf("after run %d past the flip: torch.IsOn = %v, want %v", i+1, torch.IsOn, wantOn)
		}
	}
	if !e.IsStill() {
		t.Fatalf("grid should have resettled once the torch committed off")
	}
}

// TestSwitchFlipBetweenTicksBreaksStillness checks the documented Flip
// contract: flipping a switch while the engine is still schedules work
// that only a subsequent Run drains.
func TestSwitchFlipBetweenTicksBreaksStillness(t *testing.T) {
	g := NewGrid(Size{X: 2, Y: 1, Z: 1})
	g.Set(Pos{X: 0}, &Switch{Direction: East})
	g.Set(Pos{X: 1}, &SolidBlock{})

	e := NewEngine(Config{})
	e.SetMap(g)
	if !e.IsStill() {
		t.Fatalf("grid should settle during SetMap's implicit run")
	}

	sw := e.Map().At(Pos{X: 0}).(*Switch)
	sw.Flip(e, Pos{X: 0})
	if e.IsStill() {
		t.Fatalf("flipping a switch should leave pending work even though Run hasn't been called")
	}

	for i := 0; i < 5 && !e.IsStill(); i++ {
		e.Run()
	}
	if !e.IsStill() {
		t.Fatalf("grid should have resettled within a handful of ticks")
	}
	solid := e.Map().At(Pos{X: 1}).(*SolidBlock)
	if !solid.StronglyPowered {
		t.Fatalf("solid block beside the flipped switch should be strongly powered")
	}
}

// TestStillGridOfInertCellsSettlesImmediately exercises the §8 "still grid"
// property for a layout with no dynamic cells: nothing should ever be
// scheduled past SetMap's implicit run.
func TestStillGridOfInertCellsSettlesImmediately(t *testing.T) {
	g := NewGrid(Size{X: 5, Y: 3, Z: 5})
	g.Each(func(pos Pos) {
		switch pos.Y {
		case 0:
			g.Set(pos, &SolidBlock{})
		case 1:
			if pos.X == 2 && pos.Z == 2 {
				g.Set(pos, RedstoneBlock{})
			}
		case 2:
			g.Set(pos, GlassBlock{})
		}
	})

	e := NewEngine(Config{})
	e.SetMap(g)

	if !e.IsStill() {
		t.Fatalf("a grid with no dynamic cells should settle during SetMap's implicit run")
	}
	for i := 0; i < 5; i++ {
		e.Run()
		if !e.IsStill() {
			t.Fatalf("a still grid should remain still under repeated Run calls")
		}
	}
}

// TestTwoInputGateComposition builds the §8 scenario-3 two-switch gate: each
// switch strongly powers a solid that a torch stands on, inverting it onto a
// shared dust run, which in turn weakly powers a third solid that the output
// torch reads and inverts again. Two inversions plus the wire's OR collapse
// to AND, which is the behaviour spec.md's scenario actually describes (off
// with both inputs off, on once both are flipped on) even though it labels
// the fixture a NAND gate.
//
// The switches' "facing NORTH" and the output torch's "attached SOUTH" as
// given in spec.md would mount both outside the 3x4x3 grid; Direction is
// resolved here to the only in-bounds choice that lands each cell on the
// solid block the circuit actually needs it to read (see DESIGN.md).
func TestTwoInputGateComposition(t *testing.T) {
	g := NewGrid(Size{X: 3, Y: 4, Z: 3})
	for x := 0; x < 3; x++ {
		for z := 0; z < 3; z++ {
			g.Set(Pos{X: x, Y: 0, Z: z}, &SolidBlock{})
			g.Set(Pos{X: x, Y: 3, Z: z}, GlassBlock{})
		}
	}
	g.Set(Pos{X: 0, Y: 1, Z: 0}, &Switch{Direction: South})
	g.Set(Pos{X: 2, Y: 1, Z: 0}, &Switch{Direction: South})
	g.Set(Pos{X: 0, Y: 1, Z: 1}, &SolidBlock{})
	g.Set(Pos{X: 1, Y: 1, Z: 1}, &SolidBlock{})
	g.Set(Pos{X: 2, Y: 1, Z: 1}, &SolidBlock{})
	g.Set(Pos{X: 0, Y: 2, Z: 1}, NewRedstoneTorch(true, Down))
	g.Set(Pos{X: 2, Y: 2, Z: 1}, NewRedstoneTorch(true, Down))
	g.Set(Pos{X: 1, Y: 2, Z: 1}, &RedstoneDust{})
	g.Set(Pos{X: 1, Y: 1, Z: 2}, NewRedstoneTorch(true, North))

	e := NewEngine(Config{})
	e.SetMap(g)
	for i := 0; i < 10 && !e.IsStill(); i++ {
		e.Run()
	}
	if !e.IsStill() {
		t.Fatalf("gate should settle with both switches off")
	}
	output := e.Map().At(Pos{X: 1, Y: 1, Z: 2}).(*RedstoneTorch)
	if output.IsOn {
		t.Fatalf("output torch should be off with both inputs off, got on")
	}

	sw0 := e.Map().At(Pos{X: 0, Y: 1, Z: 0}).(*Switch)
	sw1 := e.Map().At(Pos{X: 2, Y: 1, Z: 0}).(*Switch)
	sw0.Flip(e, Pos{X: 0, Y: 1, Z: 0})
	sw1.Flip(e, Pos{X: 2, Y: 1, Z: 0})

	for i := 0; i < 10 && !e.IsStill(); i++ {
		e.Run()
	}
	if !e.IsStill() {
		t.Fatalf("gate should resettle once both switches are on")
	}
	if !output.IsOn {
		t.Fatalf("output torch should be on with both inputs on, got off")
	}
}
