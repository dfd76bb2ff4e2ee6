package redstone

import "log/slog"

// Config holds the tunable parameters for an Engine. The zero value is
// usable; NewEngine fills in defaults the way redstone.Config.withDefaults
// does in the teacher's chunked subsystem.
type Config struct {
	// Log receives per-tick diagnostics. If nil, Log is set to
	// slog.Default().
	Log *slog.Logger
}

func (c Config) withDefaults() Config {
	if c.Log == nil {
		c.Log = slog.Default()
	}
	return c
}

// Engine owns one Grid and drives it one tick at a time over two FIFO work
// queues: updates (the current tick) and nextUpdates (deferred to the tick
// boundary). It is the sole scheduler in the system — there is one engine,
// one grid, one pair of queues, and no internal loop; callers advance the
// simulation by calling Run.
//
// Engine is not safe for concurrent use. Cells hold no reference back to
// an Engine (Switch.Flip takes the engine as an argument), so distinct
// Engines sharing no Grid may run on separate goroutines without
// coordination.
type Engine struct {
	log *slog.Logger

	grid *Grid
	tick int

	updates     []Pos
	nextUpdates []Pos
}

// NewEngine constructs an Engine with an empty 0×0×0 grid. Call SetMap to
// install a real grid before running.
func NewEngine(cfg Config) *Engine {
	cfg = cfg.withDefaults()
	return &Engine{log: cfg.Log, grid: NewGrid(Size{})}
}

// SetMap installs a deep copy of grid as the Engine's map, resets the tick
// counter to zero, clears both queues, then enqueues every coordinate of
// the grid into nextUpdates (in Grid.Each's y-outer, z-middle, x-inner
// order) and immediately runs one tick so the grid reaches a
// self-consistent state before the caller observes it.
func (e *Engine) SetMap(grid *Grid) {
	e.grid = grid.Clone()
	e.tick = 0
	e.updates = e.updates[:0]
	e.nextUpdates = e.nextUpdates[:0]
	e.grid.Each(func(pos Pos) {
		e.nextUpdates = append(e.nextUpdates, pos)
	})
	e.Run()
}

// Map returns the Engine's grid. Callers may inspect or mutate it directly,
// for example to flip a Switch between ticks.
func (e *Engine) Map() *Grid {
	return e.grid
}

// TickNumber returns the current tick counter, monotonic and non-negative.
func (e *Engine) TickNumber() int {
	return e.tick
}

// IsStill reports whether both work queues are empty. Callers use this as
// the fixed-point predicate; convergence is not guaranteed in general
// (torch-based clocks are stable oscillators by design).
func (e *Engine) IsStill() bool {
	return len(e.updates) == 0 && len(e.nextUpdates) == 0
}

// Run advances the simulation by exactly one tick: it drains nextUpdates
// into updates in FIFO order, then processes updates to exhaustion —
// popping the head coordinate, invoking that cell's Update rule if the
// slot is occupied, discarding empty pops silently — before incrementing
// the tick counter. Cells may enqueue further coordinates during their own
// Update via MarkUpdate (processed later this same tick) or
// MarkNextUpdate (deferred to the next tick); a cell may be updated more
// than once within a tick if it is re-enqueued.
func (e *Engine) Run() {
	e.updates = append(e.updates, e.nextUpdates...)
	e.nextUpdates = e.nextUpdates[:0]

	for len(e.updates) > 0 {
		pos := e.updates[0]
		e.updates = e.updates[1:]
		if cell := e.grid.At(pos); cell != nil {
			cell.Update(e, pos)
		}
	}
	e.log.Debug("tick complete", "tick", e.tick, "pending", len(e.nextUpdates))
	e.tick++
}

// MarkUpdate enqueues pos to be processed later in the current tick.
func (e *Engine) MarkUpdate(pos Pos) {
	e.updates = append(e.updates, pos)
}

// MarkNextUpdate enqueues pos to be processed in the next tick.
func (e *Engine) MarkNextUpdate(pos Pos) {
	e.nextUpdates = append(e.nextUpdates, pos)
}

// UpdateSurrounding enqueues the six axis-aligned neighbours of pos (in
// -x, +x, -z, +z, -y, +y order) via MarkUpdate.
func (e *Engine) UpdateSurrounding(pos Pos) {
	for _, d := range neighbourOffsets {
		e.MarkUpdate(pos.Side(d))
	}
}
