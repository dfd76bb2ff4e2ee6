package redstone

// emptyCell is the sentinel returned for unoccupied or out-of-bounds slots.
// It is the nil Cell, so a type switch or comma-ok assertion on it matches
// no concrete variant.
var emptyCell Cell

// Grid is a fixed-size three-dimensional container of optional typed
// cells. It owns every cell it holds: replacing or destroying the Grid
// destroys its cells with it.
//
// The storage layout is a single linear array; the offset of (x, y, z) is
// (z*Y+y)*X+x. This ordering is not observable through the Grid's API, but
// is fixed to stay compatible with the schematic codec's y-outer,
// z-middle, x-inner traversal.
type Grid struct {
	size  Size
	cells []Cell
}

// NewGrid allocates a Grid of the given size with every slot empty.
func NewGrid(size Size) *Grid {
	return &Grid{size: size, cells: make([]Cell, size.Volume())}
}

// Size returns the Grid's extents.
func (g *Grid) Size() Size {
	return g.size
}

// offset returns the linear index of pos and whether pos lies in bounds.
func (g *Grid) offset(pos Pos) (int, bool) {
	if !g.size.Contains(pos) {
		return 0, false
	}
	return (pos.Z*g.size.Y+pos.Y)*g.size.X + pos.X, true
}

// At returns the cell at pos, or the empty sentinel if pos is out of bounds
// or the slot holds nothing. Out-of-bounds is never an error: callers rely
// on being able to probe neighbours across grid edges without special
// casing.
func (g *Grid) At(pos Pos) Cell {
	i, ok := g.offset(pos)
	if !ok || g.cells[i] == nil {
		return emptyCell
	}
	return g.cells[i]
}

// Set installs cell at pos, replacing and discarding any prior occupant. If
// pos is out of bounds, the incoming cell is discarded and the Grid is left
// unchanged. This quiet discard is load-bearing: rules that peek at
// neighbours rely on set/get never leaking a bounds error.
func (g *Grid) Set(pos Pos, cell Cell) {
	i, ok := g.offset(pos)
	if !ok {
		return
	}
	g.cells[i] = cell
}

// Clear empties the slot at pos, equivalent to Set(pos, nil).
func (g *Grid) Clear(pos Pos) {
	g.Set(pos, nil)
}

// Each calls fn once for every in-bounds coordinate of the Grid, in
// y-outer, z-middle, x-inner order (the traversal order the schematic
// codec uses, and the order set_map seeds the next-tick queue in).
func (g *Grid) Each(fn func(Pos)) {
	for y := 0; y < g.size.Y; y++ {
		for z := 0; z < g.size.Z; z++ {
			for x := 0; x < g.size.X; x++ {
				fn(Pos{X: x, Y: y, Z: z})
			}
		}
	}
}

// Clone returns a Grid of the same size holding independent deep copies of
// every occupied slot. Cell state is never shared across grids.
func (g *Grid) Clone() *Grid {
	out := &Grid{size: g.size, cells: make([]Cell, len(g.cells))}
	for i, c := range g.cells {
		if c != nil {
			out.cells[i] = c.Clone()
		}
	}
	return out
}

// Equal reports whether g and other have the same size and, slot for slot,
// equal cells (by each cell's Equal relation; two empty slots are equal).
func (g *Grid) Equal(other *Grid) bool {
	if g.size != other.size {
		return false
	}
	for i, c := range g.cells {
		o := other.cells[i]
		switch {
		case c == nil && o == nil:
			continue
		case c == nil || o == nil:
			return false
		case !c.Equal(o):
			return false
		}
	}
	return true
}
