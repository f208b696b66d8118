package core

// Grid stores a 2D grid of boolean cells in row-major order. Neighbor
// lookups wrap at the edges.
type Grid struct {
	W, H int
	data []bool
}

// NewGrid allocates a grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []bool { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(x, y int) (int, int) {
	x = (x%g.W + g.W) % g.W
	y = (y%g.H + g.H) % g.H
	return x, y
}

// At reports whether the cell at (x, y) is alive, wrapping out-of-range
// coordinates.
func (g *Grid) At(x, y int) bool {
	x, y = g.Wrap(x, y)
	return g.data[g.Index(x, y)]
}

// Set stores the state of the cell at (x, y), wrapping out-of-range
// coordinates.
func (g *Grid) Set(x, y int, alive bool) {
	x, y = g.Wrap(x, y)
	g.data[g.Index(x, y)] = alive
}

// Row returns the cells of row y.
func (g *Grid) Row(y int) []bool {
	return g.data[y*g.W : (y+1)*g.W]
}

// Alive counts live cells.
func (g *Grid) Alive() int {
	n := 0
	for _, c := range g.data {
		if c {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same size and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.data {
		if o.data[i] != c {
			return false
		}
	}
	return true
}

// CopyFrom overwrites g with the contents of src. Sizes must match.
func (g *Grid) CopyFrom(src *Grid) {
	copy(g.data, src.data)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, data: make([]bool, len(g.data))}
	copy(c.data, g.data)
	return c
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = false
	}
}
