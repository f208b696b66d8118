package engine

import "mad-life/internal/core"

// Pool owns the fixed set of equally sized grids rotated between the
// current, next and published roles.
type Pool struct {
	slots []*core.Grid
}

// NewPool allocates k grids of n×n cells.
func NewPool(k, n int) *Pool {
	p := &Pool{slots: make([]*core.Grid, k)}
	for i := range p.slots {
		p.slots[i] = core.NewGrid(n, n)
	}
	return p
}

// Grid returns the grid stored in slot i.
func (p *Pool) Grid(i int) *core.Grid { return p.slots[i] }

// Len returns the number of slots.
func (p *Pool) Len() int { return len(p.slots) }
