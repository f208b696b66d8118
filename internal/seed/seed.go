// Package seed registers the named initial patterns available to the
// binaries.
package seed

import (
	"fmt"
	"strings"

	"mad-life/internal/core"
)

// Apply fills g using the seeder registered under name.
func Apply(name string, g *core.Grid, seed int64, density float64) error {
	s, ok := core.Lookup(name)
	if !ok {
		return fmt.Errorf("unknown pattern %q (have %s)", name, strings.Join(core.Seeders(), ", "))
	}
	g.Clear()
	s(g, core.NewRNG(seed), density)
	return nil
}

// stamp sets the given offsets around the grid center.
func stamp(g *core.Grid, cells [][2]int) {
	cx, cy := g.W/2, g.H/2
	for _, c := range cells {
		g.Set(cx+c[0], cy+c[1], true)
	}
}

func init() {
	core.Register("random", func(g *core.Grid, rng *core.RNG, density float64) {
		core.FillRandom(rng, g, density)
	})
	core.Register("empty", func(*core.Grid, *core.RNG, float64) {})
	core.Register("glider", func(g *core.Grid, _ *core.RNG, _ float64) {
		stamp(g, [][2]int{{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}})
	})
	core.Register("blinker", func(g *core.Grid, _ *core.RNG, _ float64) {
		stamp(g, [][2]int{{0, -1}, {0, 0}, {0, 1}})
	})
	core.Register("rpentomino", func(g *core.Grid, _ *core.RNG, _ float64) {
		stamp(g, [][2]int{{0, -1}, {1, -1}, {-1, 0}, {0, 0}, {0, 1}})
	})
}
