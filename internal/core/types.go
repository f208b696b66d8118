package core

import "sort"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Seeder fills the initial generation of a grid. Density is the live-cell
// probability for random seeders; fixed patterns ignore it.
type Seeder func(g *Grid, rng *RNG, density float64)

var seeders = map[string]Seeder{}

// Register adds a seeder under the provided name.
func Register(name string, s Seeder) {
	if name == "" || s == nil {
		return
	}
	seeders[name] = s
}

// Lookup returns the seeder registered under name.
func Lookup(name string) (Seeder, bool) {
	s, ok := seeders[name]
	return s, ok
}

// Seeders lists the registered seeder names in sorted order.
func Seeders() []string {
	names := make([]string, 0, len(seeders))
	for name := range seeders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
