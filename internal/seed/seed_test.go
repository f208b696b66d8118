package seed

import (
	"slices"
	"testing"

	"mad-life/internal/core"
)

func TestApplyKnownPatterns(t *testing.T) {
	cases := map[string]int{
		"empty":      0,
		"glider":     5,
		"blinker":    3,
		"rpentomino": 5,
	}
	for name, alive := range cases {
		g := core.NewGrid(16, 16)
		g.Set(0, 0, true)
		if err := Apply(name, g, 1, 0.4); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got := g.Alive(); got != alive {
			t.Fatalf("%s: expected %d live cells, got %d", name, alive, got)
		}
	}
}

func TestApplyRandomIsSeeded(t *testing.T) {
	a := core.NewGrid(32, 32)
	b := core.NewGrid(32, 32)
	if err := Apply("random", a, 42, 0.4); err != nil {
		t.Fatal(err)
	}
	if err := Apply("random", b, 42, 0.4); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("random pattern should be deterministic for a seed")
	}
	if a.Alive() == 0 {
		t.Fatal("random pattern at density 0.4 should produce live cells")
	}
}

func TestApplyUnknownPattern(t *testing.T) {
	if err := Apply("gosper", core.NewGrid(4, 4), 0, 0); err == nil {
		t.Fatal("expected an error for an unknown pattern")
	}
}

func TestRegisteredNamesSorted(t *testing.T) {
	names := core.Seeders()
	if !slices.IsSorted(names) {
		t.Fatalf("expected sorted names, got %v", names)
	}
	if !slices.Contains(names, "random") {
		t.Fatalf("random pattern missing from %v", names)
	}
}
