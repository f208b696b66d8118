package engine

import (
	"sync"
	"testing"

	"mad-life/internal/core"
)

func stepFull(src *core.Grid) *core.Grid {
	dst := core.NewGrid(src.W, src.H)
	Step(src, dst, 0, src.H)
	return dst
}

func TestBlinkerOscillation(t *testing.T) {
	g := core.NewGrid(5, 5)
	g.Set(2, 1, true)
	g.Set(2, 2, true)
	g.Set(2, 3, true)

	g = stepFull(g)

	expects := map[[2]int]bool{
		{1, 2}: true,
		{2, 2}: true,
		{3, 2}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := g.At(x, y); shouldBeAlive != alive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}

	g = stepFull(g)

	expects = map[[2]int]bool{
		{2, 1}: true,
		{2, 2}: true,
		{2, 3}: true,
	}
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			_, shouldBeAlive := expects[[2]int{x, y}]
			if alive := g.At(x, y); shouldBeAlive != alive {
				t.Fatalf("after second step cell (%d,%d) alive=%v, expected %v", x, y, alive, shouldBeAlive)
			}
		}
	}
}

func placeGlider(g *core.Grid, ox, oy int) {
	for _, c := range [][2]int{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}} {
		g.Set(ox+c[0], oy+c[1], true)
	}
}

func TestGliderTranslatesEveryFourTicks(t *testing.T) {
	const n = 10
	g := core.NewGrid(n, n)
	placeGlider(g, 2, 2)

	for i := 0; i < 4; i++ {
		g = stepFull(g)
	}

	want := core.NewGrid(n, n)
	placeGlider(want, 3, 3)
	if !g.Equal(want) {
		t.Fatal("glider should move one cell diagonally after 4 ticks")
	}
	if g.Alive() != 5 {
		t.Fatalf("glider should keep 5 cells, got %d", g.Alive())
	}
}

func TestGliderWrapsAroundTorus(t *testing.T) {
	const n = 8
	start := core.NewGrid(n, n)
	placeGlider(start, 6, 6)

	g := start
	for i := 0; i < 4*n; i++ {
		g = stepFull(g)
	}
	if !g.Equal(start) {
		t.Fatal("glider should return to its origin after crossing the whole torus")
	}
}

func TestDeadGridStaysDead(t *testing.T) {
	g := core.NewGrid(16, 16)
	for i := 0; i < 50; i++ {
		g = stepFull(g)
		if g.Alive() != 0 {
			t.Fatalf("dead grid produced life at step %d", i+1)
		}
	}
}

func TestStepOnlyWritesAssignedRows(t *testing.T) {
	src := core.NewGrid(12, 12)
	core.FillRandom(core.NewRNG(3), src, 0.5)
	dst := core.NewGrid(12, 12)
	cells := dst.Cells()
	for i := range cells {
		cells[i] = true
	}
	srcBefore := src.Clone()

	Step(src, dst, 4, 7)

	full := stepFull(src)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			got := dst.At(x, y)
			if y >= 4 && y < 7 {
				if got != full.At(x, y) {
					t.Fatalf("row %d col %d mismatch inside range", y, x)
				}
				continue
			}
			if !got {
				t.Fatalf("row %d outside range was written", y)
			}
		}
	}
	if !src.Equal(srcBefore) {
		t.Fatal("Step must not modify the source grid")
	}
}

func TestPartitionIndependence(t *testing.T) {
	src := core.NewGrid(37, 29)
	core.FillRandom(core.NewRNG(11), src, 0.4)
	serial := stepFull(src)

	for _, workers := range []int{1, 2, 3, 5, 8, 29, 40} {
		dst := core.NewGrid(src.W, src.H)
		var wg sync.WaitGroup
		for _, task := range Partition(src.H, workers) {
			wg.Add(1)
			go func(task Task) {
				defer wg.Done()
				Step(src, dst, task.MinRow, task.MaxRow)
			}(task)
		}
		wg.Wait()
		if !dst.Equal(serial) {
			t.Fatalf("%d-way partitioned step differs from serial step", workers)
		}
	}
}
