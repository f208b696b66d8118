//go:build ebiten

package app

import (
	"image/color"

	"mad-life/internal/engine"
	"mad-life/internal/render"
	"mad-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a running engine to the ebiten.Game interface. It only reads
// published snapshots; stepping happens on the engine's own goroutines.
type Game struct {
	eng     *engine.Engine
	painter *render.GridPainter
	overlay *ui.Overlay

	onColor  color.Color
	offColor color.Color

	scale int
	frame uint64
}

// New constructs a Game displaying the provided engine.
func New(eng *engine.Engine, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := eng.Size()
	return &Game{
		eng:      eng,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(),
		onColor:  render.AliveColor,
		offColor: render.DeadColor,
		scale:    scale,
	}
}

// Update handles input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.overlay.Update()
	return nil
}

// Draw renders the latest published generation.
func (g *Game) Draw(screen *ebiten.Image) {
	snap := g.eng.Snapshot()
	g.painter.Blit(screen, snap.Grid.Cells(), g.onColor, g.offColor, g.scale)
	g.overlay.Draw(screen, ui.Stats{
		FPS:   ebiten.ActualFPS(),
		Frame: g.frame,
		SPS:   g.eng.Throughput(),
		Step:  snap.Step,
	})
	g.frame++
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.eng.Size()
	return s.W * g.scale, s.H * g.scale
}
