//go:build ebiten

package ui

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayPad        = 6
	overlayLineHeight = 16
)

// Overlay draws the frame and step counters in the top-left corner.
type Overlay struct {
	visible bool
	pixel   *ebiten.Image
}

// NewOverlay constructs a visible overlay.
func NewOverlay() *Overlay {
	o := &Overlay{visible: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles visibility on Tab.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		o.visible = !o.visible
	}
}

// Draw renders the stats onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image, stats Stats) {
	if !o.visible {
		return
	}
	// basicfont does not render tabs.
	lines := strings.Split(strings.ReplaceAll(stats.String(), "\t", "  "), "\n")
	face := basicfont.Face7x13

	width := 0
	for _, line := range lines {
		if w := len(line) * face.Advance; w > width {
			width = w
		}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(width+2*overlayPad), float64(len(lines)*overlayLineHeight+overlayPad))
	op.ColorScale.ScaleWithColor(color.RGBA{R: 255, G: 255, B: 255, A: 200})
	screen.DrawImage(o.pixel, op)

	for i, line := range lines {
		text.Draw(screen, line, face, overlayPad, overlayPad+face.Ascent+i*overlayLineHeight, color.Black)
	}
}
