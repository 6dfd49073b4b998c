package ebitensurface

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often, in ticks, the widget redraws its text.
const fpsRefresh = 30

// FPSWidget displays the current FPS and TPS in the top-left corner.
// It uses its own image and ebitenutil.DebugPrint for rendering.
type FPSWidget struct {
	img   *ebiten.Image
	ticks int
}

// NewFPSWidget creates the widget.
func NewFPSWidget() *FPSWidget {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	return &FPSWidget{img: ebiten.NewImage(100, 32)}
}

// Update redraws the text about twice per second at 60 TPS.
func (w *FPSWidget) Update() {
	w.ticks++
	if w.ticks < fpsRefresh {
		return
	}
	w.ticks = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}

// Draw blits the widget onto screen.
func (w *FPSWidget) Draw(screen *ebiten.Image) {
	screen.DrawImage(w.img, nil)
}
