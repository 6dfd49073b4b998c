package ebitensurface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/keepsake"
)

// OverlayDrawer is an in-window overlay drawn on top of the scene.
type OverlayDrawer interface {
	Draw(screen *ebiten.Image)
}

// Game adapts a keepsake.Loop to ebiten.Game. Update runs one loop tick into
// a DrawList; Draw replays it, then draws the overlay and the FPS widget.
type Game struct {
	Loop          *keepsake.Loop
	Overlay       OverlayDrawer // may be nil
	ScreenshotDir string

	// BeforeTick, when set, runs at the start of every Update. The cmd uses
	// it to apply hot-reloaded scenes on the game goroutine.
	BeforeTick func()

	list    *keepsake.DrawList
	surface *Surface
	fps     *FPSWidget
	shots   []string
	width   int
	height  int
}

// NewGame creates a game for loop on a width×height canvas.
func NewGame(loop *keepsake.Loop, faces *Faces, width, height int) *Game {
	g := &Game{
		Loop:          loop,
		ScreenshotDir: "screenshots",
		list:          keepsake.NewDrawList(),
		surface:       NewSurface(faces),
		width:         width,
		height:        height,
	}
	loop.OnScreenshot = g.Screenshot
	return g
}

// ShowFPS toggles the FPS/TPS widget.
func (g *Game) ShowFPS(on bool) {
	if on && g.fps == nil {
		g.fps = NewFPSWidget()
	} else if !on {
		g.fps = nil
	}
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if g.BeforeTick != nil {
		g.BeforeTick()
	}
	if !g.Loop.Tick(g.list) {
		return ebiten.Termination
	}
	if g.fps != nil {
		g.fps.Update()
	}
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.list.Replay(g.surface)
	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
	if g.fps != nil {
		g.fps.Draw(screen)
	}
	g.flushScreenshots(screen)
}

// Layout implements ebiten.Game. The canvas size is fixed.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// RunConfig holds window options for Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// Run opens the window and blocks until the game quits. A window close is
// delivered to the loop as a quit event rather than ending the game directly.
func Run(g *Game, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("ebitensurface: %w", err)
	}
	return nil
}
