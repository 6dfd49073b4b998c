package termsurface

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/keepsake"
)

// Terminal owns a tcell screen and the canvas, event source and optional
// diary prompt that share it.
type Terminal struct {
	Screen tcell.Screen
	Canvas *Canvas
	Events *EventSource
	Prompt *Prompt // may be nil
}

// Open initializes screen with mouse reporting and sizes a canvas for a
// width×height scene to it. Pass a nil screen to use the real terminal.
func Open(screen tcell.Screen, width, height int) (*Terminal, error) {
	if screen == nil {
		var err error
		if screen, err = tcell.NewScreen(); err != nil {
			return nil, fmt.Errorf("termsurface: %w", err)
		}
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("termsurface: init screen: %w", err)
	}
	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	t := &Terminal{Screen: screen, Canvas: NewCanvas(width, height, cols, rows)}
	t.Events = NewEventSource(screen, t.Canvas)
	return t, nil
}

// SetPrompt attaches the diary prompt and routes key presses to it first.
func (t *Terminal) SetPrompt(p *Prompt) {
	t.Prompt = p
	if p == nil {
		t.Events.Keys = nil
		return
	}
	t.Events.Keys = p.HandleKey
}

// Present draws the canvas and the prompt, then shows the frame.
func (t *Terminal) Present() error {
	t.Canvas.Present(t.Screen)
	if t.Prompt != nil {
		t.Prompt.Draw(t.Screen)
	}
	t.Screen.Show()
	return nil
}

// Run drives loop on the terminal until it quits or ctx is cancelled.
func (t *Terminal) Run(ctx context.Context, loop *keepsake.Loop) error {
	return loop.Run(ctx, t.Canvas, t.Present)
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.Screen.Fini()
}
