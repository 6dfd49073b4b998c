package ebitensurface

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/keepsake"
)

var mouseButtons = [...]struct {
	ebiten ebiten.MouseButton
	button keepsake.MouseButton
}{
	{ebiten.MouseButtonLeft, keepsake.MouseButtonLeft},
	{ebiten.MouseButtonRight, keepsake.MouseButtonRight},
	{ebiten.MouseButtonMiddle, keepsake.MouseButtonMiddle},
}

// EventSource reads Ebitengine input state. It must be polled from
// ebiten.Game.Update, where inpututil's just-pressed state is valid.
// Coordinates are logical canvas pixels because Game.Layout returns a fixed
// canvas size.
type EventSource struct {
	touches []ebiten.TouchID
}

// PollEvents appends a quit event when the window is being closed, then one
// press per mouse button or touch that went down this tick. Touches count as
// left-button presses.
func (s *EventSource) PollEvents(buf []keepsake.Event) []keepsake.Event {
	if ebiten.IsWindowBeingClosed() {
		buf = append(buf, keepsake.Event{Kind: keepsake.EventQuit})
	}
	for _, mb := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(mb.ebiten) {
			x, y := ebiten.CursorPosition()
			buf = append(buf, keepsake.Event{
				Kind: keepsake.EventPointerPress, X: float64(x), Y: float64(y), Button: mb.button,
			})
		}
	}
	s.touches = inpututil.AppendJustPressedTouchIDs(s.touches[:0])
	for _, id := range s.touches {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, keepsake.Event{
			Kind: keepsake.EventPointerPress, X: float64(x), Y: float64(y), Button: keepsake.MouseButtonLeft,
		})
	}
	return buf
}
