package termsurface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/keepsake"
)

// eventBuffer is how many tcell events may queue between ticks.
const eventBuffer = 100

// KeyHandler consumes a key press before the scene sees it. It returns true
// when the key was handled.
type KeyHandler func(*tcell.EventKey) bool

// EventSource turns tcell events into keepsake events. A goroutine reads
// PollEvent into a channel; PollEvents drains it without blocking.
type EventSource struct {
	// Keys, when set, gets every key press first. The diary prompt uses it
	// to take typing while it is open.
	Keys KeyHandler

	screen  tcell.Screen
	canvas  *Canvas
	events  chan tcell.Event
	buttons tcell.ButtonMask
}

// NewEventSource starts reading events from screen. Mouse positions are
// mapped through canvas. The reader stops when the screen is finalized.
func NewEventSource(screen tcell.Screen, canvas *Canvas) *EventSource {
	s := &EventSource{
		screen: screen,
		canvas: canvas,
		events: make(chan tcell.Event, eventBuffer),
	}
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(s.events)
				return
			}
			s.events <- ev
		}
	}()
	return s
}

// PollEvents appends the events that arrived since the last call. Ctrl+C
// always quits; Escape and q quit unless Keys consumed them. A finalized
// screen counts as a quit.
func (s *EventSource) PollEvents(buf []keepsake.Event) []keepsake.Event {
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return append(buf, keepsake.Event{Kind: keepsake.EventQuit})
			}
			buf = s.translate(buf, ev)
		default:
			return buf
		}
	}
}

func (s *EventSource) translate(buf []keepsake.Event, ev tcell.Event) []keepsake.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return append(buf, keepsake.Event{Kind: keepsake.EventQuit})
		}
		if s.Keys != nil && s.Keys(ev) {
			return buf
		}
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
			return append(buf, keepsake.Event{Kind: keepsake.EventQuit})
		}
	case *tcell.EventMouse:
		// tcell repeats the mask while a button is held; only the edge is a
		// press.
		held := ev.Buttons()
		pressed := held &^ s.buttons
		s.buttons = held
		col, row := ev.Position()
		x, y := s.canvas.CellToCanvas(col, row)
		for _, mb := range mouseButtons {
			if pressed&mb.tcell != 0 {
				buf = append(buf, keepsake.Event{Kind: keepsake.EventPointerPress, X: x, Y: y, Button: mb.button})
			}
		}
	case *tcell.EventResize:
		s.screen.Sync()
		s.canvas.Resize(ev.Size())
	}
	return buf
}

var mouseButtons = [...]struct {
	tcell  tcell.ButtonMask
	button keepsake.MouseButton
}{
	{tcell.Button1, keepsake.MouseButtonLeft},
	{tcell.Button2, keepsake.MouseButtonRight},
	{tcell.Button3, keepsake.MouseButtonMiddle},
}
