package keepsake

// EventKind identifies a discrete input event.
type EventKind uint8

const (
	EventQuit         EventKind = iota // window close or quit key
	EventPointerPress                  // pointer button went down
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventPointerPress:
		return "press"
	}
	return "unknown"
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// Event is one input event in canvas coordinates. X, Y and Button are only
// meaningful for EventPointerPress.
type Event struct {
	Kind   EventKind
	X, Y   float64
	Button MouseButton
}

// EventSource produces the events that arrived since the last call.
// PollEvents appends them to buf and returns it. It never blocks.
type EventSource interface {
	PollEvents(buf []Event) []Event
}

// --- Hit shapes ---

// HitShape reports whether a canvas point is inside a clickable area.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitRect is an axis-aligned rectangular hit area. Edges count as inside.
type HitRect struct {
	X, Y, Width, Height float64
}

// Contains reports whether (x, y) lies inside or on the rectangle.
func (r HitRect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// HitCircle is a circular hit area. Points on the circle itself are outside,
// so a zero radius never hits.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies strictly inside the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy < c.Radius*c.Radius
}

// HitTester is implemented by anything that owns clickable zones.
type HitTester interface {
	HitTest(x, y float64) bool
}

// --- Router ---

// InputRouter turns a tick's events into overlay triggers. It is stateless
// between ticks; the guard holds the only state.
type InputRouter struct {
	Guard *OverlayGuard
}

// RouteResult summarizes one call to Route.
type RouteResult struct {
	Quit     bool // a quit event was seen
	Hits     int  // left presses that landed on a zone
	Spawned  bool // the guard spawned an overlay
	Rejected int  // hits ignored because an overlay was already open
}

// Route processes events in order. Every left press that hits target raises
// a trigger; the guard decides whether it spawns. Quit does not stop the
// remaining events from being routed.
func (r *InputRouter) Route(events []Event, target HitTester) RouteResult {
	var res RouteResult
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			res.Quit = true
		case EventPointerPress:
			if ev.Button != MouseButtonLeft || target == nil || !target.HitTest(ev.X, ev.Y) {
				continue
			}
			res.Hits++
			if r.Guard == nil {
				continue
			}
			if r.Guard.Trigger() {
				res.Spawned = true
			} else if r.Guard.IsOpen() {
				res.Rejected++
			}
		}
	}
	return res
}
