package keepsake

import "testing"

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: 10, Y: 20, Width: 100, Height: 50}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"inside", 50, 40, true},
		{"top-left", 10, 20, true},
		{"bottom-right", 110, 70, true},
		{"left of", 9.9, 40, false},
		{"below", 50, 70.1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestHitCircleContains(t *testing.T) {
	c := HitCircle{CenterX: 0, CenterY: 0, Radius: 10}
	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 0, 0, true},
		{"inside", 6, 7, true},
		{"on edge", 10, 0, false},
		{"outside", 8, 8, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

// zone is a HitTester backed by one shape.
type zone struct{ HitShape }

func (z zone) HitTest(x, y float64) bool { return z.Contains(x, y) }

func TestRouterTriggersOnLeftPressOnly(t *testing.T) {
	ov := newFakeOverlay()
	r := InputRouter{Guard: NewOverlayGuard(ov)}
	target := zone{HitRect{X: 0, Y: 0, Width: 10, Height: 10}}

	res := r.Route([]Event{
		{Kind: EventPointerPress, X: 5, Y: 5, Button: MouseButtonRight},
		{Kind: EventPointerPress, X: 50, Y: 50, Button: MouseButtonLeft},
	}, target)
	if res.Hits != 0 || ov.spawns != 0 {
		t.Fatalf("right press or miss triggered: %+v", res)
	}

	res = r.Route([]Event{
		{Kind: EventPointerPress, X: 5, Y: 5},
		{Kind: EventPointerPress, X: 6, Y: 6},
	}, target)
	if !res.Spawned || res.Hits != 2 || res.Rejected != 1 {
		t.Errorf("Route = %+v, want spawned with 2 hits and 1 rejected", res)
	}
	if ov.spawns != 1 {
		t.Errorf("spawns = %d, want 1", ov.spawns)
	}
}

func TestRouterQuitKeepsRouting(t *testing.T) {
	ov := newFakeOverlay()
	r := InputRouter{Guard: NewOverlayGuard(ov)}
	target := zone{HitCircle{Radius: 5}}

	res := r.Route([]Event{
		{Kind: EventQuit},
		{Kind: EventPointerPress, X: 1, Y: 1},
	}, target)
	if !res.Quit {
		t.Error("expected Quit")
	}
	if ov.spawns != 1 {
		t.Errorf("spawns = %d, want 1", ov.spawns)
	}
}

func TestRouterNilTarget(t *testing.T) {
	r := InputRouter{Guard: NewOverlayGuard(newFakeOverlay())}
	res := r.Route([]Event{{Kind: EventPointerPress}}, nil)
	if res.Hits != 0 {
		t.Errorf("Hits = %d with no target", res.Hits)
	}
}
