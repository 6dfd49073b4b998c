package keepsake

import (
	"math/rand/v2"
	"testing"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestGlowHeartResetRanges(t *testing.T) {
	cfg := DefaultConfig()
	rng := newTestRand()
	zone := cfg.Exclusion()
	for i := 0; i < 500; i++ {
		h := NewGlowHeart(&cfg, rng)
		if h.Pos.X < 0 || h.Pos.X > float64(cfg.Width) {
			t.Fatalf("X = %v, want in [0,%d]", h.Pos.X, cfg.Width)
		}
		if h.Pos.Y < float64(cfg.Height) || h.Pos.Y > float64(cfg.Height+glowSpawnDepth) {
			t.Fatalf("Y = %v, want in [%d,%d]", h.Pos.Y, cfg.Height, cfg.Height+glowSpawnDepth)
		}
		if zone.Contains(h.Pos.X, h.Pos.Y) {
			t.Fatalf("placed inside exclusion zone at %v", h.Pos)
		}
		if h.Size < 0.3 || h.Size > 0.5 {
			t.Fatalf("Size = %v, want in [0.3,0.5]", h.Size)
		}
		if h.Speed < 0.3 || h.Speed > 0.7 {
			t.Fatalf("Speed = %v, want in [0.3,0.7]", h.Speed)
		}
		if h.BlinkTimer < cfg.BlinkMin || h.BlinkTimer > cfg.BlinkMax {
			t.Fatalf("BlinkTimer = %d, want in [%d,%d]", h.BlinkTimer, cfg.BlinkMin, cfg.BlinkMax)
		}
	}
}

func TestGlowHeartPlacementIsBounded(t *testing.T) {
	// An exclusion zone covering every candidate must not hang placement.
	cfg := DefaultConfig()
	cfg.ExclusionSize = 10000
	h := NewGlowHeart(&cfg, newTestRand())
	if !cfg.Exclusion().Contains(h.Pos.X, h.Pos.Y) {
		t.Errorf("expected the last candidate to be accepted, got %v", h.Pos)
	}
}

func TestGlowHeartBlinkToggles(t *testing.T) {
	cfg := DefaultConfig()
	h := NewGlowHeart(&cfg, newTestRand())
	toggles := 0
	for i := 0; i < 800; i++ {
		prevY, prevVisible, prevTimer := h.Pos.Y, h.Visible, h.BlinkTimer
		h.Update(Clock{})
		if h.Pos.Y > prevY {
			// Recycled; Reset redraws everything.
			continue
		}
		if prevTimer-1 <= 0 {
			toggles++
			if h.Visible == prevVisible {
				t.Fatalf("tick %d: expected visibility to toggle", i)
			}
			if h.BlinkTimer < cfg.BlinkMin || h.BlinkTimer > cfg.BlinkMax {
				t.Fatalf("tick %d: BlinkTimer = %d, want in [%d,%d]", i, h.BlinkTimer, cfg.BlinkMin, cfg.BlinkMax)
			}
			continue
		}
		if h.Visible != prevVisible {
			t.Fatalf("tick %d: visibility toggled with timer %d", i, prevTimer)
		}
		if h.BlinkTimer != prevTimer-1 {
			t.Fatalf("tick %d: BlinkTimer = %d, want %d", i, h.BlinkTimer, prevTimer-1)
		}
	}
	if toggles == 0 {
		t.Error("expected at least one toggle")
	}
}

func TestGlowHeartDriftsAndRecycles(t *testing.T) {
	cfg := DefaultConfig()
	h := NewGlowHeart(&cfg, newTestRand())
	h.Pos.Y = glowRecycleY + 0.1
	h.Speed = 0.5
	h.Update(Clock{})
	if h.Pos.Y < float64(cfg.Height) {
		t.Errorf("Y = %v after leaving the top, want recycled below %d", h.Pos.Y, cfg.Height)
	}

	h.Pos.Y = 300
	speed := h.Speed
	h.Update(Clock{})
	if h.Pos.Y != 300-speed {
		t.Errorf("Y = %v, want %v", h.Pos.Y, 300-speed)
	}
}

func TestGlowHeartRender(t *testing.T) {
	cfg := DefaultConfig()
	h := NewGlowHeart(&cfg, newTestRand())
	dl := NewDrawList()

	h.Visible = false
	h.Render(dl)
	if dl.Len() != 0 {
		t.Fatalf("hidden heart drew %d commands", dl.Len())
	}

	h.Visible = true
	h.Size = 0.4
	h.Render(dl)
	cmds := dl.Commands()
	if len(cmds) != 3 {
		t.Fatalf("commands = %d, want 3", len(cmds))
	}
	glow := cmds[0]
	if glow.Type != CommandFillCircle || glow.BlendMode != BlendAdd || glow.Radius != 12 {
		t.Errorf("glow = %+v, want additive circle of radius 12", glow)
	}
	if cmds[1].Type != CommandFillPolygon || len(cmds[1].Points) != FullSweep {
		t.Errorf("fill = %v with %d points", cmds[1].Type, len(cmds[1].Points))
	}
	if cmds[2].Type != CommandStrokePolyline || !cmds[2].Closed || cmds[2].Width != glowBorder {
		t.Errorf("border = %+v", cmds[2])
	}
}
