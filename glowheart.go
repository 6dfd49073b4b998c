package keepsake

import "math/rand/v2"

const (
	glowSpawnDepth = 100 // hearts start up to this far below the bottom edge
	glowRecycleY   = -50 // hearts above this line are recycled
	glowRadius     = 30  // glow radius per unit of size
	glowHeartSize  = 5   // heart scale per unit of size
	glowBorder     = 2
)

var glowColor = RGBA(255, 0, 0, 60)

// GlowHeart is a small blinking heart that drifts upward and is recycled at
// the top of the canvas. The scene keeps a fixed number of them.
type GlowHeart struct {
	Pos        Vec2
	Size       float64 // size factor in [0.3, 0.5]
	Speed      float64 // upward drift in pixels per tick, [0.3, 0.7]
	BlinkTimer int     // ticks until the next visibility toggle
	Visible    bool

	cfg    *Config
	rng    *rand.Rand
	points []Vec2
}

// NewGlowHeart creates a heart and places it with Reset.
func NewGlowHeart(cfg *Config, rng *rand.Rand) *GlowHeart {
	h := &GlowHeart{cfg: cfg, rng: rng}
	h.Reset()
	return h
}

// Reset re-randomizes placement and timing. Placement is rejection sampled
// against the exclusion zone; after PlacementAttempts misses the last
// candidate is kept.
func (h *GlowHeart) Reset() {
	zone := h.cfg.Exclusion()
	attempts := max(h.cfg.PlacementAttempts, 1)
	for i := 0; i < attempts; i++ {
		h.Pos = Vec2{
			X: float64(h.rng.IntN(h.cfg.Width + 1)),
			Y: float64(h.cfg.Height + h.rng.IntN(glowSpawnDepth+1)),
		}
		if !zone.Contains(h.Pos.X, h.Pos.Y) {
			break
		}
	}
	h.Size = 0.3 + h.rng.Float64()*0.2
	h.Speed = 0.3 + h.rng.Float64()*0.4
	h.BlinkTimer = h.drawBlink()
	h.Visible = h.rng.IntN(2) == 0
}

func (h *GlowHeart) drawBlink() int {
	return h.cfg.BlinkMin + h.rng.IntN(h.cfg.BlinkMax-h.cfg.BlinkMin+1)
}

// Update drifts the heart upward and runs the blink timer.
func (h *GlowHeart) Update(Clock) {
	h.Pos.Y -= h.Speed
	h.BlinkTimer--
	if h.BlinkTimer <= 0 {
		h.Visible = !h.Visible
		h.BlinkTimer = h.drawBlink()
	}
	if h.Pos.Y < glowRecycleY {
		h.Reset()
	}
}

// Render draws an additive glow and a bordered pink heart while visible.
func (h *GlowHeart) Render(dst Surface) {
	if !h.Visible {
		return
	}
	r := float64(int(h.Size * glowRadius))
	dst.FillCircle(h.Pos, r, glowColor, BlendAdd)

	h.points = AppendHeartPoints(h.points[:0], h.Pos, h.Size*glowHeartSize, FullSweep)
	dst.FillPolygon(h.points, ColorPink, BlendNormal)
	dst.StrokePolyline(h.points, glowBorder, true, ColorPink)
}
