package keepsake

import (
	"math"
	"time"
)

// HeartPhase is a stage of the center heart. Phases only move forward.
type HeartPhase uint8

const (
	HeartDrawing HeartPhase = iota // outline is traced one degree per tick
	HeartGrowing                   // filled heart approaches MaxScale
	HeartPulsing                   // scale oscillates around MaxScale forever
)

func (p HeartPhase) String() string {
	switch p {
	case HeartDrawing:
		return "drawing"
	case HeartGrowing:
		return "growing"
	case HeartPulsing:
		return "pulsing"
	}
	return "unknown"
}

const (
	heartStrokeWidth = 4
	heartHitFactor   = 16 // hit radius per unit of drawn size
)

// CenterHeart traces its outline, grows to full size, then pulses.
type CenterHeart struct {
	Center   Vec2
	Phase    HeartPhase
	Progress int     // degrees of outline drawn, 0..360
	Scale    float64 // 0 until drawing completes
	Visible  bool

	cfg    *Config
	start  time.Duration
	beats  uint64
	points []Vec2
}

// NewCenterHeart creates a heart at center. start is the scene time the
// pulse is measured from.
func NewCenterHeart(cfg *Config, center Vec2, start time.Duration) *CenterHeart {
	return &CenterHeart{Center: center, cfg: cfg, start: start}
}

// Update advances the phase machine by one tick.
func (h *CenterHeart) Update(c Clock) {
	switch h.Phase {
	case HeartDrawing:
		h.Progress++
		if h.Progress >= FullSweep {
			h.Progress = FullSweep
			h.Phase = HeartGrowing
		}
	case HeartGrowing:
		h.Scale += h.cfg.GrowthRate * (1 - h.Scale/h.cfg.MaxScale)
		if h.Scale >= h.cfg.MaxScale-h.cfg.GrowEpsilon {
			h.Phase = HeartPulsing
		}
	case HeartPulsing:
		t := h.pulseTime(c)
		h.Scale = h.cfg.MaxScale + h.cfg.PulseAmplitude*math.Sin(t)
		if t > 0 {
			h.beats = uint64(t / (2 * math.Pi))
		}
	}
	h.Visible = h.Progress > 0 || h.Scale > 0
}

func (h *CenterHeart) pulseTime(c Clock) float64 {
	return float64(c.Elapsed-h.start) / float64(time.Millisecond) / h.cfg.PulsePeriodMS
}

// Beats returns the number of full pulse cycles completed so far.
func (h *CenterHeart) Beats() uint64 {
	return h.beats
}

// DrawnSize is the curve scale the heart is rendered at.
func (h *CenterHeart) DrawnSize() float64 {
	return h.cfg.HeartSize * h.Scale
}

// HitShape approximates the rendered heart with a circle. The radius is
// truncated to whole pixels, so a heart that has not started growing has no
// clickable area.
func (h *CenterHeart) HitShape() HitCircle {
	return HitCircle{
		CenterX: h.Center.X,
		CenterY: h.Center.Y,
		Radius:  float64(int(h.DrawnSize() * heartHitFactor)),
	}
}

// Render strokes the partial outline while drawing and later fills the full
// curve with the caption on top.
func (h *CenterHeart) Render(dst Surface) {
	if !h.Visible {
		return
	}
	if h.Phase == HeartDrawing {
		h.points = AppendHeartPoints(h.points[:0], h.Center, h.cfg.HeartSize, h.Progress)
		if len(h.points) > 1 {
			dst.StrokePolyline(h.points, heartStrokeWidth, false, ColorRed)
		}
		return
	}
	h.points = AppendHeartPoints(h.points[:0], h.Center, h.DrawnSize(), FullSweep)
	dst.FillPolygon(h.points, ColorRed, BlendNormal)
	if h.cfg.HeartCaption != "" {
		dst.DrawText(h.cfg.HeartCaption, h.Center, TextStyle{
			Size: TextMedium, Color: ColorWhite, Align: TextAlignCenter,
		})
	}
}
