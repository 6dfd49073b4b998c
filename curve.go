package keepsake

import "math"

// FullSweep is the sweep, in degrees, of a closed heart outline.
const FullSweep = 360

// HeartPoint evaluates the parametric heart curve at deg degrees:
//
//	x = cx + scale·16·sin³(t)
//	y = cy − scale·(13·cos(t) − 5·cos(2t) − 2·cos(3t) − cos(4t))
//
// The curve closes: HeartPoint at 0 and at 360 coincide.
func HeartPoint(center Vec2, scale, deg float64) Vec2 {
	t := deg * math.Pi / 180
	s := math.Sin(t)
	return Vec2{
		X: center.X + scale*16*s*s*s,
		Y: center.Y - scale*(13*math.Cos(t)-5*math.Cos(2*t)-2*math.Cos(3*t)-math.Cos(4*t)),
	}
}

// HeartPoints returns one point per integer degree in [0, sweep). Sweep is
// clamped to [0, FullSweep]. With scale 0 every point coincides with center.
// Fewer than two points is not drawable; callers skip it.
func HeartPoints(center Vec2, scale float64, sweep int) []Vec2 {
	return AppendHeartPoints(nil, center, scale, sweep)
}

// AppendHeartPoints is like HeartPoints but appends to buf, letting callers
// reuse a buffer across ticks.
func AppendHeartPoints(buf []Vec2, center Vec2, scale float64, sweep int) []Vec2 {
	sweep = clampSweep(sweep)
	if cap(buf)-len(buf) < sweep {
		grown := make([]Vec2, len(buf), len(buf)+sweep)
		copy(grown, buf)
		buf = grown
	}
	for d := 0; d < sweep; d++ {
		buf = append(buf, HeartPoint(center, scale, float64(d)))
	}
	return buf
}

func clampSweep(sweep int) int {
	if sweep < 0 {
		return 0
	}
	if sweep > FullSweep {
		return FullSweep
	}
	return sweep
}
