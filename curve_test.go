package keepsake

import (
	"math"
	"testing"
)

func TestHeartPointsCount(t *testing.T) {
	c := Vec2{400, 300}
	tests := []struct {
		sweep int
		want  int
	}{
		{-5, 0},
		{0, 0},
		{1, 1},
		{90, 90},
		{359, 359},
		{FullSweep, FullSweep},
		{720, FullSweep},
	}
	for _, tt := range tests {
		pts := HeartPoints(c, 7, tt.sweep)
		if len(pts) != tt.want {
			t.Errorf("HeartPoints(sweep=%d) len = %d, want %d", tt.sweep, len(pts), tt.want)
		}
		for i, p := range pts {
			if math.IsNaN(p.X) || math.IsInf(p.X, 0) || math.IsNaN(p.Y) || math.IsInf(p.Y, 0) {
				t.Fatalf("point %d = %v is not finite", i, p)
			}
		}
	}
}

func TestHeartPointClosed(t *testing.T) {
	c := Vec2{10, 20}
	for _, scale := range []float64{0, 0.5, 1, 7} {
		a := HeartPoint(c, scale, 0)
		b := HeartPoint(c, scale, 360)
		if math.Abs(a.X-b.X) > 1e-9 || math.Abs(a.Y-b.Y) > 1e-9 {
			t.Errorf("scale %v: point at 0 = %v, at 360 = %v", scale, a, b)
		}
	}
}

func TestHeartPointKnownValues(t *testing.T) {
	c := Vec2{0, 0}
	// At 0 degrees: x = 0, y = -(13 - 5 - 2 - 1) = -5.
	p := HeartPoint(c, 1, 0)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y+5) > 1e-9 {
		t.Errorf("HeartPoint(0) = %v, want (0, -5)", p)
	}
	// At 90 degrees: sin = 1, x = 16; y = -(0 + 5 - 0 - 1) = -4.
	p = HeartPoint(c, 1, 90)
	if math.Abs(p.X-16) > 1e-9 || math.Abs(p.Y+4) > 1e-9 {
		t.Errorf("HeartPoint(90) = %v, want (16, -4)", p)
	}
	// At 180 degrees: the bottom tip, y = -(-13 - 5 + 2 - 1) = 17.
	p = HeartPoint(c, 1, 180)
	if math.Abs(p.X) > 1e-9 || math.Abs(p.Y-17) > 1e-9 {
		t.Errorf("HeartPoint(180) = %v, want (0, 17)", p)
	}
}

func TestHeartPointsZeroScaleCollapses(t *testing.T) {
	c := Vec2{400, 300}
	for i, p := range HeartPoints(c, 0, FullSweep) {
		if p != c {
			t.Fatalf("point %d = %v, want center %v", i, p, c)
		}
	}
}

func TestAppendHeartPointsReusesBuffer(t *testing.T) {
	buf := make([]Vec2, 0, FullSweep)
	out := AppendHeartPoints(buf, Vec2{}, 1, 180)
	if len(out) != 180 {
		t.Fatalf("len = %d, want 180", len(out))
	}
	if &out[0] != &buf[:1][0] {
		t.Error("expected the caller's buffer to be reused")
	}
}
