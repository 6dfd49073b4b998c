package keepsake

import (
	"math"
	"testing"
)

func TestRotatingBloomWraps(t *testing.T) {
	cfg := DefaultConfig()
	b := NewRotatingBloom(&cfg, Vec2{710, 480})
	for i := 0; i < 2000; i++ {
		b.Update(Clock{})
		if b.Angle < 0 || b.Angle >= 360 {
			t.Fatalf("tick %d: Angle = %v, want in [0,360)", i, b.Angle)
		}
	}
	// 2000 ticks at 0.5 degrees is 1000 degrees, i.e. 280 after wrapping.
	if math.Abs(b.Angle-280) > 1e-6 {
		t.Errorf("Angle = %v, want 280", b.Angle)
	}
}

func TestRotatingBloomPetals(t *testing.T) {
	cfg := DefaultConfig()
	b := NewRotatingBloom(&cfg, Vec2{100, 100})
	p := b.PetalCenter(0)
	if math.Abs(p.X-122) > 1e-9 || math.Abs(p.Y-100) > 1e-9 {
		t.Errorf("petal 0 = %v, want (122, 100)", p)
	}
	for i := 0; i < petalCount; i++ {
		q := b.PetalCenter(i)
		if d := math.Hypot(q.X-100, q.Y-100); math.Abs(d-petalRadius) > 1e-9 {
			t.Errorf("petal %d at distance %v, want %v", i, d, petalRadius)
		}
	}

	dl := NewDrawList()
	b.Render(dl)
	if n := dl.Count(CommandFillEllipse); n != 2+petalCount {
		t.Errorf("ellipses = %d, want %d", n, 2+petalCount)
	}
	cmds := dl.Commands()
	if last := cmds[len(cmds)-1]; last.Type != CommandFillCircle || last.Radius != bloomCore {
		t.Errorf("last command = %+v, want the center disc", last)
	}
}
