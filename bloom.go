package keepsake

import "math"

const (
	petalCount  = 5
	petalRadius = 22
	petalW      = 24
	petalH      = 32
	bloomCore   = 14
	stemWidth   = 6
)

var (
	stemColor   = RGB(34, 139, 34)
	leafColor   = RGB(46, 139, 87)
	petalColor  = RGB(229, 57, 53)
	bloomCenter = RGB(183, 28, 28)
)

// RotatingBloom is a five-petal flower whose petals orbit its center.
type RotatingBloom struct {
	Center Vec2
	Angle  float64 // degrees, [0, 360)
	Speed  float64 // degrees per tick

	stem [2]Vec2
}

// NewRotatingBloom creates a flower at center.
func NewRotatingBloom(cfg *Config, center Vec2) *RotatingBloom {
	return &RotatingBloom{Center: center, Speed: cfg.BloomSpeed}
}

// Update rotates the petals, wrapping the angle into [0, 360).
func (b *RotatingBloom) Update(Clock) {
	b.Angle = math.Mod(b.Angle+b.Speed, 360)
	if b.Angle < 0 {
		b.Angle += 360
	}
}

// PetalCenter returns the center of petal i.
func (b *RotatingBloom) PetalCenter(i int) Vec2 {
	rad := (b.Angle + float64(i)*360/petalCount) * math.Pi / 180
	return Vec2{
		X: b.Center.X + petalRadius*math.Cos(rad),
		Y: b.Center.Y + petalRadius*math.Sin(rad),
	}
}

// Render draws the stem and leaves, the petals, then the center disc.
func (b *RotatingBloom) Render(dst Surface) {
	cx, cy := b.Center.X, b.Center.Y
	b.stem[0] = Vec2{cx, cy + 20}
	b.stem[1] = Vec2{cx, cy + 60}
	dst.StrokePolyline(b.stem[:], stemWidth, false, stemColor)
	dst.FillEllipse(Rect{X: cx - 18, Y: cy + 40, Width: 20, Height: 12}, leafColor)
	dst.FillEllipse(Rect{X: cx - 2, Y: cy + 50, Width: 20, Height: 12}, leafColor)

	for i := 0; i < petalCount; i++ {
		p := b.PetalCenter(i)
		dst.FillEllipse(Rect{X: p.X - petalW/2, Y: p.Y - petalH/2, Width: petalW, Height: petalH}, petalColor)
	}
	dst.FillCircle(b.Center, bloomCore, bloomCenter, BlendNormal)
}
