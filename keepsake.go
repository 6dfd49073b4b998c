package keepsake

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGB builds an opaque Color from 8-bit channel values.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// RGBA builds a Color from 8-bit channel values.
func RGBA(r, g, b, a uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, float64(a) / 255}
}

// WithAlpha returns c with its alpha multiplied by a.
func (c Color) WithAlpha(a float64) Color {
	c.A *= a
	return c
}

// RGBA8 returns the color as straight-alpha 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Palette used by the scene.
var (
	ColorBlack     = RGB(0, 0, 0)
	ColorRed       = RGB(255, 0, 0)
	ColorPink      = RGB(255, 105, 180)
	ColorWhite     = RGB(255, 255, 255)
	ColorLightPink = RGB(255, 182, 193)
)

// Vec2 is a 2D point or offset. Points produced by the curve generator are
// never mutated after they are returned.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// BlendMode selects a compositing operation.
type BlendMode uint8

const (
	BlendNormal BlendMode = iota // source-over (standard alpha blending)
	BlendAdd                     // additive / lighter
)

// TextAlign controls how DrawText positions a string relative to its anchor.
type TextAlign uint8

const (
	TextAlignLeft   TextAlign = iota // anchor is the top-left corner
	TextAlignCenter                  // anchor is the center of the text box
)

// TextSize selects one of the fixed faces a Surface provides.
type TextSize uint8

const (
	TextSmall  TextSize = iota // 18px bold, hints
	TextMedium                 // 32px bold, the heart caption
	TextLarge                  // 36px bold, the fading caption
)

// Points returns the nominal pixel size of the face.
func (s TextSize) Points() float64 {
	switch s {
	case TextSmall:
		return 18
	case TextMedium:
		return 32
	default:
		return 36
	}
}

// TextStyle describes how DrawText renders a string.
type TextStyle struct {
	Size  TextSize
	Color Color
	Align TextAlign
}
