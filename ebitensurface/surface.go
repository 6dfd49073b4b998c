// Package ebitensurface runs the keepsake scene in an Ebitengine window.
//
// Surface draws keepsake primitives onto an *ebiten.Image with vector paths
// and text/v2. Game adapts a keepsake.Loop to ebiten.Game: the loop ticks in
// Update and records into a DrawList that Draw replays.
package ebitensurface

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/keepsake"
)

var (
	whiteImage = ebiten.NewImage(3, 3)

	// whiteSubImage is an internal sub image of whiteImage. Use whiteSubImage
	// at DrawTriangles instead of whiteImage to avoid bleeding edges.
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// ellipseSegments is the number of polygon edges used for an ellipse.
const ellipseSegments = 48

// Surface is a keepsake.Surface over an *ebiten.Image. Buffers are reused
// across calls, so a Surface must not be shared between goroutines.
type Surface struct {
	AntiAlias bool

	dst     *ebiten.Image
	faces   *Faces
	path    vector.Path
	vs      []ebiten.Vertex
	is      []uint16
	scratch []keepsake.Vec2
}

// NewSurface creates a surface drawing with faces. Call SetTarget before use.
func NewSurface(faces *Faces) *Surface {
	return &Surface{AntiAlias: true, faces: faces}
}

// SetTarget sets the image subsequent calls draw onto.
func (s *Surface) SetTarget(dst *ebiten.Image) { s.dst = dst }

// Target returns the current target image.
func (s *Surface) Target() *ebiten.Image { return s.dst }

func (s *Surface) Clear(c keepsake.Color) {
	s.dst.Fill(toColor(c))
}

func (s *Surface) FillPolygon(points []keepsake.Vec2, c keepsake.Color, blend keepsake.BlendMode) {
	if len(points) < 3 {
		return
	}
	s.tracePoints(points, true)
	s.fill(c, blend)
}

func (s *Surface) StrokePolyline(points []keepsake.Vec2, width float64, closed bool, c keepsake.Color) {
	if len(points) < 2 {
		return
	}
	s.tracePoints(points, closed)
	s.stroke(width, c)
}

func (s *Surface) FillEllipse(bounds keepsake.Rect, c keepsake.Color) {
	s.scratch = ellipsePoints(s.scratch[:0], bounds, ellipseSegments)
	s.FillPolygon(s.scratch, c, keepsake.BlendNormal)
}

func (s *Surface) StrokeEllipse(bounds keepsake.Rect, width float64, c keepsake.Color) {
	s.scratch = ellipsePoints(s.scratch[:0], bounds, ellipseSegments)
	s.StrokePolyline(s.scratch, width, true, c)
}

func (s *Surface) FillRect(r keepsake.Rect, radius float64, c keepsake.Color) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	s.path = vector.Path{}
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	rad := float32(min(radius, r.Width/2, r.Height/2))
	if rad <= 0 {
		s.path.MoveTo(x, y)
		s.path.LineTo(x+w, y)
		s.path.LineTo(x+w, y+h)
		s.path.LineTo(x, y+h)
	} else {
		s.path.MoveTo(x+rad, y)
		s.path.ArcTo(x+w, y, x+w, y+h, rad)
		s.path.ArcTo(x+w, y+h, x, y+h, rad)
		s.path.ArcTo(x, y+h, x, y, rad)
		s.path.ArcTo(x, y, x+w, y, rad)
	}
	s.path.Close()
	s.fill(c, keepsake.BlendNormal)
}

func (s *Surface) FillCircle(center keepsake.Vec2, radius float64, c keepsake.Color, blend keepsake.BlendMode) {
	if radius <= 0 {
		return
	}
	s.path = vector.Path{}
	s.path.Arc(float32(center.X), float32(center.Y), float32(radius), 0, 2*math.Pi, vector.Clockwise)
	s.path.Close()
	s.fill(c, blend)
}

func (s *Surface) DrawGlyph(g keepsake.Glyph, at keepsake.Vec2, alpha float64) {
	if s.faces == nil || alpha <= 0 || g.Text == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(toColor(g.Color))
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(s.dst, g.Text, s.faces.Face(g.Size), op)
}

func (s *Surface) DrawText(str string, at keepsake.Vec2, style keepsake.TextStyle) {
	if s.faces == nil || str == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(at.X, at.Y)
	op.ColorScale.ScaleWithColor(toColor(style.Color))
	if style.Align == keepsake.TextAlignCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(s.dst, str, s.faces.Face(style.Size), op)
}

func (s *Surface) tracePoints(points []keepsake.Vec2, closed bool) {
	s.path = vector.Path{}
	s.path.MoveTo(float32(points[0].X), float32(points[0].Y))
	for _, p := range points[1:] {
		s.path.LineTo(float32(p.X), float32(p.Y))
	}
	if closed {
		s.path.Close()
	}
}

func (s *Surface) fill(c keepsake.Color, blend keepsake.BlendMode) {
	s.vs, s.is = s.path.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.draw(c, blend, ebiten.FillRuleNonZero)
}

func (s *Surface) stroke(width float64, c keepsake.Color) {
	op := &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	}
	s.vs, s.is = s.path.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.draw(c, keepsake.BlendNormal, ebiten.FillRuleFillAll)
}

func (s *Surface) draw(c keepsake.Color, blend keepsake.BlendMode, rule ebiten.FillRule) {
	if len(s.is) == 0 {
		return
	}
	r, g, b, a := float32(c.R), float32(c.G), float32(c.B), float32(c.A)
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = r
		s.vs[i].ColorG = g
		s.vs[i].ColorB = b
		s.vs[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: s.AntiAlias,
		FillRule:  rule,
		Blend:     ebitenBlend(blend),
	}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

// ebitenBlend returns the ebiten.Blend for a keepsake blend mode.
func ebitenBlend(b keepsake.BlendMode) ebiten.Blend {
	if b == keepsake.BlendAdd {
		return ebiten.BlendLighter
	}
	return ebiten.BlendSourceOver
}

// toColor converts a keepsake color to straight-alpha 8-bit RGBA.
func toColor(c keepsake.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ellipsePoints appends n points on the ellipse inscribed in bounds.
func ellipsePoints(buf []keepsake.Vec2, bounds keepsake.Rect, n int) []keepsake.Vec2 {
	c := bounds.Center()
	rx, ry := bounds.Width/2, bounds.Height/2
	for i := 0; i < n; i++ {
		t := 2 * math.Pi * float64(i) / float64(n)
		buf = append(buf, keepsake.Vec2{X: c.X + rx*math.Cos(t), Y: c.Y + ry*math.Sin(t)})
	}
	return buf
}
