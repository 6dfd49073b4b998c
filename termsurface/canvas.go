// Package termsurface runs the keepsake scene in a terminal with tcell.
//
// Canvas rasterizes keepsake primitives into a pixel grid two pixels tall per
// terminal cell and presents it with upper half-block characters, so each
// cell shows two vertically stacked colors. Text is kept in a separate cell
// layer and drawn over the averaged background of its cell.
package termsurface

import (
	"math"
	"slices"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"

	"github.com/phanxgames/keepsake"
)

const halfBlock = '▀'

// ellipseSegments is the number of polygon edges used to outline an ellipse.
const ellipseSegments = 32

type textCell struct {
	text  string
	color colorful.Color
	alpha float64
	cont  bool // right half of a wide grapheme
}

// Canvas is a keepsake.Surface that rasterizes into terminal cells. The
// logical canvas is stretched to fill the cell grid.
type Canvas struct {
	width, height float64 // logical canvas
	cols, rows    int

	px    []colorful.Color // cols × rows*2
	text  []textCell       // cols × rows
	sx    float64          // pixels per logical unit
	sy    float64
	xs    []crossing
	outln []keepsake.Vec2
}

type crossing struct {
	x   float64
	dir int
}

// NewCanvas creates a canvas for a width×height logical scene presented on a
// cols×rows cell grid.
func NewCanvas(width, height, cols, rows int) *Canvas {
	c := &Canvas{width: float64(width), height: float64(height)}
	c.Resize(cols, rows)
	return c
}

// Resize changes the cell grid. The contents are cleared.
func (c *Canvas) Resize(cols, rows int) {
	c.cols, c.rows = max(cols, 1), max(rows, 1)
	c.px = make([]colorful.Color, c.cols*c.rows*2)
	c.text = make([]textCell, c.cols*c.rows)
	c.sx = float64(c.cols) / c.width
	c.sy = float64(c.rows*2) / c.height
}

// Size returns the cell grid.
func (c *Canvas) Size() (cols, rows int) { return c.cols, c.rows }

// CellToCanvas maps the center of a cell to logical canvas coordinates.
func (c *Canvas) CellToCanvas(col, row int) (x, y float64) {
	return (float64(col) + 0.5) / c.sx, (float64(row)*2 + 1) / c.sy
}

// Pixel returns the color of one half-cell pixel. Out-of-range pixels are
// black.
func (c *Canvas) Pixel(x, y int) colorful.Color {
	if x < 0 || y < 0 || x >= c.cols || y >= c.rows*2 {
		return colorful.Color{}
	}
	return c.px[y*c.cols+x]
}

// TextAt returns the grapheme drawn in a cell, if any.
func (c *Canvas) TextAt(col, row int) string {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return ""
	}
	return c.text[row*c.cols+col].text
}

func fromColor(k keepsake.Color) colorful.Color {
	return colorful.Color{R: k.R, G: k.G, B: k.B}
}

// blendPixel composites k over pixel i.
func (c *Canvas) blendPixel(i int, k keepsake.Color, blend keepsake.BlendMode) {
	src := fromColor(k)
	a := math.Max(0, math.Min(1, k.A))
	if a == 0 {
		return
	}
	dst := c.px[i]
	if blend == keepsake.BlendAdd {
		c.px[i] = colorful.Color{
			R: math.Min(1, dst.R+src.R*a),
			G: math.Min(1, dst.G+src.G*a),
			B: math.Min(1, dst.B+src.B*a),
		}
		return
	}
	c.px[i] = dst.BlendRgb(src, a)
}

// fillFunc blends k into every pixel whose center, in logical coordinates,
// satisfies inside. Only pixels overlapping the logical box are visited.
func (c *Canvas) fillFunc(minX, minY, maxX, maxY float64, k keepsake.Color, blend keepsake.BlendMode, inside func(x, y float64) bool) {
	x0 := max(int(math.Floor(minX*c.sx)), 0)
	x1 := min(int(math.Ceil(maxX*c.sx)), c.cols-1)
	y0 := max(int(math.Floor(minY*c.sy)), 0)
	y1 := min(int(math.Ceil(maxY*c.sy)), c.rows*2-1)
	for py := y0; py <= y1; py++ {
		ly := (float64(py) + 0.5) / c.sy
		for px := x0; px <= x1; px++ {
			if inside((float64(px)+0.5)/c.sx, ly) {
				c.blendPixel(py*c.cols+px, k, blend)
			}
		}
	}
}

func (c *Canvas) Clear(k keepsake.Color) {
	bg := fromColor(k)
	for i := range c.px {
		c.px[i] = bg
	}
	clear(c.text)
}

// FillPolygon scan-converts the polygon with the nonzero winding rule.
func (c *Canvas) FillPolygon(points []keepsake.Vec2, k keepsake.Color, blend keepsake.BlendMode) {
	if len(points) < 3 {
		return
	}
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}
	y0 := max(int(math.Floor(minY*c.sy)), 0)
	y1 := min(int(math.Ceil(maxY*c.sy)), c.rows*2-1)
	for py := y0; py <= y1; py++ {
		ly := (float64(py) + 0.5) / c.sy
		c.xs = c.xs[:0]
		for i, a := range points {
			b := points[(i+1)%len(points)]
			if a.Y == b.Y {
				continue
			}
			dir := 1
			lo, hi := a, b
			if a.Y > b.Y {
				dir = -1
				lo, hi = b, a
			}
			if ly < lo.Y || ly >= hi.Y {
				continue
			}
			t := (ly - lo.Y) / (hi.Y - lo.Y)
			c.xs = append(c.xs, crossing{x: lo.X + t*(hi.X-lo.X), dir: dir})
		}
		slices.SortFunc(c.xs, func(a, b crossing) int {
			switch {
			case a.x < b.x:
				return -1
			case a.x > b.x:
				return 1
			}
			return 0
		})
		winding := 0
		for j := 0; j+1 < len(c.xs); j++ {
			winding += c.xs[j].dir
			if winding == 0 {
				continue
			}
			c.span(py, c.xs[j].x, c.xs[j+1].x, k, blend)
		}
	}
}

// span fills the pixels of row py whose centers lie in [x0, x1).
func (c *Canvas) span(py int, x0, x1 float64, k keepsake.Color, blend keepsake.BlendMode) {
	from := max(int(math.Ceil(x0*c.sx-0.5)), 0)
	to := min(int(math.Ceil(x1*c.sx-0.5)), c.cols)
	for px := from; px < to; px++ {
		c.blendPixel(py*c.cols+px, k, blend)
	}
}

// StrokePolyline draws each segment as a capsule of the given width. Strokes
// thinner than a pixel are widened to one pixel.
func (c *Canvas) StrokePolyline(points []keepsake.Vec2, width float64, closed bool, k keepsake.Color) {
	if len(points) < 2 {
		return
	}
	hw := math.Max(width/2, 0.5/math.Min(c.sx, c.sy))
	n := len(points) - 1
	if closed {
		n = len(points)
	}
	for i := 0; i < n; i++ {
		a, b := points[i], points[(i+1)%len(points)]
		c.fillFunc(math.Min(a.X, b.X)-hw, math.Min(a.Y, b.Y)-hw, math.Max(a.X, b.X)+hw, math.Max(a.Y, b.Y)+hw,
			k, keepsake.BlendNormal, func(x, y float64) bool {
				return segmentDist(x, y, a, b) <= hw
			})
	}
}

func segmentDist(x, y float64, a, b keepsake.Vec2) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	l2 := dx*dx + dy*dy
	t := 0.0
	if l2 > 0 {
		t = math.Max(0, math.Min(1, ((x-a.X)*dx+(y-a.Y)*dy)/l2))
	}
	return math.Hypot(x-(a.X+t*dx), y-(a.Y+t*dy))
}

func (c *Canvas) FillEllipse(r keepsake.Rect, k keepsake.Color) {
	rx, ry := r.Width/2, r.Height/2
	if rx <= 0 || ry <= 0 {
		return
	}
	ctr := r.Center()
	c.fillFunc(r.X, r.Y, r.X+r.Width, r.Y+r.Height, k, keepsake.BlendNormal, func(x, y float64) bool {
		nx, ny := (x-ctr.X)/rx, (y-ctr.Y)/ry
		return nx*nx+ny*ny <= 1
	})
}

func (c *Canvas) StrokeEllipse(r keepsake.Rect, width float64, k keepsake.Color) {
	ctr := r.Center()
	c.outln = c.outln[:0]
	for i := 0; i < ellipseSegments; i++ {
		a := 2 * math.Pi * float64(i) / ellipseSegments
		c.outln = append(c.outln, keepsake.Vec2{
			X: ctr.X + r.Width/2*math.Cos(a),
			Y: ctr.Y + r.Height/2*math.Sin(a),
		})
	}
	c.StrokePolyline(c.outln, width, true, k)
}

func (c *Canvas) FillRect(r keepsake.Rect, radius float64, k keepsake.Color) {
	radius = math.Min(radius, math.Min(r.Width, r.Height)/2)
	x0, y0 := r.X+radius, r.Y+radius
	x1, y1 := r.X+r.Width-radius, r.Y+r.Height-radius
	c.fillFunc(r.X, r.Y, r.X+r.Width, r.Y+r.Height, k, keepsake.BlendNormal, func(x, y float64) bool {
		if x < r.X || x > r.X+r.Width || y < r.Y || y > r.Y+r.Height {
			return false
		}
		if radius <= 0 {
			return true
		}
		cx := math.Max(x0, math.Min(x1, x))
		cy := math.Max(y0, math.Min(y1, y))
		return math.Hypot(x-cx, y-cy) <= radius
	})
}

func (c *Canvas) FillCircle(center keepsake.Vec2, radius float64, k keepsake.Color, blend keepsake.BlendMode) {
	if radius <= 0 {
		return
	}
	c.fillFunc(center.X-radius, center.Y-radius, center.X+radius, center.Y+radius, k, blend, func(x, y float64) bool {
		return math.Hypot(x-center.X, y-center.Y) <= radius
	})
}

// Glyphs implements keepsake.GlyphSource for the current grid. Each grapheme
// is as wide as the cells it takes and one cell tall, in logical units.
func (c *Canvas) Glyphs(s string, _ keepsake.TextSize, k keepsake.Color) []keepsake.Glyph {
	var out []keepsake.Glyph
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := max(gr.Width(), 1)
		out = append(out, keepsake.Glyph{
			Text:   gr.Str(),
			Color:  k,
			Width:  float64(w) / c.sx,
			Height: 2 / c.sy,
		})
	}
	return out
}

// DrawGlyph puts the glyph in the cell under the center of its box.
func (c *Canvas) DrawGlyph(g keepsake.Glyph, at keepsake.Vec2, alpha float64) {
	col := int((at.X + g.Width/2) * c.sx)
	row := int((at.Y+g.Height/2)*c.sy) / 2
	c.putText(col, row, g.Text, uniseg.StringWidth(g.Text), g.Color.WithAlpha(alpha))
}

// DrawText writes s into the cell layer. Each grapheme takes the number of
// columns a terminal gives it.
func (c *Canvas) DrawText(s string, at keepsake.Vec2, style keepsake.TextStyle) {
	col := int(at.X * c.sx)
	row := int(at.Y*c.sy) / 2
	if style.Align == keepsake.TextAlignCenter {
		col -= uniseg.StringWidth(s) / 2
	}
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		w := gr.Width()
		c.putText(col, row, gr.Str(), w, style.Color)
		col += max(w, 1)
	}
}

func (c *Canvas) putText(col, row int, s string, width int, k keepsake.Color) {
	if row < 0 || row >= c.rows || col < 0 || col >= c.cols || k.A <= 0 {
		return
	}
	i := row*c.cols + col
	c.text[i] = textCell{text: s, color: fromColor(k), alpha: math.Min(1, k.A)}
	if width == 2 && col+1 < c.cols {
		c.text[i+1] = textCell{cont: true}
	}
}

// Present writes the canvas to screen at the top-left corner. It does not
// call Show.
func (c *Canvas) Present(screen tcell.Screen) {
	c.PresentAt(screen, 0, 0)
}

// PresentAt writes the canvas to screen with its top-left cell at (x, y).
func (c *Canvas) PresentAt(screen tcell.Screen, x, y int) {
	for row := 0; row < c.rows; row++ {
		for col := 0; col < c.cols; col++ {
			top := c.px[(row*2)*c.cols+col]
			bot := c.px[(row*2+1)*c.cols+col]
			t := c.text[row*c.cols+col]
			switch {
			case t.cont:
				continue
			case t.text != "":
				bg := top.BlendRgb(bot, 0.5)
				fg := bg.BlendRgb(t.color, t.alpha)
				runes := []rune(t.text)
				style := tcell.StyleDefault.Background(termColor(bg)).Foreground(termColor(fg))
				screen.SetContent(x+col, y+row, runes[0], runes[1:], style)
			default:
				style := tcell.StyleDefault.Foreground(termColor(top)).Background(termColor(bot))
				screen.SetContent(x+col, y+row, halfBlock, nil, style)
			}
		}
	}
}

func termColor(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
