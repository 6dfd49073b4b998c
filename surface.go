package keepsake

// Surface is the rendering collaborator. Implementations draw onto a fixed
// logical canvas (Config.Width × Config.Height); presenting the finished frame
// is left to the backend that owns the surface.
type Surface interface {
	// Clear fills the whole canvas.
	Clear(c Color)
	// FillPolygon fills a closed polygon. Non-convex outlines are allowed.
	FillPolygon(points []Vec2, c Color, blend BlendMode)
	// StrokePolyline strokes the segments joining points, closing the loop
	// back to the first point when closed is true.
	StrokePolyline(points []Vec2, width float64, closed bool, c Color)
	// FillEllipse fills the ellipse inscribed in bounds.
	FillEllipse(bounds Rect, c Color)
	// StrokeEllipse outlines the ellipse inscribed in bounds.
	StrokeEllipse(bounds Rect, width float64, c Color)
	// FillRect fills r, rounding its corners by radius when radius > 0.
	FillRect(r Rect, radius float64, c Color)
	// FillCircle fills a circle.
	FillCircle(center Vec2, radius float64, c Color, blend BlendMode)
	// DrawGlyph blits one pre-measured glyph with its top-left at at,
	// multiplying its coverage by alpha in [0, 1].
	DrawGlyph(g Glyph, at Vec2, alpha float64)
	// DrawText draws a string anchored according to style.Align.
	DrawText(s string, at Vec2, style TextStyle)
}

// Glyph is one opaquely renderable caption character: a grapheme cluster,
// the face it is rendered with, and its measured pixel box. Width is used
// only for layout.
type Glyph struct {
	Text   string
	Size   TextSize
	Color  Color
	Width  float64
	Height float64
}

// GlyphSource renders a string into per-character glyphs. One glyph per
// grapheme cluster is expected; a source that cannot render the string may
// return fewer (or none), and callers draw only what they get.
type GlyphSource interface {
	Glyphs(s string, size TextSize, c Color) []Glyph
}
