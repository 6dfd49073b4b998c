package ebitensurface

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/keepsake"
)

// Faces holds the compiled-in Go fonts and the fixed bold faces the scene
// draws with. It also serves as the caption's keepsake.GlyphSource.
type Faces struct {
	bold    *text.GoTextFaceSource
	regular *text.GoTextFaceSource
	sized   [3]*text.GoTextFace
}

// LoadFaces parses the Go Regular and Go Bold fonts.
func LoadFaces() (*Faces, error) {
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: failed to parse bold font: %w", err)
	}
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("ebitensurface: failed to parse regular font: %w", err)
	}
	f := &Faces{bold: bold, regular: regular}
	for _, s := range []keepsake.TextSize{keepsake.TextSmall, keepsake.TextMedium, keepsake.TextLarge} {
		f.sized[s] = &text.GoTextFace{Source: bold, Size: s.Points()}
	}
	return f, nil
}

// Face returns the bold face for a scene text size.
func (f *Faces) Face(size keepsake.TextSize) *text.GoTextFace {
	if int(size) >= len(f.sized) {
		size = keepsake.TextLarge
	}
	return f.sized[size]
}

// Bold returns a bold face of the given pixel size.
func (f *Faces) Bold(px float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.bold, Size: px}
}

// Regular returns a regular face of the given pixel size.
func (f *Faces) Regular(px float64) *text.GoTextFace {
	return &text.GoTextFace{Source: f.regular, Size: px}
}

// LineHeight returns the distance between baselines for face.
func LineHeight(face *text.GoTextFace) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}

// Glyphs splits s into grapheme clusters and measures each with the face for
// size. Clusters the font cannot shape still get their advance, usually the
// width of the font's missing-glyph box.
func (f *Faces) Glyphs(s string, size keepsake.TextSize, c keepsake.Color) []keepsake.Glyph {
	face := f.Face(size)
	lh := LineHeight(face)
	chars := keepsake.SplitGraphemes(s)
	out := make([]keepsake.Glyph, 0, len(chars))
	for _, ch := range chars {
		out = append(out, keepsake.Glyph{
			Text:   ch,
			Size:   size,
			Color:  c,
			Width:  text.Advance(ch, face),
			Height: lh,
		})
	}
	return out
}
