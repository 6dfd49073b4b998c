package keepsake

import (
	"math"
	"time"

	"github.com/rivo/uniseg"
)

// MaxAlpha is the alpha of a fully revealed caption character.
const MaxAlpha = 255

// SplitGraphemes splits s into user-perceived characters, so that an emoji
// with a variation selector counts as one character.
func SplitGraphemes(s string) []string {
	out := make([]string, 0, len(s))
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// FadingCaption reveals a string one character at a time; every revealed
// character fades in independently while the whole line waves.
type FadingCaption struct {
	Origin    Vec2
	Cadence   int // ticks between reveals
	Amplitude float64
	Spread    float64 // wave phase offset between neighbouring characters
	PeriodMS  float64

	chars   []string
	glyphs  []Glyph
	alphas  []int
	shown   int
	frame   int
	step    int
	done    bool
	elapsed time.Duration
}

// NewFadingCaption creates a caption for text at origin. glyphs are the
// pre-rendered characters, one per grapheme; a short or empty list only
// limits what is drawn.
func NewFadingCaption(cfg *Config, text string, origin Vec2, glyphs []Glyph) *FadingCaption {
	chars := SplitGraphemes(text)
	cadence := max(cfg.RevealCadence, 1)
	return &FadingCaption{
		Origin:    origin,
		Cadence:   cadence,
		Amplitude: cfg.WaveAmplitude,
		Spread:    cfg.WaveSpread,
		PeriodMS:  cfg.WavePeriodMS,
		chars:     chars,
		glyphs:    glyphs,
		alphas:    make([]int, len(chars)),
		step:      int(math.Round(float64(MaxAlpha) / float64(cadence))),
	}
}

// Len returns the number of characters.
func (f *FadingCaption) Len() int { return len(f.chars) }

// Shown returns the reveal cursor.
func (f *FadingCaption) Shown() int { return f.shown }

// Alpha returns the alpha of character i.
func (f *FadingCaption) Alpha(i int) int { return f.alphas[i] }

// Done reports whether every character is fully visible. Once true it stays true.
func (f *FadingCaption) Done() bool { return f.done }

// Update advances the reveal cursor and the per-character fades.
func (f *FadingCaption) Update(c Clock) {
	f.elapsed = c.Elapsed
	if f.done {
		return
	}
	f.frame++
	// Reveal on frames 1, cadence+1, 2*cadence+1, ...
	if f.shown < len(f.chars) && (f.frame+f.Cadence-1)/f.Cadence > f.shown {
		f.shown++
	}
	for i := 0; i < f.shown; i++ {
		if f.alphas[i] < MaxAlpha {
			f.alphas[i] = min(f.alphas[i]+f.step, MaxAlpha)
		}
	}
	if f.shown == len(f.chars) && f.allOpaque() {
		f.done = true
	}
}

func (f *FadingCaption) allOpaque() bool {
	for _, a := range f.alphas {
		if a < MaxAlpha {
			return false
		}
	}
	return true
}

// Width returns the laid-out width of the glyphs.
func (f *FadingCaption) Width() float64 {
	return glyphsWidth(f.glyphs)
}

func glyphsWidth(glyphs []Glyph) float64 {
	w := 0.0
	for _, g := range glyphs {
		w += g.Width
	}
	return w
}

// Render draws each glyph at its cumulative offset, displaced by the wave.
func (f *FadingCaption) Render(dst Surface) {
	t := float64(f.elapsed) / float64(time.Millisecond) / f.PeriodMS
	x := f.Origin.X
	n := min(len(f.glyphs), len(f.alphas))
	for i := 0; i < n; i++ {
		g := f.glyphs[i]
		if a := f.alphas[i]; a > 0 {
			wave := float64(int(f.Amplitude * math.Sin(t+float64(i)*f.Spread)))
			dst.DrawGlyph(g, Vec2{x, f.Origin.Y + wave}, float64(a)/MaxAlpha)
		}
		x += g.Width
	}
}
