package keepsake

// LetterPhase is a stage of the opening-letter prop. Phases only move forward.
type LetterPhase uint8

const (
	LetterOpening LetterPhase = iota // flap lifts
	LetterSliding                    // letter rises out of the envelope
	LetterDone                       // fully open, no further change
)

func (p LetterPhase) String() string {
	switch p {
	case LetterOpening:
		return "opening"
	case LetterSliding:
		return "sliding"
	case LetterDone:
		return "done"
	}
	return "unknown"
}

// Envelope geometry relative to the letter origin.
const (
	envelopeTop    = 40
	envelopeWidth  = 80
	envelopeHeight = 50
	envelopeRadius = 8
	flapApexY      = 10
	flapLift       = 30
	paperInset     = 10
	paperTop       = 45
	paperWidth     = 60
	paperHeight    = 40
	paperRadius    = 4
	paperSlide     = 40
	sealY          = 65
	sealRadius     = 7
	hintOffset     = 100
)

var (
	envelopeColor = RGB(255, 230, 200)
	flapColor     = RGB(255, 200, 200)
)

// OpeningLetter is an envelope whose flap opens before the letter slides out.
type OpeningLetter struct {
	Origin Vec2
	Phase  LetterPhase
	Open   float64 // 0..1
	Slide  float64 // 0..1
	Step   float64 // progress per tick
	Hint   string

	poly [6]Vec2
}

// NewOpeningLetter creates a closed envelope with its top-left anchor at origin.
func NewOpeningLetter(cfg *Config, origin Vec2) *OpeningLetter {
	return &OpeningLetter{Origin: origin, Step: cfg.LetterStep, Hint: cfg.LetterHint}
}

// Update advances open progress, then slide progress, clamping each at 1.
func (l *OpeningLetter) Update(Clock) {
	switch l.Phase {
	case LetterOpening:
		l.Open += l.Step
		if l.Open >= 1 {
			l.Open = 1
			l.Phase = LetterSliding
		}
	case LetterSliding:
		l.Slide += l.Step
		if l.Slide >= 1 {
			l.Slide = 1
			l.Phase = LetterDone
		}
	}
}

// Envelope returns the envelope body, which is also the click target.
func (l *OpeningLetter) Envelope() Rect {
	return Rect{X: l.Origin.X, Y: l.Origin.Y + envelopeTop, Width: envelopeWidth, Height: envelopeHeight}
}

// HitShape returns the envelope body as a hit rectangle.
func (l *OpeningLetter) HitShape() HitRect {
	r := l.Envelope()
	return HitRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

// Render draws the envelope, the opening flap, the rising letter with its
// seal, the envelope heart and the hint caption.
func (l *OpeningLetter) Render(dst Surface) {
	x, y := l.Origin.X, l.Origin.Y

	dst.FillRect(l.Envelope(), envelopeRadius, envelopeColor)

	flap := float64(int(flapLift * (1 - l.Open)))
	tri := l.poly[:3]
	tri[0] = Vec2{x, y + envelopeTop}
	tri[1] = Vec2{x + envelopeWidth/2, y + flapApexY - flap}
	tri[2] = Vec2{x + envelopeWidth, y + envelopeTop}
	dst.FillPolygon(tri, flapColor, BlendNormal)

	slide := float64(int(paperSlide * l.Slide))
	dst.FillRect(Rect{X: x + paperInset, Y: y + paperTop - slide, Width: paperWidth, Height: paperHeight}, paperRadius, ColorWhite)
	dst.FillCircle(Vec2{x + envelopeWidth/2, y + sealY - slide}, sealRadius, ColorPink, BlendNormal)

	heart := l.poly[:6]
	heart[0] = Vec2{x + 40, y + 60}
	heart[1] = Vec2{x + 35, y + 55}
	heart[2] = Vec2{x + 30, y + 60}
	heart[3] = Vec2{x + 40, y + 75}
	heart[4] = Vec2{x + 50, y + 60}
	heart[5] = Vec2{x + 45, y + 55}
	dst.FillPolygon(heart, ColorRed, BlendNormal)

	if l.Hint != "" {
		dst.DrawText(l.Hint, Vec2{x, y + hintOffset}, TextStyle{Size: TextSmall, Color: ColorLightPink})
	}
}
