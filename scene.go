package keepsake

import "math/rand/v2"

// Scene positions relative to the canvas.
const (
	letterX       = 60
	letterYOffset = 60 // above the vertical center
	bloomInsetX   = 90
	bloomInsetY   = 120
)

// Scene owns every entity of the animation. Update advances them once per
// tick and Render draws them back to front: glow hearts, letter, center
// heart, bloom, caption.
type Scene struct {
	Hearts  []*GlowHeart
	Letter  *OpeningLetter
	Heart   *CenterHeart
	Bloom   *RotatingBloom
	Caption *FadingCaption

	cfg      *Config
	entities []Entity
	clock    Clock
}

// NewScene builds the scene for cfg. rng seeds the glow hearts; a nil rng is
// seeded from cfg.Seed. glyphs renders the caption and may be nil, in which
// case the caption still runs its timeline but draws nothing.
func NewScene(cfg Config, rng *rand.Rand, glyphs GlyphSource) *Scene {
	if rng == nil {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	}
	s := &Scene{cfg: &cfg}

	s.Hearts = make([]*GlowHeart, cfg.GlowHearts)
	for i := range s.Hearts {
		s.Hearts[i] = NewGlowHeart(s.cfg, rng)
	}

	center := cfg.Center()
	s.Letter = NewOpeningLetter(s.cfg, Vec2{letterX, center.Y - letterYOffset})
	s.Heart = NewCenterHeart(s.cfg, center, 0)
	s.Bloom = NewRotatingBloom(s.cfg, Vec2{float64(cfg.Width - bloomInsetX), float64(cfg.Height - bloomInsetY)})

	var chars []Glyph
	if glyphs != nil {
		chars = glyphs.Glyphs(cfg.Caption, TextLarge, ColorWhite)
	}
	origin := Vec2{X: float64(int(center.X - glyphsWidth(chars)/2)), Y: cfg.CaptionY}
	s.Caption = NewFadingCaption(s.cfg, cfg.Caption, origin, chars)

	s.entities = make([]Entity, 0, len(s.Hearts)+4)
	for _, h := range s.Hearts {
		s.entities = append(s.entities, h)
	}
	s.entities = append(s.entities, s.Letter, s.Heart, s.Bloom, s.Caption)
	return s
}

// Config returns the configuration the scene was built with.
func (s *Scene) Config() Config { return *s.cfg }

// Clock returns the clock passed to the latest Update.
func (s *Scene) Clock() Clock { return s.clock }

// Entities returns the entities in draw order.
func (s *Scene) Entities() []Entity { return s.entities }

// Update advances every entity once, in draw order.
func (s *Scene) Update(c Clock) {
	s.clock = c
	for _, e := range s.entities {
		e.Update(c)
	}
}

// Render clears dst and draws every entity back to front.
func (s *Scene) Render(dst Surface) {
	dst.Clear(ColorBlack)
	for _, e := range s.entities {
		e.Render(dst)
	}
}

// HitZones returns the clickable zones for the current tick: the center
// heart's circle and the envelope rectangle.
func (s *Scene) HitZones() (heart HitCircle, envelope HitRect) {
	return s.Heart.HitShape(), s.Letter.HitShape()
}

// HitTest reports whether (x, y) lands on the heart or the envelope.
func (s *Scene) HitTest(x, y float64) bool {
	heart, envelope := s.HitZones()
	return heart.Contains(x, y) || envelope.Contains(x, y)
}
