package keepsake

import (
	"errors"
	"fmt"
	"time"
)

// Config holds every tunable constant of the scene. DefaultConfig reproduces
// the reference animation; tuning files overlay individual fields.
type Config struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
	Seed   uint64 `yaml:"seed"`

	// Floating glow hearts.
	GlowHearts        int     `yaml:"glow_hearts"`
	ExclusionSize     float64 `yaml:"exclusion_size"`
	PlacementAttempts int     `yaml:"placement_attempts"`
	BlinkMin          int     `yaml:"blink_min"`
	BlinkMax          int     `yaml:"blink_max"`

	// Center heart.
	HeartSize      float64 `yaml:"heart_size"`
	GrowthRate     float64 `yaml:"growth_rate"`
	MaxScale       float64 `yaml:"max_scale"`
	GrowEpsilon    float64 `yaml:"grow_epsilon"`
	PulseAmplitude float64 `yaml:"pulse_amplitude"`
	PulsePeriodMS  float64 `yaml:"pulse_period_ms"`
	HeartCaption   string  `yaml:"heart_caption"`

	// Fading caption.
	Caption       string  `yaml:"caption"`
	CaptionY      float64 `yaml:"caption_y"`
	RevealCadence int     `yaml:"reveal_cadence"`
	WavePeriodMS  float64 `yaml:"wave_period_ms"`
	WaveAmplitude float64 `yaml:"wave_amplitude"`
	WaveSpread    float64 `yaml:"wave_spread"`

	// Letter prop.
	LetterStep float64 `yaml:"letter_step"`
	LetterHint string  `yaml:"letter_hint"`

	// Bloom.
	BloomSpeed float64 `yaml:"bloom_speed"`
}

// DefaultConfig returns the reference configuration: an 800×600 canvas at
// 60 ticks per second.
func DefaultConfig() Config {
	return Config{
		Title:  "Animated Heart - From Shreyash",
		Width:  800,
		Height: 600,
		TPS:    60,
		Seed:   1,

		GlowHearts:        10,
		ExclusionSize:     360,
		PlacementAttempts: 20,
		BlinkMin:          20,
		BlinkMax:          50,

		HeartSize:      7,
		GrowthRate:     0.005,
		MaxScale:       1,
		GrowEpsilon:    0.001,
		PulseAmplitude: 0.05,
		PulsePeriodMS:  600,
		HeartCaption:   "Love for you",

		Caption:       "From your Shreyash❤️😁",
		CaptionY:      40,
		RevealCadence: 20,
		WavePeriodMS:  400,
		WaveAmplitude: 8,
		WaveSpread:    0.5,

		LetterStep: 0.008,
		LetterHint: "Click the love letter",

		BloomSpeed: 0.5,
	}
}

// TickDuration returns the length of one tick.
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// Center returns the middle of the canvas.
func (c Config) Center() Vec2 {
	return Vec2{float64(c.Width / 2), float64(c.Height / 2)}
}

// Exclusion returns the square around the canvas center that glow hearts
// avoid when they are placed.
func (c Config) Exclusion() Rect {
	half := c.ExclusionSize / 2
	ctr := c.Center()
	return Rect{X: ctr.X - half, Y: ctr.Y - half, Width: c.ExclusionSize, Height: c.ExclusionSize}
}

// Validate reports every field that would make the scene misbehave.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("canvas %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.GlowHearts < 0 {
		errs = append(errs, fmt.Errorf("glow_hearts %d must not be negative", c.GlowHearts))
	}
	if c.PlacementAttempts < 1 {
		errs = append(errs, fmt.Errorf("placement_attempts %d must be at least 1", c.PlacementAttempts))
	}
	if c.BlinkMin < 1 || c.BlinkMax < c.BlinkMin {
		errs = append(errs, fmt.Errorf("blink range [%d,%d] is invalid", c.BlinkMin, c.BlinkMax))
	}
	if c.MaxScale <= 0 {
		errs = append(errs, fmt.Errorf("max_scale %v must be positive", c.MaxScale))
	}
	if c.GrowthRate <= 0 || c.GrowthRate >= 1 {
		errs = append(errs, fmt.Errorf("growth_rate %v must be in (0,1)", c.GrowthRate))
	}
	if c.GrowEpsilon <= 0 {
		errs = append(errs, fmt.Errorf("grow_epsilon %v must be positive", c.GrowEpsilon))
	}
	if c.PulsePeriodMS <= 0 || c.WavePeriodMS <= 0 {
		errs = append(errs, errors.New("pulse_period_ms and wave_period_ms must be positive"))
	}
	if c.RevealCadence < 1 {
		errs = append(errs, fmt.Errorf("reveal_cadence %d must be at least 1", c.RevealCadence))
	}
	if c.LetterStep <= 0 || c.LetterStep > 1 {
		errs = append(errs, fmt.Errorf("letter_step %v must be in (0,1]", c.LetterStep))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("keepsake: invalid config: %w", errors.Join(errs...))
}
