// Package chime synthesizes the scene's sound cues with beep: a soft
// heartbeat on every pulse of the center heart and a short chime when the
// diary opens. Nothing is loaded from files; every cue is a shaped sine.
package chime

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// sine is a fixed-length sine oscillator.
type sine struct {
	freq  float64
	rate  beep.SampleRate
	phase float64
	left  int
}

// Tone returns a sine wave at freq Hz lasting d.
func Tone(freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	return &sine{freq: freq, rate: rate, left: rate.N(d)}
}

func (s *sine) Stream(samples [][2]float64) (n int, ok bool) {
	if s.left <= 0 {
		return 0, false
	}
	for i := range samples {
		if s.left <= 0 {
			return i, true
		}
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += s.freq / float64(s.rate)
		s.phase -= math.Floor(s.phase)
		s.left--
		n++
	}
	return n, true
}

func (s *sine) Err() error { return nil }

// envelope fades a streamer in over attack and out over its final release.
type envelope struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// Shape applies a linear attack/release envelope to a streamer lasting d.
// Samples past d are cut.
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	return &envelope{
		src:     s,
		total:   total,
		attack:  min(rate.N(attack), total),
		release: min(rate.N(release), total),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if left := e.total - e.pos; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := e.gain(e.pos)
		samples[i][0] *= g
		samples[i][1] *= g
		e.pos++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	g := 1.0
	if e.attack > 0 && pos < e.attack {
		g = float64(pos) / float64(e.attack)
	}
	if e.release > 0 {
		if left := e.total - pos; left < e.release {
			g = math.Min(g, float64(left)/float64(e.release))
		}
	}
	return g
}

func (e *envelope) Err() error { return e.src.Err() }

// note is one shaped tone at a relative gain.
func note(freq float64, d time.Duration, gain float64, rate beep.SampleRate) beep.Streamer {
	shaped := Shape(Tone(freq, d, rate), d, d/10, d/2, rate)
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := shaped.Stream(samples)
		for i := 0; i < n; i++ {
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		return n, ok
	})
}

// Heartbeat is a low "lub-dub": two thumps 140ms apart.
func Heartbeat(rate beep.SampleRate) beep.Streamer {
	return beep.Seq(
		note(62, 90*time.Millisecond, 0.8, rate),
		beep.Silence(rate.N(50*time.Millisecond)),
		note(52, 110*time.Millisecond, 0.6, rate),
	)
}

// Chime is a rising three-note arpeggio.
func Chime(rate beep.SampleRate) beep.Streamer {
	const step = 120 * time.Millisecond
	return beep.Seq(
		note(1046.5, step, 0.35, rate), // C6
		note(1318.5, step, 0.35, rate), // E6
		note(1568.0, 2*step, 0.35, rate),
	)
}

// Length returns how many samples s produces before it ends. It drains s.
func Length(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}
