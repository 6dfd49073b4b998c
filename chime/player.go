package chime

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate of every cue.
const SampleRate = beep.SampleRate(44100)

// Player mixes cues onto the speaker. A Player that failed to open, or was
// never opened, accepts every call and plays nothing.
type Player struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	volume *effects.Volume
	ready  bool
	muted  bool
	played int
}

// NewPlayer creates a player at the given volume in halvings from full
// scale: 0 is full volume, -1 half, and so on.
func NewPlayer(volume float64) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		mixer:  mixer,
		volume: &effects.Volume{Streamer: mixer, Base: 2, Volume: volume},
	}
}

// Open initializes the speaker and starts the mixer.
func (p *Player) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("chime: open speaker: %w", err)
	}
	speaker.Play(p.volume)
	p.ready = true
	return nil
}

// Close stops playback.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Clear()
	p.ready = false
}

// SetMuted silences or restores output. Cues triggered while muted are
// dropped.
func (p *Player) SetMuted(on bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = on
	if p.ready {
		speaker.Lock()
		p.volume.Silent = on
		speaker.Unlock()
	} else {
		p.volume.Silent = on
	}
}

// Muted reports whether output is silenced.
func (p *Player) Muted() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.muted
}

// Played returns how many cues were sent to the speaker.
func (p *Player) Played() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.played
}

// Beat plays the heartbeat.
func (p *Player) Beat() { p.play(Heartbeat(SampleRate)) }

// Chime plays the diary chime.
func (p *Player) Chime() { p.play(Chime(SampleRate)) }

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || p.muted {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played++
}
