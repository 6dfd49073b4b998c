package keepsake

import (
	"context"
	"time"
)

// Loop is the fixed-tick scheduler. Each Tick runs, in order: the scripted
// test step, the clock advance, Scene.Update, Scene.Render, event collection
// (injected queue first, then the real source), routing, and the guard poll.
// A Loop is driven from one goroutine.
type Loop struct {
	Scene  *Scene
	Guard  *OverlayGuard
	Source EventSource // may be nil
	Queue  *EventQueue

	// OnPhase is called when the center heart enters a new phase.
	OnPhase func(HeartPhase)
	// OnBeat is called once per completed pulse cycle.
	OnBeat func()
	// OnScreenshot receives screenshot requests from the test runner. The
	// backend captures the frame rendered by the same tick.
	OnScreenshot func(label string)

	router InputRouter
	runner *TestRunner
	clock  Clock
	tick   time.Duration
	events []Event
	quit   bool

	lastPhase HeartPhase
	lastBeats uint64
	stats     debugStats
}

// NewLoop creates a loop over scene. The tick length comes from the
// scene's configuration.
func NewLoop(scene *Scene, guard *OverlayGuard, src EventSource) *Loop {
	if guard == nil {
		guard = NewOverlayGuard(nil)
	}
	l := &Loop{
		Scene:  scene,
		Guard:  guard,
		Source: src,
		Queue:  &EventQueue{},
		tick:   scene.cfg.TickDuration(),
		events: make([]Event, 0, 8),
	}
	l.router.Guard = guard
	l.lastPhase = scene.Heart.Phase
	return l
}

// SetTestRunner attaches a scripted runner. Its step runs at the start of
// every tick.
func (l *Loop) SetTestRunner(r *TestRunner) { l.runner = r }

// SetScene swaps in a rebuilt scene, e.g. after a tuning reload. The clock
// restarts so the new scene plays from its first phase; the guard and any
// open overlay are left untouched.
func (l *Loop) SetScene(s *Scene) {
	l.Scene = s
	l.tick = s.cfg.TickDuration()
	l.clock = Clock{}
	l.lastPhase = s.Heart.Phase
	l.lastBeats = 0
}

// Clock returns the clock of the latest tick.
func (l *Loop) Clock() Clock { return l.clock }

// Quitting reports whether a quit event has been seen.
func (l *Loop) Quitting() bool { return l.quit }

// Quit makes the next Tick the last one.
func (l *Loop) Quit() { l.Queue.InjectQuit() }

// Tick runs one tick and renders it into dst, resetting dst first when it
// has a Reset method (as DrawList does). It returns false once a quit event
// has been seen; the tick that sees it is still fully processed.
func (l *Loop) Tick(dst Surface) bool {
	if l.quit {
		return false
	}
	if l.runner != nil {
		l.runner.step(l)
	}

	l.clock.Frame++
	l.clock.Elapsed += l.tick
	l.clock.Delta = l.tick

	debug := debugEnabled()
	var t0 time.Time
	if debug {
		t0 = time.Now()
	}
	l.Scene.Update(l.clock)
	var t1 time.Time
	if debug {
		t1 = time.Now()
	}
	if r, ok := dst.(interface{ Reset() }); ok {
		r.Reset()
	}
	l.Scene.Render(dst)
	var t2 time.Time
	if debug {
		t2 = time.Now()
	}

	l.events = l.Queue.PollEvents(l.events[:0])
	if l.Source != nil {
		l.events = l.Source.PollEvents(l.events)
	}
	res := l.router.Route(l.events, l.Scene)
	l.Guard.Poll()
	if res.Quit {
		l.quit = true
	}

	if debug {
		cmds := 0
		if d, ok := dst.(*DrawList); ok {
			cmds = d.Len()
		}
		l.stats.add(t1.Sub(t0), t2.Sub(t1), time.Since(t2), cmds)
		l.stats.flush(l.clock.Frame)
	}

	l.notify()
	return !l.quit
}

func (l *Loop) notify() {
	h := l.Scene.Heart
	if h.Phase != l.lastPhase {
		l.lastPhase = h.Phase
		debugf("heart: %s at frame %d", h.Phase, l.clock.Frame)
		if l.OnPhase != nil {
			l.OnPhase(h.Phase)
		}
	}
	if b := h.Beats(); b != l.lastBeats {
		l.lastBeats = b
		if l.OnBeat != nil {
			l.OnBeat()
		}
	}
}

func (l *Loop) screenshot(label string) {
	if l.OnScreenshot == nil {
		debugf("screenshot %q requested with no backend", label)
		return
	}
	l.OnScreenshot(label)
}

// Run drives Tick at the configured rate until quit or ctx is done. present
// is called after every tick with the rendered frame; a present error stops
// the loop and is returned. Backends that own their own frame pacing (such
// as Ebitengine) call Tick directly instead.
func (l *Loop) Run(ctx context.Context, dst Surface, present func() error) error {
	ticker := time.NewTicker(l.tick)
	defer ticker.Stop()
	for {
		running := l.Tick(dst)
		if present != nil {
			if err := present(); err != nil {
				return err
			}
		}
		if !running {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
