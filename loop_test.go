package keepsake

import (
	"context"
	"errors"
	"testing"
	"time"
)

// sliceSource is an EventSource that releases a fixed batch on a given tick.
type sliceSource struct {
	tick   int
	at     int
	events []Event
}

func (s *sliceSource) PollEvents(buf []Event) []Event {
	s.tick++
	if s.tick == s.at {
		buf = append(buf, s.events...)
	}
	return buf
}

func TestLoopHeartReachesGrowingAt360(t *testing.T) {
	scene := NewScene(DefaultConfig(), newTestRand(), nil)
	l := NewLoop(scene, nil, nil)
	dl := NewDrawList()

	var phases []HeartPhase
	l.OnPhase = func(p HeartPhase) { phases = append(phases, p) }

	for i := 0; i < FullSweep-1; i++ {
		l.Tick(dl)
	}
	if scene.Heart.Phase != HeartDrawing {
		t.Fatalf("phase after 359 ticks = %v", scene.Heart.Phase)
	}
	l.Tick(dl)
	if scene.Heart.Phase != HeartGrowing {
		t.Errorf("phase after 360 ticks = %v, want growing", scene.Heart.Phase)
	}
	if len(phases) != 1 || phases[0] != HeartGrowing {
		t.Errorf("OnPhase calls = %v, want [growing]", phases)
	}
	if c := l.Clock(); c.Frame != FullSweep || c.Elapsed != FullSweep*(time.Second/60) {
		t.Errorf("clock = %+v", c)
	}
}

func TestLoopClickOpensOverlayOnce(t *testing.T) {
	ov := newFakeOverlay()
	guard := NewOverlayGuard(ov)
	scene := NewScene(DefaultConfig(), newTestRand(), nil)
	l := NewLoop(scene, guard, nil)
	dl := NewDrawList()

	for i := 0; i < 600; i++ {
		l.Tick(dl)
	}
	if guard.IsOpen() {
		t.Fatal("guard opened without a click")
	}

	l.Queue.InjectClick(400, 300)
	l.Tick(dl)
	if !guard.IsOpen() || ov.spawns != 1 {
		t.Fatalf("after click: open %v spawns %d, want open with 1 spawn", guard.IsOpen(), ov.spawns)
	}

	l.Queue.InjectClick(400, 300)
	l.Queue.InjectClick(100, 300)
	l.Tick(dl)
	l.Tick(dl)
	if ov.spawns != 1 {
		t.Errorf("spawns while open = %d, want 1", ov.spawns)
	}

	ov.closeAll()
	l.Tick(dl)
	if guard.IsOpen() {
		t.Error("guard should close once the overlay is gone")
	}

	l.Queue.InjectClick(100, 300)
	l.Tick(dl)
	if ov.spawns != 2 {
		t.Errorf("spawns after reopening = %d, want 2", ov.spawns)
	}
}

func TestLoopQuit(t *testing.T) {
	src := &sliceSource{at: 3, events: []Event{{Kind: EventQuit}}}
	scene := NewScene(DefaultConfig(), newTestRand(), nil)
	l := NewLoop(scene, nil, src)
	dl := NewDrawList()

	ticks := 0
	for l.Tick(dl) {
		ticks++
		if ticks > 10 {
			t.Fatal("loop did not stop")
		}
	}
	if ticks != 2 {
		t.Errorf("ticks before quit = %d, want 2", ticks)
	}
	if !l.Quitting() {
		t.Error("expected Quitting")
	}
	if l.Tick(dl) {
		t.Error("Tick after quit should return false")
	}
	if l.Clock().Frame != 3 {
		t.Errorf("Frame = %d, want 3", l.Clock().Frame)
	}
}

func TestLoopResetsDrawList(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GlowHearts = 0
	l := NewLoop(NewScene(cfg, newTestRand(), nil), nil, nil)
	dl := NewDrawList()
	l.Tick(dl)
	n := dl.Len()
	l.Tick(dl)
	if dl.Len() != n {
		t.Errorf("Len after second tick = %d, want %d", dl.Len(), n)
	}
	if dl.Count(CommandClear) != 1 {
		t.Errorf("clears = %d, want 1", dl.Count(CommandClear))
	}
}

func TestLoopRun(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TPS = 1000
	l := NewLoop(NewScene(cfg, newTestRand(), nil), nil, nil)

	presents := 0
	err := l.Run(context.Background(), NewDrawList(), func() error {
		presents++
		if presents == 5 {
			l.Quit()
		}
		return nil
	})
	if err != nil {
		t.Fatalf("Run = %v", err)
	}
	if presents != 6 {
		t.Errorf("presents = %d, want 6", presents)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l2 := NewLoop(NewScene(cfg, newTestRand(), nil), nil, nil)
	if err := l2.Run(ctx, NewDrawList(), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("Run with canceled context = %v, want context.Canceled", err)
	}

	boom := errors.New("present failed")
	l3 := NewLoop(NewScene(cfg, newTestRand(), nil), nil, nil)
	if err := l3.Run(context.Background(), NewDrawList(), func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("Run = %v, want %v", err, boom)
	}
}

func TestLoopSetScene(t *testing.T) {
	cfg := DefaultConfig()
	l := NewLoop(NewScene(cfg, newTestRand(), nil), nil, nil)
	dl := NewDrawList()
	for i := 0; i < 10; i++ {
		l.Tick(dl)
	}
	cfg.TPS = 30
	next := NewScene(cfg, newTestRand(), nil)
	l.SetScene(next)
	l.Tick(dl)
	if l.Scene != next || next.Heart.Progress != 1 {
		t.Errorf("new scene progress = %d, want 1", next.Heart.Progress)
	}
	if l.Clock().Delta != time.Second/30 {
		t.Errorf("Delta = %v, want %v", l.Clock().Delta, time.Second/30)
	}
}
