package keepsake

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"testing"
)

// fakeOverlay records spawns and lets tests close instances.
type fakeOverlay struct {
	next     OverlayHandle
	alive    map[OverlayHandle]bool
	spawns   int
	spawnErr error
	pollErr  error
	panicOn  string
}

func newFakeOverlay() *fakeOverlay {
	return &fakeOverlay{alive: make(map[OverlayHandle]bool)}
}

func (f *fakeOverlay) Spawn() (OverlayHandle, error) {
	if f.panicOn == "spawn" {
		panic("spawn exploded")
	}
	if f.spawnErr != nil {
		return 0, f.spawnErr
	}
	f.spawns++
	f.next++
	f.alive[f.next] = true
	return f.next, nil
}

func (f *fakeOverlay) Poll(h OverlayHandle) (OverlayStatus, error) {
	if f.panicOn == "poll" {
		panic("poll exploded")
	}
	if f.pollErr != nil {
		return OverlayAlive, f.pollErr
	}
	if f.alive[h] {
		return OverlayAlive, nil
	}
	return OverlayClosed, nil
}

func (f *fakeOverlay) closeAll() {
	for h := range f.alive {
		delete(f.alive, h)
	}
}

func TestGuardStateTransitions(t *testing.T) {
	var s GuardState
	next, spawn := s.Trigger()
	if !spawn || !next.Open {
		t.Fatalf("Trigger from closed = %+v spawn %v, want open and spawn", next, spawn)
	}
	again, spawn := next.Trigger()
	if spawn || again != next {
		t.Errorf("Trigger while open = %+v spawn %v, want no-op", again, spawn)
	}

	opened := next.Spawned(7, nil)
	if opened != (GuardState{Open: true, Handle: 7}) {
		t.Errorf("Spawned = %+v", opened)
	}
	if failed := next.Spawned(7, errors.New("boom")); failed != (GuardState{}) {
		t.Errorf("failed spawn = %+v, want closed", failed)
	}

	tests := []struct {
		name   string
		status OverlayStatus
		err    error
		open   bool
	}{
		{"alive", OverlayAlive, nil, true},
		{"closed", OverlayClosed, nil, false},
		{"error", OverlayAlive, errors.New("gone"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := opened.Polled(tt.status, tt.err)
			if got.Open != tt.open {
				t.Errorf("Polled(%v, %v).Open = %v, want %v", tt.status, tt.err, got.Open, tt.open)
			}
			if !got.Open && got.Handle != 0 {
				t.Errorf("closed state kept handle %d", got.Handle)
			}
		})
	}
}

func TestGuardSpawnsOnce(t *testing.T) {
	ov := newFakeOverlay()
	g := NewOverlayGuard(ov)

	if !g.Trigger() {
		t.Fatal("first trigger should spawn")
	}
	if g.Trigger() {
		t.Error("second trigger while open should not spawn")
	}
	g.Poll()
	if ov.spawns != 1 || g.Spawns() != 1 {
		t.Errorf("spawns = %d (guard %d), want 1", ov.spawns, g.Spawns())
	}
	if !g.IsOpen() {
		t.Error("guard should stay open while the overlay is alive")
	}

	ov.closeAll()
	g.Poll()
	if g.IsOpen() {
		t.Fatal("guard should close after the overlay reports closed")
	}
	if g.Closes() != 1 {
		t.Errorf("Closes = %d, want 1", g.Closes())
	}

	if !g.Trigger() {
		t.Error("trigger after close should spawn again")
	}
	if ov.spawns != 2 {
		t.Errorf("spawns = %d, want 2", ov.spawns)
	}
}

func TestGuardSpawnFailureStaysClosed(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(os.Stderr)

	ov := newFakeOverlay()
	ov.spawnErr = errors.New("no display")
	g := NewOverlayGuard(ov)
	if g.Trigger() {
		t.Error("failed spawn reported as spawned")
	}
	if g.IsOpen() {
		t.Error("guard must stay closed after a failed spawn")
	}
	if g.Failures() != 1 {
		t.Errorf("Failures = %d, want 1", g.Failures())
	}
	if !strings.Contains(buf.String(), "no display") {
		t.Errorf("log = %q, want the spawn error", buf.String())
	}

	ov.spawnErr = nil
	if !g.Trigger() {
		t.Error("trigger after a failed spawn should retry")
	}
}

func TestGuardPanicsAreContained(t *testing.T) {
	SetLogOutput(nil)
	defer SetLogOutput(os.Stderr)

	ov := newFakeOverlay()
	ov.panicOn = "spawn"
	g := NewOverlayGuard(ov)
	if g.Trigger() || g.IsOpen() {
		t.Error("panicking spawn must leave the guard closed")
	}

	ov.panicOn = ""
	if !g.Trigger() {
		t.Fatal("expected spawn")
	}
	ov.panicOn = "poll"
	g.Poll()
	if g.IsOpen() {
		t.Error("panicking poll must close the guard")
	}
}

func TestGuardPollErrorCloses(t *testing.T) {
	ov := newFakeOverlay()
	g := NewOverlayGuard(ov)
	g.Trigger()
	ov.pollErr = errors.New("handle no longer resolves")
	g.Poll()
	if g.IsOpen() {
		t.Error("poll error must close the guard")
	}
}

func TestGuardNilOverlay(t *testing.T) {
	SetLogOutput(nil)
	defer SetLogOutput(os.Stderr)

	g := NewOverlayGuard(nil)
	if g.Trigger() || g.IsOpen() {
		t.Error("a guard without an overlay must never open")
	}
}

func TestGuardHooks(t *testing.T) {
	ov := newFakeOverlay()
	g := NewOverlayGuard(ov)
	var opened []OverlayHandle
	closed := 0
	g.OnOpen = func(h OverlayHandle) { opened = append(opened, h) }
	g.OnClose = func() { closed++ }

	g.Trigger()
	g.Poll()
	ov.closeAll()
	g.Poll()
	g.Poll()

	if len(opened) != 1 || opened[0] != 1 {
		t.Errorf("OnOpen handles = %v, want [1]", opened)
	}
	if closed != 1 {
		t.Errorf("OnClose calls = %d, want 1", closed)
	}
}
