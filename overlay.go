package keepsake

import (
	"errors"
	"fmt"
	"sync"
)

// OverlayHandle identifies one spawned overlay instance. Its meaning belongs
// to the Overlay that issued it.
type OverlayHandle uint64

// OverlayStatus is the liveness of an overlay instance.
type OverlayStatus uint8

const (
	OverlayAlive  OverlayStatus = iota // still running
	OverlayClosed                      // destroyed; the handle is stale
)

func (s OverlayStatus) String() string {
	if s == OverlayAlive {
		return "alive"
	}
	return "closed"
}

// Overlay is the external modal sub-application. Spawn must not block on the
// overlay's lifetime and Poll must return immediately.
type Overlay interface {
	Spawn() (OverlayHandle, error)
	Poll(h OverlayHandle) (OverlayStatus, error)
}

// ErrNoOverlay is returned by a spawn attempt on a guard that has no overlay.
var ErrNoOverlay = errors.New("keepsake: no overlay configured")

// GuardState is the open/closed state of the overlay guard. A zero value is
// Closed. Transitions are pure; OverlayGuard applies them under its lock.
type GuardState struct {
	Open   bool
	Handle OverlayHandle // valid only while Open
}

// Trigger handles a qualifying click. From Closed it moves to Open and asks
// for a spawn; while Open it is a no-op.
func (s GuardState) Trigger() (next GuardState, spawn bool) {
	if s.Open {
		return s, false
	}
	return GuardState{Open: true}, true
}

// Spawned records the result of the spawn requested by Trigger. A failed spawn
// falls back to Closed.
func (s GuardState) Spawned(h OverlayHandle, err error) GuardState {
	if err != nil || !s.Open {
		return GuardState{}
	}
	return GuardState{Open: true, Handle: h}
}

// Polled applies a liveness report. A closed report or a failed poll both
// clear the guard.
func (s GuardState) Polled(status OverlayStatus, err error) GuardState {
	if !s.Open || err != nil || status == OverlayClosed {
		return GuardState{}
	}
	return s
}

// OverlayGuard keeps at most one overlay instance alive. It is safe for
// concurrent use, which matters when an overlay reports from its own goroutine.
type OverlayGuard struct {
	// OnOpen is called after a successful spawn, outside the lock.
	OnOpen func(OverlayHandle)
	// OnClose is called after the guard returns to Closed, outside the lock.
	OnClose func()

	mu      sync.Mutex
	state   GuardState
	overlay Overlay
	spawns  int
	fails   int
	closes  int
}

// NewOverlayGuard creates a Closed guard around overlay. A nil overlay makes
// every trigger a failed spawn.
func NewOverlayGuard(overlay Overlay) *OverlayGuard {
	return &OverlayGuard{overlay: overlay}
}

// Trigger requests an overlay. It reports whether a new instance was spawned.
func (g *OverlayGuard) Trigger() bool {
	g.mu.Lock()
	next, spawn := g.state.Trigger()
	if !spawn {
		g.mu.Unlock()
		return false
	}
	g.state = next
	h, err := g.spawn()
	g.state = g.state.Spawned(h, err)
	if err != nil {
		g.fails++
	} else {
		g.spawns++
	}
	onOpen := g.OnOpen
	g.mu.Unlock()

	if err != nil {
		logf("overlay: spawn failed: %v", err)
		return false
	}
	if onOpen != nil {
		onOpen(h)
	}
	return true
}

func (g *OverlayGuard) spawn() (h OverlayHandle, err error) {
	if g.overlay == nil {
		return 0, ErrNoOverlay
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("keepsake: overlay spawn panicked: %v", r)
		}
	}()
	return g.overlay.Spawn()
}

// Poll checks the live overlay, if any, and clears the guard when it is gone.
// Failures are never propagated; a poll that errors or panics counts as closed.
func (g *OverlayGuard) Poll() {
	g.mu.Lock()
	if !g.state.Open {
		g.mu.Unlock()
		return
	}
	status, err := g.poll(g.state.Handle)
	g.state = g.state.Polled(status, err)
	closed := !g.state.Open
	if closed {
		g.closes++
	}
	onClose := g.OnClose
	g.mu.Unlock()

	if err != nil {
		debugf("overlay: poll failed, treating as closed: %v", err)
	}
	if closed && onClose != nil {
		onClose()
	}
}

func (g *OverlayGuard) poll(h OverlayHandle) (status OverlayStatus, err error) {
	if g.overlay == nil {
		return OverlayClosed, ErrNoOverlay
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("keepsake: overlay poll panicked: %v", r)
		}
	}()
	return g.overlay.Poll(h)
}

// State returns a snapshot of the guard state.
func (g *OverlayGuard) State() GuardState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// IsOpen reports whether an overlay is believed to be alive.
func (g *OverlayGuard) IsOpen() bool {
	return g.State().Open
}

// Spawns returns how many overlays were spawned successfully.
func (g *OverlayGuard) Spawns() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.spawns
}

// Failures returns how many spawn attempts failed.
func (g *OverlayGuard) Failures() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.fails
}

// Closes returns how many times the guard went from Open back to Closed.
func (g *OverlayGuard) Closes() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.closes
}
