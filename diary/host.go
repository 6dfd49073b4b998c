package diary

import (
	"errors"
	"sync"

	"github.com/phanxgames/keepsake"
)

// ErrUnknownHandle is returned when polling a handle the host never issued
// or has since replaced.
var ErrUnknownHandle = errors.New("diary: unknown handle")

// Host owns the current session and implements keepsake.Overlay. Frontends
// embed or wrap a Host and render its Current session.
type Host struct {
	// OnSpawn, when set, runs after a new session is created. Frontends use
	// it to rebuild their widgets for the session.
	OnSpawn func(*Session)

	mu      sync.Mutex
	store   Store
	session *Session
	handle  keepsake.OverlayHandle
	spawned int
}

// NewHost creates a host whose sessions save to store.
func NewHost(store Store) *Host {
	return &Host{store: store}
}

// Spawn opens a new session. Any previous session is closed first.
func (h *Host) Spawn() (keepsake.OverlayHandle, error) {
	h.mu.Lock()
	if h.store == nil {
		h.mu.Unlock()
		return 0, errors.New("diary: no store configured")
	}
	if h.session != nil {
		h.session.Close()
	}
	h.spawned++
	h.handle = keepsake.OverlayHandle(h.spawned)
	h.session = NewSession(h.store)
	s, hd, onSpawn := h.session, h.handle, h.OnSpawn
	h.mu.Unlock()

	if onSpawn != nil {
		onSpawn(s)
	}
	return hd, nil
}

// Poll reports whether the session behind handle is still open.
func (h *Host) Poll(handle keepsake.OverlayHandle) (keepsake.OverlayStatus, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil || handle != h.handle {
		return keepsake.OverlayClosed, ErrUnknownHandle
	}
	if h.session.Closed() {
		return keepsake.OverlayClosed, nil
	}
	return keepsake.OverlayAlive, nil
}

// Current returns the open session, or nil when none is open.
func (h *Host) Current() *Session {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.session == nil || h.session.Closed() {
		return nil
	}
	return h.session
}
