package diary

import (
	"errors"
	"time"
)

// ErrClosed is returned when a closed session is used.
var ErrClosed = errors.New("diary: session closed")

// View is the page a session is showing.
type View uint8

const (
	ViewWriting View = iota // entry form
	ViewSaved               // save confirmation
	ViewThanks              // thank-you note
)

func (v View) String() string {
	switch v {
	case ViewWriting:
		return "writing"
	case ViewSaved:
		return "saved"
	case ViewThanks:
		return "thanks"
	}
	return "unknown"
}

// ThanksDelay is how long the save confirmation shows before the thank-you
// note appears.
const ThanksDelay = 600 * time.Millisecond

// Session is one open diary. It advances from writing to the save
// confirmation to the thank-you note; Close ends it from any view.
type Session struct {
	Heart *HeartAnimation

	store   Store
	view    View
	sinceOK time.Duration
	closed  bool
	lastErr error
	saves   int
}

// NewSession opens a session saving to store.
func NewSession(store Store) *Session {
	return &Session{Heart: NewHeartAnimation(), store: store}
}

// View returns the current view.
func (s *Session) View() View { return s.view }

// Closed reports whether the session has been closed.
func (s *Session) Closed() bool { return s.closed }

// Err returns the error of the latest failed save, if any.
func (s *Session) Err() error { return s.lastErr }

// Saves returns how many times the entry was saved.
func (s *Session) Saves() int { return s.saves }

// Update advances the heart and the confirmation timer by dt.
func (s *Session) Update(dt time.Duration) {
	if s.closed {
		return
	}
	s.Heart.Update(float32(dt.Seconds()))
	if s.view == ViewSaved {
		s.sinceOK += dt
		if s.sinceOK >= ThanksDelay {
			s.view = ViewThanks
		}
	}
}

// Save stores entry and shows the confirmation. On failure the session stays
// on its current view and the error is kept for display. Saving again from a
// later view overwrites the entry and restarts the confirmation.
func (s *Session) Save(entry string) error {
	if s.closed {
		return ErrClosed
	}
	if err := s.store.Save(entry); err != nil {
		s.lastErr = err
		return err
	}
	s.lastErr = nil
	s.saves++
	s.view = ViewSaved
	s.sinceOK = 0
	return nil
}

// Acknowledge dismisses the save confirmation and moves straight to the
// thank-you note.
func (s *Session) Acknowledge() {
	if !s.closed && s.view == ViewSaved {
		s.view = ViewThanks
	}
}

// Close ends the session.
func (s *Session) Close() {
	s.closed = true
}
