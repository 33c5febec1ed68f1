// Package session keeps one set of client stores per browser.
package session

import (
	"sync"
	"time"

	"github.com/founder-match/founder-match-web/internal/auth"
	"github.com/founder-match/founder-match-web/internal/profiles"
	"github.com/founder-match/founder-match-web/internal/projects"
)

// Flash kinds.
const (
	FlashSuccess = "success"
	FlashError   = "error"
)

// Flash is a one-shot alert shown on the next rendered page.
type Flash struct {
	Kind    string
	Message string
}

// Session is the state one browser sees.
type Session struct {
	ID       string
	Auth     *auth.Store
	Profiles *profiles.Store
	Projects *projects.Store

	mu       sync.Mutex
	flash    *Flash
	lastSeen time.Time
}

// SetFlash replaces any pending alert.
func (s *Session) SetFlash(kind, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.flash = &Flash{Kind: kind, Message: message}
}

// PopFlash returns the pending alert and clears it.
func (s *Session) PopFlash() (Flash, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.flash == nil {
		return Flash{}, false
	}
	f := *s.flash
	s.flash = nil
	return f, true
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}
