package session

import (
	"sync"
	"time"

	"github.com/founder-match/founder-match-web/internal/auth"
	"github.com/founder-match/founder-match-web/internal/profiles"
	"github.com/founder-match/founder-match-web/internal/projects"
	"github.com/google/uuid"
)

// DefaultIdleTimeout applies when the registry is built with a zero timeout.
const DefaultIdleTimeout = 30 * time.Minute

// APIs are shared by every session's stores.
type APIs struct {
	Users    auth.UserAPI
	Profiles profiles.ProfileAPI
	Projects projects.ProjectAPI
}

// Registry is the in-memory session table. Nothing survives a restart.
type Registry struct {
	apis        APIs
	idleTimeout time.Duration
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewRegistry(apis APIs, idleTimeout time.Duration) *Registry {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Registry{
		apis:        apis,
		idleTimeout: idleTimeout,
		now:         time.Now,
		sessions:    make(map[string]*Session),
	}
}

// Create starts a fresh session with empty stores.
func (r *Registry) Create() *Session {
	s := &Session{
		ID:       uuid.New().String(),
		Auth:     auth.NewStore(r.apis.Users),
		Profiles: profiles.NewStore(r.apis.Profiles),
		Projects: projects.NewStore(r.apis.Projects),
		lastSeen: r.now(),
	}
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns a live session and marks it as used.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	s, ok := r.sessions[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	now := r.now()
	if s.idleSince(now) > r.idleTimeout {
		r.Delete(id)
		return nil, false
	}
	s.touch(now)
	return s, true
}

func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of sessions held, expired ones included until swept.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// Sweep drops every session idle for longer than the timeout and returns how
// many were removed.
func (r *Registry) Sweep() int {
	now := r.now()
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, s := range r.sessions {
		if s.idleSince(now) > r.idleTimeout {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}
