// Package auth holds the per-session login state and the member directory.
package auth

import (
	"context"
	"sync"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/inflight"
	"github.com/founder-match/founder-match-web/internal/users/domain"
)

const (
	msgSignupFailed = "Sign-up failed."
	msgLoginFailed  = "Login failed."
	msgUsersFailed  = "Failed to load members."
)

// UserAPI is the slice of the users resource the store needs.
type UserAPI interface {
	Signup(ctx context.Context, req domain.CreateRequest) (*domain.User, error)
	Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// State is a read-only copy of the store.
type State struct {
	User          *domain.User  `json:"user"`
	Users         []domain.User `json:"users"`
	IsLoggedIn    bool          `json:"isLoggedIn"`
	IsLoading     bool          `json:"isLoading"`
	IsListLoading bool          `json:"isListLoading"`
	Error         string        `json:"error,omitempty"`
}

type Store struct {
	api UserAPI

	mu    sync.Mutex
	state State
	seq   inflight.Sequencer
}

func NewStore(api UserAPI) *Store {
	return &Store{api: api}
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	if s.state.User != nil {
		u := *s.state.User
		out.User = &u
	}
	out.Users = append([]domain.User(nil), s.state.Users...)
	return out
}

// UserID returns the logged-in user's id.
func (s *Store) UserID() (int64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.state.IsLoggedIn || s.state.User == nil {
		return 0, false
	}
	return s.state.User.ID, true
}

func (s *Store) ResetError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

// Signup registers a new account. It does not log the user in.
func (s *Store) Signup(ctx context.Context, req domain.CreateRequest) (*domain.User, error) {
	t := s.begin("signup", "signup")

	user, err := s.api.Signup(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgSignupFailed)
		}
		return nil, err
	}
	return user, nil
}

// Login authenticates and then loads the full user record.
func (s *Store) Login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	t := s.begin("login", "user")

	user, err := s.login(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgLoginFailed)
		}
		return nil, err
	}
	if latest {
		s.state.User = user
		s.state.IsLoggedIn = true
	}
	return user, nil
}

func (s *Store) login(ctx context.Context, req domain.LoginRequest) (*domain.User, error) {
	resp, err := s.api.Login(ctx, req)
	if err != nil {
		return nil, err
	}
	return s.api.GetUser(ctx, resp.UserID)
}

// Logout forgets the user. A login still in flight will not log the user back in.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Finish(s.seq.Begin("logout", "user"))
	s.state.User = nil
	s.state.IsLoggedIn = false
	s.state.Error = ""
}

// FetchUsers loads the member directory.
func (s *Store) FetchUsers(ctx context.Context) ([]domain.User, error) {
	t := s.begin("fetchUsers", "users")

	list, err := s.api.ListUsers(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgUsersFailed)
		}
		return nil, err
	}
	if latest {
		s.state.Users = list
	}
	return list, nil
}

func (s *Store) begin(action, field string) inflight.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.seq.Begin(action, field)
	s.state.Error = ""
	s.refreshFlags()
	return t
}

// finish must be called with mu held.
func (s *Store) finish(t inflight.Ticket) bool {
	latest := s.seq.Finish(t)
	s.refreshFlags()
	return latest
}

func (s *Store) refreshFlags() {
	s.state.IsLoading = s.seq.Busy("signup", "login")
	s.state.IsListLoading = s.seq.Busy("fetchUsers")
}
