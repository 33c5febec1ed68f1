package profiles

import (
	"context"
	"net/http"
	"sync"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/inflight"
	"github.com/founder-match/founder-match-web/internal/profiles/domain"
)

const (
	msgFetchFailed  = "Failed to load the profile."
	msgListFailed   = "Failed to load founder profiles."
	msgCreateFailed = "Something went wrong while creating the profile."
	msgUpdateFailed = "Something went wrong while updating the profile."
	msgDeleteFailed = "Something went wrong while deleting the profile."
)

// ProfileAPI is the slice of the profile resource the store needs.
type ProfileAPI interface {
	Create(ctx context.Context, userID int64, req domain.Request) (*domain.FounderProfile, error)
	Update(ctx context.Context, userID int64, req domain.Request) (*domain.FounderProfile, error)
	Get(ctx context.Context, userID int64) (*domain.FounderProfile, error)
	Delete(ctx context.Context, userID int64) error
	List(ctx context.Context) ([]domain.FounderProfile, error)
}

// State is a read-only copy of the store.
type State struct {
	Profile       *domain.FounderProfile  `json:"profile"`
	Profiles      []domain.FounderProfile `json:"profiles"`
	IsLoading     bool                    `json:"isLoading"`
	IsListLoading bool                    `json:"isListLoading"`
	Error         string                  `json:"error,omitempty"`
}

type Store struct {
	api ProfileAPI

	mu    sync.Mutex
	state State
	seq   inflight.Sequencer
}

func NewStore(api ProfileAPI) *Store {
	return &Store{api: api}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	if s.state.Profile != nil {
		p := *s.state.Profile
		out.Profile = &p
	}
	out.Profiles = append([]domain.FounderProfile(nil), s.state.Profiles...)
	return out
}

func (s *Store) ResetError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

// Clear forgets everything, e.g. when the user logs out. Calls still in flight
// will not repopulate the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq.Finish(s.seq.Begin("clear", "profile"))
	s.seq.Finish(s.seq.Begin("clear", "profiles"))
	s.state = State{}
	s.refreshFlags()
}

// FetchProfile loads the user's profile. A user without a profile yields
// (nil, nil) and no error in the store.
func (s *Store) FetchProfile(ctx context.Context, userID int64) (*domain.FounderProfile, error) {
	t := s.begin("fetch", "profile")

	profile, err := s.api.Get(ctx, userID)
	if apiclient.IsStatus(err, http.StatusBadRequest, http.StatusNotFound) {
		profile, err = nil, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgFetchFailed)
		}
		return nil, err
	}
	if latest {
		s.state.Profile = profile
	}
	return profile, nil
}

// FetchProfiles loads the founder directory.
func (s *Store) FetchProfiles(ctx context.Context) ([]domain.FounderProfile, error) {
	t := s.begin("list", "profiles")

	list, err := s.api.List(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgListFailed)
		}
		return nil, err
	}
	if latest {
		s.state.Profiles = list
	}
	return list, nil
}

func (s *Store) CreateProfile(ctx context.Context, userID int64, req domain.Request) (*domain.FounderProfile, error) {
	return s.save(ctx, "create", msgCreateFailed, func() (*domain.FounderProfile, error) {
		return s.api.Create(ctx, userID, req)
	})
}

func (s *Store) UpdateProfile(ctx context.Context, userID int64, req domain.Request) (*domain.FounderProfile, error) {
	return s.save(ctx, "update", msgUpdateFailed, func() (*domain.FounderProfile, error) {
		return s.api.Update(ctx, userID, req)
	})
}

func (s *Store) save(ctx context.Context, action, fallback string, call func() (*domain.FounderProfile, error)) (*domain.FounderProfile, error) {
	t := s.begin(action, "profile")

	profile, err := call()

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, fallback)
		}
		return nil, err
	}
	if latest {
		s.state.Profile = profile
	}
	return profile, nil
}

func (s *Store) DeleteProfile(ctx context.Context, userID int64) error {
	t := s.begin("delete", "profile")

	err := s.api.Delete(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgDeleteFailed)
		}
		return err
	}
	if latest {
		s.state.Profile = nil
	}
	return nil
}

func (s *Store) begin(action, field string) inflight.Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.seq.Begin(action, field)
	s.state.Error = ""
	s.refreshFlags()
	return t
}

func (s *Store) finish(t inflight.Ticket) bool {
	latest := s.seq.Finish(t)
	s.refreshFlags()
	return latest
}

func (s *Store) refreshFlags() {
	s.state.IsLoading = s.seq.Busy("fetch", "create", "update", "delete")
	s.state.IsListLoading = s.seq.Busy("list")
}
