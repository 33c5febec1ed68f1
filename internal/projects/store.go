package projects

import (
	"context"
	"sync"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/inflight"
	"github.com/founder-match/founder-match-web/internal/projects/domain"
)

const (
	msgListFailed   = "Failed to load projects."
	msgFetchFailed  = "Failed to load the project."
	msgCreateFailed = "Failed to create the project."
	msgUpdateFailed = "Failed to update the project."
	msgDeleteFailed = "Failed to delete the project."
)

// ProjectAPI is the slice of the project resource the store needs.
type ProjectAPI interface {
	Create(ctx context.Context, req domain.CreateRequest) (*domain.Project, error)
	Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Project, error)
	Get(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context, q domain.Query) ([]domain.Project, error)
	Delete(ctx context.Context, id int64) error
}

// State is a read-only copy of the store.
type State struct {
	Project         *domain.Project  `json:"project"`
	Projects        []domain.Project `json:"projects"`
	Query           domain.Query     `json:"query"`
	IsListLoading   bool             `json:"isListLoading"`
	IsDetailLoading bool             `json:"isDetailLoading"`
	IsSubmitting    bool             `json:"isSubmitting"`
	Error           string           `json:"error,omitempty"`
}

type Store struct {
	api ProjectAPI

	mu    sync.Mutex
	state State
	seq   inflight.Sequencer
}

func NewStore(api ProjectAPI) *Store {
	return &Store{api: api}
}

func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.state
	if s.state.Project != nil {
		p := *s.state.Project
		out.Project = &p
	}
	out.Projects = append([]domain.Project(nil), s.state.Projects...)
	return out
}

func (s *Store) ResetError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
}

// FetchProjects loads the list for q and remembers q as the active filter.
func (s *Store) FetchProjects(ctx context.Context, q domain.Query) ([]domain.Project, error) {
	t := s.begin("list", "projects")

	list, err := s.api.List(ctx, q)

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
		s.state.Projects = list
		s.state.Query = q
	}
	return list, nil
}

// FetchProject loads one project. On failure the stored project is cleared.
func (s *Store) FetchProject(ctx context.Context, id int64) (*domain.Project, error) {
	t := s.begin("detail", "project")

	project, err := s.api.Get(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Project = nil
			s.state.Error = apiclient.MessageFrom(err, msgFetchFailed)
		}
		return nil, err
	}
	if latest {
		s.state.Project = project
	}
	return project, nil
}

// CreateProject submits a new project. The created project is returned but
// not stored; pages navigate to its detail view.
func (s *Store) CreateProject(ctx context.Context, req domain.CreateRequest) (*domain.Project, error) {
	t := s.begin("create", "create")

	project, err := s.api.Create(ctx, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgCreateFailed)
		}
		return nil, err
	}
	return project, nil
}

func (s *Store) UpdateProject(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Project, error) {
	t := s.begin("update", "project")

	project, err := s.api.Update(ctx, id, req)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgUpdateFailed)
		}
		return nil, err
	}
	if latest {
		s.state.Project = project
	}
	return project, nil
}

// DeleteProject reports whether the project was deleted.
func (s *Store) DeleteProject(ctx context.Context, id int64) bool {
	t := s.begin("delete", "delete")

	err := s.api.Delete(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()
	latest := s.finish(t)
	if err != nil {
		if latest {
			s.state.Error = apiclient.MessageFrom(err, msgDeleteFailed)
		}
		return false
	}
	if s.state.Project != nil && s.state.Project.ID == id {
		s.state.Project = nil
	}
	filtered := s.state.Projects[:0:0]
	for _, p := range s.state.Projects {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	s.state.Projects = filtered
	return true
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
	s.state.IsListLoading = s.seq.Busy("list")
	s.state.IsDetailLoading = s.seq.Busy("detail")
	s.state.IsSubmitting = s.seq.Busy("create", "update", "delete")
}
