// Package projects wraps the /projects resource and keeps the per-session
// project store.
package projects

import (
	"context"
	"fmt"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/projects/domain"
)

type API struct {
	client *apiclient.Client
}

func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

func (a *API) Create(ctx context.Context, req domain.CreateRequest) (*domain.Project, error) {
	var out domain.Project
	if err := a.client.Post(ctx, "/projects", req, &out); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &out, nil
}

func (a *API) Update(ctx context.Context, id int64, req domain.UpdateRequest) (*domain.Project, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	var out domain.Project
	if err := a.client.Patch(ctx, fmt.Sprintf("/projects/%d", id), req, &out); err != nil {
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}
	return &out, nil
}

func (a *API) Get(ctx context.Context, id int64) (*domain.Project, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	var out domain.Project
	if err := a.client.Get(ctx, fmt.Sprintf("/projects/%d", id), nil, &out); err != nil {
		return nil, fmt.Errorf("get project %d: %w", id, err)
	}
	return &out, nil
}

// List returns the projects matching q. Only set filters are sent.
func (a *API) List(ctx context.Context, q domain.Query) ([]domain.Project, error) {
	var out []domain.Project
	if err := a.client.Get(ctx, "/projects", q.Values(), &out); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return out, nil
}

func (a *API) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.ErrInvalidID
	}
	if err := a.client.Delete(ctx, fmt.Sprintf("/projects/%d", id), nil); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}
	return nil
}
