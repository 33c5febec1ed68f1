// Package profiles wraps the founder profile endpoints and keeps the
// per-session profile store.
package profiles

import (
	"context"
	"fmt"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/profiles/domain"
)

type API struct {
	client *apiclient.Client
}

func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

func profilePath(userID int64) string {
	return fmt.Sprintf("/users/%d/profile", userID)
}

func (a *API) Create(ctx context.Context, userID int64, req domain.Request) (*domain.FounderProfile, error) {
	var out domain.FounderProfile
	if err := a.client.Post(ctx, profilePath(userID), req, &out); err != nil {
		return nil, fmt.Errorf("create profile for user %d: %w", userID, err)
	}
	return &out, nil
}

func (a *API) Update(ctx context.Context, userID int64, req domain.Request) (*domain.FounderProfile, error) {
	var out domain.FounderProfile
	if err := a.client.Put(ctx, profilePath(userID), req, &out); err != nil {
		return nil, fmt.Errorf("update profile for user %d: %w", userID, err)
	}
	return &out, nil
}

func (a *API) Get(ctx context.Context, userID int64) (*domain.FounderProfile, error) {
	var out domain.FounderProfile
	if err := a.client.Get(ctx, profilePath(userID), nil, &out); err != nil {
		return nil, fmt.Errorf("get profile for user %d: %w", userID, err)
	}
	return &out, nil
}

func (a *API) Delete(ctx context.Context, userID int64) error {
	if err := a.client.Delete(ctx, profilePath(userID), nil); err != nil {
		return fmt.Errorf("delete profile for user %d: %w", userID, err)
	}
	return nil
}

// List returns every founder profile.
func (a *API) List(ctx context.Context) ([]domain.FounderProfile, error) {
	var out []domain.FounderProfile
	if err := a.client.Get(ctx, "/profiles", nil, &out); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	return out, nil
}
