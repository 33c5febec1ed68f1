// Package users wraps the backend's /users resource.
package users

import (
	"context"
	"fmt"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/users/domain"
)

type API struct {
	client *apiclient.Client
}

func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

// Signup creates an account.
func (a *API) Signup(ctx context.Context, req domain.CreateRequest) (*domain.User, error) {
	var out domain.User
	if err := a.client.Post(ctx, "/users", req, &out); err != nil {
		return nil, fmt.Errorf("signup: %w", err)
	}
	return &out, nil
}

// Login checks credentials and returns the user's id and nickname.
func (a *API) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResponse, error) {
	var out domain.LoginResponse
	if err := a.client.Post(ctx, "/users/login", req, &out); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	return &out, nil
}

func (a *API) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidID
	}
	var out domain.User
	if err := a.client.Get(ctx, fmt.Sprintf("/users/%d", id), nil, &out); err != nil {
		return nil, fmt.Errorf("get user %d: %w", id, err)
	}
	return &out, nil
}

func (a *API) ListUsers(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	if err := a.client.Get(ctx, "/users", nil, &out); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return out, nil
}
