package domain

import "github.com/founder-match/founder-match-web/internal/apiclient"

// User is a registered member as the backend returns it.
type User struct {
	ID        int64               `json:"id"`
	Email     string              `json:"email"`
	Nickname  string              `json:"nickname"`
	Contact   string              `json:"contact"`
	CreatedAt apiclient.Timestamp `json:"createdAt"`
}

// CreateRequest is the sign-up payload.
type CreateRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
	Contact  string `json:"contact"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse identifies the authenticated user. The full record is fetched
// separately.
type LoginResponse struct {
	UserID   int64  `json:"userId"`
	Nickname string `json:"nickname"`
}
