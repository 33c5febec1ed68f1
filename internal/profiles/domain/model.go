package domain

import "github.com/founder-match/founder-match-web/internal/apiclient"

// FounderProfile describes what a member brings to a team. One per user.
type FounderProfile struct {
	ID           int64               `json:"id"`
	UserID       int64               `json:"userId"`
	Role         string              `json:"role"`
	Skills       []string            `json:"skills"`
	Interests    []string            `json:"interests"`
	Availability string              `json:"availability"`
	Bio          string              `json:"bio"`
	CreatedAt    apiclient.Timestamp `json:"createdAt"`
	UpdatedAt    apiclient.Timestamp `json:"updatedAt"`
}

// Request is the create and update payload.
type Request struct {
	Role         string   `json:"role"`
	Skills       []string `json:"skills"`
	Interests    []string `json:"interests"`
	Availability string   `json:"availability"`
	Bio          string   `json:"bio"`
}
