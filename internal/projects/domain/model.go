package domain

import (
	"net/url"
	"strings"

	"github.com/founder-match/founder-match-web/internal/apiclient"
)

// Project is a team looking for co-founders.
type Project struct {
	ID               int64               `json:"id"`
	OwnerID          int64               `json:"ownerId"`
	Name             string              `json:"name"`
	OneLineIntro     string              `json:"oneLineIntro"`
	Description      string              `json:"description"`
	Stage            Stage               `json:"stage"`
	Domain           Domain              `json:"domain"`
	WorkStyle        WorkStyle           `json:"workStyle"`
	RewardType       RewardType          `json:"rewardType"`
	ExpectedDuration string              `json:"expectedDuration"`
	CreatedAt        apiclient.Timestamp `json:"createdAt"`
	UpdatedAt        apiclient.Timestamp `json:"updatedAt"`
}

// CreateRequest is the payload for a new project.
type CreateRequest struct {
	OwnerID          int64      `json:"ownerId"`
	Name             string     `json:"name"`
	OneLineIntro     string     `json:"oneLineIntro"`
	Description      string     `json:"description"`
	Stage            Stage      `json:"stage"`
	Domain           Domain     `json:"domain"`
	WorkStyle        WorkStyle  `json:"workStyle"`
	RewardType       RewardType `json:"rewardType"`
	ExpectedDuration string     `json:"expectedDuration"`
}

// UpdateRequest is a partial update; nil fields are left unchanged.
type UpdateRequest struct {
	Name             *string     `json:"name,omitempty"`
	OneLineIntro     *string     `json:"oneLineIntro,omitempty"`
	Description      *string     `json:"description,omitempty"`
	Stage            *Stage      `json:"stage,omitempty"`
	Domain           *Domain     `json:"domain,omitempty"`
	WorkStyle        *WorkStyle  `json:"workStyle,omitempty"`
	RewardType       *RewardType `json:"rewardType,omitempty"`
	ExpectedDuration *string     `json:"expectedDuration,omitempty"`
}

// Query filters the project list. Empty fields are not sent.
type Query struct {
	Stage      Stage      `form:"stage" json:"stage,omitempty"`
	Domain     Domain     `form:"domain" json:"domain,omitempty"`
	WorkStyle  WorkStyle  `form:"workStyle" json:"workStyle,omitempty"`
	RewardType RewardType `form:"rewardType" json:"rewardType,omitempty"`
	Keyword    string     `form:"keyword" json:"keyword,omitempty"`
}

// Sanitize drops enum values outside their sets and trims the keyword.
func (q Query) Sanitize() Query {
	if !q.Stage.Valid() {
		q.Stage = ""
	}
	if !q.Domain.Valid() {
		q.Domain = ""
	}
	if !q.WorkStyle.Valid() {
		q.WorkStyle = ""
	}
	if !q.RewardType.Valid() {
		q.RewardType = ""
	}
	q.Keyword = strings.TrimSpace(q.Keyword)
	return q
}

// IsZero reports whether no filter is set.
func (q Query) IsZero() bool {
	return q == Query{}
}

// Values encodes the non-empty filters as query parameters.
func (q Query) Values() url.Values {
	v := url.Values{}
	set := func(key, value string) {
		if value != "" {
			v.Set(key, value)
		}
	}
	set("stage", string(q.Stage))
	set("domain", string(q.Domain))
	set("workStyle", string(q.WorkStyle))
	set("rewardType", string(q.RewardType))
	set("keyword", q.Keyword)
	return v
}
