package pages

import (
	"strings"

	profilesdomain "github.com/founder-match/founder-match-web/internal/profiles/domain"
	projectsdomain "github.com/founder-match/founder-match-web/internal/projects/domain"
	usersdomain "github.com/founder-match/founder-match-web/internal/users/domain"
)

const (
	alertRequired      = "Please fill in all required fields."
	alertLoginRequired = "Please enter both email and password."
	alertInvalidOption = "Please choose a valid option for every select field."
)

// filled reports whether every value is non-empty after trimming.
func filled(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

// splitList parses a comma separated field, dropping blank items.
func splitList(s string) []string {
	out := []string{}
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

type loginForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
}

func (f loginForm) valid() bool {
	return filled(f.Email, f.Password)
}

func (f loginForm) request() usersdomain.LoginRequest {
	return usersdomain.LoginRequest{Email: strings.TrimSpace(f.Email), Password: f.Password}
}

type signupForm struct {
	Email    string `form:"email"`
	Password string `form:"password"`
	Nickname string `form:"nickname"`
	Contact  string `form:"contact"`
}

func (f signupForm) valid() bool {
	return filled(f.Email, f.Password, f.Nickname)
}

func (f signupForm) request() usersdomain.CreateRequest {
	return usersdomain.CreateRequest{
		Email:    strings.TrimSpace(f.Email),
		Password: f.Password,
		Nickname: strings.TrimSpace(f.Nickname),
		Contact:  strings.TrimSpace(f.Contact),
	}
}

// profileForm holds skills and interests as typed, comma separated.
type profileForm struct {
	Role         string `form:"role"`
	Skills       string `form:"skills"`
	Interests    string `form:"interests"`
	Availability string `form:"availability"`
	Bio          string `form:"bio"`
}

func profileFormFrom(p *profilesdomain.FounderProfile) profileForm {
	if p == nil {
		return profileForm{}
	}
	return profileForm{
		Role:         p.Role,
		Skills:       strings.Join(p.Skills, ", "),
		Interests:    strings.Join(p.Interests, ", "),
		Availability: p.Availability,
		Bio:          p.Bio,
	}
}

func (f profileForm) valid() bool {
	return filled(f.Role, f.Availability, f.Bio) &&
		len(splitList(f.Skills)) > 0 && len(splitList(f.Interests)) > 0
}

func (f profileForm) request() profilesdomain.Request {
	return profilesdomain.Request{
		Role:         strings.TrimSpace(f.Role),
		Skills:       splitList(f.Skills),
		Interests:    splitList(f.Interests),
		Availability: strings.TrimSpace(f.Availability),
		Bio:          strings.TrimSpace(f.Bio),
	}
}

type projectForm struct {
	Name             string `form:"name"`
	OneLineIntro     string `form:"oneLineIntro"`
	Description      string `form:"description"`
	Stage            string `form:"stage"`
	Domain           string `form:"domain"`
	WorkStyle        string `form:"workStyle"`
	RewardType       string `form:"rewardType"`
	ExpectedDuration string `form:"expectedDuration"`
}

// defaultProjectForm is what a new project starts with.
func defaultProjectForm() projectForm {
	return projectForm{
		Stage:      string(projectsdomain.StageIdea),
		Domain:     string(projectsdomain.DomainOther),
		WorkStyle:  string(projectsdomain.WorkStyleRemote),
		RewardType: string(projectsdomain.RewardNone),
	}
}

func projectFormFrom(p *projectsdomain.Project) projectForm {
	if p == nil {
		return defaultProjectForm()
	}
	return projectForm{
		Name:             p.Name,
		OneLineIntro:     p.OneLineIntro,
		Description:      p.Description,
		Stage:            string(p.Stage),
		Domain:           string(p.Domain),
		WorkStyle:        string(p.WorkStyle),
		RewardType:       string(p.RewardType),
		ExpectedDuration: p.ExpectedDuration,
	}
}

// check returns the blocking alert for the form, or "".
func (f projectForm) check() string {
	if !filled(f.Name, f.OneLineIntro, f.Description, f.ExpectedDuration, f.Stage, f.Domain, f.WorkStyle, f.RewardType) {
		return alertRequired
	}
	if !projectsdomain.Stage(f.Stage).Valid() || !projectsdomain.Domain(f.Domain).Valid() ||
		!projectsdomain.WorkStyle(f.WorkStyle).Valid() || !projectsdomain.RewardType(f.RewardType).Valid() {
		return alertInvalidOption
	}
	return ""
}

func (f projectForm) createRequest(ownerID int64) projectsdomain.CreateRequest {
	return projectsdomain.CreateRequest{
		OwnerID:          ownerID,
		Name:             strings.TrimSpace(f.Name),
		OneLineIntro:     strings.TrimSpace(f.OneLineIntro),
		Description:      strings.TrimSpace(f.Description),
		Stage:            projectsdomain.Stage(f.Stage),
		Domain:           projectsdomain.Domain(f.Domain),
		WorkStyle:        projectsdomain.WorkStyle(f.WorkStyle),
		RewardType:       projectsdomain.RewardType(f.RewardType),
		ExpectedDuration: strings.TrimSpace(f.ExpectedDuration),
	}
}

// updateRequest sends every editable field; the form always carries all of them.
func (f projectForm) updateRequest() projectsdomain.UpdateRequest {
	c := f.createRequest(0)
	return projectsdomain.UpdateRequest{
		Name:             &c.Name,
		OneLineIntro:     &c.OneLineIntro,
		Description:      &c.Description,
		Stage:            &c.Stage,
		Domain:           &c.Domain,
		WorkStyle:        &c.WorkStyle,
		RewardType:       &c.RewardType,
		ExpectedDuration: &c.ExpectedDuration,
	}
}

// selectOptions feeds the "options" template.
type selectOptions struct {
	Values   []string
	Selected string
	Any      bool
}

func optionsOf[T ~string](values []T, selected string, all bool) selectOptions {
	out := selectOptions{Selected: selected, Any: all}
	for _, v := range values {
		out.Values = append(out.Values, string(v))
	}
	return out
}
