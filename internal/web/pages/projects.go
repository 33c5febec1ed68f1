package pages

import (
	"fmt"
	"net/http"

	"github.com/founder-match/founder-match-web/internal/projects/domain"
	"github.com/founder-match/founder-match-web/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	flashProjectCreated = "Project created."
	flashProjectUpdated = "Project updated."
	flashProjectDeleted = "Project deleted."
)

type projectListPage struct {
	Projects      []domain.Project
	Query         domain.Query
	IsListLoading bool
	Error         string

	StageOptions      selectOptions
	DomainOptions     selectOptions
	WorkStyleOptions  selectOptions
	RewardTypeOptions selectOptions
}

type projectDetailPage struct {
	Project         *domain.Project
	IsOwner         bool
	IsDetailLoading bool
	IsSubmitting    bool
	Error           string
}

type projectFormPage struct {
	Form         projectForm
	EditMode     bool
	Action       string
	Cancel       string
	IsSubmitting bool
	Error        string

	StageOptions      selectOptions
	DomainOptions     selectOptions
	WorkStyleOptions  selectOptions
	RewardTypeOptions selectOptions
}

func newProjectFormPage(form projectForm, id int64) projectFormPage {
	p := projectFormPage{
		Form:              form,
		Action:            "/projects/new",
		Cancel:            "/projects",
		StageOptions:      optionsOf(domain.Stages, form.Stage, false),
		DomainOptions:     optionsOf(domain.Domains, form.Domain, false),
		WorkStyleOptions:  optionsOf(domain.WorkStyles, form.WorkStyle, false),
		RewardTypeOptions: optionsOf(domain.RewardTypes, form.RewardType, false),
	}
	if id > 0 {
		p.EditMode = true
		p.Action = fmt.Sprintf("/projects/%d/edit", id)
		p.Cancel = fmt.Sprintf("/projects/%d", id)
	}
	return p
}

// projectList filters through GET parameters. Unknown enum values are ignored.
func (h *Handler) projectList(c *gin.Context) {
	var q domain.Query
	_ = c.ShouldBindQuery(&q)
	q = q.Sanitize()

	store := current(c).Projects
	if _, err := store.FetchProjects(c.Request.Context(), q); err != nil {
		logFailure(c, "fetch_projects", err)
	}
	st := store.Snapshot()
	render(c, http.StatusOK, "projects", "Projects", projectListPage{
		Projects:          st.Projects,
		Query:             q,
		IsListLoading:     st.IsListLoading,
		Error:             st.Error,
		StageOptions:      optionsOf(domain.Stages, string(q.Stage), true),
		DomainOptions:     optionsOf(domain.Domains, string(q.Domain), true),
		WorkStyleOptions:  optionsOf(domain.WorkStyles, string(q.WorkStyle), true),
		RewardTypeOptions: optionsOf(domain.RewardTypes, string(q.RewardType), true),
	})
}

func (h *Handler) projectDetail(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/projects")
		return
	}

	sess := current(c)
	if _, err := sess.Projects.FetchProject(c.Request.Context(), id); err != nil {
		logFailure(c, "fetch_project", err)
	}
	st := sess.Projects.Snapshot()
	page := projectDetailPage{
		Project:         st.Project,
		IsDetailLoading: st.IsDetailLoading,
		IsSubmitting:    st.IsSubmitting,
		Error:           st.Error,
		IsOwner:         h.ownedBy(sess, st.Project),
	}

	title := "Project"
	if st.Project != nil {
		title = st.Project.Name
	}
	render(c, http.StatusOK, "project_detail", title, page)
}

func (h *Handler) newProjectForm(c *gin.Context) {
	render(c, http.StatusOK, "project_form", "New project", newProjectFormPage(defaultProjectForm(), 0))
}

func (h *Handler) createProject(c *gin.Context) {
	sess := current(c)
	ownerID, _ := sess.Auth.UserID()

	var form projectForm
	_ = c.ShouldBind(&form)
	if alert := form.check(); alert != "" {
		renderAlert(c, http.StatusUnprocessableEntity, "project_form", "New project", alert, newProjectFormPage(form, 0))
		return
	}

	project, err := sess.Projects.CreateProject(c.Request.Context(), form.createRequest(ownerID))
	if err != nil {
		logFailure(c, "create_project", err)
		page := newProjectFormPage(form, 0)
		page.Error = sess.Projects.Snapshot().Error
		render(c, http.StatusOK, "project_form", "New project", page)
		return
	}
	redirect(c, fmt.Sprintf("/projects/%d", project.ID), flashProjectCreated)
}

// editProjectForm pre-fills the form from the fetched project.
func (h *Handler) editProjectForm(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/projects")
		return
	}
	project, ok := h.ownProject(c, id)
	if !ok {
		return
	}
	render(c, http.StatusOK, "project_form", "Edit project", newProjectFormPage(projectFormFrom(project), id))
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/projects")
		return
	}
	sess := current(c)

	var form projectForm
	_ = c.ShouldBind(&form)
	if alert := form.check(); alert != "" {
		renderAlert(c, http.StatusUnprocessableEntity, "project_form", "Edit project", alert, newProjectFormPage(form, id))
		return
	}
	if _, ok := h.ownProject(c, id); !ok {
		return
	}

	if _, err := sess.Projects.UpdateProject(c.Request.Context(), id, form.updateRequest()); err != nil {
		logFailure(c, "update_project", err)
		page := newProjectFormPage(form, id)
		page.Error = sess.Projects.Snapshot().Error
		render(c, http.StatusOK, "project_form", "Edit project", page)
		return
	}
	redirect(c, fmt.Sprintf("/projects/%d", id), flashProjectUpdated)
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		c.Redirect(http.StatusFound, "/projects")
		return
	}
	sess := current(c)
	if _, ok := h.ownProject(c, id); !ok {
		return
	}

	if !sess.Projects.DeleteProject(c.Request.Context(), id) {
		sess.SetFlash(session.FlashError, sess.Projects.Snapshot().Error)
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/projects/%d", id))
		return
	}
	redirect(c, "/projects", flashProjectDeleted)
}

// ownProject loads the project and lets the request through only for its
// owner. Otherwise it has already redirected: to /projects when the project
// cannot be loaded, to the detail page for anyone else.
func (h *Handler) ownProject(c *gin.Context, id int64) (*domain.Project, bool) {
	sess := current(c)
	project, err := sess.Projects.FetchProject(c.Request.Context(), id)
	if err != nil {
		logFailure(c, "fetch_project", err)
		sess.SetFlash(session.FlashError, sess.Projects.Snapshot().Error)
		c.Redirect(http.StatusFound, "/projects")
		return nil, false
	}
	if !h.ownedBy(sess, project) {
		c.Redirect(http.StatusFound, fmt.Sprintf("/projects/%d", id))
		return nil, false
	}
	return project, true
}

func (h *Handler) ownedBy(sess *session.Session, p *domain.Project) bool {
	userID, ok := sess.Auth.UserID()
	return ok && p != nil && p.OwnerID == userID
}
