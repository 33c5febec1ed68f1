// Package pages serves the server-rendered screens. Every handler works on the
// stores of the caller's session: GET fetches and renders, POST validates the
// form, calls one store action and redirects on success.
package pages

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/founder-match/founder-match-web/internal/logging"
	"github.com/founder-match/founder-match-web/internal/session"
	usersdomain "github.com/founder-match/founder-match-web/internal/users/domain"
	"github.com/gin-gonic/gin"
)

// View is what every template receives.
type View struct {
	Title string
	User  *usersdomain.User
	Flash *session.Flash
	// Alert blocks the form it is shown on.
	Alert string
	Data  any
}

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Register mounts every page on r.
func (h *Handler) Register(r gin.IRouter) {
	r.GET("/", h.home)

	r.GET("/login", h.loginForm)
	r.POST("/login", h.login)
	r.GET("/signup", h.signupForm)
	r.POST("/signup", h.signup)
	r.POST("/logout", h.logout)

	r.GET("/profiles", h.profiles)
	r.GET("/users", h.users)
	r.GET("/projects", h.projectList)
	r.GET("/projects/:id", h.projectDetail)

	private := r.Group("", RequireLogin())
	private.GET("/user/profile", h.userProfile)
	private.GET("/user/profile/edit", h.profileForm)
	private.POST("/user/profile/edit", h.saveProfile)
	private.POST("/user/profile/delete", h.deleteProfile)
	private.GET("/projects/new", h.newProjectForm)
	private.POST("/projects/new", h.createProject)
	private.GET("/projects/:id/edit", h.editProjectForm)
	private.POST("/projects/:id/edit", h.updateProject)
	private.POST("/projects/:id/delete", h.deleteProject)
}

// NoRoute sends unknown paths home.
func NoRoute(c *gin.Context) {
	c.Redirect(http.StatusFound, "/")
}

// RequireLogin redirects anonymous sessions to the login page.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := current(c).Auth.UserID(); !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

func current(c *gin.Context) *session.Session {
	sess := session.FromContext(c)
	if sess == nil {
		panic("pages: session middleware not installed")
	}
	return sess
}

func render(c *gin.Context, status int, page, title string, data any) {
	renderAlert(c, status, page, title, "", data)
}

// renderAlert renders a page with a blocking alert, used for rejected forms.
func renderAlert(c *gin.Context, status int, page, title, alert string, data any) {
	sess := current(c)
	v := View{Title: title, Alert: alert, Data: data}
	if st := sess.Auth.Snapshot(); st.IsLoggedIn {
		v.User = st.User
	}
	if f, ok := sess.PopFlash(); ok {
		v.Flash = &f
	}
	c.HTML(status, page, v)
}

// redirect finishes a successful submission.
func redirect(c *gin.Context, location, flash string) {
	if flash != "" {
		current(c).SetFlash(session.FlashSuccess, flash)
	}
	c.Redirect(http.StatusSeeOther, location)
}

func logFailure(c *gin.Context, operation string, err error) {
	logging.New(c.Request.Context()).LogError(operation, err)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(c.Param("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
