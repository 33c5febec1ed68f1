package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	flashSignedUp = "Sign-up complete. Please log in."
)

type loginPage struct {
	Email string
	Error string
}

type signupPage struct {
	Form  signupForm
	Error string
}

func (h *Handler) loginForm(c *gin.Context) {
	if _, ok := current(c).Auth.UserID(); ok {
		c.Redirect(http.StatusFound, "/user/profile")
		return
	}
	render(c, http.StatusOK, "login", "Log in", loginPage{})
}

func (h *Handler) login(c *gin.Context) {
	var form loginForm
	_ = c.ShouldBind(&form)
	if !form.valid() {
		renderAlert(c, http.StatusUnprocessableEntity, "login", "Log in", alertLoginRequired, loginPage{Email: form.Email})
		return
	}

	store := current(c).Auth
	if _, err := store.Login(c.Request.Context(), form.request()); err != nil {
		logFailure(c, "login", err)
		render(c, http.StatusOK, "login", "Log in", loginPage{Email: form.Email, Error: store.Snapshot().Error})
		return
	}
	redirect(c, "/user/profile", "")
}

func (h *Handler) signupForm(c *gin.Context) {
	render(c, http.StatusOK, "signup", "Sign up", signupPage{})
}

func (h *Handler) signup(c *gin.Context) {
	var form signupForm
	_ = c.ShouldBind(&form)
	if !form.valid() {
		renderAlert(c, http.StatusUnprocessableEntity, "signup", "Sign up", alertRequired, signupPage{Form: redacted(form)})
		return
	}

	store := current(c).Auth
	if _, err := store.Signup(c.Request.Context(), form.request()); err != nil {
		logFailure(c, "signup", err)
		render(c, http.StatusOK, "signup", "Sign up", signupPage{Form: redacted(form), Error: store.Snapshot().Error})
		return
	}
	redirect(c, "/login", flashSignedUp)
}

func (h *Handler) logout(c *gin.Context) {
	sess := current(c)
	sess.Auth.Logout()
	sess.Profiles.Clear()
	sess.Projects.ResetError()
	redirect(c, "/", "")
}

// redacted drops the password before a form is echoed back.
func redacted(f signupForm) signupForm {
	f.Password = ""
	return f
}
