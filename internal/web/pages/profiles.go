package pages

import (
	"net/http"

	"github.com/founder-match/founder-match-web/internal/auth"
	"github.com/founder-match/founder-match-web/internal/profiles"
	"github.com/founder-match/founder-match-web/internal/session"
	usersdomain "github.com/founder-match/founder-match-web/internal/users/domain"
	"github.com/gin-gonic/gin"
)

const (
	flashProfileCreated = "Profile created."
	flashProfileUpdated = "Profile updated."
	flashProfileDeleted = "Profile deleted."
)

type userProfilePage struct {
	User    *usersdomain.User
	Profile profiles.State
}

type profileFormPage struct {
	Form     profileForm
	EditMode bool
	Error    string
}

func (h *Handler) userProfile(c *gin.Context) {
	sess := current(c)
	userID, _ := sess.Auth.UserID()

	if _, err := sess.Profiles.FetchProfile(c.Request.Context(), userID); err != nil {
		logFailure(c, "fetch_profile", err)
	}
	render(c, http.StatusOK, "user_profile", "My page", userProfilePage{
		User:    sess.Auth.Snapshot().User,
		Profile: sess.Profiles.Snapshot(),
	})
}

func (h *Handler) profileForm(c *gin.Context) {
	sess := current(c)
	userID, _ := sess.Auth.UserID()

	profile, err := sess.Profiles.FetchProfile(c.Request.Context(), userID)
	if err != nil {
		logFailure(c, "fetch_profile", err)
	}
	render(c, http.StatusOK, "profile_form", "Founder profile", profileFormPage{
		Form:     profileFormFrom(profile),
		EditMode: profile != nil,
		Error:    sess.Profiles.Snapshot().Error,
	})
}

// saveProfile creates the profile or, when the backend already has one,
// updates it. The mode is decided from a fresh fetch, not from the store.
func (h *Handler) saveProfile(c *gin.Context) {
	sess := current(c)
	userID, _ := sess.Auth.UserID()

	var form profileForm
	_ = c.ShouldBind(&form)
	if !form.valid() {
		renderAlert(c, http.StatusUnprocessableEntity, "profile_form", "Founder profile", alertRequired,
			profileFormPage{Form: form, EditMode: sess.Profiles.Snapshot().Profile != nil})
		return
	}

	ctx := c.Request.Context()
	existing, err := sess.Profiles.FetchProfile(ctx, userID)
	if err != nil {
		logFailure(c, "fetch_profile", err)
		render(c, http.StatusOK, "profile_form", "Founder profile", profileFormPage{
			Form:  form,
			Error: sess.Profiles.Snapshot().Error,
		})
		return
	}
	editMode := existing != nil

	flash := flashProfileCreated
	if editMode {
		_, err = sess.Profiles.UpdateProfile(ctx, userID, form.request())
		flash = flashProfileUpdated
	} else {
		_, err = sess.Profiles.CreateProfile(ctx, userID, form.request())
	}
	if err != nil {
		logFailure(c, "save_profile", err)
		render(c, http.StatusOK, "profile_form", "Founder profile", profileFormPage{
			Form:     form,
			EditMode: editMode,
			Error:    sess.Profiles.Snapshot().Error,
		})
		return
	}
	redirect(c, "/user/profile", flash)
}

func (h *Handler) deleteProfile(c *gin.Context) {
	sess := current(c)
	userID, _ := sess.Auth.UserID()

	if err := sess.Profiles.DeleteProfile(c.Request.Context(), userID); err != nil {
		logFailure(c, "delete_profile", err)
		sess.SetFlash(session.FlashError, sess.Profiles.Snapshot().Error)
		c.Redirect(http.StatusSeeOther, "/user/profile")
		return
	}
	redirect(c, "/user/profile", flashProfileDeleted)
}

func (h *Handler) profiles(c *gin.Context) {
	store := current(c).Profiles
	if _, err := store.FetchProfiles(c.Request.Context()); err != nil {
		logFailure(c, "fetch_profiles", err)
	}
	render(c, http.StatusOK, "profiles", "Founder profiles", store.Snapshot())
}

func (h *Handler) users(c *gin.Context) {
	store := current(c).Auth
	if _, err := store.FetchUsers(c.Request.Context()); err != nil {
		logFailure(c, "fetch_users", err)
	}
	render(c, http.StatusOK, "users", "Members", usersPage(store.Snapshot()))
}

type usersPageData struct {
	Users         []usersdomain.User
	IsListLoading bool
	Error         string
}

func usersPage(st auth.State) usersPageData {
	return usersPageData{Users: st.Users, IsListLoading: st.IsListLoading, Error: st.Error}
}
