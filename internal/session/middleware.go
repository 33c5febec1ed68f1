package session

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// CookieName carries the session id.
	CookieName = "fm_session"

	contextKey = "session"
)

type CookieOptions struct {
	Secure bool
}

// Middleware attaches the browser's session to the request, creating one when
// the cookie is missing or points to an expired session.
func Middleware(registry *Registry, opts CookieOptions) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sess *Session
		if id, err := c.Cookie(CookieName); err == nil && id != "" {
			sess, _ = registry.Get(id)
		}
		if sess == nil {
			sess = registry.Create()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(CookieName, sess.ID, 0, "/", "", opts.Secure, true)
		}
		c.Set(contextKey, sess)
		c.Next()
	}
}

// FromContext returns the session attached by Middleware, or nil.
func FromContext(c *gin.Context) *Session {
	v, ok := c.Get(contextKey)
	if !ok {
		return nil
	}
	sess, _ := v.(*Session)
	return sess
}
