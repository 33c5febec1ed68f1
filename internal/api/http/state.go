package http

import (
	"net/http"
	"slices"
	"time"

	"github.com/founder-match/founder-match-web/internal/api/http/middleware"
	"github.com/founder-match/founder-match-web/internal/session"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// StateHandler exposes the current session's stores as JSON for scripts
// running in the browser.
type StateHandler struct {
	origins []string
}

// NewStateHandler enables CORS for origins. An empty list disables it, "*"
// allows any origin without credentials.
func NewStateHandler(origins []string) *StateHandler {
	return &StateHandler{origins: origins}
}

// RegisterRoutes expects session.Middleware to run before the group.
func (h *StateHandler) RegisterRoutes(r gin.IRouter) {
	g := r.Group("/state")
	if mw := h.cors(); mw != nil {
		g.Use(mw)
		g.OPTIONS("/:store", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	}
	g.GET("/auth", h.auth)
	g.GET("/profiles", h.profiles)
	g.GET("/projects", h.projects)
}

func (h *StateHandler) cors() gin.HandlerFunc {
	if len(h.origins) == 0 {
		return nil
	}
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(h.origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = h.origins
		cfg.AllowCredentials = true
	}
	return cors.New(cfg)
}

func (h *StateHandler) auth(c *gin.Context) {
	if sess := h.session(c); sess != nil {
		c.JSON(http.StatusOK, sess.Auth.Snapshot())
	}
}

func (h *StateHandler) profiles(c *gin.Context) {
	if sess := h.session(c); sess != nil {
		c.JSON(http.StatusOK, sess.Profiles.Snapshot())
	}
}

func (h *StateHandler) projects(c *gin.Context) {
	if sess := h.session(c); sess != nil {
		c.JSON(http.StatusOK, sess.Projects.Snapshot())
	}
}

func (h *StateHandler) session(c *gin.Context) *session.Session {
	sess := session.FromContext(c)
	if sess == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "no session"})
	}
	return sess
}
