package http

import (
	"net/http"
	"time"

	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Service   string           `json:"service"`
	Version   string           `json:"version"`
	Upstream  string           `json:"upstream,omitempty"`
	Backend   *apiclient.Stats `json:"backend,omitempty"`
	Sessions  int              `json:"sessions"`
}

// BackendStats is satisfied by *apiclient.Client.
type BackendStats interface {
	BaseURL() string
	Stats() apiclient.Stats
}

// SessionCounter is satisfied by *session.Registry.
type SessionCounter interface {
	Len() int
}

type HealthHandler struct {
	serviceName string
	version     string
	backend     BackendStats
	sessions    SessionCounter
}

// NewHealthHandler builds the handler; backend and sessions may be nil.
func NewHealthHandler(serviceName, version string, backend BackendStats, sessions SessionCounter) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		backend:     backend,
		sessions:    sessions,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   h.serviceName,
		Version:   h.version,
	}
	if h.backend != nil {
		stats := h.backend.Stats()
		resp.Upstream = h.backend.BaseURL()
		resp.Backend = &stats
	}
	if h.sessions != nil {
		resp.Sessions = h.sessions.Len()
	}

	c.JSON(http.StatusOK, resp)
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
