package bootstrap

import (
	httpapi "github.com/founder-match/founder-match-web/internal/api/http"
	"github.com/founder-match/founder-match-web/internal/api/http/middleware"
	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/session"
	"github.com/founder-match/founder-match-web/internal/web"
	"github.com/founder-match/founder-match-web/internal/web/pages"
	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Client       *apiclient.Client
	Registry     *session.Registry
	Renderer     *web.Renderer
	CORSOrigins  []string
	CookieSecure bool
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.HTMLRender = dep.Renderer

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Client, dep.Registry)
	healthHandler.RegisterRoutes(r)

	r.StaticFS("/static", web.Static())

	app := r.Group("")
	app.Use(session.Middleware(dep.Registry, session.CookieOptions{Secure: dep.CookieSecure}))

	httpapi.NewStateHandler(dep.CORSOrigins).RegisterRoutes(app)
	pages.NewHandler().Register(app)

	r.NoRoute(pages.NoRoute)

	return r
}

// SetGinMode maps APP_ENV onto gin's modes. Other values keep debug mode.
func SetGinMode(env string) {
	switch env {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	}
}
