package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/founder-match/founder-match-web/config"
	"github.com/founder-match/founder-match-web/internal/apiclient"
	"github.com/founder-match/founder-match-web/internal/bootstrap"
	"github.com/founder-match/founder-match-web/internal/logging"
	"github.com/founder-match/founder-match-web/internal/profiles"
	"github.com/founder-match/founder-match-web/internal/projects"
	"github.com/founder-match/founder-match-web/internal/session"
	"github.com/founder-match/founder-match-web/internal/users"
	"github.com/founder-match/founder-match-web/internal/web"
)

const serviceName = "founder-match-web"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logging.SetLevel(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	client := apiclient.New(apiclient.Options{
		BaseURL:   cfg.API.BaseURL,
		Timeout:   cfg.API.Timeout,
		RateLimit: cfg.API.RateLimit,
		Burst:     cfg.API.RateBurst,
	})
	client.UseRequest(apiclient.RequestIDHeader)

	registry := session.NewRegistry(session.APIs{
		Users:    users.NewAPI(client),
		Profiles: profiles.NewAPI(client),
		Projects: projects.NewAPI(client),
	}, cfg.Session.IdleTimeout)

	sweeper, err := session.StartSweeper(registry, cfg.Session.SweepSpec)
	if err != nil {
		log.Fatalf("session sweeper: %v", err)
	}

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		Client:       client,
		Registry:     registry,
		Renderer:     renderer,
		CORSOrigins:  cfg.Server.CORSOrigins,
		CookieSecure: cfg.Session.CookieSecure,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.API.Timeout + 20*time.Second,
	}

	go func() {
		log.Printf("%s listening on :%s (backend %s)", serviceName, cfg.Server.Port, client.BaseURL())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	sweeper.Stop(ctx)
}
