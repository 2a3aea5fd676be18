package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/mtlprog/embedkit/internal/config"
	"github.com/mtlprog/embedkit/internal/emitter"
	"github.com/mtlprog/embedkit/internal/handler"
	"github.com/mtlprog/embedkit/internal/middleware"
	"github.com/mtlprog/embedkit/internal/preview"
	"github.com/mtlprog/embedkit/internal/repository"
	"github.com/mtlprog/embedkit/internal/service"
	"github.com/mtlprog/embedkit/internal/session"
)

// serveConfig reads the serve flags over the defaults. Flags that are not
// defined, as when serve runs as the default action, keep their defaults.
func serveConfig(c *cli.Context) config.Config {
	cfg := config.Default()
	cfg.DatabaseURL = c.String("database-url")
	if v := c.String("port"); v != "" {
		cfg.Port = v
	}
	if v := c.String("session-store"); v != "" {
		cfg.SessionStore = config.SessionStore(v)
	}
	if v := c.String("sqlite-path"); v != "" {
		cfg.SQLitePath = v
	}
	if v := c.String("embed-host"); v != "" {
		cfg.EmbedHost = v
	}
	if v := c.String("session-namespace"); v != "" {
		cfg.SessionNamespace = v
	}
	if v := c.Duration("session-ttl"); v != 0 {
		cfg.SessionTTL = v
	}
	if v := c.String("sweep-schedule"); v != "" {
		cfg.SweepSchedule = v
	}
	cfg.AllowedOrigins = config.SplitOrigins(c.String("allowed-origins"))
	return cfg
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	cfg := serveConfig(c)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	b, err := openBackends(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.Close()

	em := emitter.New(emitter.Config{
		HostTemplate:     cfg.EmbedHost,
		SessionNamespace: cfg.SessionNamespace,
		SessionTTL:       cfg.SessionTTL,
	})

	previews := preview.New(session.NewClientManager(
		session.NewMemoryStore(),
		session.WithNamespace(cfg.SessionNamespace),
	))

	sessions := session.NewServerManager(b.sessions, cfg.SessionTTL, session.WithNamespace(cfg.SessionNamespace))

	var (
		agents service.AgentProvider
		pinger handler.Pinger
	)
	if b.db != nil {
		agents = repository.NewAgentRepository(b.db.Pool())
		pinger = b.db
	}

	artifacts := service.NewArtifactService(em, agents, previews, sessions)

	sweeper := service.NewSessionSweeper(b.sessions, cfg.SweepSchedule)
	if err := sweeper.Start(ctx); err != nil {
		return err
	}
	defer sweeper.Stop()

	mux := http.NewServeMux()
	handler.New(artifacts, pinger).RegisterRoutes(mux)

	var h http.Handler = mux
	if len(cfg.AllowedOrigins) > 0 {
		h = middleware.CORS(cfg.AllowedOrigins)(h)
	}
	h = middleware.RequestID(middleware.Logger(h))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server",
			"server_addr", "http://localhost:"+cfg.Port,
			"session_store", cfg.SessionStore,
			"agent_provider", agents != nil,
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
