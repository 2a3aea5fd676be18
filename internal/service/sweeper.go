package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// ExpiredSessionDeleter removes expired server-side sessions.
type ExpiredSessionDeleter interface {
	DeleteExpired(ctx context.Context) (int64, error)
}

// SessionSweeper periodically deletes expired sessions.
type SessionSweeper struct {
	store    ExpiredSessionDeleter
	schedule string
	cron     *cron.Cron
}

// NewSessionSweeper creates a sweeper for a cron schedule such as "@hourly".
func NewSessionSweeper(store ExpiredSessionDeleter, schedule string) *SessionSweeper {
	return &SessionSweeper{
		store:    store,
		schedule: schedule,
		cron:     cron.New(),
	}
}

// Sweep runs one deletion pass.
func (s *SessionSweeper) Sweep(ctx context.Context) (int64, error) {
	n, err := s.store.DeleteExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("sweep sessions: %w", err)
	}

	slog.Info("expired sessions swept", "deleted", n)

	return n, nil
}

// Start registers the sweep and starts the scheduler. Runs use ctx.
func (s *SessionSweeper) Start(ctx context.Context) error {
	if _, err := s.cron.AddFunc(s.schedule, func() {
		if _, err := s.Sweep(ctx); err != nil {
			slog.Error("session sweep failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("schedule session sweep %q: %w", s.schedule, err)
	}

	s.cron.Start()
	slog.Info("session sweeper started", "schedule", s.schedule)

	return nil
}

// Stop stops the scheduler and waits for a running sweep to finish.
func (s *SessionSweeper) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("session sweeper stopped")
}
