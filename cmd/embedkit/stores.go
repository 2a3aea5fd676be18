package main

import (
	"context"
	"fmt"

	"github.com/mtlprog/embedkit/internal/config"
	"github.com/mtlprog/embedkit/internal/database"
	"github.com/mtlprog/embedkit/internal/repository"
	"github.com/mtlprog/embedkit/internal/session"
)

// sessionStore is a server-side session backend that can drop expired entries.
type sessionStore interface {
	session.Store
	DeleteExpired(ctx context.Context) (int64, error)
}

// backends holds the opened storage for a command.
type backends struct {
	sessions sessionStore
	db       *database.DB
	closers  []func()
}

func (b *backends) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		b.closers[i]()
	}
}

// openBackends connects the database when a URL is given and opens the
// selected session store.
func openBackends(ctx context.Context, cfg config.Config) (*backends, error) {
	b := &backends{}

	if cfg.DatabaseURL != "" {
		db, err := database.New(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		b.closers = append(b.closers, db.Close)

		if err := database.RunMigrations(ctx, db.Pool()); err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		b.db = db
	}

	switch cfg.SessionStore {
	case config.SessionStorePostgres:
		b.sessions = repository.NewSessionRepository(b.db.Pool())
	case config.SessionStoreSQLite:
		sqlDB, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		b.closers = append(b.closers, func() { sqlDB.Close() })

		if err := database.RunSQLiteMigrations(ctx, sqlDB); err != nil {
			b.Close()
			return nil, fmt.Errorf("failed to run sqlite migrations: %w", err)
		}
		b.sessions = repository.NewSQLiteSessionRepository(sqlDB)
	default:
		b.sessions = session.NewMemoryStore()
	}

	return b, nil
}
