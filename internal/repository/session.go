package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/session"
)

// SessionRepository is the PostgreSQL session.Store used by the server variant.
type SessionRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool, now: time.Now}
}

// Get returns the live entry for key.
func (r *SessionRepository) Get(ctx context.Context, key string) (*session.Entry, error) {
	query, args, err := psql.
		Select("session_id", "created_at", "expires_at").
		From("widget_sessions").
		Where(sq.Eq{"key": key}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": r.now()}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var entry session.Entry
	err = r.pool.QueryRow(ctx, query, args...).Scan(&entry.Value, &entry.CreatedAt, &entry.ExpiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	return &entry, nil
}

// Set stores value under key without expiry.
func (r *SessionRepository) Set(ctx context.Context, key, value string) error {
	return r.upsert(ctx, key, value, nil)
}

// SetWithExpiry stores value under key for ttl.
func (r *SessionRepository) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error {
	expiresAt := r.now().Add(ttl)
	return r.upsert(ctx, key, value, &expiresAt)
}

func (r *SessionRepository) upsert(ctx context.Context, key, value string, expiresAt *time.Time) error {
	query, args, err := psql.
		Insert("widget_sessions").
		Columns("key", "session_id", "created_at", "expires_at").
		Values(key, value, r.now(), expiresAt).
		Suffix(upsertSession).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}

	return nil
}

// DeleteExpired removes expired entries and returns how many were removed.
func (r *SessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := psql.
		Delete("widget_sessions").
		Where(sq.LtOrEq{"expires_at": r.now()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}
