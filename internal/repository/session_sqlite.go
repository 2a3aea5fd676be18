package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/session"
)

// SQLiteSessionRepository is the single-node session.Store. Times are stored
// as unix milliseconds.
type SQLiteSessionRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSQLiteSessionRepository creates a new SQLiteSessionRepository.
func NewSQLiteSessionRepository(db *sql.DB) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{db: db, now: time.Now}
}

// NewSQLiteSessionRepositoryWithClock creates a repository using now as its time source.
func NewSQLiteSessionRepositoryWithClock(db *sql.DB, now func() time.Time) *SQLiteSessionRepository {
	return &SQLiteSessionRepository{db: db, now: now}
}

// Get returns the live entry for key.
func (r *SQLiteSessionRepository) Get(ctx context.Context, key string) (*session.Entry, error) {
	query, args, err := sqlite.
		Select("session_id", "created_at", "expires_at").
		From("widget_sessions").
		Where(sq.Eq{"key": key}).
		Where(sq.Or{sq.Eq{"expires_at": nil}, sq.Gt{"expires_at": r.now().UnixMilli()}}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}

	var (
		entry     session.Entry
		createdAt int64
		expiresAt sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&entry.Value, &createdAt, &expiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("query session: %w", err)
	}

	entry.CreatedAt = time.UnixMilli(createdAt)
	if expiresAt.Valid {
		t := time.UnixMilli(expiresAt.Int64)
		entry.ExpiresAt = &t
	}

	return &entry, nil
}

// Set stores value under key without expiry.
func (r *SQLiteSessionRepository) Set(ctx context.Context, key, value string) error {
	return r.upsert(ctx, key, value, sql.NullInt64{})
}

// SetWithExpiry stores value under key for ttl.
func (r *SQLiteSessionRepository) SetWithExpiry(ctx context.Context, key, value string, ttl time.Duration) error {
	expiresAt := r.now().Add(ttl).UnixMilli()
	return r.upsert(ctx, key, value, sql.NullInt64{Int64: expiresAt, Valid: true})
}

func (r *SQLiteSessionRepository) upsert(ctx context.Context, key, value string, expiresAt sql.NullInt64) error {
	query, args, err := sqlite.
		Insert("widget_sessions").
		Columns("key", "session_id", "created_at", "expires_at").
		Values(key, value, r.now().UnixMilli(), expiresAt).
		Suffix(upsertSession).
		ToSql()
	if err != nil {
		return fmt.Errorf("build query: %w", err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert session: %w", err)
	}

	return nil
}

// DeleteExpired removes expired entries and returns how many were removed.
func (r *SQLiteSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query, args, err := sqlite.
		Delete("widget_sessions").
		Where(sq.LtOrEq{"expires_at": r.now().UnixMilli()}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}

	return result.RowsAffected()
}
