package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mtlprog/embedkit/internal/domain"
)

// DefaultNamespace prefixes every session key.
const DefaultNamespace = "widget_session"

// ServerTTL is the lifetime of server-side session entries.
const ServerTTL = 30 * 24 * time.Hour

// Manager implements lookup-or-create for session identifiers.
type Manager struct {
	store     Store
	namespace string
	ttl       time.Duration
	newID     IDGenerator
	now       func() time.Time
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the key namespace.
func WithNamespace(ns string) Option {
	return func(m *Manager) {
		if ns != "" {
			m.namespace = ns
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator overrides how new identifiers are created.
func WithIDGenerator(gen IDGenerator) Option {
	return func(m *Manager) { m.newID = gen }
}

// NewClientManager creates the client variant: entries never expire.
func NewClientManager(store Store, opts ...Option) *Manager {
	return newManager(store, 0, ClientID, opts)
}

// NewServerManager creates the server variant: entries expire after ttl.
func NewServerManager(store Store, ttl time.Duration, opts ...Option) *Manager {
	if ttl <= 0 {
		ttl = ServerTTL
	}
	return newManager(store, ttl, ServerID, opts)
}

func newManager(store Store, ttl time.Duration, gen IDGenerator, opts []Option) *Manager {
	m := &Manager{
		store:     store,
		namespace: DefaultNamespace,
		ttl:       ttl,
		newID:     gen,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Key returns the store key for an agent: "<namespace>_<agentId>".
func (m *Manager) Key(agentID string) string {
	return m.namespace + "_" + agentID
}

// TTL returns the entry lifetime, zero for the client variant.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// LookupOrCreate returns the stored identifier for agentID, creating and
// persisting a new one when none exists or the stored one expired.
func (m *Manager) LookupOrCreate(ctx context.Context, agentID string) (*domain.SessionRecord, error) {
	if agentID == "" {
		return nil, domain.ErrInvalidAgentID
	}

	key := m.Key(agentID)

	now := m.now()

	entry, err := m.store.Get(ctx, key)
	if err == nil {
		existing := &domain.SessionRecord{
			AgentID:   agentID,
			SessionID: entry.Value,
			CreatedAt: entry.CreatedAt,
			ExpiresAt: entry.ExpiresAt,
		}
		// stores sweep on their own clock
		if !existing.IsExpired(now) {
			return existing, nil
		}
	} else if !errors.Is(err, domain.ErrSessionNotFound) {
		return nil, fmt.Errorf("get session %s: %w", key, err)
	}

	record := &domain.SessionRecord{
		AgentID:   agentID,
		SessionID: m.newID(now),
		CreatedAt: now,
	}

	if m.ttl > 0 {
		if err := m.store.SetWithExpiry(ctx, key, record.SessionID, m.ttl); err != nil {
			return nil, fmt.Errorf("store session %s: %w", key, err)
		}
		expiresAt := now.Add(m.ttl)
		record.ExpiresAt = &expiresAt
	} else {
		if err := m.store.Set(ctx, key, record.SessionID); err != nil {
			return nil, fmt.Errorf("store session %s: %w", key, err)
		}
	}

	slog.Info("session created",
		"agent_id", agentID,
		"session_key", key,
		"expires", record.ExpiresAt != nil,
	)

	return record, nil
}
