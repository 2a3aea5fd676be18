package session_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/session"
)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestClientManager_Idempotent(t *testing.T) {
	ctx := context.Background()
	m := session.NewClientManager(session.NewMemoryStore())

	first, err := m.LookupOrCreate(ctx, "agent-1")
	require.NoError(t, err)
	second, err := m.LookupOrCreate(ctx, "agent-1")
	require.NoError(t, err)

	assert.Equal(t, first.SessionID, second.SessionID)
	assert.Nil(t, first.ExpiresAt)
	assert.Regexp(t, regexp.MustCompile(`^session_\d{13}_[0-9a-z]{9}$`), first.SessionID)
}

func TestClientManager_DistinctAgents(t *testing.T) {
	ctx := context.Background()
	m := session.NewClientManager(session.NewMemoryStore())

	issued := map[string]string{}
	for _, agentID := range []string{"a", "b", "a_b", "a-b", "b_a"} {
		rec, err := m.LookupOrCreate(ctx, agentID)
		require.NoError(t, err)
		for other, id := range issued {
			assert.NotEqual(t, id, rec.SessionID, "%s reused id of %s", agentID, other)
		}
		issued[agentID] = rec.SessionID
	}
}

func TestManager_Key(t *testing.T) {
	m := session.NewClientManager(session.NewMemoryStore(), session.WithNamespace("chat"))
	assert.Equal(t, "chat_agent-1", m.Key("agent-1"))

	m = session.NewClientManager(session.NewMemoryStore())
	assert.Equal(t, "widget_session_agent-1", m.Key("agent-1"))
}

func TestServerManager_ExpiryRegenerates(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := session.NewMemoryStoreWithClock(clk.Now)
	m := session.NewServerManager(store, 0, session.WithClock(clk.Now))

	first, err := m.LookupOrCreate(ctx, "agent-1")
	require.NoError(t, err)
	require.NotNil(t, first.ExpiresAt)
	assert.Equal(t, 30*24*time.Hour, first.ExpiresAt.Sub(first.CreatedAt))
	assert.Regexp(t, regexp.MustCompile(`^session_\d{10}_[0-9a-f]{12}$`), first.SessionID)

	clk.Advance(29 * 24 * time.Hour)
	again, err := m.LookupOrCreate(ctx, "agent-1")
	require.NoError(t, err)
	assert.Equal(t, first.SessionID, again.SessionID)

	clk.Advance(2 * 24 * time.Hour)
	renewed, err := m.LookupOrCreate(ctx, "agent-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, renewed.SessionID)
}

func TestServerManager_ReplacesStaleEntry(t *testing.T) {
	ctx := context.Background()
	storeClock := &clock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	managerClock := &clock{now: storeClock.now}
	store := session.NewMemoryStoreWithClock(storeClock.Now)
	m := session.NewServerManager(store, time.Hour, session.WithClock(managerClock.Now))

	first, err := m.LookupOrCreate(ctx, "agent-1")
	require.NoError(t, err)

	// the store has not noticed the expiry yet
	managerClock.Advance(2 * time.Hour)
	renewed, err := m.LookupOrCreate(ctx, "agent-1")
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, renewed.SessionID)
	assert.True(t, renewed.ExpiresAt.After(managerClock.Now()))
}

func TestManager_RejectsEmptyAgent(t *testing.T) {
	m := session.NewClientManager(session.NewMemoryStore())

	_, err := m.LookupOrCreate(context.Background(), "")
	assert.ErrorIs(t, err, domain.ErrInvalidAgentID)
}

type failingStore struct{ session.Store }

func (failingStore) Get(context.Context, string) (*session.Entry, error) {
	return nil, errors.New("connection refused")
}

func TestManager_PropagatesStoreErrors(t *testing.T) {
	m := session.NewClientManager(failingStore{})

	_, err := m.LookupOrCreate(context.Background(), "agent-1")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestMemoryStore_DeleteExpired(t *testing.T) {
	ctx := context.Background()
	clk := &clock{now: time.Unix(1_700_000_000, 0)}
	store := session.NewMemoryStoreWithClock(clk.Now)

	require.NoError(t, store.SetWithExpiry(ctx, "k1", "v1", time.Hour))
	require.NoError(t, store.SetWithExpiry(ctx, "k2", "v2", 3*time.Hour))
	require.NoError(t, store.Set(ctx, "k3", "v3"))

	clk.Advance(2 * time.Hour)
	n, err := store.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, 2, store.Len())

	_, err = store.Get(ctx, "k1")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	entry, err := store.Get(ctx, "k3")
	require.NoError(t, err)
	assert.Equal(t, "v3", entry.Value)
}
