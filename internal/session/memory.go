package session

import (
	"context"
	"sync"
	"time"

	"github.com/mtlprog/embedkit/internal/domain"
)

// MemoryStore is an in-process Store. Without a TTL it behaves like the
// browser's persistent store the client variant runs against.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]Entry
	now     func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]Entry),
		now:     time.Now,
	}
}

// NewMemoryStoreWithClock creates a MemoryStore using now as its time source.
func NewMemoryStoreWithClock(now func() time.Time) *MemoryStore {
	s := NewMemoryStore()
	s.now = now
	return s
}

// Get returns the entry for key unless it is missing or expired.
func (s *MemoryStore) Get(_ context.Context, key string) (*Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	if entry.ExpiresAt != nil && !s.now().Before(*entry.ExpiresAt) {
		delete(s.entries, key)
		return nil, domain.ErrSessionNotFound
	}
	return &entry, nil
}

// Set stores value under key without expiry.
func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry{Value: value, CreatedAt: s.now()}
	return nil
}

// SetWithExpiry stores value under key for ttl.
func (s *MemoryStore) SetWithExpiry(_ context.Context, key, value string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	expiresAt := now.Add(ttl)
	s.entries[key] = Entry{Value: value, CreatedAt: now, ExpiresAt: &expiresAt}
	return nil
}

// DeleteExpired removes expired entries and returns how many were removed.
func (s *MemoryStore) DeleteExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var n int64
	for key, entry := range s.entries {
		if entry.ExpiresAt != nil && !now.Before(*entry.ExpiresAt) {
			delete(s.entries, key)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
