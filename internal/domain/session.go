package domain

import "time"

// SessionRecord correlates a conversation across widget reopenings.
type SessionRecord struct {
	AgentID   string
	SessionID string
	CreatedAt time.Time
	ExpiresAt *time.Time // nil for client-store sessions
}

// IsExpired returns true if the record carries an expiry that has passed.
func (s *SessionRecord) IsExpired(now time.Time) bool {
	return s.ExpiresAt != nil && !now.Before(*s.ExpiresAt)
}
