// Package config holds the server and generator settings and their defaults.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mtlprog/embedkit/internal/session"
	"github.com/mtlprog/embedkit/internal/widget"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultDatabaseURL is empty; without it the server runs without an agent provider.
	DefaultDatabaseURL = ""

	// DefaultSQLitePath is where the sqlite session store lives.
	DefaultSQLitePath = "data/embedkit.db"

	// DefaultEmbedHost is the embed host template; the deployment target is the host.
	DefaultEmbedHost = widget.DeploymentPlaceholder

	// DefaultSweepSchedule runs the expired session sweep once an hour.
	DefaultSweepSchedule = "@hourly"

	// DefaultLogFormat is structured JSON.
	DefaultLogFormat = "json"
)

// DefaultSessionTTL is the server-side session lifetime.
const DefaultSessionTTL = session.ServerTTL

// SessionStore selects the server-side session backend.
type SessionStore string

const (
	SessionStorePostgres SessionStore = "postgres"
	SessionStoreSQLite   SessionStore = "sqlite"
	SessionStoreMemory   SessionStore = "memory"
)

// DefaultSessionStore needs no external service.
const DefaultSessionStore = SessionStoreSQLite

// IsValid checks if the session store kind is known.
func (s SessionStore) IsValid() bool {
	switch s {
	case SessionStorePostgres, SessionStoreSQLite, SessionStoreMemory:
		return true
	default:
		return false
	}
}

var (
	ErrEmptyPort           = errors.New("port is required")
	ErrUnknownSessionStore = errors.New("unknown session store")
	ErrDatabaseURLRequired = errors.New("database url is required for the postgres session store")
	ErrInvalidSessionTTL   = errors.New("session ttl must be at least one second")
	ErrInvalidEmbedHost    = errors.New("embed host must contain " + widget.DeploymentPlaceholder)
	ErrEmptyNamespace      = errors.New("session namespace is required")
)

// Config is the serve command configuration.
type Config struct {
	Port             string
	DatabaseURL      string
	SessionStore     SessionStore
	SQLitePath       string
	EmbedHost        string
	SessionNamespace string
	SessionTTL       time.Duration
	SweepSchedule    string
	AllowedOrigins   []string
}

// Default returns a Config with every default applied.
func Default() Config {
	return Config{
		Port:             DefaultPort,
		DatabaseURL:      DefaultDatabaseURL,
		SessionStore:     DefaultSessionStore,
		SQLitePath:       DefaultSQLitePath,
		EmbedHost:        DefaultEmbedHost,
		SessionNamespace: session.DefaultNamespace,
		SessionTTL:       DefaultSessionTTL,
		SweepSchedule:    DefaultSweepSchedule,
	}
}

// Validate rejects configurations the server cannot start with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Port) == "" {
		return ErrEmptyPort
	}
	if !c.SessionStore.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownSessionStore, c.SessionStore)
	}
	if c.SessionStore == SessionStorePostgres && c.DatabaseURL == "" {
		return ErrDatabaseURLRequired
	}
	// server code stores transients in whole seconds
	if c.SessionTTL < time.Second {
		return fmt.Errorf("%w: %s", ErrInvalidSessionTTL, c.SessionTTL)
	}
	if err := ValidateEmbedHost(c.EmbedHost); err != nil {
		return err
	}
	if c.SessionNamespace == "" {
		return ErrEmptyNamespace
	}
	return nil
}

// ValidateEmbedHost checks that an embed host template uses the deployment target.
func ValidateEmbedHost(tmpl string) error {
	if !strings.Contains(tmpl, widget.DeploymentPlaceholder) {
		return fmt.Errorf("%w: %q", ErrInvalidEmbedHost, tmpl)
	}
	return nil
}

// SplitOrigins parses a comma-separated origin list.
func SplitOrigins(s string) []string {
	var origins []string
	for _, o := range strings.Split(s, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
