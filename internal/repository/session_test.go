package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"github.com/mtlprog/embedkit/internal/database"
	"github.com/mtlprog/embedkit/internal/domain"
	"github.com/mtlprog/embedkit/internal/repository"
)

// PostgresTestSuite covers the PostgreSQL repositories.
type PostgresTestSuite struct {
	suite.Suite
	db       *database.DB
	pool     *pgxpool.Pool
	sessions *repository.SessionRepository
	agents   *repository.AgentRepository
}

// SetupSuite runs once before all tests.
func (s *PostgresTestSuite) SetupSuite() {
	ctx := context.Background()

	db, err := database.New(ctx, os.Getenv("DATABASE_URL"))
	s.Require().NoError(err, "failed to connect to database")

	s.db = db
	s.pool = db.Pool()

	err = database.RunMigrations(ctx, s.pool)
	s.Require().NoError(err, "failed to run migrations")

	s.sessions = repository.NewSessionRepository(s.pool)
	s.agents = repository.NewAgentRepository(s.pool)
}

// TearDownSuite runs once after all tests.
func (s *PostgresTestSuite) TearDownSuite() {
	s.db.Close()
}

// SetupTest runs before each test.
func (s *PostgresTestSuite) SetupTest() {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx, "TRUNCATE widget_sessions, agents")
	s.Require().NoError(err, "failed to truncate tables")

	_, err = s.pool.Exec(ctx, `
		INSERT INTO agents (id, name, description, avatar_url)
		VALUES ('agent-1', 'Aria', 'Support assistant', 'https://cdn.example.com/aria.png'),
		       ('agent-2', 'Bob', '', NULL)
	`)
	s.Require().NoError(err, "failed to create agents")
}

func (s *PostgresTestSuite) TestAgentGetByID() {
	agent, err := s.agents.GetByID(context.Background(), "agent-1")
	s.Require().NoError(err)
	s.Equal("Aria", agent.Name)
	s.Equal("Support assistant", agent.Description)
	s.Equal("https://cdn.example.com/aria.png", agent.AvatarURL())

	agent, err = s.agents.GetByID(context.Background(), "agent-2")
	s.Require().NoError(err)
	s.Nil(agent.Appearance.Avatar)
}

func (s *PostgresTestSuite) TestAgentNotFound() {
	_, err := s.agents.GetByID(context.Background(), "missing")
	s.ErrorIs(err, domain.ErrAgentNotFound)
}

func (s *PostgresTestSuite) TestSessionSetAndGet() {
	ctx := context.Background()

	s.Require().NoError(s.sessions.SetWithExpiry(ctx, "widget_session_agent-1", "session_1_abc", time.Hour))

	entry, err := s.sessions.Get(ctx, "widget_session_agent-1")
	s.Require().NoError(err)
	s.Equal("session_1_abc", entry.Value)
	s.Require().NotNil(entry.ExpiresAt)
	s.WithinDuration(time.Now().Add(time.Hour), *entry.ExpiresAt, time.Minute)

	_, err = s.sessions.Get(ctx, "widget_session_agent-2")
	s.ErrorIs(err, domain.ErrSessionNotFound)
}

func (s *PostgresTestSuite) TestSessionDeleteExpired() {
	ctx := context.Background()

	_, err := s.pool.Exec(ctx, `
		INSERT INTO widget_sessions (key, session_id, created_at, expires_at)
		VALUES ('widget_session_old', 'a', now() - interval '31 days', now() - interval '1 day'),
		       ('widget_session_new', 'b', now(), now() + interval '30 days'),
		       ('widget_session_forever', 'c', now(), NULL)
	`)
	s.Require().NoError(err)

	_, err = s.sessions.Get(ctx, "widget_session_old")
	s.ErrorIs(err, domain.ErrSessionNotFound)

	n, err := s.sessions.DeleteExpired(ctx)
	s.Require().NoError(err)
	s.Equal(int64(1), n)

	_, err = s.sessions.Get(ctx, "widget_session_forever")
	s.NoError(err)
}

func TestPostgresTestSuite(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL is not set")
	}
	suite.Run(t, new(PostgresTestSuite))
}
