package repository

import sq "github.com/Masterminds/squirrel"

// psql is the shared Squirrel statement builder configured for PostgreSQL dollar placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// sqlite is the statement builder for SQLite question-mark placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// upsertSession replaces a key's identifier; both dialects accept EXCLUDED.
const upsertSession = "ON CONFLICT (key) DO UPDATE SET " +
	"session_id = EXCLUDED.session_id, created_at = EXCLUDED.created_at, expires_at = EXCLUDED.expires_at"
