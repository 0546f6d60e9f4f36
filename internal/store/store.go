// Package store persists authors and books in Postgres.
package store

import (
	"context"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect registration
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	defaultQueryTimeout = 5 * time.Second

	tableAuthors = "authors"
	tableBooks   = "books"

	colID        = "id"
	colFirstName = "first_name"
	colLastName  = "last_name"
	colBio       = "bio"
	colTitle     = "title"
	colYear      = "year"
	colISBN      = "isbn"
	colSummary   = "summary"
	colImage     = "image"
	colPrice     = "price"
	colAuthorID  = "author_id"
	colVersion   = "version"

	logMsgQuery               = "store query"
	logMsgCommit              = "session committed"
	logMsgConcurrencyConflict = "concurrency conflict detected"
	logMsgRollbackFailed      = "failed to roll back session"
)

var dialect = goqu.Dialect("postgres")

// Logger receives SQL traces at debug level and conflicts at info level.
// *slog.Logger satisfies it.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Store is the persistence capability for authors and books. Reads go
// straight to the pool; writes are queued on a Session and applied by
// Session.Commit in a single transaction.
type Store struct {
	db      *pgxpool.Pool
	timeout time.Duration
	logger  Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for query traces and conflicts.
func WithLogger(logger Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithQueryTimeout bounds every read and every commit.
func WithQueryTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

func New(db *pgxpool.Pool, opts ...Option) *Store {
	s := &Store{db: db, timeout: defaultQueryTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin starts a new unit of work. Sessions are cheap and must not be
// shared between requests.
func (s *Store) Begin() UnitOfWork {
	return &Session{store: s}
}

// Ping reports whether the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

func (s *Store) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

func (s *Store) trace(query string, args []any, start time.Time) {
	if s.logger == nil {
		return
	}
	s.logger.Debug(logMsgQuery, "query", query, "args", len(args), "duration_ms", time.Since(start).Milliseconds())
}
