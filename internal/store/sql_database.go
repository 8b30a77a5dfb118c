package store

import (
	"context"
	"database/sql"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-draft-keeper/internal/config"
	"github.com/MKhiriev/go-draft-keeper/internal/logger"
	"github.com/MKhiriev/go-draft-keeper/migrations"
)

// Supported database/sql driver names. They double as goose dialects.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

// DB is the directory database connection shared by all repositories.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the directory database named by cfg.DSN: a DSN starting
// with "postgres" selects PostgreSQL, anything else is an SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// newDB wraps conn with the statement builder matching dialect.
func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Question),
	}

	if dialect == DialectPostgres {
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	}

	return db
}

// Dialect returns the driver name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// maxAttempts bounds how often withRetry runs an operation.
const maxAttempts = 2

// retryable reports whether err is a transient database failure.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}

	return db.errorClassificator.Classify(err) == Retryable
}

// withRetry runs op and runs it again while it fails with a retryable error,
// up to maxAttempts in total. op must be safe to repeat: a transaction is
// begun and rolled back inside op.
func (db *DB) withRetry(ctx context.Context, name string, op func() error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err = op(); err == nil || !db.retryable(err) || ctx.Err() != nil {
			return err
		}
		logger.FromContext(ctx).Warn().Err(err).Str("func", name).
			Int("attempt", attempt).Msg("transient database error")
	}

	return err
}
