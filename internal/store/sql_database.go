package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
	"github.com/MKhiriev/f4f-study-portal/migrations"
)

// DB wraps the connection pool together with the error classifier of its
// driver.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// ErrorClassificator decides whether a failed operation may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// Migrate applies the embedded Postgres migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

// MigrateClient applies the embedded migrations of the admin client database.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// Ping reports whether the database is reachable. It backs the gRPC health
// service.
func (db *DB) Ping(ctx context.Context) error {
	if db == nil || db.DB == nil {
		return ErrNilDB
	}
	return db.PingContext(ctx)
}

// Retryable reports whether err is a transient database error.
func (db *DB) Retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
