package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

// ClientStorages holds the durable storage of the admin client.
type ClientStorages struct {
	DB *DB

	StateRepository ClientStateRepository
}

// NewClientStorages opens the SQLite file at path and applies the client
// migrations.
func NewClientStorages(ctx context.Context, path string, log *logger.Logger) (*ClientStorages, error) {
	db, err := NewConnectSQLite(ctx, path, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.MigrateClient(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		DB:              db,
		StateRepository: NewClientStateRepository(db, log),
	}, nil
}

func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
