package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/f4f-study-portal/internal/logger"
)

const (
	getSetting = `SELECT value FROM settings WHERE key = ?;`

	setSetting = `INSERT INTO settings (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at;`

	deleteSetting = `DELETE FROM settings WHERE key = ?;`
)

// clientStateRepository keeps the durable admin client state in SQLite.
type clientStateRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewClientStateRepository(db *DB, log *logger.Logger) ClientStateRepository {
	return &clientStateRepository{db: db, logger: log}
}

// GetSetting returns the stored value and whether the key exists.
func (r *clientStateRepository) GetSetting(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := r.db.QueryRowContext(ctx, getSetting, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*clientStateRepository.GetSetting").Str("key", key).Msg("failed to read setting")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return value, true, nil
}

func (r *clientStateRepository) SetSetting(ctx context.Context, key, value string) error {
	if _, err := r.db.ExecContext(ctx, setSetting, key, value); err != nil {
		r.logger.Err(err).Str("func", "*clientStateRepository.SetSetting").Str("key", key).Msg("failed to write setting")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (r *clientStateRepository) DeleteSetting(ctx context.Context, key string) error {
	if _, err := r.db.ExecContext(ctx, deleteSetting, key); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
