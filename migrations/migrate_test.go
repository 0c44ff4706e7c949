// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	for name, fn := range map[string]func() error{
		"postgres": func() error { return Migrate(nil) },
		"sqlite":   func() error { return MigrateClient(nil) },
	} {
		t.Run(name, func(t *testing.T) {
			err := fn()
			require.Error(t, err)
			assert.ErrorIs(t, err, errNilDB)
		})
	}
}

func TestEmbeddedMigrations_HaveUpAndDown(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite"} {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		require.NoError(t, err)
		require.NotEmpty(t, files, dir)

		for _, f := range files {
			body, err := fs.ReadFile(embedMigrations, f)
			require.NoError(t, err)
			assert.True(t, strings.Contains(string(body), "-- +goose Up"), f)
			assert.True(t, strings.Contains(string(body), "-- +goose Down"), f)
		}
	}
}
