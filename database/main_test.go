package database

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/oyemi/lexicon/helper"
	"github.com/stretchr/testify/require"
)

// initDB opens a fresh SQLite artifact in a per-test temp directory. The
// Postgres path is covered separately in postgres_test.go.
func initDB(t *testing.T) *helper.Database {
	t.Helper()

	config := &helper.DatabaseConfiguration{
		Driver: helper.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "lexicon.db"),
	}
	logger := helper.NewLogger(io.Discard, slog.LevelError)

	db, err := helper.NewRebuildDatabase(config, logger)
	require.NoError(t, err, "failed to open test database")
	t.Cleanup(func() { db.Close() })

	return db
}
