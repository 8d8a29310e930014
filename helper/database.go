package helper

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Database wraps the sql connection together with the driver it was opened
// with and the logger shared by the table handlers.
type Database struct {
	Instance *sql.DB
	Driver   string
	// Path is the resolved artifact location for the sqlite3 driver. It can
	// differ from the configured path when the build had to redirect.
	Path   string
	Logger *slog.Logger
}

// NewDatabase opens the configured database without touching existing data.
// Used by the validator and by downstream consumers.
func NewDatabase(config *DatabaseConfiguration, logger *slog.Logger) (*Database, error) {
	instance, err := sql.Open(config.Driver, config.DataSourceName())
	if err != nil {
		return nil, NewError("open database", err)
	}
	if err := instance.Ping(); err != nil {
		instance.Close()
		return nil, NewError("ping database", err)
	}

	return &Database{
		Instance: instance,
		Driver:   config.Driver,
		Path:     config.Path,
		Logger:   logger,
	}, nil
}

// NewRebuildDatabase prepares the destination for a full rebuild. For the
// sqlite3 driver the existing artifact is deleted first; when deletion or
// opening is denied the build redirects to a uniquely-named sibling file
// instead of aborting. A build is all-or-nothing, so there is no attempt to
// reuse existing contents.
func NewRebuildDatabase(config *DatabaseConfiguration, logger *slog.Logger) (*Database, error) {
	if config.Driver != DriverSQLite {
		return NewDatabase(config, logger)
	}

	path := config.Path
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, NewError("create artifact directory", err)
		}
	}

	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			alternate := alternatePath(path)
			logger.Warn("Destination locked, redirecting build",
				slog.String("path", path),
				slog.String("alternate", alternate),
				slog.String("reason", err.Error()))
			path = alternate
		} else {
			logger.Info("Deleted existing artifact", slog.String("path", path))
		}
	}

	db, err := openSQLite(path)
	if err != nil {
		alternate := alternatePath(path)
		logger.Warn("Destination unwritable, redirecting build",
			slog.String("path", path),
			slog.String("alternate", alternate),
			slog.String("reason", err.Error()))
		path = alternate
		db, err = openSQLite(path)
		if err != nil {
			return nil, NewError("open alternate destination", err)
		}
	}

	return &Database{
		Instance: db,
		Driver:   DriverSQLite,
		Path:     path,
		Logger:   logger,
	}, nil
}

func openSQLite(path string) (*sql.DB, error) {
	db, err := sql.Open(DriverSQLite, path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

func alternatePath(path string) string {
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return fmt.Sprintf("%s-%s%s", stem, uuid.New().String(), ext)
}

// Rebind rewrites ?-style placeholders to $n for the postgres driver.
// SQLite queries pass through untouched.
func (d *Database) Rebind(query string) string {
	if d.Driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	if d.Instance != nil {
		return d.Instance.Close()
	}
	return nil
}
