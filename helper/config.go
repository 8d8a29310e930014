package helper

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Driver names accepted by DatabaseConfiguration.
const (
	DriverSQLite   = "sqlite3"
	DriverPostgres = "postgres"
)

// DatabaseConfiguration describes where the lexicon artifact is written.
// The default backend is a single SQLite file; a Postgres DSN can be
// configured instead for deployments that keep the lexicon in a shared
// database.
type DatabaseConfiguration struct {
	Driver string
	// Path is the SQLite artifact location (sqlite3 driver only).
	Path string
	// Postgres connection pieces (postgres driver only).
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	Schema   string
}

// NewDatabaseConfiguration reads configuration from the environment,
// loading a .env file first when one exists.
func NewDatabaseConfiguration() (*DatabaseConfiguration, error) {
	// Missing .env is fine, the environment may be set directly.
	_ = godotenv.Load()

	config := &DatabaseConfiguration{
		Driver:   envOr("LEXICON_DB_DRIVER", DriverSQLite),
		Path:     envOr("LEXICON_DB_PATH", "data/lexicon.db"),
		Host:     os.Getenv("LEXICON_DB_HOST"),
		Port:     envOr("LEXICON_DB_PORT", "5432"),
		Name:     os.Getenv("LEXICON_DB_NAME"),
		User:     os.Getenv("LEXICON_DB_USER"),
		Password: os.Getenv("LEXICON_DB_PASSWORD"),
		Schema:   envOr("LEXICON_DB_SCHEMA", "public"),
	}

	switch config.Driver {
	case DriverSQLite:
		if strings.TrimSpace(config.Path) == "" {
			return nil, NewError("database configuration", fmt.Errorf("LEXICON_DB_PATH must not be empty"))
		}
	case DriverPostgres:
		if config.Host == "" || config.Name == "" || config.User == "" {
			return nil, NewError("database configuration", fmt.Errorf("postgres driver requires LEXICON_DB_HOST, LEXICON_DB_NAME and LEXICON_DB_USER"))
		}
	default:
		return nil, NewError("database configuration", fmt.Errorf("unsupported driver %q", config.Driver))
	}

	return config, nil
}

// DataSourceName builds the driver-specific DSN.
func (c *DatabaseConfiguration) DataSourceName() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf(
			"host=%s port=%s dbname=%s user=%s password=%s search_path=%s sslmode=disable",
			c.Host, c.Port, c.Name, c.User, c.Password, c.Schema,
		)
	}
	return c.Path + "?_journal_mode=WAL&_busy_timeout=5000"
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
