package helper

import (
	"context"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testDatabaseName     = "lexicon_test"
	testDatabaseUser     = "lexicon"
	testDatabasePassword = "lexicon"
)

// MustStartPostgresContainer starts a throwaway Postgres for the database
// test suites and returns a teardown plus the mapped port.
func MustStartPostgresContainer() (func(ctx context.Context, opts ...testcontainers.TerminateOption) error, string, error) {
	ctx := context.Background()

	container, err := postgres.Run(
		ctx,
		"postgres:16-alpine",
		postgres.WithDatabase(testDatabaseName),
		postgres.WithUsername(testDatabaseUser),
		postgres.WithPassword(testDatabasePassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, "", NewError("start postgres container", err)
	}

	mappedPort, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		return container.Terminate, "", NewError("resolve mapped port", err)
	}

	return container.Terminate, mappedPort.Port(), nil
}

// SetTestDatabaseConfigEnvs points the configuration at the test container.
func SetTestDatabaseConfigEnvs(t *testing.T, port string) {
	t.Setenv("LEXICON_DB_DRIVER", DriverPostgres)
	t.Setenv("LEXICON_DB_HOST", "localhost")
	t.Setenv("LEXICON_DB_PORT", port)
	t.Setenv("LEXICON_DB_NAME", testDatabaseName)
	t.Setenv("LEXICON_DB_USER", testDatabaseUser)
	t.Setenv("LEXICON_DB_PASSWORD", testDatabasePassword)
}
