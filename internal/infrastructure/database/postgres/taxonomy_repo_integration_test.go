//go:build integration

// Integration tests for the PostgreSQL taxonomy store. They require a running
// database reachable via the AMR_TEST_DB_* environment variables, e.g.
//
//	AMR_TEST_DB_HOST=localhost AMR_TEST_DB_PORT=5432 \
//	AMR_TEST_DB_USER=amr AMR_TEST_DB_PASSWORD=amr AMR_TEST_DB_NAME=amr_test \
//	go test -tags integration ./internal/infrastructure/database/postgres/...
package postgres_test

import (
	"context"
	"os"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openamr/amr/internal/config"
	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/database/postgres"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
)

func testDBConfig(t *testing.T) config.DatabaseConfig {
	t.Helper()
	host := os.Getenv("AMR_TEST_DB_HOST")
	if host == "" {
		t.Skip("AMR_TEST_DB_HOST not set; skipping integration test")
	}
	port := 5432
	if p := os.Getenv("AMR_TEST_DB_PORT"); p != "" {
		var err error
		port, err = strconv.Atoi(p)
		require.NoError(t, err)
	}
	cfg := config.DatabaseConfig{
		Host:          host,
		Port:          port,
		User:          os.Getenv("AMR_TEST_DB_USER"),
		Password:      os.Getenv("AMR_TEST_DB_PASSWORD"),
		DBName:        os.Getenv("AMR_TEST_DB_NAME"),
		SSLMode:       "disable",
		MigrationPath: "migrations",
	}
	return cfg
}

func setupTestRepo(t *testing.T) (*postgres.TaxonomyRepository, func()) {
	t.Helper()
	cfg := testDBConfig(t)
	ctx := context.Background()

	migrator, err := postgres.NewMigrator(cfg, logging.NewNopLogger())
	require.NoError(t, err)
	require.NoError(t, migrator.Up())
	require.NoError(t, migrator.Close())

	conn, err := postgres.NewConnection(ctx, cfg, logging.NewNopLogger())
	require.NoError(t, err)

	repo := postgres.NewTaxonomyRepository(conn, logging.NewNopLogger())
	require.NoError(t, repo.Seed(ctx, taxonomy.Seed(), taxonomy.DefaultSiteCodes()))

	return repo, conn.Close
}

func TestTaxonomyRepositoryRoundTrip(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	table, err := repo.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.SeedTable().Len(), table.Len())

	rec, ok := table.ByCode("STAAUR")
	require.True(t, ok)
	assert.Equal(t, "Staphylococcus aureus", rec.Fullname)

	codes, err := repo.LoadSiteCodes(ctx)
	require.NoError(t, err)
	code, ok := codes.Lookup("sau")
	require.True(t, ok)
	assert.Equal(t, "STAAUR", string(code))
}

func TestTaxonomyRepositorySeedIdempotent(t *testing.T) {
	repo, cleanup := setupTestRepo(t)
	defer cleanup()
	ctx := context.Background()

	// A second seed must not duplicate rows or fail on conflicts.
	require.NoError(t, repo.Seed(ctx, taxonomy.Seed(), taxonomy.DefaultSiteCodes()))

	table, err := repo.LoadTable(ctx)
	require.NoError(t, err)
	assert.Equal(t, taxonomy.SeedTable().Len(), table.Len())
}
