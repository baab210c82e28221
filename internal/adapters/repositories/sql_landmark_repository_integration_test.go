//go:build integration

package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"route-metrics-service/internal/domain"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupPostgres starts a PostgreSQL container and returns a connected *sql.DB.
func setupPostgres(t *testing.T) *sql.DB {
	t.Helper()
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "test",
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_DB":       "test_routes",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate PostgreSQL container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://test:test@%s:%s/test_routes?sslmode=disable", host, port.Port())

	var db *sql.DB
	require.Eventually(t, func() bool {
		var err error
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return false
		}
		return db.PingContext(ctx) == nil
	}, 30*time.Second, time.Second, "PostgreSQL not ready for connections")
	t.Cleanup(func() { _ = db.Close() })

	return db
}

func TestSQLLandmarkRepositoryIntegration(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	require.NoError(t, InitSchema(ctx, db))
	require.NoError(t, InitSchema(ctx, db), "schema init must be idempotent")

	seed := filepath.Join(t.TempDir(), "landmarks.json")
	require.NoError(t, os.WriteFile(seed, []byte(`[
		{"landmark_id": 2, "name": "Clinic", "kind": "hospital", "location": [75.925, 10.978]},
		{"landmark_id": 1, "name": "District Hospital", "kind": "hospital", "location": [75.912, 10.989]},
		{"landmark_id": 3, "name": "Bus Depot", "kind": "depot", "location": [75.900, 10.980]}
	]`), 0o600))

	require.NoError(t, SeedLandmarksFromJSON(ctx, db, seed))
	require.NoError(t, SeedLandmarksFromJSON(ctx, db, seed), "seeding must upsert")

	repo := NewSQLLandmarkRepository(db)
	got, err := repo.ListLandmarks(ctx, domain.LandmarkHospital)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, "District Hospital", got[0].Name)
	assert.Equal(t, domain.Coordinates{Lon: 75.912, Lat: 10.989}, got[0].Location)
	assert.Equal(t, 2, got[1].ID)
}
