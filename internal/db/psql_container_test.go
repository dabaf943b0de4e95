//go:build container

package db_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"api-footwear/internal/db"
	"api-footwear/internal/models"
)

func startPostgres(t *testing.T, ctx context.Context) string {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "footwear",
			"POSTGRES_PASSWORD": "footwear",
			"POSTGRES_DB":       "footwear",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	require.NoError(t, err)

	return fmt.Sprintf("postgres://footwear:footwear@%s:%s/footwear?sslmode=disable", host, port.Port())
}

func TestPostgresArchiveRoundTrip(t *testing.T) {
	ctx := context.Background()
	url := startPostgres(t, ctx)

	manager, err := db.GetPostgresManagerWithURL(ctx, url, 1, 2, 10*time.Second)
	require.NoError(t, err)
	defer manager.Close()

	require.NoError(t, manager.EnsureSchema(ctx))
	require.NoError(t, manager.EnsureSchema(ctx), "el esquema debe ser idempotente")

	snapshotID := uuid.NewString()
	updates := make(chan models.KPIUpdate, 2)
	worker := db.NewArchiveWorker(ctx, manager, updates, 5*time.Second)
	worker.Start()

	updates <- models.KPIUpdate{SnapshotID: snapshotID, Timestamp: time.Now(), Delta: 1, KPIs: models.KPIMetrics{TotalPairs: 12451}}
	updates <- models.KPIUpdate{SnapshotID: snapshotID, Timestamp: time.Now(), Delta: 0, KPIs: models.KPIMetrics{TotalPairs: 12451}}
	close(updates)
	<-worker.Done()
	worker.Stop()

	tag, err := manager.Exec(ctx, "DELETE FROM kpi_tick WHERE snapshot_id = $1", snapshotID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), tag.RowsAffected())
}
