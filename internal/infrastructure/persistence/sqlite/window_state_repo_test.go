package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/floatpane/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestWindowStateRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "floatpane.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewWindowStateRepository(db)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "empty table should return nil")

	first := entity.Geometry{X: 40, Y: 120, Width: 900, Height: 600, Orientation: entity.OrientationLandscape}
	require.NoError(t, repo.Save(ctx, first))

	second := entity.Geometry{X: -20, Y: 300, Width: 500, Height: 1000, Orientation: entity.OrientationPortrait}
	require.NoError(t, repo.Save(ctx, second))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, second, *got, "save replaces the single row")

	var rows int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM window_state").Scan(&rows))
	assert.Equal(t, 1, rows)

	require.NoError(t, repo.Delete(ctx))
	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWindowStateRepository_PersistsAcrossConnections(t *testing.T) {
	ctx := testCtx()
	dbPath := filepath.Join(t.TempDir(), "floatpane.db")
	want := entity.Geometry{X: 10, Y: 20, Width: 640, Height: 480, Orientation: entity.OrientationLandscape}

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	require.NoError(t, sqlite.NewWindowStateRepository(db).Save(ctx, want))
	require.NoError(t, db.Close())

	db, err = sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	got, err := sqlite.NewWindowStateRepository(db).Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)
}

func TestMigrationVersion(t *testing.T) {
	ctx := testCtx()
	db, err := sqlite.NewConnection(ctx, filepath.Join(t.TempDir(), "floatpane.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	version, err := sqlite.MigrationVersion(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestLazyWindowStateRepository_DefersOpen(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "floatpane.db"))
	t.Cleanup(func() { _ = lazy.Close() })

	repo := sqlite.NewLazyWindowStateRepository(lazy)
	assert.False(t, lazy.IsInitialized())

	require.NoError(t, repo.Save(ctx, entity.Geometry{X: 1, Y: 2, Width: 300, Height: 400}))
	assert.True(t, lazy.IsInitialized())

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 300, got.Width)
}
