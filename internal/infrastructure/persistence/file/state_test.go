package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/infrastructure/persistence/file"
	"github.com/bnema/floatpane/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func TestWindowStateRepository_RoundTrip(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "state", "state.toml")
	repo := file.NewWindowStateRepository(path)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "missing file means nothing stored")

	want := entity.Geometry{X: -30, Y: 200, Width: 700, Height: 900, Orientation: entity.OrientationLandscape}
	require.NoError(t, repo.Save(ctx, want))

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, want, *got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[window]")

	require.NoError(t, repo.Delete(ctx))
	require.NoError(t, repo.Delete(ctx), "deleting twice is fine")

	got, err = repo.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestWindowStateRepository_MalformedFile(t *testing.T) {
	ctx := testCtx()
	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window\nx = "), 0o600))

	got, err := file.NewWindowStateRepository(path).Get(ctx)
	require.Error(t, err)
	assert.Nil(t, got)
}
