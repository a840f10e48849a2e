package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	assert.FileExists(t, path)
	assert.Equal(t, DefaultConfig(), mgr.Get())
	assert.Equal(t, path, mgr.GetConfigFile())
}

func TestManager_LoadReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[snap]
edge_threshold = 40
snap_duration_ms = 500

[storage]
backend = "FILE"
path = " /tmp/state.toml "
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 40.0, cfg.Snap.EdgeThreshold, 1e-9)
	assert.Equal(t, 500, cfg.Snap.SnapDurationMs)
	assert.Equal(t, defaultRestoreDurationMs, cfg.Snap.RestoreDurationMs, "unset keys keep defaults")
	assert.Equal(t, StorageFile, cfg.Storage.Backend)
	assert.Equal(t, "/tmp/state.toml", cfg.Storage.Path)
}

func TestManager_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("FLOATPANE_TOUCH_SLOP", "24")
	t.Setenv("FLOATPANE_LOG_LEVEL", "DEBUG")

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	assert.InDelta(t, 24.0, cfg.Touch.Slop, 1e-9)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestManager_LoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gesture]\npinch_damping = 2.5\n"), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)

	err = mgr.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gesture.pinch_damping")
}

func TestManager_LoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[snap\nedge_threshold = "), 0o644))

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.Error(t, mgr.Load())
}

func TestManager_GetReturnsCopy(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	cfg := mgr.Get()
	cfg.Snap.EdgeThreshold = 999

	assert.InDelta(t, float64(defaultEdgeThreshold), mgr.Get().Snap.EdgeThreshold, 1e-9)
}

func TestSetDefaults(t *testing.T) {
	mgr := &Manager{viper: viper.New()}
	mgr.setDefaults()

	assert.Equal(t, "sqlite", mgr.viper.GetString("storage.backend"))
	assert.InDelta(t, defaultOvershootTension, mgr.viper.GetFloat64("snap.overshoot_tension"), 1e-9)
	assert.Equal(t, defaultSizeHintMs, mgr.viper.GetInt("window.size_hint_ms"))
}

func TestNormalizeConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Storage.Backend = "postgres"
	cfg.Logging.Format = "XML"
	cfg.Logging.Level = " WARN "

	normalizeConfig(cfg)

	assert.Equal(t, StorageSQLite, cfg.Storage.Backend)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "warn", cfg.Logging.Level)
}
