package config

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_WatchReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var threshold atomic.Value
	mgr.OnConfigChange(func(cfg *Config) {
		threshold.Store(cfg.Snap.EdgeThreshold)
	})
	require.NoError(t, mgr.Watch(context.Background()))
	require.NoError(t, mgr.Watch(context.Background()), "second call is a no-op")

	cfg := DefaultConfig()
	cfg.Snap.EdgeThreshold = 48
	require.NoError(t, os.WriteFile(path, mustEncode(t, cfg), 0o644))

	require.Eventually(t, func() bool {
		v, ok := threshold.Load().(float64)
		return ok && v == 48
	}, 5*time.Second, 20*time.Millisecond)
	assert.InDelta(t, 48.0, mgr.Get().Snap.EdgeThreshold, 1e-9)
}

func TestManager_WatchKeepsConfigOnInvalidEdit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())

	var calls atomic.Int32
	mgr.OnConfigChange(func(*Config) { calls.Add(1) })
	require.NoError(t, mgr.Watch(context.Background()))

	cfg := DefaultConfig()
	cfg.Window.WidthRatio = 0
	require.NoError(t, os.WriteFile(path, mustEncode(t, cfg), 0o644))

	time.Sleep(300 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.InDelta(t, defaultWidthRatio, mgr.Get().Window.WidthRatio, 1e-9)
}

func mustEncode(t *testing.T, cfg *Config) []byte {
	t.Helper()
	path := filepath.Join(t.TempDir(), "encoded.toml")
	require.NoError(t, WriteConfig(cfg, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return data
}
