package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrator_DefaultFileHasNoChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	changes, err := NewMigrator(path).DetectChanges()
	require.NoError(t, err)
	assert.Empty(t, changes)
}

func TestMigrator_MissingFile(t *testing.T) {
	changes, err := NewMigrator(filepath.Join(t.TempDir(), "nope.toml")).DetectChanges()
	require.NoError(t, err)
	assert.Nil(t, changes)
}

func TestMigrator_DetectChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[snap]
edge_threshold = 40

[legacy]
Theme = "dark"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	changes, err := NewMigrator(path).DetectChanges()
	require.NoError(t, err)
	require.NotEmpty(t, changes)

	var added, removed []string
	for _, c := range changes {
		switch c.Type {
		case KeyAdded:
			added = append(added, c.Key)
		case KeyRemoved:
			removed = append(removed, c.Key)
		}
	}
	assert.Contains(t, added, "snap.snap_duration_ms")
	assert.Contains(t, added, "window.width_ratio")
	assert.NotContains(t, added, "snap.edge_threshold")
	assert.Equal(t, []string{"legacy.theme"}, removed)
	assert.Equal(t, KeyRemoved, changes[len(changes)-1].Type, "removed keys sort last")
}

func TestMigrator_MigrateKeepsUserValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := "[snap]\nedge_threshold = 40\n\n[legacy]\ntheme = \"dark\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m := NewMigrator(path)
	applied, err := m.Migrate()
	require.NoError(t, err)
	assert.NotEmpty(t, applied)

	changes, err := m.DetectChanges()
	require.NoError(t, err)
	assert.Empty(t, changes)

	mgr, err := NewManager(path)
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	assert.InDelta(t, 40.0, mgr.Get().Snap.EdgeThreshold, 1e-9)
	assert.Equal(t, defaultSnapDurationMs, mgr.Get().Snap.SnapDurationMs)
}

func TestMigrator_MigrateRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[gesture]\npinch_damping = 2.5\n"), 0o644))

	_, err := NewMigrator(path).Migrate()
	require.Error(t, err)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "[gesture]\npinch_damping = 2.5\n", string(data), "file untouched")
}

func TestFormatChanges(t *testing.T) {
	assert.Equal(t, "No changes detected.", FormatChanges(nil))

	out := FormatChanges([]KeyChange{
		{Type: KeyAdded, Key: "snap.snap_duration_ms", Value: "300"},
		{Type: KeyRemoved, Key: "legacy.theme", Value: `"dark"`},
	})
	assert.Equal(t, "  + snap.snap_duration_ms = 300\n  - legacy.theme = \"dark\" (unused)\n", out)
}
