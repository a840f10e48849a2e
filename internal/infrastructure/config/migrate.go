package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

// KeyChangeType classifies a difference between a user file and the defaults.
type KeyChangeType int

const (
	// KeyAdded is a default key the user file does not define yet.
	KeyAdded KeyChangeType = iota
	// KeyRemoved is a user key floatpane no longer reads.
	KeyRemoved
)

// KeyChange is one entry of a migration diff.
type KeyChange struct {
	Type  KeyChangeType
	Key   string
	Value string
}

// Migrator compares a config file against the current defaults.
type Migrator struct {
	path     string
	defaults *viper.Viper
}

// NewMigrator returns a Migrator for the file at path.
func NewMigrator(path string) *Migrator {
	v := viper.New()
	v.SetConfigType("toml")
	(&Manager{viper: v}).setDefaults()

	return &Migrator{path: path, defaults: v}
}

// DetectChanges lists added keys first, then removed ones, each sorted by
// key. A missing file yields no changes.
func (m *Migrator) DetectChanges() ([]KeyChange, error) {
	user, err := m.userKeys()
	if err != nil || user == nil {
		return nil, err
	}

	defaultKeys := m.defaults.AllKeys()
	known := make(map[string]bool, len(defaultKeys))
	for _, k := range defaultKeys {
		known[k] = true
	}

	var changes []KeyChange
	for _, k := range defaultKeys {
		if _, ok := user[k]; !ok {
			changes = append(changes, KeyChange{Type: KeyAdded, Key: k, Value: formatValue(m.defaults.Get(k))})
		}
	}
	for k, v := range user {
		if !known[k] {
			changes = append(changes, KeyChange{Type: KeyRemoved, Key: k, Value: formatValue(v)})
		}
	}

	sort.Slice(changes, func(i, j int) bool {
		if changes[i].Type != changes[j].Type {
			return changes[i].Type < changes[j].Type
		}
		return changes[i].Key < changes[j].Key
	})
	return changes, nil
}

// Migrate rewrites the file with every default key present. User values are
// kept and unknown keys are dropped. It returns the changes it applied.
func (m *Migrator) Migrate() ([]KeyChange, error) {
	changes, err := m.DetectChanges()
	if err != nil || len(changes) == 0 {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(m.path)
	v.SetConfigType("toml")
	(&Manager{viper: v}).setDefaults()
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", m.path, err)
	}
	normalizeConfig(cfg)
	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("refusing to migrate an invalid config: %w", err)
	}

	if err := WriteConfig(cfg, m.path); err != nil {
		return nil, err
	}
	return changes, nil
}

// userKeys flattens the user file into lower-cased dotted keys, matching
// viper's key form. It returns nil when the file does not exist.
func (m *Migrator) userKeys() (map[string]any, error) {
	data, err := os.ReadFile(m.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse config file at %s: %w", m.path, err)
	}

	keys := make(map[string]any)
	flatten(raw, "", keys)
	return keys, nil
}

func flatten(data map[string]any, prefix string, out map[string]any) {
	for k, v := range data {
		key := strings.ToLower(k)
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(nested, key, out)
			continue
		}
		out[key] = v
	}
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "null"
	case string:
		if v == "" {
			return `""`
		}
		return fmt.Sprintf("%q", v)
	case []any:
		return fmt.Sprintf("[%d items]", len(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}

// FormatChanges renders changes as a small diff.
func FormatChanges(changes []KeyChange) string {
	if len(changes) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder
	for _, c := range changes {
		switch c.Type {
		case KeyAdded:
			fmt.Fprintf(&sb, "  + %s = %s\n", c.Key, c.Value)
		case KeyRemoved:
			fmt.Fprintf(&sb, "  - %s = %s (unused)\n", c.Key, c.Value)
		}
	}
	return sb.String()
}
