// Package config loads, validates and watches the floatpane configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config     *Config
	viper      *viper.Viper
	configFile string
	mu         sync.RWMutex
	callbacks  []func(*Config)
	watching   bool
}

// NewManager creates a new configuration manager. An empty configFile uses
// config.toml in the XDG config directory.
func NewManager(configFile string) (*Manager, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(configFile)
	v.SetConfigType("toml")

	v.SetEnvPrefix("FLOATPANE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names shared with logging.NewFromEnv.
	if err := v.BindEnv("logging.level", "FLOATPANE_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind FLOATPANE_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "FLOATPANE_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind FLOATPANE_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:      v,
		configFile: configFile,
		callbacks:  make([]func(*Config), 0),
	}, nil
}

// Load reads the configuration file and environment. A missing file is
// created with the defaults first.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile, err)
	}

	if err := WriteDefault(m.configFile, false); err != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			filepath.Dir(m.configFile),
			err,
		)
	}
	if err := m.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read newly created config file: %w", err)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.configFile,
			err,
		)
	}
	return config, nil
}

func normalizeConfig(config *Config) {
	switch StorageBackend(strings.ToLower(string(config.Storage.Backend))) {
	case StorageFile:
		config.Storage.Backend = StorageFile
	default:
		config.Storage.Backend = StorageSQLite
	}
	config.Storage.Path = strings.TrimSpace(config.Storage.Path)

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = "console"
	}
}

// Get returns a copy of the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.configFile
}

// setDefaults registers every default so that env overrides work for keys
// absent from the file.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.setWindowDefaults(defaults)
	m.setSnapDefaults(defaults)
	m.setTouchDefaults(defaults)
	m.setGestureDefaults(defaults)

	m.viper.SetDefault("screen.width", defaults.Screen.Width)
	m.viper.SetDefault("screen.height", defaults.Screen.Height)
	m.viper.SetDefault("screen.density", defaults.Screen.Density)

	m.viper.SetDefault("storage.backend", string(defaults.Storage.Backend))
	m.viper.SetDefault("storage.path", defaults.Storage.Path)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	m.viper.SetDefault("logging.max_age_days", defaults.Logging.MaxAgeDays)
	m.viper.SetDefault("logging.compress", defaults.Logging.Compress)
}

func (m *Manager) setWindowDefaults(defaults *Config) {
	m.viper.SetDefault("window.width_ratio", defaults.Window.WidthRatio)
	m.viper.SetDefault("window.height_ratio", defaults.Window.HeightRatio)
	m.viper.SetDefault("window.min_width", defaults.Window.MinWidth)
	m.viper.SetDefault("window.min_height", defaults.Window.MinHeight)
	m.viper.SetDefault("window.corner_radius", defaults.Window.CornerRadius)
	m.viper.SetDefault("window.title_bar_height", defaults.Window.TitleBarHeight)
	m.viper.SetDefault("window.morph_duration_ms", defaults.Window.MorphDurationMs)
	m.viper.SetDefault("window.gesture_hint_ms", defaults.Window.GestureHintMs)
	m.viper.SetDefault("window.size_hint_ms", defaults.Window.SizeHintMs)
	m.viper.SetDefault("window.show_size_hint", defaults.Window.ShowSizeHint)
}

func (m *Manager) setSnapDefaults(defaults *Config) {
	m.viper.SetDefault("snap.edge_threshold", defaults.Snap.EdgeThreshold)
	m.viper.SetDefault("snap.snap_duration_ms", defaults.Snap.SnapDurationMs)
	m.viper.SetDefault("snap.restore_duration_ms", defaults.Snap.RestoreDurationMs)
	m.viper.SetDefault("snap.overshoot_tension", defaults.Snap.OvershootTension)
}

func (m *Manager) setTouchDefaults(defaults *Config) {
	m.viper.SetDefault("touch.slop", defaults.Touch.Slop)
	m.viper.SetDefault("touch.click_timeout_ms", defaults.Touch.ClickTimeoutMs)
	m.viper.SetDefault("touch.double_click_timeout_ms", defaults.Touch.DoubleClickTimeoutMs)
	m.viper.SetDefault("touch.resize_handle", defaults.Touch.ResizeHandle)
}

func (m *Manager) setGestureDefaults(defaults *Config) {
	m.viper.SetDefault("gesture.tap_slop", defaults.Gesture.TapSlop)
	m.viper.SetDefault("gesture.tap_timeout_ms", defaults.Gesture.TapTimeoutMs)
	m.viper.SetDefault("gesture.double_tap_timeout_ms", defaults.Gesture.DoubleTapTimeoutMs)
	m.viper.SetDefault("gesture.double_tap_slop", defaults.Gesture.DoubleTapSlop)
	m.viper.SetDefault("gesture.fling_min_velocity", defaults.Gesture.FlingMinVelocity)
	m.viper.SetDefault("gesture.pinch_damping", defaults.Gesture.PinchDamping)
	m.viper.SetDefault("gesture.scale_min", defaults.Gesture.ScaleMin)
	m.viper.SetDefault("gesture.scale_max", defaults.Gesture.ScaleMax)
	m.viper.SetDefault("gesture.scale_hint_threshold", defaults.Gesture.ScaleHintThreshold)
}
