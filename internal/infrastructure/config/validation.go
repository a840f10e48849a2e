package config

import (
	"fmt"
	"strings"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWindow(config)...)
	validationErrors = append(validationErrors, validateSnap(config)...)
	validationErrors = append(validationErrors, validateTouch(config)...)
	validationErrors = append(validationErrors, validateGesture(config)...)
	validationErrors = append(validationErrors, validateScreen(config)...)
	validationErrors = append(validationErrors, validateStorage(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

// Validate reports every invalid value in c.
func (c *Config) Validate() error {
	return validateConfig(c)
}

func validateWindow(config *Config) []string {
	var errs []string
	w := config.Window
	if w.WidthRatio <= 0 || w.WidthRatio > 1 {
		errs = append(errs, "window.width_ratio must be in (0, 1]")
	}
	if w.HeightRatio <= 0 || w.HeightRatio > 1 {
		errs = append(errs, "window.height_ratio must be in (0, 1]")
	}
	if w.MinWidth < 0 || w.MinHeight < 0 {
		errs = append(errs, "window.min_width and window.min_height must be non-negative")
	}
	if w.CornerRadius < 0 {
		errs = append(errs, "window.corner_radius must be non-negative")
	}
	if w.TitleBarHeight <= 0 {
		errs = append(errs, "window.title_bar_height must be positive")
	}
	if w.MorphDurationMs <= 0 {
		errs = append(errs, "window.morph_duration_ms must be positive")
	}
	if w.GestureHintMs <= 0 || w.SizeHintMs <= 0 {
		errs = append(errs, "window.gesture_hint_ms and window.size_hint_ms must be positive")
	}
	return errs
}

func validateSnap(config *Config) []string {
	var errs []string
	s := config.Snap
	if s.EdgeThreshold <= 0 {
		errs = append(errs, "snap.edge_threshold must be positive")
	}
	if s.SnapDurationMs <= 0 {
		errs = append(errs, "snap.snap_duration_ms must be positive")
	}
	if s.RestoreDurationMs <= 0 {
		errs = append(errs, "snap.restore_duration_ms must be positive")
	}
	if s.OvershootTension < 0 {
		errs = append(errs, "snap.overshoot_tension must be non-negative")
	}
	return errs
}

func validateTouch(config *Config) []string {
	var errs []string
	t := config.Touch
	if t.Slop < 0 {
		errs = append(errs, "touch.slop must be non-negative")
	}
	if t.ClickTimeoutMs <= 0 || t.DoubleClickTimeoutMs <= 0 {
		errs = append(errs, "touch.click_timeout_ms and touch.double_click_timeout_ms must be positive")
	}
	if t.ResizeHandle <= 0 {
		errs = append(errs, "touch.resize_handle must be positive")
	}
	return errs
}

func validateGesture(config *Config) []string {
	var errs []string
	g := config.Gesture
	if g.TapSlop < 0 || g.DoubleTapSlop < 0 {
		errs = append(errs, "gesture.tap_slop and gesture.double_tap_slop must be non-negative")
	}
	if g.TapTimeoutMs <= 0 || g.DoubleTapTimeoutMs <= 0 {
		errs = append(errs, "gesture.tap_timeout_ms and gesture.double_tap_timeout_ms must be positive")
	}
	if g.FlingMinVelocity < 0 {
		errs = append(errs, "gesture.fling_min_velocity must be non-negative")
	}
	if g.PinchDamping <= 0 || g.PinchDamping > 1 {
		errs = append(errs, "gesture.pinch_damping must be in (0, 1]")
	}
	if g.ScaleMin <= 0 || g.ScaleMax < g.ScaleMin {
		errs = append(errs, fmt.Sprintf("gesture.scale_min must be positive and not above gesture.scale_max (got: %.2f, %.2f)", g.ScaleMin, g.ScaleMax))
	}
	if g.ScaleHintThreshold < 0 {
		errs = append(errs, "gesture.scale_hint_threshold must be non-negative")
	}
	return errs
}

func validateScreen(config *Config) []string {
	s := config.Screen
	if s.Width <= 0 || s.Height <= 0 || s.Density <= 0 {
		return []string{fmt.Sprintf("screen width, height and density must be positive (got: %dx%d @%.2f)", s.Width, s.Height, s.Density)}
	}
	return nil
}

func validateStorage(config *Config) []string {
	switch config.Storage.Backend {
	case StorageSQLite, StorageFile:
		return nil
	default:
		return []string{fmt.Sprintf("storage.backend must be one of: sqlite, file (got: %s)", config.Storage.Backend)}
	}
}

func validateLogging(config *Config) []string {
	var errs []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}
	switch config.Logging.Format {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("logging.format must be one of: console, json (got: %s)", config.Logging.Format))
	}
	if config.Logging.MaxSizeMB < 1 {
		errs = append(errs, "logging.max_size_mb must be at least 1")
	}
	if config.Logging.MaxBackups < 0 || config.Logging.MaxAgeDays < 0 {
		errs = append(errs, "logging.max_backups and logging.max_age_days must be non-negative")
	}
	return errs
}
