package config

// Config represents the complete configuration for floatpane.
type Config struct {
	// Window sets the default layout and the chrome of the overlay.
	Window WindowConfig `mapstructure:"window" toml:"window" json:"window"`
	// Snap controls edge docking.
	Snap SnapConfig `mapstructure:"snap" toml:"snap" json:"snap"`
	// Touch controls drag, resize and click classification on the chrome.
	Touch TouchConfig `mapstructure:"touch" toml:"touch" json:"touch"`
	// Gesture controls content gestures (double tap, fling, pinch).
	Gesture GestureConfig `mapstructure:"gesture" toml:"gesture" json:"gesture"`
	// Screen describes the virtual screen used by the sim and replay hosts.
	Screen ScreenConfig `mapstructure:"screen" toml:"screen" json:"screen"`
	Storage StorageConfig `mapstructure:"storage" toml:"storage" json:"storage"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// WindowConfig holds the overlay's default layout and chrome sizes.
// Sizes are in density-independent pixels.
type WindowConfig struct {
	WidthRatio      float64 `mapstructure:"width_ratio" toml:"width_ratio" json:"width_ratio" jsonschema:"minimum=0.1,maximum=1"`
	HeightRatio     float64 `mapstructure:"height_ratio" toml:"height_ratio" json:"height_ratio" jsonschema:"minimum=0.1,maximum=1"`
	MinWidth        float64 `mapstructure:"min_width" toml:"min_width" json:"min_width" jsonschema:"minimum=0"`
	MinHeight       float64 `mapstructure:"min_height" toml:"min_height" json:"min_height" jsonschema:"minimum=0"`
	CornerRadius    float64 `mapstructure:"corner_radius" toml:"corner_radius" json:"corner_radius" jsonschema:"minimum=0"`
	TitleBarHeight  float64 `mapstructure:"title_bar_height" toml:"title_bar_height" json:"title_bar_height" jsonschema:"minimum=1"`
	MorphDurationMs int     `mapstructure:"morph_duration_ms" toml:"morph_duration_ms" json:"morph_duration_ms" jsonschema:"minimum=1"`
	GestureHintMs   int     `mapstructure:"gesture_hint_ms" toml:"gesture_hint_ms" json:"gesture_hint_ms" jsonschema:"minimum=100"`
	SizeHintMs      int     `mapstructure:"size_hint_ms" toml:"size_hint_ms" json:"size_hint_ms" jsonschema:"minimum=100"`
	ShowSizeHint    bool    `mapstructure:"show_size_hint" toml:"show_size_hint" json:"show_size_hint"`
}

// SnapConfig controls edge docking.
type SnapConfig struct {
	// EdgeThreshold is the edge zone width in dp.
	EdgeThreshold     float64 `mapstructure:"edge_threshold" toml:"edge_threshold" json:"edge_threshold" jsonschema:"minimum=1"`
	SnapDurationMs    int     `mapstructure:"snap_duration_ms" toml:"snap_duration_ms" json:"snap_duration_ms" jsonschema:"minimum=1"`
	RestoreDurationMs int     `mapstructure:"restore_duration_ms" toml:"restore_duration_ms" json:"restore_duration_ms" jsonschema:"minimum=1"`
	OvershootTension  float64 `mapstructure:"overshoot_tension" toml:"overshoot_tension" json:"overshoot_tension" jsonschema:"minimum=0"`
}

// TouchConfig controls chrome pointer classification.
type TouchConfig struct {
	Slop                 float64 `mapstructure:"slop" toml:"slop" json:"slop" jsonschema:"minimum=0"`
	ClickTimeoutMs       int     `mapstructure:"click_timeout_ms" toml:"click_timeout_ms" json:"click_timeout_ms" jsonschema:"minimum=1"`
	DoubleClickTimeoutMs int     `mapstructure:"double_click_timeout_ms" toml:"double_click_timeout_ms" json:"double_click_timeout_ms" jsonschema:"minimum=1"`
	ResizeHandle         float64 `mapstructure:"resize_handle" toml:"resize_handle" json:"resize_handle" jsonschema:"minimum=1"`
}

// GestureConfig controls content gestures.
type GestureConfig struct {
	TapSlop            float64 `mapstructure:"tap_slop" toml:"tap_slop" json:"tap_slop" jsonschema:"minimum=0"`
	TapTimeoutMs       int     `mapstructure:"tap_timeout_ms" toml:"tap_timeout_ms" json:"tap_timeout_ms" jsonschema:"minimum=1"`
	DoubleTapTimeoutMs int     `mapstructure:"double_tap_timeout_ms" toml:"double_tap_timeout_ms" json:"double_tap_timeout_ms" jsonschema:"minimum=1"`
	DoubleTapSlop      float64 `mapstructure:"double_tap_slop" toml:"double_tap_slop" json:"double_tap_slop" jsonschema:"minimum=0"`
	// FlingMinVelocity is in pixels per second.
	FlingMinVelocity   float64 `mapstructure:"fling_min_velocity" toml:"fling_min_velocity" json:"fling_min_velocity" jsonschema:"minimum=0"`
	PinchDamping       float64 `mapstructure:"pinch_damping" toml:"pinch_damping" json:"pinch_damping" jsonschema:"exclusiveMinimum=0,maximum=1"`
	ScaleMin           float64 `mapstructure:"scale_min" toml:"scale_min" json:"scale_min" jsonschema:"exclusiveMinimum=0"`
	ScaleMax           float64 `mapstructure:"scale_max" toml:"scale_max" json:"scale_max" jsonschema:"exclusiveMinimum=0"`
	ScaleHintThreshold float64 `mapstructure:"scale_hint_threshold" toml:"scale_hint_threshold" json:"scale_hint_threshold" jsonschema:"minimum=0"`
}

// ScreenConfig describes a virtual screen in pixels.
type ScreenConfig struct {
	Width   int     `mapstructure:"width" toml:"width" json:"width" jsonschema:"minimum=1"`
	Height  int     `mapstructure:"height" toml:"height" json:"height" jsonschema:"minimum=1"`
	Density float64 `mapstructure:"density" toml:"density" json:"density" jsonschema:"exclusiveMinimum=0"`
}

// StorageBackend selects where the window geometry is persisted.
type StorageBackend string

const (
	StorageSQLite StorageBackend = "sqlite"
	StorageFile   StorageBackend = "file"
)

// StorageConfig selects the persistence backend.
type StorageConfig struct {
	Backend StorageBackend `mapstructure:"backend" toml:"backend" json:"backend" jsonschema:"enum=sqlite,enum=file"`
	// Path overrides the database or state file location. Empty means the XDG default.
	Path string `mapstructure:"path" toml:"path" json:"path,omitempty"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level         string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format        string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	EnableFileLog bool   `mapstructure:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	LogDir        string `mapstructure:"log_dir" toml:"log_dir" json:"log_dir,omitempty"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" toml:"max_size_mb" json:"max_size_mb" jsonschema:"minimum=1"`
	MaxBackups    int    `mapstructure:"max_backups" toml:"max_backups" json:"max_backups" jsonschema:"minimum=0"`
	MaxAgeDays    int    `mapstructure:"max_age_days" toml:"max_age_days" json:"max_age_days" jsonschema:"minimum=0"`
	Compress      bool   `mapstructure:"compress" toml:"compress" json:"compress"`
}
