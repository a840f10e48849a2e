package config

import "github.com/bnema/floatpane/internal/domain/entity"

// Default configuration constants
const (
	defaultWidthRatio     = 0.9
	defaultHeightRatio    = 0.6
	defaultMinWidth       = 200 // dp
	defaultMinHeight      = 150 // dp
	defaultCornerRadius   = 16  // dp
	defaultTitleBarHeight = 40  // dp
	defaultMorphMs        = 300
	defaultGestureHintMs  = 1500
	defaultSizeHintMs     = 3000

	defaultEdgeThreshold     = 24 // dp
	defaultSnapDurationMs    = 300
	defaultRestoreDurationMs = 350
	defaultOvershootTension  = 1.2

	defaultSlop           = 10 // dp
	defaultClickTimeoutMs = 300
	defaultResizeHandle   = 32 // dp

	defaultDoubleTapSlop      = 100 // dp
	defaultFlingMinVelocity   = 1000
	defaultPinchDamping       = 0.8
	defaultScaleHintThreshold = 0.02

	defaultScreenWidth  = 1080
	defaultScreenHeight = 1920

	defaultMaxLogSizeMB  = 10
	defaultMaxBackups    = 3
	defaultMaxLogAgeDays = 7
)

// DefaultConfig returns the default configuration values for floatpane.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{
			WidthRatio:      defaultWidthRatio,
			HeightRatio:     defaultHeightRatio,
			MinWidth:        defaultMinWidth,
			MinHeight:       defaultMinHeight,
			CornerRadius:    defaultCornerRadius,
			TitleBarHeight:  defaultTitleBarHeight,
			MorphDurationMs: defaultMorphMs,
			GestureHintMs:   defaultGestureHintMs,
			SizeHintMs:      defaultSizeHintMs,
			ShowSizeHint:    true,
		},
		Snap: SnapConfig{
			EdgeThreshold:     defaultEdgeThreshold,
			SnapDurationMs:    defaultSnapDurationMs,
			RestoreDurationMs: defaultRestoreDurationMs,
			OvershootTension:  defaultOvershootTension,
		},
		Touch: TouchConfig{
			Slop:                 defaultSlop,
			ClickTimeoutMs:       defaultClickTimeoutMs,
			DoubleClickTimeoutMs: defaultClickTimeoutMs,
			ResizeHandle:         defaultResizeHandle,
		},
		Gesture: GestureConfig{
			TapSlop:            defaultSlop,
			TapTimeoutMs:       defaultClickTimeoutMs,
			DoubleTapTimeoutMs: defaultClickTimeoutMs,
			DoubleTapSlop:      defaultDoubleTapSlop,
			FlingMinVelocity:   defaultFlingMinVelocity,
			PinchDamping:       defaultPinchDamping,
			ScaleMin:           entity.ScaleMin,
			ScaleMax:           entity.ScaleMax,
			ScaleHintThreshold: defaultScaleHintThreshold,
		},
		Screen: ScreenConfig{
			Width:   defaultScreenWidth,
			Height:  defaultScreenHeight,
			Density: 1,
		},
		Storage: StorageConfig{
			Backend: StorageSQLite,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  defaultMaxLogSizeMB,
			MaxBackups: defaultMaxBackups,
			MaxAgeDays: defaultMaxLogAgeDays,
		},
	}
}
