package config

import (
	"time"

	"github.com/bnema/floatpane/internal/application/usecase"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/bnema/floatpane/internal/ui/input"
	"github.com/bnema/floatpane/internal/ui/snap"
)

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// VirtualScreen returns the configured screen.
func (c *Config) VirtualScreen() entity.Screen {
	return entity.Screen{
		Width:   c.Screen.Width,
		Height:  c.Screen.Height,
		Density: c.Screen.Density,
	}
}

// Limits resolves the minimum window size for screen.
func (c *Config) Limits(screen entity.Screen) entity.Limits {
	return entity.Limits{
		MinWidth:  screen.Px(c.Window.MinWidth),
		MinHeight: screen.Px(c.Window.MinHeight),
	}
}

// Layout returns the default layout used by the window state store.
func (c *Config) Layout(screen entity.Screen) usecase.DefaultLayout {
	return usecase.DefaultLayout{
		WidthRatio:  c.Window.WidthRatio,
		HeightRatio: c.Window.HeightRatio,
		Limits:      c.Limits(screen),
	}
}

// OverlayOptions converts the dp based settings into pixel options for screen.
func (c *Config) OverlayOptions(screen entity.Screen) coordinator.Options {
	return coordinator.Options{
		Screen:              screen,
		Limits:              c.Limits(screen),
		CornerRadius:        float64(screen.Px(c.Window.CornerRadius)),
		TitleBarHeight:      screen.Px(c.Window.TitleBarHeight),
		MorphDuration:       millis(c.Window.MorphDurationMs),
		GestureHintDuration: millis(c.Window.GestureHintMs),
		SizeHintDuration:    millis(c.Window.SizeHintMs),
		ShowSizeHint:        c.Window.ShowSizeHint,
		Touch: input.TouchOptions{
			Slop:               float64(screen.Px(c.Touch.Slop)),
			ClickTimeout:       millis(c.Touch.ClickTimeoutMs),
			DoubleClickTimeout: millis(c.Touch.DoubleClickTimeoutMs),
			ResizeHandle:       screen.Px(c.Touch.ResizeHandle),
		},
		Gesture: input.GestureOptions{
			TapSlop:            float64(screen.Px(c.Gesture.TapSlop)),
			TapTimeout:         millis(c.Gesture.TapTimeoutMs),
			DoubleTapTimeout:   millis(c.Gesture.DoubleTapTimeoutMs),
			DoubleTapSlop:      float64(screen.Px(c.Gesture.DoubleTapSlop)),
			FlingMinVelocity:   c.Gesture.FlingMinVelocity,
			PinchDamping:       c.Gesture.PinchDamping,
			ScaleMin:           c.Gesture.ScaleMin,
			ScaleMax:           c.Gesture.ScaleMax,
			ScaleHintThreshold: c.Gesture.ScaleHintThreshold,
		},
		Snap: snap.Options{
			EdgeThreshold:    screen.Px(c.Snap.EdgeThreshold),
			SnapDuration:     millis(c.Snap.SnapDurationMs),
			RestoreDuration:  millis(c.Snap.RestoreDurationMs),
			OvershootTension: c.Snap.OvershootTension,
		},
	}
}
