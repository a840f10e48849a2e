package config

import (
	"testing"
	"time"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/stretchr/testify/assert"
)

func TestOverlayOptions_DefaultsMatchStockOptions(t *testing.T) {
	cfg := DefaultConfig()
	screen := entity.Screen{Width: 1080, Height: 2340, Density: 2.5}

	got := cfg.OverlayOptions(screen)
	want := coordinator.DefaultOptions(screen)

	assert.Equal(t, want, got)
}

func TestOverlayOptions_ConvertsDensityIndependentPixels(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.TitleBarHeight = 48
	cfg.Snap.EdgeThreshold = 30
	cfg.Touch.ClickTimeoutMs = 250
	screen := entity.Screen{Width: 1440, Height: 3120, Density: 2}

	opts := cfg.OverlayOptions(screen)

	assert.Equal(t, 96, opts.TitleBarHeight)
	assert.Equal(t, 60, opts.Snap.EdgeThreshold)
	assert.Equal(t, 250*time.Millisecond, opts.Touch.ClickTimeout)
	assert.Equal(t, entity.Limits{MinWidth: 400, MinHeight: 300}, opts.Limits)
}

func TestLayout_UsesWindowRatios(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Window.WidthRatio = 0.5
	screen := cfg.VirtualScreen()

	layout := cfg.Layout(screen)

	assert.Equal(t, 0.5, layout.WidthRatio)
	assert.Equal(t, defaultHeightRatio, layout.HeightRatio)
	assert.Equal(t, defaultScreenWidth, screen.Width)
}
