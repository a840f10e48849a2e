package replay_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/infrastructure/viewport"
	"github.com/bnema/floatpane/internal/infrastructure/virtual"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/bnema/floatpane/internal/ui/mainloop"
	"github.com/bnema/floatpane/internal/ui/replay"
)

type harness struct {
	clock   *replay.Clock
	target  replay.Target
	surface *virtual.Surface
}

func newHarness(t *testing.T, screen entity.Screen) *harness {
	t.Helper()
	ctx := context.Background()
	h := &harness{
		clock:   replay.NewClock(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
		surface: virtual.NewSurface(),
	}
	doc := viewport.NewDocument(ctx, "floatpane://one", "floatpane://two")
	t.Cleanup(doc.Close)
	frames := mainloop.NewFrameQueue(h.clock.Now)
	h.target = replay.Target{
		Overlay: coordinator.NewOverlay(ctx, coordinator.Deps{
			Compositor: h.surface,
			Shapes:     h.surface,
			Panel:      h.surface,
			Viewport:   doc,
			Hints:      viewport.NewHintBoard(),
			Scheduler:  frames,
		}, coordinator.DefaultOptions(screen)),
		Frames:   frames,
		Viewport: doc,
	}
	return h
}

func TestRun_DockAndRestore(t *testing.T) {
	script, err := replay.Load("testdata/dock_left.toml")
	require.NoError(t, err)
	h := newHarness(t, script.EntityScreen())

	report, err := replay.Run(context.Background(), script, h.clock, h.target)
	require.NoError(t, err)

	for _, step := range report.Steps {
		assert.Empty(t, step.Failures, "step %d (%s)", step.Index, step.Action)
	}
	assert.False(t, report.Failed())
	assert.Equal(t, entity.ModeIdle, report.Final.Mode)
	assert.False(t, h.surface.State().Open, "the overlay is closed after the run")
}

func TestRun_ReportsFailedExpectations(t *testing.T) {
	script, err := replay.Parse(strings.NewReader(`
[screen]
width = 1080
height = 2340

[[step]]
at_ms = 0
action = "wait"
expect = { mode = "hidden", width = 10 }
`))
	require.NoError(t, err)
	h := newHarness(t, script.EntityScreen())

	report, err := replay.Run(context.Background(), script, h.clock, h.target)
	require.NoError(t, err)

	require.True(t, report.Failed())
	failures := report.Steps[0].Failures
	require.Len(t, failures, 2)
	assert.Equal(t, "mode: want hidden, got idle", failures[0])
	assert.Equal(t, "width: want 10, got 972", failures[1])
}

func TestRun_RotateSwapsScreen(t *testing.T) {
	script, err := replay.Parse(strings.NewReader(`
[screen]
width = 1080
height = 2340

[[step]]
at_ms = 100
action = "rotate"
`))
	require.NoError(t, err)
	h := newHarness(t, script.EntityScreen())

	var rotated entity.Screen
	h.target.Limits = func(s entity.Screen) entity.Limits {
		rotated = s
		return entity.Limits{MinWidth: 200, MinHeight: 150}
	}
	report, err := replay.Run(context.Background(), script, h.clock, h.target)
	require.NoError(t, err)

	assert.Equal(t, entity.Screen{Width: 2340, Height: 1080, Density: 1}, rotated)
	g := report.Final.Geometry
	assert.LessOrEqual(t, g.X+g.Width, 2340)
	assert.LessOrEqual(t, g.Y+g.Height, 1080)
	assert.Equal(t, int64(100), report.Steps[0].AtMs)
}

func TestRun_ScaleExpectation(t *testing.T) {
	script, err := replay.Parse(strings.NewReader(`
[screen]
width = 1080
height = 2340

[[step]]
at_ms = 0
action = "wait"
expect = { scale_percent = 100 }
`))
	require.NoError(t, err)
	h := newHarness(t, script.EntityScreen())

	report, err := replay.Run(context.Background(), script, h.clock, h.target)
	require.NoError(t, err)
	assert.False(t, report.Failed())
}
