package model

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatpane/internal/cli/styles"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/infrastructure/viewport"
	"github.com/bnema/floatpane/internal/infrastructure/virtual"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

type simFixture struct {
	model   SimModel
	frames  *mainloop.FrameQueue
	surface *virtual.Surface
	now     time.Time
}

func newSimFixture(t *testing.T) *simFixture {
	t.Helper()
	ctx := context.Background()
	f := &simFixture{now: time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)}
	screen := entity.Screen{Width: 1080, Height: 1920, Density: 1}

	f.frames = mainloop.NewFrameQueue(func() time.Time { return f.now })
	f.surface = virtual.NewSurface()
	doc := viewport.NewDocument(ctx, "a", "b")
	o := coordinator.NewOverlay(ctx, coordinator.Deps{
		Compositor: f.surface,
		Shapes:     f.surface,
		Panel:      f.surface,
		Viewport:   doc,
		Hints:      viewport.NewHintBoard(),
		Scheduler:  f.frames,
	}, coordinator.DefaultOptions(screen))
	require.NoError(t, o.Open(ctx))

	f.model = NewSimModel(ctx, styles.NewTheme(), SimDeps{
		Overlay:  o,
		Frames:   f.frames,
		Surface:  f.surface,
		Document: doc,
		Hints:    viewport.NewHintBoard(),
	})
	return f
}

func (f *simFixture) send(msg tea.Msg) tea.Cmd {
	next, cmd := f.model.Update(msg)
	f.model = next.(SimModel)
	return cmd
}

func (f *simFixture) settle() {
	for i := 0; i < 200 && f.frames.Pending(); i++ {
		f.now = f.now.Add(16 * time.Millisecond)
		f.send(frameMsg(f.now))
	}
}

func TestSimModel_DockKeys(t *testing.T) {
	f := newSimFixture(t)

	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("l")})
	f.settle()
	assert.Equal(t, entity.EdgeRight, f.model.deps.Overlay.Window().Edge())
	assert.False(t, f.surface.State().Interactive)

	f.send(tea.KeyMsg{Type: tea.KeyEnter})
	f.settle()
	assert.Equal(t, entity.EdgeNone, f.model.deps.Overlay.Window().Edge())
	assert.Equal(t, entity.ModeIdle, f.model.deps.Overlay.Window().Mode())
}

func TestSimModel_RotateSwapsScreen(t *testing.T) {
	f := newSimFixture(t)

	f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("o")})
	assert.Equal(t, entity.Screen{Width: 1920, Height: 1080, Density: 1}, f.model.screen)
	g := f.surface.State().Geometry
	assert.LessOrEqual(t, g.Bottom(), 1080)
}

func TestSimModel_MouseMapsToScreen(t *testing.T) {
	f := newSimFixture(t)
	f.send(tea.WindowSizeMsg{Width: 120, Height: 48})

	x, y := f.model.toScreen(1, headerLines+1)
	assert.InDelta(t, 0.5*1080/float64(f.model.cols), x, 0.001)
	assert.InDelta(t, 0.5*1920/float64(f.model.rows), y, 0.001)

	x, _ = f.model.toScreen(10_000, 0)
	assert.Less(t, x, 1080.0, "clamped to the box")
}

func TestSimModel_QuitClosesOverlay(t *testing.T) {
	f := newSimFixture(t)

	cmd := f.send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.False(t, f.surface.State().Open)
	assert.Empty(t, f.model.View())
}

func TestSimModel_ViewShowsState(t *testing.T) {
	f := newSimFixture(t)
	out := f.model.View()
	assert.Contains(t, out, "floatpane sim")
	assert.Contains(t, out, "idle")
	assert.Contains(t, out, "page")
}

func TestSimModel_OptionsMsgUpdatesOverlay(t *testing.T) {
	f := newSimFixture(t)

	opts := f.model.deps.Overlay.Options()
	opts.TitleBarHeight = 80
	opts.ShowSizeHint = false
	f.send(OptionsMsg(opts))

	got := f.model.deps.Overlay.Options()
	assert.Equal(t, 80, got.TitleBarHeight)
	assert.False(t, got.ShowSizeHint)
}
