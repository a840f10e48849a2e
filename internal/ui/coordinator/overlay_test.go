package coordinator

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/floatpane/internal/application/port"
	portmocks "github.com/bnema/floatpane/internal/application/port/mocks"
	"github.com/bnema/floatpane/internal/application/usecase"
	"github.com/bnema/floatpane/internal/domain/entity"
	repomocks "github.com/bnema/floatpane/internal/domain/repository/mocks"
	"github.com/bnema/floatpane/internal/ui/input"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

var testScreen = entity.Screen{Width: 1080, Height: 2340, Density: 1}

type overlayFixture struct {
	overlay  *Overlay
	frames   *mainloop.FrameQueue
	viewport *portmocks.MockContentViewport
	hints    *portmocks.MockHintPresenter
	panel    *portmocks.MockPanel
	store    *usecase.WindowStateStore
	now      time.Time

	mu    sync.Mutex
	saved []entity.Geometry
}

func newOverlayFixture(t *testing.T, stored *entity.Geometry) *overlayFixture {
	t.Helper()
	ctx := context.Background()
	f := &overlayFixture{now: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}

	comp := portmocks.NewMockCompositor(t)
	comp.EXPECT().AddWindow(mock.Anything, mock.Anything).Return(nil).Once()
	comp.EXPECT().UpdateWindow(mock.Anything, mock.Anything).Return(nil).Maybe()
	comp.EXPECT().RemoveWindow(mock.Anything).Return(nil).Maybe()
	shapes := portmocks.NewMockShapeRenderer(t)
	shapes.EXPECT().ApplyShape(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.panel = portmocks.NewMockPanel(t)
	f.panel.EXPECT().SetInteractive(mock.Anything, mock.Anything).Return(nil).Maybe()

	f.viewport = portmocks.NewMockContentViewport(t)
	f.viewport.EXPECT().SetScrollEnabled(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.hints = portmocks.NewMockHintPresenter(t)

	repo := repomocks.NewMockWindowStateRepository(t)
	repo.EXPECT().Get(mock.Anything).Return(stored, nil).Maybe()
	repo.EXPECT().Save(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, g entity.Geometry) error {
		f.mu.Lock()
		defer f.mu.Unlock()
		f.saved = append(f.saved, g)
		return nil
	}).Maybe()

	opts := DefaultOptions(testScreen)
	f.store = usecase.NewWindowStateStore(ctx, repo, usecase.DefaultLayout{Limits: opts.Limits})
	t.Cleanup(f.store.Close)

	f.frames = mainloop.NewFrameQueue(func() time.Time { return f.now })
	f.overlay = NewOverlay(ctx, Deps{
		Compositor: comp,
		Shapes:     shapes,
		Panel:      f.panel,
		Viewport:   f.viewport,
		Hints:      f.hints,
		Store:      f.store,
		Scheduler:  f.frames,
	}, opts)
	require.NoError(t, f.overlay.Open(ctx))
	return f
}

func (f *overlayFixture) pointer(id entity.PointerID, action entity.PointerAction, x, y float64) Result {
	return f.overlay.HandlePointer(entity.PointerEvent{ID: id, Action: action, X: x, Y: y, Time: f.now})
}

func (f *overlayFixture) advance(d time.Duration) {
	f.now = f.now.Add(d)
}

func (f *overlayFixture) settle() {
	for i := 0; i < 200 && f.overlay.Animating(); i++ {
		f.frames.RunFrame(f.now)
		f.advance(16 * time.Millisecond)
	}
}

func (f *overlayFixture) lastSaved(t *testing.T) entity.Geometry {
	t.Helper()
	f.store.Flush()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.saved)
	return f.saved[len(f.saved)-1]
}

func TestOverlay_OpenUsesDefaultGeometry(t *testing.T) {
	f := newOverlayFixture(t, nil)

	g := f.overlay.Window().Geometry()
	assert.Equal(t, 972, g.Width)
	assert.Equal(t, 1404, g.Height)
	assert.Equal(t, 54, g.X)
	assert.Equal(t, 312, g.Y)
	assert.Equal(t, entity.ModeIdle, f.overlay.Window().Mode())
}

func TestOverlay_OpenRestoresStoredGeometry(t *testing.T) {
	stored := entity.Geometry{X: 100, Y: 200, Width: 600, Height: 900, Orientation: entity.OrientationPortrait}
	f := newOverlayFixture(t, &stored)

	assert.Equal(t, stored, f.overlay.Window().Geometry())
}

func TestOverlay_TitleBarDragSnapsAndPersistsOriginal(t *testing.T) {
	stored := entity.Geometry{X: 300, Y: 400, Width: 600, Height: 1000}
	f := newOverlayFixture(t, &stored)

	res := f.pointer(1, entity.PointerDown, 500, 410)
	assert.Equal(t, input.IntentNone, res.Intent)
	f.advance(50 * time.Millisecond)
	res = f.pointer(1, entity.PointerMove, 480, 410)
	assert.Equal(t, input.IntentDrag, res.Intent)
	f.advance(50 * time.Millisecond)
	f.pointer(1, entity.PointerMove, 210, 410)
	f.advance(50 * time.Millisecond)
	res = f.pointer(1, entity.PointerUp, 210, 410)
	assert.Equal(t, input.IntentDragEnd, res.Intent)

	require.Equal(t, entity.ModeSnapping, f.overlay.Window().Mode())
	f.settle()

	w := f.overlay.Window()
	assert.Equal(t, entity.ModeHidden, w.Mode())
	assert.Equal(t, entity.EdgeLeft, w.Edge())
	assert.Equal(t, 500, w.Geometry().Width)

	saved := f.lastSaved(t)
	assert.Equal(t, 10, saved.X, "the pre-dock geometry is persisted, not the peek")
	assert.Equal(t, 600, saved.Width)
}

func TestOverlay_DockedWindowRoutesContentToChrome(t *testing.T) {
	stored := entity.Geometry{X: 300, Y: 400, Width: 600, Height: 1000}
	f := newOverlayFixture(t, &stored)
	require.True(t, f.overlay.SnapTo(entity.EdgeLeft))
	f.settle()

	peek := f.overlay.Window().Geometry()
	x, y := float64(peek.X+peek.Width/2), float64(peek.Y+peek.Height/2)

	f.pointer(1, entity.PointerDown, x, y)
	assert.Equal(t, routeChrome, f.overlay.route, "content gestures stay off while docked")
	f.advance(30 * time.Millisecond)
	res := f.pointer(1, entity.PointerUp, x, y)
	assert.Equal(t, input.IntentRestore, res.Intent)
}

func TestOverlay_ContentDoubleTapScrolls(t *testing.T) {
	f := newOverlayFixture(t, nil)
	g := f.overlay.Window().Geometry()
	contentTop := float64(g.Y + f.overlay.Options().TitleBarHeight)
	x := float64(g.X + 200)

	f.viewport.EXPECT().ScrollTo(mock.Anything, port.ScrollTop).Return(nil).Once()
	f.pointer(1, entity.PointerDown, x, contentTop+100)
	f.advance(40 * time.Millisecond)
	res := f.pointer(1, entity.PointerUp, x, contentTop+100)
	assert.Equal(t, input.GestureTap, res.Gesture)
	f.advance(100 * time.Millisecond)
	res = f.pointer(1, entity.PointerDown, x, contentTop+105)
	assert.Equal(t, input.GestureDoubleTap, res.Gesture)
	f.advance(40 * time.Millisecond)
	f.pointer(1, entity.PointerUp, x, contentTop+105)

	f.viewport.EXPECT().ScrollTo(mock.Anything, port.ScrollBottom).Return(nil).Once()
	f.advance(time.Second)
	bottom := contentTop + float64(g.Height-f.overlay.Options().TitleBarHeight) - 50
	f.pointer(1, entity.PointerDown, x, bottom)
	f.advance(40 * time.Millisecond)
	f.pointer(1, entity.PointerUp, x, bottom)
	f.advance(100 * time.Millisecond)
	res = f.pointer(1, entity.PointerDown, x, bottom)
	assert.Equal(t, input.GestureDoubleTap, res.Gesture)
}

func TestOverlay_SecondPointerPreemptsChromeDrag(t *testing.T) {
	stored := entity.Geometry{X: 200, Y: 400, Width: 600, Height: 1000}
	f := newOverlayFixture(t, &stored)
	f.viewport.EXPECT().Scale().Return(1.0).Maybe()
	f.viewport.EXPECT().SetScale(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.hints.EXPECT().ShowHint(mock.Anything, mock.Anything).Maybe()

	f.pointer(1, entity.PointerDown, 400, 410)
	f.advance(20 * time.Millisecond)
	f.pointer(1, entity.PointerMove, 430, 410)
	require.Equal(t, entity.ModeDragging, f.overlay.Window().Mode())

	f.pointer(2, entity.PointerDown, 500, 700)
	assert.Equal(t, entity.ModeIdle, f.overlay.Window().Mode(), "drag is cancelled and settled")
	moved := f.overlay.Window().Geometry()

	f.advance(20 * time.Millisecond)
	f.pointer(2, entity.PointerMove, 600, 900)
	f.pointer(1, entity.PointerMove, 420, 400)

	assert.Equal(t, moved, f.overlay.Window().Geometry(), "the first pointer no longer drags")
	f.viewport.AssertCalled(t, "SetScale", mock.Anything, mock.Anything)

	res := f.pointer(2, entity.PointerUp, 600, 900)
	assert.Equal(t, input.GesturePinchEnd, res.Gesture)
	f.pointer(1, entity.PointerUp, 420, 400)
	assert.Equal(t, routeNone, f.overlay.route)
}

func TestOverlay_ToggleExpand(t *testing.T) {
	stored := entity.Geometry{X: 100, Y: 300, Width: 600, Height: 900}
	f := newOverlayFixture(t, &stored)

	require.True(t, f.overlay.ToggleExpand())
	assert.Equal(t, entity.ModeMorphing, f.overlay.Window().Mode())
	assert.False(t, f.overlay.ToggleExpand(), "commands are ignored while animating")
	f.settle()

	g := f.overlay.Window().Geometry()
	assert.Equal(t, entity.Geometry{Width: 1080, Height: 2340, Orientation: entity.OrientationPortrait}, g)
	assert.True(t, f.overlay.Expanded())

	require.True(t, f.overlay.ToggleExpand())
	f.settle()
	assert.Equal(t, stored, f.overlay.Window().Geometry())
	assert.False(t, f.overlay.Expanded())
	assert.Equal(t, stored, f.lastSaved(t))
}

func TestOverlay_TitleBarDoubleClickExpands(t *testing.T) {
	stored := entity.Geometry{X: 100, Y: 300, Width: 600, Height: 900}
	f := newOverlayFixture(t, &stored)

	for i := 0; i < 2; i++ {
		f.pointer(1, entity.PointerDown, 300, 310)
		f.advance(30 * time.Millisecond)
		f.pointer(1, entity.PointerUp, 300, 310)
		f.advance(80 * time.Millisecond)
	}

	assert.Equal(t, entity.ModeMorphing, f.overlay.Window().Mode())
	f.settle()
	assert.True(t, f.overlay.Expanded())
}

func TestOverlay_SnapRestoreCommands(t *testing.T) {
	stored := entity.Geometry{X: 200, Y: 300, Width: 600, Height: 900}
	f := newOverlayFixture(t, &stored)

	assert.False(t, f.overlay.Restore(), "nothing to restore")
	require.True(t, f.overlay.SnapTo(entity.EdgeRight))
	f.settle()

	w := f.overlay.Window()
	assert.Equal(t, entity.EdgeRight, w.Edge())
	assert.Equal(t, 1080-450, w.Geometry().X)
	assert.False(t, f.overlay.SnapTo(entity.EdgeRight), "already docked there")

	require.True(t, f.overlay.Restore())
	f.settle()
	assert.Equal(t, stored, w.Geometry())
	assert.Equal(t, entity.ModeIdle, w.Mode())
}

func TestOverlay_ResetToDefaultFromHidden(t *testing.T) {
	stored := entity.Geometry{X: 200, Y: 300, Width: 600, Height: 900}
	f := newOverlayFixture(t, &stored)

	require.True(t, f.overlay.SnapTo(entity.EdgeLeft))
	f.settle()
	require.True(t, f.overlay.Window().IsHidden())

	require.True(t, f.overlay.ResetToDefault(context.Background()))
	f.settle()

	w := f.overlay.Window()
	assert.False(t, w.IsHidden())
	_, hasOriginal := w.Original()
	assert.False(t, hasOriginal)
	assert.Equal(t, f.store.Default(testScreen), w.Geometry())
	assert.Equal(t, entity.FloatingShape(f.overlay.Options().CornerRadius), w.Shape())
}

func TestOverlay_HintAutoHides(t *testing.T) {
	f := newOverlayFixture(t, nil)
	f.viewport.EXPECT().CanGoBack().Return(true).Once()
	f.viewport.EXPECT().GoBack(mock.Anything).Return(nil).Once()
	f.hints.EXPECT().ShowHint(mock.Anything, "Back").Once()

	assert.Equal(t, input.GestureBack, f.overlay.HandleButton(8))

	f.frames.RunFrame(f.now.Add(time.Second))
	f.hints.AssertNotCalled(t, "HideHint", mock.Anything)

	f.hints.EXPECT().HideHint(mock.Anything).Once()
	f.frames.RunFrame(f.now.Add(1600 * time.Millisecond))
}

func TestOverlay_SetScreenRedocksHiddenWindow(t *testing.T) {
	stored := entity.Geometry{X: 200, Y: 300, Width: 600, Height: 900}
	f := newOverlayFixture(t, &stored)

	require.True(t, f.overlay.SnapTo(entity.EdgeRight))
	f.settle()

	landscape := entity.Screen{Width: 2340, Height: 1080, Density: 1}
	f.overlay.SetScreen(context.Background(), landscape, f.overlay.Options().Limits)
	f.settle()

	w := f.overlay.Window()
	assert.Equal(t, entity.ModeHidden, w.Mode())
	assert.Equal(t, entity.EdgeRight, w.Edge())
	g := w.Geometry()
	assert.Equal(t, landscape.Width-g.Width, g.X)
	assert.Equal(t, 180, g.Y, "peek follows the clamped original")

	original, ok := w.Original()
	require.True(t, ok)
	assert.LessOrEqual(t, original.Y+original.Height, landscape.Height, "original is clamped to the new screen")
}

func TestOverlay_IgnoresPointersOutsideWindow(t *testing.T) {
	stored := entity.Geometry{X: 200, Y: 300, Width: 600, Height: 900}
	f := newOverlayFixture(t, &stored)

	res := f.pointer(1, entity.PointerDown, 10, 10)
	assert.Equal(t, Result{}, res)
	assert.Equal(t, routeNone, f.overlay.route)
}

func TestOverlay_CloseSettles(t *testing.T) {
	stored := entity.Geometry{X: 200, Y: 300, Width: 600, Height: 900}
	f := newOverlayFixture(t, &stored)

	require.NoError(t, f.overlay.Close(context.Background()))
	assert.False(t, f.overlay.Window().IsOpen())
	assert.Equal(t, stored, f.lastSaved(t))
}

func TestOverlay_PlaceMovesIdleWindow(t *testing.T) {
	f := newOverlayFixture(t, nil)

	require.NoError(t, f.overlay.Place(context.Background(), entity.Geometry{X: 40, Y: 60, Width: 500, Height: 700}))
	g := f.overlay.Window().Geometry()
	assert.Equal(t, 40, g.X)
	assert.Equal(t, 500, g.Width)
	assert.Equal(t, 700, f.lastSaved(t).Height)

	require.True(t, f.overlay.SnapTo(entity.EdgeLeft))
	assert.ErrorIs(t, f.overlay.Place(context.Background(), g), ErrBusy)
}
