package input

import (
	"context"
	"testing"
	"time"

	portmocks "github.com/bnema/floatpane/internal/application/port/mocks"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/ui/animation"
	"github.com/bnema/floatpane/internal/ui/mainloop"
	"github.com/bnema/floatpane/internal/ui/overlay"
	"github.com/bnema/floatpane/internal/ui/snap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testScreen = entity.Screen{Width: 1080, Height: 2340, Density: 1}

type touchFixture struct {
	window     *overlay.Controller
	snap       *snap.Engine
	frames     *mainloop.FrameQueue
	classifier *TouchClassifier
	settled    []entity.Geometry
	now        time.Time
}

func newTouchFixture(t *testing.T) *touchFixture {
	t.Helper()
	ctx := context.Background()

	comp := portmocks.NewMockCompositor(t)
	comp.EXPECT().AddWindow(mock.Anything, mock.Anything).Return(nil).Once()
	comp.EXPECT().UpdateWindow(mock.Anything, mock.Anything).Return(nil).Maybe()
	panel := portmocks.NewMockPanel(t)
	panel.EXPECT().SetInteractive(mock.Anything, mock.Anything).Return(nil).Maybe()

	window := overlay.NewController(comp, nil, panel, testScreen, entity.Limits{MinWidth: 200, MinHeight: 300}, 16)
	require.NoError(t, window.Open(ctx, entity.Geometry{X: 200, Y: 400, Width: 500, Height: 1000}))

	frames := mainloop.NewFrameQueue(nil)
	snapOpts := snap.DefaultOptions(testScreen)
	snapOpts.EdgeThreshold = 48
	snapEngine := snap.NewEngine(ctx, window, animation.NewEngine(ctx, frames, window), snapOpts)

	f := &touchFixture{
		window:     window,
		snap:       snapEngine,
		frames:     frames,
		classifier: NewTouchClassifier(ctx, window, snapEngine, DefaultTouchOptions(testScreen)),
		now:        time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	window.OnSettle(func(_ context.Context, g entity.Geometry) { f.settled = append(f.settled, g) })
	return f
}

func (f *touchFixture) event(action entity.PointerAction, x, y float64, after time.Duration) entity.PointerEvent {
	f.now = f.now.Add(after)
	return entity.PointerEvent{ID: 0, Action: action, X: x, Y: y, Time: f.now}
}

func (f *touchFixture) runAnimations() {
	for i := 0; i < 100 && f.frames.Pending(); i++ {
		f.frames.RunFrame(f.now)
		f.now = f.now.Add(16 * time.Millisecond)
	}
}

func TestTouchClassifier_QuickTapIsClick(t *testing.T) {
	f := newTouchFixture(t)
	before := f.window.Geometry()

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	f.classifier.Handle(f.event(entity.PointerMove, 305, 412, 50*time.Millisecond))
	intent := f.classifier.Handle(f.event(entity.PointerUp, 306, 413, 50*time.Millisecond))

	assert.Equal(t, IntentClick, intent)
	assert.Equal(t, before, f.window.Geometry())
	assert.Equal(t, entity.ModeIdle, f.window.Mode())
	require.Len(t, f.settled, 1, "every release settles")
	assert.Equal(t, before, f.settled[0])
}

func TestTouchClassifier_SlowTapIsNotClick(t *testing.T) {
	f := newTouchFixture(t)

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	intent := f.classifier.Handle(f.event(entity.PointerUp, 300, 410, 400*time.Millisecond))
	assert.Equal(t, IntentNone, intent)
	assert.Len(t, f.settled, 1)
}

func TestTouchClassifier_DoubleClick(t *testing.T) {
	f := newTouchFixture(t)

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	require.Equal(t, IntentClick, f.classifier.Handle(f.event(entity.PointerUp, 300, 410, 40*time.Millisecond)))
	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 100*time.Millisecond))
	assert.Equal(t, IntentDoubleClick, f.classifier.Handle(f.event(entity.PointerUp, 300, 410, 40*time.Millisecond)))

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 100*time.Millisecond))
	assert.Equal(t, IntentClick, f.classifier.Handle(f.event(entity.PointerUp, 300, 410, 40*time.Millisecond)), "a third tap starts over")
}

func TestTouchClassifier_ReleasePastSlopIsNeverClick(t *testing.T) {
	f := newTouchFixture(t)

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	intent := f.classifier.Handle(f.event(entity.PointerUp, 312, 410, 20*time.Millisecond))
	assert.Equal(t, IntentDragEnd, intent)
}

func TestTouchClassifier_DragMovesAndSettlesOnce(t *testing.T) {
	f := newTouchFixture(t)

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	assert.Equal(t, IntentDrag, f.classifier.Handle(f.event(entity.PointerMove, 320, 430, 16*time.Millisecond)))
	assert.Equal(t, entity.ModeDragging, f.window.Mode())
	f.classifier.Handle(f.event(entity.PointerMove, 400, 510, 16*time.Millisecond))

	g := f.window.Geometry()
	assert.Equal(t, 300, g.X)
	assert.Equal(t, 500, g.Y)
	assert.Empty(t, f.settled, "no persistence while dragging")

	assert.Equal(t, IntentDragEnd, f.classifier.Handle(f.event(entity.PointerUp, 400, 510, 16*time.Millisecond)))
	assert.Equal(t, entity.ModeIdle, f.window.Mode())
	require.Len(t, f.settled, 1)
	assert.Equal(t, g, f.settled[0])
}

func TestTouchClassifier_DragIsClamped(t *testing.T) {
	f := newTouchFixture(t)

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	f.classifier.Handle(f.event(entity.PointerMove, 300, -5000, 16*time.Millisecond))
	assert.Equal(t, 0, f.window.Geometry().Y)
}

func TestTouchClassifier_ReleaseInEdgeZoneSnaps(t *testing.T) {
	f := newTouchFixture(t)

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	f.classifier.Handle(f.event(entity.PointerMove, 120, 410, 16*time.Millisecond))
	f.classifier.Handle(f.event(entity.PointerUp, 120, 410, 16*time.Millisecond))

	assert.Equal(t, entity.ModeSnapping, f.window.Mode())
	f.runAnimations()
	assert.Equal(t, entity.ModeHidden, f.window.Mode())
	assert.Equal(t, entity.EdgeLeft, f.window.Edge())
	assert.Equal(t, 500, f.window.Geometry().Width)
}

func TestTouchClassifier_ClickOnHiddenWindowRestores(t *testing.T) {
	f := newTouchFixture(t)
	original := f.window.Geometry()
	f.snap.AnimateToEdge(entity.EdgeRight)
	f.runAnimations()
	require.True(t, f.window.IsHidden())

	peek := f.window.Geometry()
	f.classifier.Handle(f.event(entity.PointerDown, float64(peek.X+10), 600, 0))
	intent := f.classifier.Handle(f.event(entity.PointerUp, float64(peek.X+12), 600, 30*time.Millisecond))

	assert.Equal(t, IntentRestore, intent)
	assert.Equal(t, entity.ModeRestoring, f.window.Mode())
	f.runAnimations()
	assert.Equal(t, original, f.window.Geometry())
	assert.False(t, f.window.IsHidden())
}

func TestTouchClassifier_HiddenDragOutOfZoneRestoresThenContinues(t *testing.T) {
	f := newTouchFixture(t)
	f.snap.AnimateToEdge(entity.EdgeLeft)
	f.runAnimations()
	require.True(t, f.window.IsHidden())

	f.classifier.Handle(f.event(entity.PointerDown, 100, 500, 0))
	f.classifier.Handle(f.event(entity.PointerMove, 300, 500, 16*time.Millisecond))
	assert.Equal(t, entity.ModeRestoring, f.window.Mode())

	// Moves during the restore are ignored.
	f.classifier.Handle(f.event(entity.PointerMove, 900, 900, 16*time.Millisecond))
	f.runAnimations()
	require.Equal(t, entity.ModeIdle, f.window.Mode())
	assert.Equal(t, 200, f.window.Geometry().X)

	f.classifier.Handle(f.event(entity.PointerMove, 310, 500, 16*time.Millisecond))
	assert.Equal(t, entity.ModeDragging, f.window.Mode())
	f.classifier.Handle(f.event(entity.PointerMove, 330, 520, 16*time.Millisecond))
	assert.Equal(t, 220, f.window.Geometry().X)
	assert.Equal(t, 420, f.window.Geometry().Y)

	f.classifier.Handle(f.event(entity.PointerUp, 330, 520, 16*time.Millisecond))
	assert.Equal(t, entity.ModeIdle, f.window.Mode())
}

func TestTouchClassifier_HiddenDragWithinZoneRedocks(t *testing.T) {
	f := newTouchFixture(t)
	original := f.window.Geometry()
	f.snap.AnimateToEdge(entity.EdgeLeft)
	f.runAnimations()

	f.classifier.Handle(f.event(entity.PointerDown, 100, 500, 0))
	f.classifier.Handle(f.event(entity.PointerMove, 100, 700, 16*time.Millisecond))
	f.classifier.Handle(f.event(entity.PointerUp, 100, 700, 16*time.Millisecond))
	assert.Equal(t, entity.ModeSnapping, f.window.Mode())
	f.runAnimations()

	assert.Equal(t, entity.ModeHidden, f.window.Mode())
	assert.Equal(t, 600, f.window.Geometry().Y)
	got, ok := f.window.Original()
	require.True(t, ok)
	assert.Equal(t, original, got, "re-docking keeps the first captured original")
}

func TestTouchClassifier_ResizeFromHotZone(t *testing.T) {
	f := newTouchFixture(t)
	var sizes [][2]int
	f.classifier.SetOnResize(func(_ context.Context, w, h int) { sizes = append(sizes, [2]int{w, h}) })

	f.classifier.Handle(f.event(entity.PointerDown, 690, 1390, 0))
	assert.Equal(t, IntentResize, f.classifier.Handle(f.event(entity.PointerMove, 790, 1490, 16*time.Millisecond)))
	assert.Equal(t, entity.ModeResizing, f.window.Mode())

	g := f.window.Geometry()
	assert.Equal(t, 600, g.Width)
	assert.Equal(t, 1100, g.Height)
	assert.Equal(t, [][2]int{{600, 1100}}, sizes)

	f.classifier.Handle(f.event(entity.PointerMove, 0, 0, 16*time.Millisecond))
	assert.Equal(t, 200, f.window.Geometry().Width, "width stops at the minimum")
	assert.Equal(t, 300, f.window.Geometry().Height)

	assert.Equal(t, IntentResizeEnd, f.classifier.Handle(f.event(entity.PointerUp, 0, 0, 16*time.Millisecond)))
	assert.Equal(t, entity.ModeIdle, f.window.Mode())
	assert.Len(t, f.settled, 1)
}

func TestTouchClassifier_IgnoresSequencesDuringAnimation(t *testing.T) {
	f := newTouchFixture(t)
	f.snap.AnimateToEdge(entity.EdgeLeft)
	require.Equal(t, entity.ModeSnapping, f.window.Mode())

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	assert.True(t, f.classifier.Active())
	f.classifier.Handle(f.event(entity.PointerMove, 600, 900, 16*time.Millisecond))
	assert.Equal(t, entity.ModeSnapping, f.window.Mode())
	assert.Equal(t, IntentNone, f.classifier.Handle(f.event(entity.PointerUp, 600, 900, 16*time.Millisecond)))
	assert.False(t, f.classifier.Active())
}

func TestTouchClassifier_CancelSettlesWithoutClick(t *testing.T) {
	f := newTouchFixture(t)

	f.classifier.Handle(f.event(entity.PointerDown, 300, 410, 0))
	f.classifier.Handle(f.event(entity.PointerMove, 350, 410, 16*time.Millisecond))
	f.classifier.Cancel()

	assert.False(t, f.classifier.Active())
	assert.Equal(t, entity.ModeIdle, f.window.Mode())
	assert.Len(t, f.settled, 1)
	assert.Equal(t, IntentNone, f.classifier.Handle(f.event(entity.PointerUp, 350, 410, 16*time.Millisecond)))
}
