// Package input classifies pointer sequences: chrome drags, resizes and
// clicks in TouchClassifier, content taps, flings and pinches in
// GestureInterpreter.
package input

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/overlay"
	"github.com/bnema/floatpane/internal/ui/snap"
)

// Intent is what a pointer sequence on the window chrome amounted to.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentDrag
	IntentResize
	IntentClick
	IntentDoubleClick
	IntentRestore
	IntentDragEnd
	IntentResizeEnd
)

func (i Intent) String() string {
	switch i {
	case IntentDrag:
		return "drag"
	case IntentResize:
		return "resize"
	case IntentClick:
		return "click"
	case IntentDoubleClick:
		return "double-click"
	case IntentRestore:
		return "restore"
	case IntentDragEnd:
		return "drag-end"
	case IntentResizeEnd:
		return "resize-end"
	default:
		return "none"
	}
}

// TouchOptions tune click-vs-drag classification. Distances are pixels.
type TouchOptions struct {
	Slop               float64
	ClickTimeout       time.Duration
	DoubleClickTimeout time.Duration
	ResizeHandle       int // Side of the bottom-right resize hot-zone
}

// DefaultTouchOptions returns the stock options for a screen.
func DefaultTouchOptions(screen entity.Screen) TouchOptions {
	return TouchOptions{
		Slop:               float64(screen.Px(10)),
		ClickTimeout:       300 * time.Millisecond,
		DoubleClickTimeout: 300 * time.Millisecond,
		ResizeHandle:       screen.Px(32),
	}
}

// ResizeFunc observes live sizes while resizing.
type ResizeFunc func(ctx context.Context, width, height int)

// TouchClassifier turns single-pointer sequences on the window chrome into
// drags, resizes and clicks, and hands docking decisions to the snap engine.
// It holds geometry control from the moment a sequence moves past the slop
// until pointer-up.
type TouchClassifier struct {
	ctx    context.Context
	window *overlay.Controller
	snap   *snap.Engine
	opts   TouchOptions

	gc       *entity.GestureContext
	resize   bool
	ignoring bool
	// yielded is set once a hidden drag left the edge zone and handed
	// control to the restore animation.
	yielded bool

	lastClick time.Time
	onResize  ResizeFunc
}

// NewTouchClassifier creates a classifier for window.
func NewTouchClassifier(ctx context.Context, window *overlay.Controller, snapEngine *snap.Engine, opts TouchOptions) *TouchClassifier {
	return &TouchClassifier{
		ctx:    logging.WithComponent(ctx, "touch"),
		window: window,
		snap:   snapEngine,
		opts:   opts,
	}
}

// SetOptions replaces the classifier options.
func (c *TouchClassifier) SetOptions(opts TouchOptions) {
	c.opts = opts
}

// SetOnResize sets the callback receiving live sizes while resizing.
func (c *TouchClassifier) SetOnResize(fn ResizeFunc) {
	c.onResize = fn
}

// Active reports whether a sequence is in progress.
func (c *TouchClassifier) Active() bool {
	return c.gc != nil || c.ignoring
}

// InResizeZone reports whether the screen point p hits the resize hot-zone
// of g. Docked windows cannot be resized.
func (c *TouchClassifier) InResizeZone(g entity.Geometry, p entity.Point) bool {
	if c.window.IsHidden() || !g.Contains(p.X, p.Y) {
		return false
	}
	return p.X >= float64(g.Right()-c.opts.ResizeHandle) && p.Y >= float64(g.Bottom()-c.opts.ResizeHandle)
}

// Handle dispatches a raw pointer event.
func (c *TouchClassifier) Handle(ev entity.PointerEvent) Intent {
	switch ev.Action {
	case entity.PointerDown:
		return c.Down(ev)
	case entity.PointerMove:
		return c.Move(ev)
	case entity.PointerUp:
		return c.Up(ev)
	case entity.PointerCancel:
		c.Cancel()
	}
	return IntentNone
}

// Down starts a sequence. Sequences starting while an animation holds
// control are ignored until their pointer-up.
func (c *TouchClassifier) Down(ev entity.PointerEvent) Intent {
	if c.Active() {
		return IntentNone
	}
	mode := c.window.Mode()
	if mode.IsAnimating() || mode == entity.ModeDetached {
		c.ignoring = true
		return IntentNone
	}

	g := c.window.Geometry()
	c.gc = &entity.GestureContext{
		Pointer:         ev.ID,
		InitialTouch:    ev.Point(),
		InitialGeometry: g,
		DownTime:        ev.Time,
	}
	c.resize = c.InResizeZone(g, ev.Point())
	return IntentNone
}

// Move updates a drag or resize once the sequence moved past the slop.
func (c *TouchClassifier) Move(ev entity.PointerEvent) Intent {
	if c.ignoring || c.gc == nil || ev.ID != c.gc.Pointer {
		return IntentNone
	}
	p := ev.Point()

	if c.yielded {
		if c.window.Mode() != entity.ModeIdle {
			return IntentNone
		}
		// The restore settled under the finger: keep dragging from here.
		c.gc.InitialTouch = p
		c.gc.InitialGeometry = c.window.Geometry()
		c.yielded = false
		c.window.SetMode(entity.ModeDragging)
		return IntentNone
	}

	intent := IntentNone
	if !c.gc.Moved {
		if c.gc.Displacement(p) < c.opts.Slop {
			return IntentNone
		}
		c.gc.Moved = true
		if c.resize {
			c.window.SetMode(entity.ModeResizing)
			intent = IntentResize
		} else {
			c.window.SetMode(entity.ModeDragging)
			intent = IntentDrag
		}
	}

	delta := p.Sub(c.gc.InitialTouch)
	initial := c.gc.InitialGeometry
	if c.resize {
		c.applyResize(initial, delta)
		return intent
	}

	dx, dy := int(delta.X), int(delta.Y)
	if err := c.window.MoveTo(c.ctx, initial.X+dx, initial.Y+dy); err != nil {
		c.logApplyError(err)
		return intent
	}

	if c.window.IsHidden() && c.snap.MaybeSnap(c.window.Geometry()) == entity.EdgeNone {
		logging.FromContext(c.ctx).Debug().Msg("hidden window dragged out of the edge zone")
		c.yielded = true
		c.snap.RestoreToCenter()
	}
	return intent
}

func (c *TouchClassifier) applyResize(initial entity.Geometry, delta entity.Point) {
	if err := c.window.ResizeTo(c.ctx, initial.Width+int(delta.X), initial.Height+int(delta.Y)); err != nil {
		c.logApplyError(err)
		return
	}
	if c.onResize != nil {
		g := c.window.Geometry()
		c.onResize(c.ctx, g.Width, g.Height)
	}
}

// Up ends the sequence and classifies it.
func (c *TouchClassifier) Up(ev entity.PointerEvent) Intent {
	if c.ignoring {
		c.reset()
		return IntentNone
	}
	if c.gc == nil || ev.ID != c.gc.Pointer {
		return IntentNone
	}
	defer c.reset()

	p := ev.Point()
	if !c.gc.Moved && c.gc.Displacement(p) >= c.opts.Slop {
		c.gc.Moved = true
	}

	if c.yielded {
		return IntentNone
	}

	if !c.gc.Moved {
		if c.gc.Elapsed(ev.Time) >= c.opts.ClickTimeout {
			c.window.Settle(c.ctx)
			return IntentNone
		}
		return c.click(ev.Time)
	}

	if c.resize {
		c.window.SetMode(entity.ModeIdle)
		c.window.Settle(c.ctx)
		return IntentResizeEnd
	}
	c.endDrag()
	return IntentDragEnd
}

func (c *TouchClassifier) click(now time.Time) Intent {
	if c.window.IsHidden() {
		c.lastClick = time.Time{}
		c.snap.RestoreToCenter()
		return IntentRestore
	}
	c.window.Settle(c.ctx)
	if !c.lastClick.IsZero() && now.Sub(c.lastClick) < c.opts.DoubleClickTimeout {
		c.lastClick = time.Time{}
		return IntentDoubleClick
	}
	c.lastClick = now
	return IntentClick
}

func (c *TouchClassifier) endDrag() {
	g := c.window.Geometry()
	side := c.snap.MaybeSnap(g)

	if c.window.IsHidden() {
		// Re-dock with the original captured when the window was first docked.
		if side == entity.EdgeNone {
			c.snap.RestoreToCenter()
			return
		}
		c.snap.AnimateToEdge(side)
		return
	}

	c.window.SetMode(entity.ModeIdle)
	c.window.Settle(c.ctx)
	if side != entity.EdgeNone {
		c.snap.AnimateToEdge(side)
	}
}

// Cancel ends the sequence as a settle without click classification.
// A second pointer going down cancels the chrome sequence this way.
func (c *TouchClassifier) Cancel() {
	if c.gc == nil || c.ignoring {
		c.reset()
		return
	}
	moved, yielded := c.gc.Moved, c.yielded
	c.reset()
	if !moved || yielded {
		return
	}

	if c.window.IsHidden() {
		c.snap.AnimateToEdge(c.window.Edge())
		return
	}
	c.window.SetMode(entity.ModeIdle)
	c.window.Settle(c.ctx)
}

func (c *TouchClassifier) reset() {
	c.gc = nil
	c.resize = false
	c.ignoring = false
	c.yielded = false
}

func (c *TouchClassifier) logApplyError(err error) {
	log := logging.FromContext(c.ctx)
	if errors.Is(err, overlay.ErrDetached) {
		log.Debug().Err(err).Msg("pointer update dropped")
		return
	}
	log.Warn().Err(err).Msg("failed to apply pointer update")
}
