package input

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
)

const (
	// Mouse button constants for X11
	mouseButtonBack    = 8 // Side button - back
	mouseButtonForward = 9 // Side button - forward
)

// Gesture is what a pointer sequence on the content amounted to.
type Gesture uint8

const (
	GestureNone Gesture = iota
	GestureTap
	GestureDoubleTap
	GestureBack
	GestureForward
	GesturePinch
	GesturePinchEnd
)

func (g Gesture) String() string {
	switch g {
	case GestureTap:
		return "tap"
	case GestureDoubleTap:
		return "double-tap"
	case GestureBack:
		return "back"
	case GestureForward:
		return "forward"
	case GesturePinch:
		return "pinch"
	case GesturePinchEnd:
		return "pinch-end"
	default:
		return "none"
	}
}

// GestureOptions tune content gestures. Distances are pixels, velocities
// pixels per second.
type GestureOptions struct {
	TapSlop            float64
	TapTimeout         time.Duration
	DoubleTapTimeout   time.Duration
	DoubleTapSlop      float64
	FlingMinVelocity   float64
	PinchDamping       float64
	ScaleMin           float64
	ScaleMax           float64
	// ScaleHintThreshold is the relative scale change since the last hint
	// that shows a new one (0.02 is 2%).
	ScaleHintThreshold float64
}

// DefaultGestureOptions returns the stock options for a screen.
func DefaultGestureOptions(screen entity.Screen) GestureOptions {
	return GestureOptions{
		TapSlop:            float64(screen.Px(10)),
		TapTimeout:         300 * time.Millisecond,
		DoubleTapTimeout:   300 * time.Millisecond,
		DoubleTapSlop:      float64(screen.Px(100)),
		FlingMinVelocity:   1000,
		PinchDamping:       0.8,
		ScaleMin:           entity.ScaleMin,
		ScaleMax:           entity.ScaleMax,
		ScaleHintThreshold: 0.02,
	}
}

// HintFunc shows transient feedback text.
type HintFunc func(ctx context.Context, text string)

type trackedPointer struct {
	id entity.PointerID
	p  entity.Point
}

// GestureInterpreter turns content pointer sequences into viewport commands:
// double-tap scrolls, horizontal flings navigate, pinches zoom. Coordinates
// are viewport-local. A sequence that ever had two pointers is a pinch and
// never produces taps or flings.
type GestureInterpreter struct {
	ctx      context.Context
	viewport port.ContentViewport
	opts     GestureOptions

	viewportWidth, viewportHeight float64

	pointers []trackedPointer
	multi    bool

	downPoint entity.Point
	downTime  time.Time
	moved     bool
	consumed  bool
	velocity  VelocityTracker

	lastTapTime  time.Time
	lastTapPoint entity.Point

	pinch         *entity.ScaleState
	lastHintScale float64

	onHint HintFunc
}

// NewGestureInterpreter creates an interpreter driving viewport.
func NewGestureInterpreter(ctx context.Context, viewport port.ContentViewport, opts GestureOptions) *GestureInterpreter {
	log := logging.FromContext(ctx)
	log.Debug().Msg("creating gesture interpreter")

	return &GestureInterpreter{
		ctx:      logging.WithComponent(ctx, "gesture"),
		viewport: viewport,
		opts:     opts,
	}
}

// SetOptions replaces the interpreter options.
func (g *GestureInterpreter) SetOptions(opts GestureOptions) {
	g.opts = opts
}

// SetOnHint sets the callback used for zoom and navigation feedback.
func (g *GestureInterpreter) SetOnHint(fn HintFunc) {
	g.onHint = fn
}

// SetViewportSize records the content area size used to split double-taps
// into top and bottom halves.
func (g *GestureInterpreter) SetViewportSize(width, height float64) {
	g.viewportWidth, g.viewportHeight = width, height
}

// PointerCount returns the number of pointers currently down.
func (g *GestureInterpreter) PointerCount() int {
	return len(g.pointers)
}

// Pinching reports whether a pinch is in progress.
func (g *GestureInterpreter) Pinching() bool {
	return g.pinch != nil
}

// Handle dispatches a viewport-local pointer event.
func (g *GestureInterpreter) Handle(ev entity.PointerEvent) Gesture {
	switch ev.Action {
	case entity.PointerDown:
		return g.down(ev)
	case entity.PointerMove:
		return g.move(ev)
	case entity.PointerUp:
		return g.up(ev)
	case entity.PointerCancel:
		g.Cancel()
	}
	return GestureNone
}

// Track records pointer movement without interpreting it, so a pinch can
// start even when the first pointer went down on the window chrome.
func (g *GestureInterpreter) Track(ev entity.PointerEvent) {
	switch ev.Action {
	case entity.PointerDown:
		if g.index(ev.ID) < 0 {
			g.pointers = append(g.pointers, trackedPointer{id: ev.ID, p: ev.Point()})
			g.consumed = true
		}
	case entity.PointerMove:
		if i := g.index(ev.ID); i >= 0 {
			g.pointers[i].p = ev.Point()
		}
	case entity.PointerUp, entity.PointerCancel:
		g.remove(ev.ID)
		if len(g.pointers) == 0 {
			g.reset()
		}
	}
}

func (g *GestureInterpreter) down(ev entity.PointerEvent) Gesture {
	p := ev.Point()
	if g.index(ev.ID) < 0 {
		g.pointers = append(g.pointers, trackedPointer{id: ev.ID, p: p})
	}

	switch len(g.pointers) {
	case 1:
		g.multi = false
		g.moved = false
		g.consumed = false
		g.downPoint = p
		g.downTime = ev.Time
		g.velocity.Reset()
		g.velocity.Add(ev.Time, p)
		if g.isDoubleTap(ev.Time, p) {
			g.lastTapTime = time.Time{}
			g.consumed = true
			g.scrollForDoubleTap(p)
			return GestureDoubleTap
		}
	case 2:
		g.multi = true
		g.startPinch()
	}
	return GestureNone
}

func (g *GestureInterpreter) isDoubleTap(now time.Time, p entity.Point) bool {
	if g.lastTapTime.IsZero() || now.Sub(g.lastTapTime) >= g.opts.DoubleTapTimeout {
		return false
	}
	return p.Sub(g.lastTapPoint).Len() < g.opts.DoubleTapSlop
}

func (g *GestureInterpreter) scrollForDoubleTap(p entity.Point) {
	edge := port.ScrollBottom
	if p.Y < g.viewportHeight/2 {
		edge = port.ScrollTop
	}
	log := logging.FromContext(g.ctx)
	log.Debug().Float64("y", p.Y).Str("edge", edge.String()).Msg("double-tap scroll")
	if err := g.viewport.ScrollTo(g.ctx, edge); err != nil {
		log.Warn().Err(err).Msg("failed to scroll content")
	}
}

func (g *GestureInterpreter) startPinch() {
	base := g.viewport.Scale()
	g.pinch = &entity.ScaleState{BaseScale: base, LastSpan: g.span()}
	g.lastHintScale = base
	logging.FromContext(g.ctx).Debug().Float64("base_scale", base).Msg("pinch started")
}

func (g *GestureInterpreter) move(ev entity.PointerEvent) Gesture {
	i := g.index(ev.ID)
	if i < 0 {
		return GestureNone
	}
	p := ev.Point()
	g.pointers[i].p = p

	if g.pinch != nil && len(g.pointers) >= 2 {
		g.updatePinch()
		return GesturePinch
	}
	if g.multi || i != 0 {
		return GestureNone
	}

	g.velocity.Add(ev.Time, p)
	if !g.moved && p.Sub(g.downPoint).Len() >= g.opts.TapSlop {
		g.moved = true
	}
	return GestureNone
}

func (g *GestureInterpreter) updatePinch() {
	span := g.span()
	if span <= 0 || g.pinch.LastSpan <= 0 {
		g.pinch.LastSpan = span
		return
	}
	ratio := span / g.pinch.LastSpan
	g.pinch.LastSpan = span

	factor := 1 + (ratio-1)*g.opts.PinchDamping
	next := min(max(g.pinch.BaseScale*factor, g.opts.ScaleMin), g.opts.ScaleMax)
	if next == g.pinch.BaseScale {
		return
	}
	g.pinch.BaseScale = next

	if err := g.viewport.SetScale(g.ctx, next); err != nil {
		logging.FromContext(g.ctx).Warn().Err(err).Float64("scale", next).Msg("failed to set content scale")
		return
	}
	if g.lastHintScale <= 0 || math.Abs(next/g.lastHintScale-1) > g.opts.ScaleHintThreshold {
		g.lastHintScale = next
		g.hint(fmt.Sprintf("%d%%", entity.ScalePercentage(next)))
	}
}

func (g *GestureInterpreter) up(ev entity.PointerEvent) Gesture {
	i := g.index(ev.ID)
	if i < 0 {
		return GestureNone
	}
	primary := i == 0
	g.remove(ev.ID)

	if g.multi {
		result := GestureNone
		if g.pinch != nil && len(g.pointers) < 2 {
			g.endPinch()
			result = GesturePinchEnd
		}
		if len(g.pointers) == 0 {
			g.reset()
		}
		return result
	}
	if !primary || g.consumed {
		return GestureNone
	}

	p := ev.Point()
	g.velocity.Add(ev.Time, p)
	if !g.moved && p.Sub(g.downPoint).Len() >= g.opts.TapSlop {
		g.moved = true
	}

	if g.moved {
		return g.fling(p)
	}
	if ev.Time.Sub(g.downTime) < g.opts.TapTimeout {
		g.lastTapTime = ev.Time
		g.lastTapPoint = p
		return GestureTap
	}
	return GestureNone
}

func (g *GestureInterpreter) fling(p entity.Point) Gesture {
	vx, _ := g.velocity.Velocity()
	delta := p.Sub(g.downPoint)
	if math.Abs(vx) <= g.opts.FlingMinVelocity || math.Abs(delta.X) <= math.Abs(delta.Y) {
		return GestureNone
	}
	log := logging.FromContext(g.ctx)

	if delta.X > 0 {
		if !g.viewport.CanGoBack() {
			return GestureNone
		}
		log.Debug().Float64("vx", vx).Msg("fling back")
		if err := g.viewport.GoBack(g.ctx); err != nil {
			log.Warn().Err(err).Msg("failed to navigate back")
			return GestureNone
		}
		g.hint("Back")
		return GestureBack
	}

	if !g.viewport.CanGoForward() {
		return GestureNone
	}
	log.Debug().Float64("vx", vx).Msg("fling forward")
	if err := g.viewport.GoForward(g.ctx); err != nil {
		log.Warn().Err(err).Msg("failed to navigate forward")
		return GestureNone
	}
	g.hint("Forward")
	return GestureForward
}

func (g *GestureInterpreter) endPinch() {
	// Resync from the viewport so rounding in the engine cannot drift us.
	scale := g.viewport.Scale()
	logging.FromContext(g.ctx).Debug().Float64("scale", scale).Msg("pinch ended")
	g.pinch = nil
	g.lastHintScale = scale
}

// HandleButton maps mouse side buttons to history navigation.
func (g *GestureInterpreter) HandleButton(button uint) Gesture {
	log := logging.FromContext(g.ctx)
	switch button {
	case mouseButtonBack:
		if !g.viewport.CanGoBack() {
			return GestureNone
		}
		if err := g.viewport.GoBack(g.ctx); err != nil {
			log.Error().Err(err).Uint("button", button).Msg("gesture action handler error")
			return GestureNone
		}
		return GestureBack
	case mouseButtonForward:
		if !g.viewport.CanGoForward() {
			return GestureNone
		}
		if err := g.viewport.GoForward(g.ctx); err != nil {
			log.Error().Err(err).Uint("button", button).Msg("gesture action handler error")
			return GestureNone
		}
		return GestureForward
	default:
		return GestureNone
	}
}

// Cancel drops the current sequence. An in-flight pinch is resynced.
func (g *GestureInterpreter) Cancel() {
	if g.pinch != nil {
		g.endPinch()
	}
	g.pointers = g.pointers[:0]
	g.reset()
}

func (g *GestureInterpreter) reset() {
	g.multi = false
	g.moved = false
	g.consumed = false
	g.pinch = nil
	g.velocity.Reset()
}

func (g *GestureInterpreter) span() float64 {
	if len(g.pointers) < 2 {
		return 0
	}
	return g.pointers[1].p.Sub(g.pointers[0].p).Len()
}

func (g *GestureInterpreter) index(id entity.PointerID) int {
	for i, tp := range g.pointers {
		if tp.id == id {
			return i
		}
	}
	return -1
}

func (g *GestureInterpreter) remove(id entity.PointerID) {
	if i := g.index(id); i >= 0 {
		g.pointers = append(g.pointers[:i], g.pointers[i+1:]...)
	}
}

func (g *GestureInterpreter) hint(text string) {
	if g.onHint != nil {
		g.onHint(g.ctx, text)
	}
}
