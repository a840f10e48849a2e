// Package coordinator wires the overlay components together and exposes the
// host-facing Overlay facade.
package coordinator

import (
	"context"
	"time"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/application/usecase"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/animation"
	"github.com/bnema/floatpane/internal/ui/input"
	"github.com/bnema/floatpane/internal/ui/mainloop"
	"github.com/bnema/floatpane/internal/ui/overlay"
	"github.com/bnema/floatpane/internal/ui/snap"
)

// Options holds the pixel-resolved settings of an Overlay.
type Options struct {
	Screen         entity.Screen
	Limits         entity.Limits
	CornerRadius   float64
	TitleBarHeight int

	MorphDuration       time.Duration
	GestureHintDuration time.Duration
	SizeHintDuration    time.Duration
	ShowSizeHint        bool

	Touch   input.TouchOptions
	Gesture input.GestureOptions
	Snap    snap.Options
}

// DefaultOptions returns the stock options for screen.
func DefaultOptions(screen entity.Screen) Options {
	return Options{
		Screen:              screen,
		Limits:              entity.Limits{MinWidth: screen.Px(200), MinHeight: screen.Px(150)},
		CornerRadius:        float64(screen.Px(16)),
		TitleBarHeight:      screen.Px(40),
		MorphDuration:       300 * time.Millisecond,
		GestureHintDuration: 1500 * time.Millisecond,
		SizeHintDuration:    3 * time.Second,
		ShowSizeHint:        true,
		Touch:               input.DefaultTouchOptions(screen),
		Gesture:             input.DefaultGestureOptions(screen),
		Snap:                snap.DefaultOptions(screen),
	}
}

// Deps are the host collaborators of an Overlay. Shapes, Panel, Hints and
// Store are optional.
type Deps struct {
	Compositor port.Compositor
	Shapes     port.ShapeRenderer
	Panel      port.Panel
	Viewport   port.ContentViewport
	Hints      port.HintPresenter
	Store      *usecase.WindowStateStore
	Scheduler  mainloop.Scheduler
}

type route uint8

const (
	routeNone route = iota
	routeChrome
	routeContent
)

// Overlay is the facade hosts drive: it routes pointer events to the touch
// classifier or the gesture interpreter and exposes window commands.
// All methods must be called from the main loop goroutine.
type Overlay struct {
	ctx  context.Context
	deps Deps
	opts Options

	window   *overlay.Controller
	animator *animation.Engine
	snap     *snap.Engine
	touch    *input.TouchClassifier
	gestures *input.GestureInterpreter

	route route

	expanded   bool
	beforeFull entity.Geometry

	cancelHint func()
}

// NewOverlay wires the overlay components.
func NewOverlay(ctx context.Context, deps Deps, opts Options) *Overlay {
	log := logging.FromContext(ctx)
	log.Debug().
		Int("screen_width", opts.Screen.Width).
		Int("screen_height", opts.Screen.Height).
		Float64("density", opts.Screen.Density).
		Msg("creating overlay")

	o := &Overlay{
		ctx:  logging.WithComponent(ctx, "overlay"),
		deps: deps,
		opts: opts,
	}

	o.window = overlay.NewController(deps.Compositor, deps.Shapes, deps.Panel, opts.Screen, opts.Limits, opts.CornerRadius)
	o.animator = animation.NewEngine(ctx, deps.Scheduler, o.window)
	o.animator.AddHooks(animation.Hooks{
		OnStart: func(ctx context.Context, s *animation.Session) { o.setScrollEnabled(ctx, false) },
		OnEnd:   func(ctx context.Context, s *animation.Session) { o.setScrollEnabled(ctx, true) },
	})
	o.snap = snap.NewEngine(ctx, o.window, o.animator, opts.Snap)
	o.touch = input.NewTouchClassifier(ctx, o.window, o.snap, opts.Touch)
	o.touch.SetOnResize(o.onResize)
	o.gestures = input.NewGestureInterpreter(ctx, deps.Viewport, opts.Gesture)
	o.gestures.SetOnHint(func(ctx context.Context, text string) {
		o.showHint(ctx, text, o.opts.GestureHintDuration)
	})

	if deps.Store != nil {
		o.window.OnSettle(func(_ context.Context, g entity.Geometry) {
			deps.Store.Save(g)
		})
	}
	return o
}

// Open loads the persisted geometry and puts the window on screen.
func (o *Overlay) Open(ctx context.Context) error {
	var g entity.Geometry
	if o.deps.Store != nil {
		g = o.deps.Store.Load(ctx, o.opts.Screen)
	} else {
		g = entity.DefaultGeometry(o.opts.Screen, usecase.DefaultWidthRatio, usecase.DefaultHeightRatio, o.opts.Limits)
	}
	if err := o.window.Open(ctx, g); err != nil {
		return err
	}
	o.updateViewportSize()
	return nil
}

// Close persists the settled geometry and removes the window.
func (o *Overlay) Close(ctx context.Context) error {
	o.touch.Cancel()
	o.gestures.Cancel()
	o.animator.Cancel()
	o.route = routeNone
	o.hideHint(ctx)

	if o.window.IsOpen() && !o.window.Mode().IsAnimating() && !o.window.Mode().IsGesture() {
		o.window.Settle(ctx)
	}
	return o.window.Close(ctx)
}

// Window exposes the controller for read access by hosts.
func (o *Overlay) Window() *overlay.Controller {
	return o.window
}

// Expanded reports whether the window fills the screen.
func (o *Overlay) Expanded() bool {
	return o.expanded
}

// Animating reports whether an animation holds geometry control.
func (o *Overlay) Animating() bool {
	return o.animator.Active()
}

// Options returns the current options.
func (o *Overlay) Options() Options {
	return o.opts
}

// SetOptions replaces the tunables of every component. Screen and limits
// changes go through SetScreen.
func (o *Overlay) SetOptions(opts Options) {
	opts.Screen, opts.Limits = o.opts.Screen, o.opts.Limits
	o.opts = opts
	o.touch.SetOptions(opts.Touch)
	o.gestures.SetOptions(opts.Gesture)
	o.snap.SetOptions(opts.Snap)
	o.updateViewportSize()
}

func (o *Overlay) setScrollEnabled(ctx context.Context, enabled bool) {
	if o.deps.Viewport == nil {
		return
	}
	if err := o.deps.Viewport.SetScrollEnabled(ctx, enabled); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Bool("enabled", enabled).Msg("failed to toggle content scrolling")
	}
}

func (o *Overlay) onResize(ctx context.Context, width, height int) {
	if o.opts.ShowSizeHint {
		o.showHint(ctx, sizeHint(width, height), o.opts.SizeHintDuration)
	}
}

func (o *Overlay) updateViewportSize() {
	g := o.window.Geometry()
	o.gestures.SetViewportSize(float64(g.Width), float64(max(g.Height-o.opts.TitleBarHeight, 0)))
}
