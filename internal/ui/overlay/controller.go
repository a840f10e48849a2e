// Package overlay owns the overlay window's geometry and applies every change
// to the host compositor.
package overlay

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
)

var (
	// ErrDetached is returned once the host surface is gone.
	ErrDetached = errors.New("overlay window is detached")
	// ErrNotOpen is returned for applies before Open or after Close.
	ErrNotOpen = errors.New("overlay window is not open")
)

// SettleFunc observes the geometry worth persisting after an interaction or
// animation came to rest.
type SettleFunc func(ctx context.Context, geometry entity.Geometry)

// Controller is the single owner of the overlay's current geometry, shape,
// mode and edge state. It must only be used from the main loop goroutine.
type Controller struct {
	compositor port.Compositor
	shapes     port.ShapeRenderer
	panel      port.Panel

	screen       entity.Screen
	limits       entity.Limits
	cornerRadius float64

	geometry entity.Geometry
	shape    entity.Shape
	mode     entity.Mode
	edge     entity.EdgeState

	original    entity.Geometry
	hasOriginal bool

	open     bool
	onSettle []SettleFunc
}

// NewController creates a controller for the given screen. cornerRadius is
// the free-floating corner radius in pixels.
func NewController(
	compositor port.Compositor,
	shapes port.ShapeRenderer,
	panel port.Panel,
	screen entity.Screen,
	limits entity.Limits,
	cornerRadius float64,
) *Controller {
	return &Controller{
		compositor:   compositor,
		shapes:       shapes,
		panel:        panel,
		screen:       screen,
		limits:       limits,
		cornerRadius: cornerRadius,
		shape:        entity.FloatingShape(cornerRadius),
	}
}

// Open adds the overlay window to the compositor at the clamped geometry.
func (c *Controller) Open(ctx context.Context, geometry entity.Geometry) error {
	log := logging.FromContext(ctx)

	if c.mode == entity.ModeDetached {
		return ErrDetached
	}

	geometry = c.clamp(geometry)
	if err := c.compositor.AddWindow(ctx, geometry); err != nil {
		return c.fail(ctx, fmt.Errorf("add overlay window: %w", err))
	}
	c.geometry = geometry
	c.open = true
	c.mode = entity.ModeIdle

	if err := c.ApplyShape(ctx, entity.FloatingShape(c.cornerRadius)); err != nil {
		log.Warn().Err(err).Msg("failed to apply initial overlay shape")
	}

	log.Info().
		Int("x", geometry.X).
		Int("y", geometry.Y).
		Int("width", geometry.Width).
		Int("height", geometry.Height).
		Msg("overlay window opened")
	return nil
}

// Close removes the overlay window. A detached controller has nothing to remove.
func (c *Controller) Close(ctx context.Context) error {
	if !c.open {
		return nil
	}
	c.open = false
	if c.mode == entity.ModeDetached {
		return nil
	}
	if err := c.compositor.RemoveWindow(ctx); err != nil {
		return fmt.Errorf("remove overlay window: %w", err)
	}
	logging.FromContext(ctx).Debug().Msg("overlay window closed")
	return nil
}

// IsOpen reports whether the window is on screen.
func (c *Controller) IsOpen() bool { return c.open }

func (c *Controller) Geometry() entity.Geometry { return c.geometry }
func (c *Controller) Shape() entity.Shape       { return c.shape }
func (c *Controller) Mode() entity.Mode         { return c.mode }
func (c *Controller) Edge() entity.EdgeState    { return c.edge }
func (c *Controller) Screen() entity.Screen     { return c.screen }
func (c *Controller) Limits() entity.Limits     { return c.limits }

// CornerRadius returns the free-floating corner radius in pixels.
func (c *Controller) CornerRadius() float64 { return c.cornerRadius }

// IsHidden reports whether the window is docked against an edge.
func (c *Controller) IsHidden() bool { return c.edge.IsHidden() }

// SetMode switches the interaction mode. Detached is terminal.
func (c *Controller) SetMode(mode entity.Mode) {
	if c.mode == entity.ModeDetached {
		return
	}
	c.mode = mode
}

// Dock records the edge the window is docked against.
func (c *Controller) Dock(edge entity.EdgeState) { c.edge = edge }

// Undock clears the edge state.
func (c *Controller) Undock() { c.edge = entity.EdgeNone }

// CaptureOriginal remembers the current geometry as the one to restore to.
func (c *Controller) CaptureOriginal() {
	c.original = c.geometry
	c.hasOriginal = true
}

// Original returns the geometry captured before docking.
func (c *Controller) Original() (entity.Geometry, bool) {
	return c.original, c.hasOriginal
}

// ClearOriginal forgets the captured geometry.
func (c *Controller) ClearOriginal() {
	c.original = entity.Geometry{}
	c.hasOriginal = false
}

// ClampOriginal constrains the captured original to the current screen.
func (c *Controller) ClampOriginal() {
	if c.hasOriginal {
		c.original = c.clamp(c.original)
	}
}

// SettledGeometry is the geometry to persist: the restorable original while
// hidden, the current geometry otherwise.
func (c *Controller) SettledGeometry() entity.Geometry {
	if c.IsHidden() && c.hasOriginal {
		return c.original
	}
	return c.geometry
}

// OnSettle registers fn to run on every Settle.
func (c *Controller) OnSettle(fn SettleFunc) {
	if fn != nil {
		c.onSettle = append(c.onSettle, fn)
	}
}

// Settle notifies settle listeners. Called at the end of drags, resizes and
// animations, never per frame.
func (c *Controller) Settle(ctx context.Context) {
	if c.mode == entity.ModeDetached || !c.open {
		return
	}
	g := c.SettledGeometry()
	for _, fn := range c.onSettle {
		fn(ctx, g)
	}
}

// MoveTo places the window at (x, y), clamped to the screen.
func (c *Controller) MoveTo(ctx context.Context, x, y int) error {
	g := c.geometry
	g.X, g.Y = x, y
	return c.apply(ctx, entity.ClampPosition(g, c.screen))
}

// ResizeTo sets the window size, clamped to the limits and the screen.
func (c *Controller) ResizeTo(ctx context.Context, width, height int) error {
	g := c.geometry
	g.Width, g.Height = width, height
	return c.apply(ctx, c.clamp(g))
}

// SetGeometry applies a fully clamped geometry.
func (c *Controller) SetGeometry(ctx context.Context, g entity.Geometry) error {
	return c.apply(ctx, c.clamp(g))
}

// ApplyFrame writes one animation frame. Frames are not clamped: overshooting
// easings and the narrow docked peek are both legitimate.
func (c *Controller) ApplyFrame(ctx context.Context, g entity.Geometry, shape entity.Shape) error {
	if err := c.apply(ctx, g); err != nil {
		return err
	}
	return c.ApplyShape(ctx, shape)
}

// ApplyShape forwards a shape to the renderer.
func (c *Controller) ApplyShape(ctx context.Context, shape entity.Shape) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.shapes != nil {
		if err := c.shapes.ApplyShape(ctx, shape); err != nil {
			return c.fail(ctx, fmt.Errorf("apply overlay shape: %w", err))
		}
	}
	c.shape = shape
	return nil
}

// SetInteractive toggles the panel's interactive surfaces.
func (c *Controller) SetInteractive(ctx context.Context, interactive bool) error {
	if err := c.ready(); err != nil {
		return err
	}
	if c.panel == nil {
		return nil
	}
	if err := c.panel.SetInteractive(ctx, interactive); err != nil {
		return c.fail(ctx, fmt.Errorf("set panel interactive: %w", err))
	}
	return nil
}

// SetScreen switches to new screen metrics. The caller re-lays out the window.
func (c *Controller) SetScreen(screen entity.Screen, limits entity.Limits) {
	c.screen = screen
	c.limits = limits
}

// Clamp constrains g to the current screen and limits.
func (c *Controller) Clamp(g entity.Geometry) entity.Geometry {
	return c.clamp(g)
}

func (c *Controller) clamp(g entity.Geometry) entity.Geometry {
	g = entity.ClampSize(g, c.screen, c.limits)
	g = entity.ClampPosition(g, c.screen)
	g.Orientation = c.screen.Orientation()
	return g
}

func (c *Controller) ready() error {
	if c.mode == entity.ModeDetached {
		return ErrDetached
	}
	if !c.open {
		return ErrNotOpen
	}
	return nil
}

func (c *Controller) apply(ctx context.Context, g entity.Geometry) error {
	if err := c.ready(); err != nil {
		return err
	}
	g.Orientation = c.screen.Orientation()
	if g == c.geometry {
		return nil
	}
	if err := c.compositor.UpdateWindow(ctx, g); err != nil {
		return c.fail(ctx, fmt.Errorf("update overlay window: %w", err))
	}
	c.geometry = g
	return nil
}

// fail moves the controller to Detached when the host surface is gone.
func (c *Controller) fail(ctx context.Context, err error) error {
	if errors.Is(err, port.ErrSurfaceGone) && c.mode != entity.ModeDetached {
		logging.FromContext(ctx).Error().Err(err).Msg("overlay surface gone, detaching")
		c.mode = entity.ModeDetached
	}
	return err
}
