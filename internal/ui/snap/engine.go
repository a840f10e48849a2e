// Package snap docks the overlay against a screen edge as a half-circle peek
// and restores it to where it was.
package snap

import (
	"context"
	"time"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/animation"
	"github.com/bnema/floatpane/internal/ui/overlay"
)

// Options tune edge detection and the dock/restore animations.
type Options struct {
	EdgeThreshold    int // Pixels from the screen edge that count as the edge zone
	SnapDuration     time.Duration
	RestoreDuration  time.Duration
	OvershootTension float64
}

// DefaultOptions returns the stock timings for a screen of the given density.
func DefaultOptions(screen entity.Screen) Options {
	return Options{
		EdgeThreshold:    screen.Px(24),
		SnapDuration:     300 * time.Millisecond,
		RestoreDuration:  350 * time.Millisecond,
		OvershootTension: 1.2,
	}
}

// Engine decides when the window is close enough to an edge and runs the
// dock and restore animations.
type Engine struct {
	ctx      context.Context
	window   *overlay.Controller
	animator *animation.Engine
	opts     Options
}

// NewEngine creates a snap engine.
func NewEngine(ctx context.Context, window *overlay.Controller, animator *animation.Engine, opts Options) *Engine {
	return &Engine{
		ctx:      logging.WithComponent(ctx, "snap"),
		window:   window,
		animator: animator,
		opts:     opts,
	}
}

// SetOptions replaces the engine options, e.g. after a screen change.
func (e *Engine) SetOptions(opts Options) {
	e.opts = opts
}

// Options returns the current options.
func (e *Engine) Options() Options {
	return e.opts
}

// MaybeSnap returns the edge g is close enough to, or EdgeNone.
// Positions past the left edge (negative x) count as the left edge zone.
func (e *Engine) MaybeSnap(g entity.Geometry) entity.EdgeState {
	screenWidth := e.window.Screen().Width
	switch {
	case g.X <= e.opts.EdgeThreshold:
		return entity.EdgeLeft
	case g.Right() >= screenWidth-e.opts.EdgeThreshold:
		return entity.EdgeRight
	default:
		return entity.EdgeNone
	}
}

// PeekGeometry is the docked geometry for g against side: half as wide as it
// is tall, flush with the edge. The width never exceeds half the screen so a
// peek can always be dragged clear of the edge zone.
func (e *Engine) PeekGeometry(g entity.Geometry, side entity.EdgeState) entity.Geometry {
	screenWidth := e.window.Screen().Width
	peek := g
	peek.Width = min(g.Height/2, screenWidth/2)
	if side == entity.EdgeRight {
		peek.X = screenWidth - peek.Width
	} else {
		peek.X = 0
	}
	return peek
}

// AnimateToEdge docks the window against side. The pre-dock geometry is
// captured only when the window is not already hidden, so re-docking a
// dragged peek still restores to the original floating geometry.
func (e *Engine) AnimateToEdge(side entity.EdgeState) {
	if !side.IsHidden() || e.window.Mode() == entity.ModeDetached {
		return
	}
	log := logging.FromContext(e.ctx)

	if !e.window.IsHidden() {
		e.window.CaptureOriginal()
	}

	current := e.window.Geometry()
	target := e.PeekGeometry(current, side)

	log.Debug().
		Str("edge", side.String()).
		Int("from_x", current.X).
		Int("to_x", target.X).
		Int("to_width", target.Width).
		Msg("docking overlay")

	e.animator.Start(&animation.Session{
		Name:           "snap-" + side.String(),
		StartGeometry:  current,
		TargetGeometry: target,
		StartShape:     e.window.Shape(),
		TargetShape:    entity.HalfCircleShape(side, target),
		Duration:       e.opts.SnapDuration,
		Easing:         animation.Overshoot(e.opts.OvershootTension),
		OnEnd: func() {
			e.window.Dock(side)
			e.window.SetMode(entity.ModeHidden)
			if err := e.window.SetInteractive(e.ctx, false); err != nil {
				log.Warn().Err(err).Msg("failed to disable panel surfaces")
			}
			e.window.Settle(e.ctx)
		},
		// An interrupted dock still counts as docked; the caller re-docks.
		OnCancel: func() {
			e.window.Dock(side)
			e.window.SetMode(entity.ModeHidden)
		},
	})
	e.window.SetMode(entity.ModeSnapping)
}

// RestoreToCenter animates a docked window back to exactly its captured
// geometry. It does nothing when there is nothing to restore.
func (e *Engine) RestoreToCenter() {
	if e.window.Mode() == entity.ModeDetached {
		return
	}
	original, ok := e.window.Original()
	if !ok {
		return
	}
	log := logging.FromContext(e.ctx)

	current := e.window.Geometry()
	log.Debug().
		Int("from_x", current.X).
		Int("to_x", original.X).
		Int("to_width", original.Width).
		Msg("restoring overlay")

	if err := e.window.SetInteractive(e.ctx, true); err != nil {
		log.Warn().Err(err).Msg("failed to enable panel surfaces")
	}

	e.animator.Start(&animation.Session{
		Name:           "restore",
		StartGeometry:  current,
		TargetGeometry: original,
		StartShape:     e.window.Shape(),
		TargetShape:    entity.FloatingShape(e.window.CornerRadius()),
		Duration:       e.opts.RestoreDuration,
		Easing:         animation.Decelerate,
		OnEnd: func() {
			e.window.Undock()
			e.window.ClearOriginal()
			e.window.SetMode(entity.ModeIdle)
			e.window.Settle(e.ctx)
		},
		OnCancel: func() {
			e.window.SetMode(entity.ModeHidden)
		},
	})
	e.window.SetMode(entity.ModeRestoring)
}

// Redock docks a hidden window again after the screen changed. The original
// is clamped to the new screen and the peek follows its vertical extent.
func (e *Engine) Redock() {
	if !e.window.IsHidden() || e.window.Mode() == entity.ModeDetached {
		return
	}
	e.window.ClampOriginal()
	if original, ok := e.window.Original(); ok {
		g := e.window.Geometry()
		g.Y, g.Height = original.Y, original.Height
		if err := e.window.ApplyFrame(e.ctx, g, e.window.Shape()); err != nil {
			logging.FromContext(e.ctx).Warn().Err(err).Msg("failed to move peek before re-docking")
		}
	}
	e.AnimateToEdge(e.window.Edge())
}
