package coordinator

import (
	"context"
	"errors"

	"github.com/bnema/floatpane/internal/application/usecase"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/animation"
)

// ErrBusy is returned when a gesture or an animation holds geometry control.
var ErrBusy = errors.New("overlay is busy")

// busy reports whether a gesture or an animation holds geometry control.
func (o *Overlay) busy() bool {
	mode := o.window.Mode()
	return !o.window.IsOpen() ||
		mode == entity.ModeDetached ||
		mode.IsAnimating() ||
		mode.IsGesture() ||
		o.touch.Active()
}

// SnapTo docks the window against side. It reports whether a dock started.
func (o *Overlay) SnapTo(side entity.EdgeState) bool {
	if o.busy() || !side.IsHidden() {
		return false
	}
	if o.window.IsHidden() && o.window.Edge() == side {
		return false
	}
	o.snap.AnimateToEdge(side)
	return true
}

// Restore undocks the window back to its pre-dock geometry.
func (o *Overlay) Restore() bool {
	if o.busy() || !o.window.IsHidden() {
		return false
	}
	o.snap.RestoreToCenter()
	return true
}

// ToggleExpand animates between full screen and the remembered geometry.
func (o *Overlay) ToggleExpand() bool {
	if o.busy() || o.window.IsHidden() {
		return false
	}
	if o.expanded {
		o.expanded = false
		o.morph("collapse", o.window.Clamp(o.beforeFull))
		return true
	}
	o.beforeFull = o.window.Geometry()
	o.expanded = true
	o.morph("expand", o.fullScreen())
	return true
}

// ResetToDefault animates the window to the screen-ratio default geometry,
// undocking it first when docked.
func (o *Overlay) ResetToDefault(ctx context.Context) bool {
	if o.busy() {
		return false
	}
	log := logging.FromContext(ctx)

	if o.window.IsHidden() {
		o.window.Undock()
		o.window.ClearOriginal()
		if err := o.window.SetInteractive(ctx, true); err != nil {
			log.Warn().Err(err).Msg("failed to enable panel surfaces")
		}
	}
	o.expanded = false
	target := o.defaultGeometry()
	log.Debug().Int("x", target.X).Int("y", target.Y).Int("width", target.Width).Int("height", target.Height).Msg("resetting overlay geometry")
	o.morph("reset", target)
	return true
}

// SetScreen adopts new screen metrics: in-flight sequences and animations are
// dropped, the window is re-clamped, and a docked window re-docks.
func (o *Overlay) SetScreen(ctx context.Context, screen entity.Screen, limits entity.Limits) {
	log := logging.FromContext(ctx)
	log.Info().
		Int("width", screen.Width).
		Int("height", screen.Height).
		Str("orientation", screen.Orientation().String()).
		Msg("screen changed")

	o.touch.Cancel()
	o.gestures.Cancel()
	o.route = routeNone
	o.animator.Cancel()

	o.opts.Screen, o.opts.Limits = screen, limits
	o.window.SetScreen(screen, limits)
	if !o.window.IsOpen() || o.window.Mode() == entity.ModeDetached {
		return
	}

	if o.window.IsHidden() {
		o.snap.Redock()
		return
	}

	target := o.window.Clamp(o.window.Geometry())
	if o.expanded {
		o.beforeFull = o.window.Clamp(o.beforeFull)
		target = o.fullScreen()
	}
	if err := o.window.SetGeometry(ctx, target); err != nil {
		log.Warn().Err(err).Msg("failed to re-layout overlay")
		return
	}
	o.updateViewportSize()
	o.window.Settle(ctx)
}

// Place moves an idle window to g without animating.
func (o *Overlay) Place(ctx context.Context, g entity.Geometry) error {
	if o.busy() || o.window.IsHidden() {
		return ErrBusy
	}
	if err := o.window.SetGeometry(ctx, g); err != nil {
		return err
	}
	o.expanded = false
	o.updateViewportSize()
	o.window.Settle(ctx)
	return nil
}

func (o *Overlay) morph(name string, target entity.Geometry) {
	shape := entity.FloatingShape(o.opts.CornerRadius)
	o.animator.Start(&animation.Session{
		Name:           name,
		StartGeometry:  o.window.Geometry(),
		TargetGeometry: target,
		StartShape:     o.window.Shape(),
		TargetShape:    shape,
		Duration:       o.opts.MorphDuration,
		Easing:         animation.Decelerate,
		OnEnd: func() {
			o.window.SetMode(entity.ModeIdle)
			o.updateViewportSize()
			o.window.Settle(o.ctx)
		},
		OnCancel: func() {
			o.window.SetMode(entity.ModeIdle)
		},
	})
	o.window.SetMode(entity.ModeMorphing)
}

func (o *Overlay) fullScreen() entity.Geometry {
	return entity.Geometry{
		Width:       o.opts.Screen.Width,
		Height:      o.opts.Screen.Height,
		Orientation: o.opts.Screen.Orientation(),
	}
}

func (o *Overlay) defaultGeometry() entity.Geometry {
	if o.deps.Store != nil {
		return o.deps.Store.Default(o.opts.Screen)
	}
	return entity.DefaultGeometry(o.opts.Screen, usecase.DefaultWidthRatio, usecase.DefaultHeightRatio, o.opts.Limits)
}
