package coordinator

import (
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/ui/input"
)

// Result reports what a pointer event was classified as.
type Result struct {
	Intent  input.Intent
	Gesture input.Gesture
}

// HandlePointer routes a screen-space pointer event. A sequence whose first
// pointer lands on the chrome (title bar, resize hot-zone, or anywhere while
// docked) goes to the touch classifier; otherwise it goes to the gesture
// interpreter in viewport-local coordinates. A second pointer always turns
// the sequence into a content gesture.
func (o *Overlay) HandlePointer(ev entity.PointerEvent) Result {
	if !o.window.IsOpen() || o.window.Mode() == entity.ModeDetached {
		return Result{}
	}
	if ev.Action == entity.PointerDown {
		return o.pointerDown(ev)
	}
	return o.pointerUpdate(ev)
}

func (o *Overlay) pointerDown(ev entity.PointerEvent) Result {
	g := o.window.Geometry()
	p := ev.Point()

	switch o.route {
	case routeNone:
		if !g.Contains(p.X, p.Y) {
			return Result{}
		}
		if o.isChrome(g, p) {
			o.route = routeChrome
			o.gestures.Track(o.local(ev))
			return Result{Intent: o.touch.Handle(ev)}
		}
		o.route = routeContent
		o.updateViewportSize()
		return Result{Gesture: o.gestures.Handle(o.local(ev))}

	case routeChrome:
		if o.window.IsHidden() {
			// The docked peek shows no content to zoom.
			o.gestures.Track(o.local(ev))
			return Result{}
		}
		o.touch.Cancel()
		o.route = routeContent
	}
	return Result{Gesture: o.gestures.Handle(o.local(ev))}
}

func (o *Overlay) pointerUpdate(ev entity.PointerEvent) Result {
	var res Result
	switch o.route {
	case routeChrome:
		res.Intent = o.touch.Handle(ev)
		o.gestures.Track(o.local(ev))
	case routeContent:
		res.Gesture = o.gestures.Handle(o.local(ev))
	default:
		return res
	}

	if ev.Action == entity.PointerUp || ev.Action == entity.PointerCancel {
		if o.gestures.PointerCount() == 0 && !o.touch.Active() {
			o.route = routeNone
		}
	}
	if res.Intent == input.IntentDoubleClick {
		o.ToggleExpand()
	}
	return res
}

// HandleButton forwards mouse side buttons to history navigation.
func (o *Overlay) HandleButton(button uint) input.Gesture {
	if !o.window.IsOpen() || o.window.IsHidden() || o.window.Mode() == entity.ModeDetached {
		return input.GestureNone
	}
	gesture := o.gestures.HandleButton(button)
	switch gesture {
	case input.GestureBack:
		o.showHint(o.ctx, "Back", o.opts.GestureHintDuration)
	case input.GestureForward:
		o.showHint(o.ctx, "Forward", o.opts.GestureHintDuration)
	}
	return gesture
}

func (o *Overlay) isChrome(g entity.Geometry, p entity.Point) bool {
	if o.window.IsHidden() {
		return true
	}
	if p.Y < float64(g.Y+o.opts.TitleBarHeight) {
		return true
	}
	return o.touch.InResizeZone(g, p)
}

// local translates ev into content viewport coordinates.
func (o *Overlay) local(ev entity.PointerEvent) entity.PointerEvent {
	g := o.window.Geometry()
	ev.X -= float64(g.X)
	ev.Y -= float64(g.Y + o.opts.TitleBarHeight)
	return ev
}
