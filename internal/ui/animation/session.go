package animation

import (
	"time"

	"github.com/bnema/floatpane/internal/domain/entity"
)

// Session is one timed transition between two geometries and shapes.
// A session runs at most once; the engine owns it after Start.
type Session struct {
	Name string

	StartGeometry  entity.Geometry
	TargetGeometry entity.Geometry
	StartShape     entity.Shape
	TargetShape    entity.Shape

	Duration time.Duration
	Easing   Easing

	// OnEnd runs once the target frame was applied.
	OnEnd func()
	// OnCancel runs when another session or Engine.Cancel preempts this one.
	OnCancel func()

	started   bool
	startTime time.Time
	cancelled bool
	finished  bool
}

// Cancelled reports whether the session was preempted.
func (s *Session) Cancelled() bool { return s.cancelled }

// Finished reports whether the session reached its target.
func (s *Session) Finished() bool { return s.finished }

// frame returns the interpolated geometry and shape at now and whether the
// session has reached its end.
func (s *Session) frame(now time.Time) (entity.Geometry, entity.Shape, bool) {
	if !s.started {
		s.started = true
		s.startTime = now
	}

	fraction := 1.0
	if s.Duration > 0 {
		fraction = float64(now.Sub(s.startTime)) / float64(s.Duration)
	}
	fraction = min(max(fraction, 0), 1)

	eased := fraction
	if s.Easing != nil {
		eased = s.Easing(fraction)
	}
	if fraction >= 1 {
		return s.TargetGeometry, s.TargetShape, true
	}
	return s.StartGeometry.Lerp(s.TargetGeometry, eased), s.StartShape.Lerp(s.TargetShape, eased), false
}
