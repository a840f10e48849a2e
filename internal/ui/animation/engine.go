// Package animation drives timed geometry and shape transitions of the
// overlay window, one at a time.
package animation

import (
	"context"
	"errors"
	"time"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

// Target receives animation frames.
type Target interface {
	ApplyFrame(ctx context.Context, geometry entity.Geometry, shape entity.Shape) error
}

// Hooks observe every session the engine runs.
type Hooks struct {
	OnStart func(ctx context.Context, s *Session)
	// OnEnd runs after the session's own OnEnd or OnCancel.
	OnEnd func(ctx context.Context, s *Session)
}

// Engine is a single-slot animator: starting a session cancels the one in
// flight, so at most one session ever writes frames.
type Engine struct {
	ctx       context.Context
	scheduler mainloop.Scheduler
	target    Target
	current   *Session
	hooks     []Hooks
}

// NewEngine creates an engine ticking on scheduler frames.
func NewEngine(ctx context.Context, scheduler mainloop.Scheduler, target Target) *Engine {
	return &Engine{
		ctx:       logging.WithComponent(ctx, "animation"),
		scheduler: scheduler,
		target:    target,
	}
}

// AddHooks registers hooks run around every session.
func (e *Engine) AddHooks(h Hooks) {
	e.hooks = append(e.hooks, h)
}

// Active reports whether a session is in flight.
func (e *Engine) Active() bool {
	return e.current != nil
}

// Current returns the session in flight, if any.
func (e *Engine) Current() *Session {
	return e.current
}

// Start cancels the running session, if any, and schedules the first frame of s.
// The session clock starts on that first frame.
func (e *Engine) Start(s *Session) {
	if s == nil {
		return
	}
	e.Cancel()

	log := logging.FromContext(e.ctx)
	log.Debug().
		Str("session", s.Name).
		Dur("duration", s.Duration).
		Int("to_x", s.TargetGeometry.X).
		Int("to_width", s.TargetGeometry.Width).
		Msg("animation started")

	e.current = s
	for _, h := range e.hooks {
		if h.OnStart != nil {
			h.OnStart(e.ctx, s)
		}
	}
	e.scheduler.ScheduleFrame(func(now time.Time) { e.tick(s, now) })
}

// Cancel stops the running session. Frames already scheduled for it become
// no-ops.
func (e *Engine) Cancel() {
	s := e.current
	if s == nil {
		return
	}
	s.cancelled = true
	e.current = nil

	logging.FromContext(e.ctx).Debug().Str("session", s.Name).Msg("animation cancelled")
	if s.OnCancel != nil {
		s.OnCancel()
	}
	e.runEndHooks(s)
}

func (e *Engine) tick(s *Session, now time.Time) {
	if s.cancelled || e.current != s {
		return
	}

	geometry, shape, done := s.frame(now)
	if err := e.target.ApplyFrame(e.ctx, geometry, shape); err != nil {
		log := logging.FromContext(e.ctx)
		if errors.Is(err, port.ErrSurfaceGone) {
			log.Error().Err(err).Str("session", s.Name).Msg("animation stopped, surface gone")
			s.cancelled = true
			e.current = nil
			return
		}
		log.Warn().Err(err).Str("session", s.Name).Msg("animation frame not applied")
	}

	if !done {
		e.scheduler.ScheduleFrame(func(now time.Time) { e.tick(s, now) })
		return
	}

	s.finished = true
	e.current = nil
	logging.FromContext(e.ctx).Debug().Str("session", s.Name).Msg("animation finished")
	if s.OnEnd != nil {
		s.OnEnd()
	}
	e.runEndHooks(s)
}

func (e *Engine) runEndHooks(s *Session) {
	for _, h := range e.hooks {
		if h.OnEnd != nil {
			h.OnEnd(e.ctx, s)
		}
	}
}
