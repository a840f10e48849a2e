package replay

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

const (
	frameStep = 16 * time.Millisecond
	// settleLimit bounds the frames run after the last step.
	settleLimit = 10 * time.Second
)

// Clock is the virtual time source a replay advances.
type Clock struct {
	now time.Time
}

// NewClock starts a clock at start.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Now returns the current virtual time.
func (c *Clock) Now() time.Time {
	return c.now
}

// Target is the overlay a script drives. Frames must read time from the
// replay Clock.
type Target struct {
	Overlay  *coordinator.Overlay
	Frames   *mainloop.FrameQueue
	Viewport port.ContentViewport
	// Limits resolves the minimum size after a rotation; nil keeps the
	// current limits.
	Limits func(entity.Screen) entity.Limits
}

// StepResult is the window state after one step.
type StepResult struct {
	Index    int
	AtMs     int64
	Action   Action
	Mode     entity.Mode
	Edge     entity.EdgeState
	Geometry entity.Geometry
	Failures []string
}

// Report is the outcome of a replay.
type Report struct {
	Name  string
	Steps []StepResult
	Final StepResult
}

// Failed reports whether any expectation failed.
func (r *Report) Failed() bool {
	for _, s := range r.Steps {
		if len(s.Failures) > 0 {
			return true
		}
	}
	return false
}

type runner struct {
	ctx    context.Context
	clock  *Clock
	target Target
	start  time.Time
	screen entity.Screen
}

// Run opens the overlay, plays the script and closes the overlay. Frames
// run every 16ms of virtual time between steps; after the last step frames
// run until the queue is idle.
func Run(ctx context.Context, script *Script, clock *Clock, target Target) (*Report, error) {
	r := &runner{
		ctx:    logging.WithComponent(ctx, "replay"),
		clock:  clock,
		target: target,
		start:  clock.Now(),
		screen: script.EntityScreen(),
	}
	log := logging.FromContext(r.ctx)

	o := target.Overlay
	if err := o.Open(r.ctx); err != nil {
		return nil, fmt.Errorf("open overlay: %w", err)
	}
	if start := script.Start; start != nil {
		g := entity.Geometry{X: start.X, Y: start.Y, Width: start.Width, Height: start.Height}
		if err := o.Place(r.ctx, g); err != nil {
			return nil, fmt.Errorf("apply start geometry: %w", err)
		}
	}

	report := &Report{Name: script.Name}
	for i, step := range script.Steps {
		r.advanceTo(r.start.Add(time.Duration(step.AtMs) * time.Millisecond))
		r.apply(step)
		result := r.snapshot(i+1, step)
		if step.Expect != nil {
			result.Failures = r.check(*step.Expect)
		}
		log.Debug().
			Int("step", i+1).
			Str("action", string(step.Action)).
			Str("mode", result.Mode.String()).
			Int("failures", len(result.Failures)).
			Msg("replay step")
		report.Steps = append(report.Steps, result)
	}

	deadline := r.clock.Now().Add(settleLimit)
	for target.Frames.Pending() && r.clock.Now().Before(deadline) {
		r.tick()
	}
	report.Final = r.snapshot(len(script.Steps)+1, Step{Action: ActionWait})

	if err := o.Close(r.ctx); err != nil {
		log.Warn().Err(err).Msg("failed to close overlay after replay")
	}
	return report, nil
}

func (r *runner) tick() {
	r.clock.now = r.clock.now.Add(frameStep)
	r.target.Frames.RunFrame(r.clock.now)
}

// advanceTo runs frames until the clock reaches t; the final partial frame
// lands exactly on t.
func (r *runner) advanceTo(t time.Time) {
	for r.clock.now.Add(frameStep).Before(t) {
		r.tick()
	}
	if r.clock.now.Before(t) {
		r.clock.now = t
		r.target.Frames.RunFrame(t)
	}
}

func (r *runner) apply(step Step) {
	o := r.target.Overlay
	switch step.Action {
	case ActionDown, ActionMove, ActionUp, ActionCancel:
		o.HandlePointer(entity.PointerEvent{
			ID:     entity.PointerID(step.Pointer),
			Action: pointerAction(step.Action),
			X:      step.X,
			Y:      step.Y,
			Time:   r.clock.Now(),
		})
	case ActionButton:
		o.HandleButton(step.Button)
	case ActionSnap:
		edge, _ := parseEdge(step.Edge)
		o.SnapTo(edge)
	case ActionRestore:
		o.Restore()
	case ActionExpand:
		o.ToggleExpand()
	case ActionReset:
		o.ResetToDefault(r.ctx)
	case ActionRotate:
		rotated := entity.Screen{Width: r.screen.Height, Height: r.screen.Width, Density: r.screen.Density}
		limits := o.Window().Limits()
		if r.target.Limits != nil {
			limits = r.target.Limits(rotated)
		}
		o.SetScreen(r.ctx, rotated, limits)
		r.screen = rotated
	case ActionWait:
	}
}

func pointerAction(a Action) entity.PointerAction {
	switch a {
	case ActionDown:
		return entity.PointerDown
	case ActionUp:
		return entity.PointerUp
	case ActionCancel:
		return entity.PointerCancel
	default:
		return entity.PointerMove
	}
}

func (r *runner) snapshot(index int, step Step) StepResult {
	w := r.target.Overlay.Window()
	return StepResult{
		Index:    index,
		AtMs:     r.clock.Now().Sub(r.start).Milliseconds(),
		Action:   step.Action,
		Mode:     w.Mode(),
		Edge:     w.Edge(),
		Geometry: w.Geometry(),
	}
}

func (r *runner) check(want Expect) []string {
	w := r.target.Overlay.Window()
	g := w.Geometry()
	var failures []string

	if want.Mode != "" && want.Mode != w.Mode().String() {
		failures = append(failures, fmt.Sprintf("mode: want %s, got %s", want.Mode, w.Mode()))
	}
	if want.Edge != "" {
		if edge, _ := parseEdge(want.Edge); edge != w.Edge() {
			failures = append(failures, fmt.Sprintf("edge: want %s, got %s", edge, w.Edge()))
		}
	}
	intField := func(name string, want *int, got int) {
		if want != nil && *want != got {
			failures = append(failures, fmt.Sprintf("%s: want %d, got %d", name, *want, got))
		}
	}
	intField("x", want.X, g.X)
	intField("y", want.Y, g.Y)
	intField("width", want.Width, g.Width)
	intField("height", want.Height, g.Height)
	if r.target.Viewport != nil {
		intField("scale_percent", want.Scale, entity.ScalePercentage(r.target.Viewport.Scale()))
	}
	return failures
}
