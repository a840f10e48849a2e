package animation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/ui/mainloop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type frame struct {
	geometry entity.Geometry
	shape    entity.Shape
}

type recordingTarget struct {
	frames []frame
	err    error
}

func (r *recordingTarget) ApplyFrame(_ context.Context, g entity.Geometry, s entity.Shape) error {
	if r.err != nil {
		return r.err
	}
	r.frames = append(r.frames, frame{g, s})
	return nil
}

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

func runFrames(q *mainloop.FrameQueue, from time.Time, step time.Duration, n int) time.Time {
	now := from
	for i := 0; i < n && q.Pending(); i++ {
		q.RunFrame(now)
		now = now.Add(step)
	}
	return now
}

func newSession(name string, from, to entity.Geometry, d time.Duration) *Session {
	return &Session{
		Name:           name,
		StartGeometry:  from,
		TargetGeometry: to,
		StartShape:     entity.FloatingShape(16),
		TargetShape:    entity.FloatingShape(16),
		Duration:       d,
		Easing:         Linear,
	}
}

func TestEngine_RunsSessionToExactTarget(t *testing.T) {
	q := mainloop.NewFrameQueue(nil)
	target := &recordingTarget{}
	e := NewEngine(context.Background(), q, target)

	from := entity.Geometry{X: 100, Y: 400, Width: 500, Height: 1000}
	to := entity.Geometry{X: 0, Y: 400, Width: 500, Height: 1000}
	ended := false
	s := newSession("snap", from, to, 100*time.Millisecond)
	s.OnEnd = func() { ended = true }

	e.Start(s)
	assert.True(t, e.Active())
	runFrames(q, t0, 16*time.Millisecond, 20)

	require.NotEmpty(t, target.frames)
	assert.Equal(t, from, target.frames[0].geometry, "first frame starts the clock")
	assert.Equal(t, to, target.frames[len(target.frames)-1].geometry)
	assert.True(t, ended)
	assert.True(t, s.Finished())
	assert.False(t, e.Active())

	for i := 1; i < len(target.frames); i++ {
		assert.LessOrEqual(t, target.frames[i].geometry.X, target.frames[i-1].geometry.X, "linear easing is monotonic")
	}
}

func TestEngine_ZeroDurationEndsOnFirstFrame(t *testing.T) {
	q := mainloop.NewFrameQueue(nil)
	target := &recordingTarget{}
	e := NewEngine(context.Background(), q, target)

	to := entity.Geometry{X: 7, Y: 8, Width: 300, Height: 400}
	e.Start(newSession("jump", entity.Geometry{}, to, 0))
	q.RunFrame(t0)

	require.Len(t, target.frames, 1)
	assert.Equal(t, to, target.frames[0].geometry)
	assert.False(t, q.Pending())
}

func TestEngine_StartCancelsPreviousSession(t *testing.T) {
	q := mainloop.NewFrameQueue(nil)
	target := &recordingTarget{}
	e := NewEngine(context.Background(), q, target)

	first := newSession("first", entity.Geometry{X: 0, Width: 300, Height: 400}, entity.Geometry{X: 1000, Width: 300, Height: 400}, time.Second)
	firstCancelled, firstEnded := false, false
	first.OnCancel = func() { firstCancelled = true }
	first.OnEnd = func() { firstEnded = true }

	e.Start(first)
	q.RunFrame(t0)
	q.RunFrame(t0.Add(100 * time.Millisecond))

	second := newSession("second", entity.Geometry{X: 500, Width: 300, Height: 400}, entity.Geometry{X: 600, Width: 300, Height: 400}, 50*time.Millisecond)
	e.Start(second)
	assert.True(t, firstCancelled)
	assert.True(t, first.Cancelled())
	assert.Same(t, second, e.Current())

	before := len(target.frames)
	runFrames(q, t0.Add(200*time.Millisecond), 16*time.Millisecond, 50)

	for _, f := range target.frames[before:] {
		assert.GreaterOrEqual(t, f.geometry.X, 500, "only the second session writes frames")
		assert.LessOrEqual(t, f.geometry.X, 600)
	}
	assert.False(t, firstEnded)
	assert.True(t, second.Finished())
}

func TestEngine_CancelMakesScheduledTicksNoOps(t *testing.T) {
	q := mainloop.NewFrameQueue(nil)
	target := &recordingTarget{}
	e := NewEngine(context.Background(), q, target)

	e.Start(newSession("restore", entity.Geometry{Width: 300, Height: 400}, entity.Geometry{X: 500, Width: 300, Height: 400}, time.Second))
	q.RunFrame(t0)
	e.Cancel()
	e.Cancel()

	runFrames(q, t0.Add(time.Millisecond), 16*time.Millisecond, 10)
	assert.Len(t, target.frames, 1)
}

func TestEngine_HooksWrapSessions(t *testing.T) {
	q := mainloop.NewFrameQueue(nil)
	e := NewEngine(context.Background(), q, &recordingTarget{})

	var events []string
	e.AddHooks(Hooks{
		OnStart: func(_ context.Context, s *Session) { events = append(events, "start:"+s.Name) },
		OnEnd:   func(_ context.Context, s *Session) { events = append(events, "end:"+s.Name) },
	})

	s := newSession("a", entity.Geometry{Width: 300, Height: 400}, entity.Geometry{X: 10, Width: 300, Height: 400}, 10*time.Millisecond)
	s.OnEnd = func() { events = append(events, "session-end:a") }
	e.Start(s)
	runFrames(q, t0, 16*time.Millisecond, 5)

	assert.Equal(t, []string{"start:a", "session-end:a", "end:a"}, events)
}

func TestEngine_SurfaceGoneStopsTicking(t *testing.T) {
	q := mainloop.NewFrameQueue(nil)
	target := &recordingTarget{err: fmt.Errorf("apply: %w", port.ErrSurfaceGone)}
	e := NewEngine(context.Background(), q, target)

	ended := false
	s := newSession("snap", entity.Geometry{Width: 300, Height: 400}, entity.Geometry{X: 10, Width: 300, Height: 400}, time.Second)
	s.OnEnd = func() { ended = true }
	e.Start(s)

	q.RunFrame(t0)
	assert.False(t, q.Pending())
	assert.False(t, e.Active())
	assert.False(t, ended)
}

func TestEngine_OtherErrorsKeepTicking(t *testing.T) {
	q := mainloop.NewFrameQueue(nil)
	target := &recordingTarget{err: errors.New("transient")}
	e := NewEngine(context.Background(), q, target)

	e.Start(newSession("snap", entity.Geometry{Width: 300, Height: 400}, entity.Geometry{X: 10, Width: 300, Height: 400}, 50*time.Millisecond))
	q.RunFrame(t0)
	assert.True(t, q.Pending())
	target.err = nil

	runFrames(q, t0.Add(16*time.Millisecond), 16*time.Millisecond, 10)
	require.NotEmpty(t, target.frames)
	assert.Equal(t, 10, target.frames[len(target.frames)-1].geometry.X)
}
