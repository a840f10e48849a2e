package mainloop

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func TestFrameQueue_FramesScheduledDuringRunWaitForNextFrame(t *testing.T) {
	q := NewFrameQueue(nil)
	t0 := time.Unix(100, 0)

	var seen []time.Time
	q.ScheduleFrame(func(now time.Time) {
		seen = append(seen, now)
		q.ScheduleFrame(func(now time.Time) { seen = append(seen, now) })
	})

	q.RunFrame(t0)
	require.Len(t, seen, 1)
	assert.True(t, q.Pending())

	q.RunFrame(t0.Add(FrameInterval))
	require.Len(t, seen, 2)
	assert.Equal(t, t0.Add(FrameInterval), seen[1])
	assert.False(t, q.Pending())
}

func TestFrameQueue_AfterFiresAtDeadline(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := NewFrameQueue(clock.now)

	var order []string
	q.After(200*time.Millisecond, func() { order = append(order, "late") })
	q.After(100*time.Millisecond, func() { order = append(order, "early") })

	deadline, ok := q.NextDeadline()
	require.True(t, ok)
	assert.Equal(t, clock.t.Add(100*time.Millisecond), deadline)

	q.RunFrame(clock.t.Add(50 * time.Millisecond))
	assert.Empty(t, order)

	q.RunFrame(clock.t.Add(250 * time.Millisecond))
	assert.Equal(t, []string{"early", "late"}, order)
	assert.False(t, q.Pending())
}

func TestFrameQueue_CancelRemovesTimer(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	q := NewFrameQueue(clock.now)

	ran := false
	cancel := q.After(10*time.Millisecond, func() { ran = true })
	cancel()
	cancel()

	q.RunFrame(clock.t.Add(time.Second))
	assert.False(t, ran)
	_, ok := q.NextDeadline()
	assert.False(t, ok)
}

func TestLoop_RunsPostedTasksInOrder(t *testing.T) {
	loop := NewLoop(NewFrameQueue(nil))
	ctx, cancel := context.WithCancel(context.Background())

	errCh := make(chan error, 1)
	go func() { errCh <- loop.Run(ctx) }()

	got := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		v := i
		loop.Post(func() { got <- v })
	}
	for i := 1; i <= 3; i++ {
		select {
		case v := <-got:
			assert.Equal(t, i, v)
		case <-time.After(time.Second):
			t.Fatal("task did not run")
		}
	}

	frameRan := make(chan struct{})
	loop.Post(func() {
		loop.Frames().ScheduleFrame(func(time.Time) { close(frameRan) })
	})
	select {
	case <-frameRan:
	case <-time.After(time.Second):
		t.Fatal("frame did not run")
	}

	cancel()
	assert.True(t, errors.Is(<-errCh, context.Canceled))
	loop.Post(func() { t.Error("task ran after loop stopped") })
}
