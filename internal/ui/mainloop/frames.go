// Package mainloop schedules overlay work on a single goroutine.
//
// Components never spawn timers of their own: they ask a FrameQueue for the
// next frame or for a delayed callback, and whichever host owns the loop
// (the X11 runner, the terminal simulator, a test) drives RunFrame.
package mainloop

import (
	"sort"
	"sync"
	"time"
)

// FrameFunc runs once on the next frame with that frame's timestamp.
type FrameFunc func(now time.Time)

// Scheduler is the part of FrameQueue components depend on.
type Scheduler interface {
	ScheduleFrame(fn FrameFunc)
	After(d time.Duration, fn func()) (cancel func())
	Now() time.Time
}

type timer struct {
	id       uint64
	deadline time.Time
	fn       func()
}

// FrameQueue collects frame callbacks and deadline timers.
// It is safe to schedule from any goroutine; callbacks run inside RunFrame.
type FrameQueue struct {
	mu     sync.Mutex
	frames []FrameFunc
	timers []timer
	nextID uint64
	now    func() time.Time
}

// NewFrameQueue returns a queue reading the current time from now.
// A nil now uses time.Now.
func NewFrameQueue(now func() time.Time) *FrameQueue {
	if now == nil {
		now = time.Now
	}
	return &FrameQueue{now: now}
}

// Now returns the queue's notion of the current time.
func (q *FrameQueue) Now() time.Time {
	return q.now()
}

// ScheduleFrame queues fn for the next RunFrame.
func (q *FrameQueue) ScheduleFrame(fn FrameFunc) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.frames = append(q.frames, fn)
	q.mu.Unlock()
}

// After runs fn on the first frame at or past now+d.
// The returned cancel func is idempotent.
func (q *FrameQueue) After(d time.Duration, fn func()) (cancel func()) {
	if fn == nil {
		return func() {}
	}

	q.mu.Lock()
	q.nextID++
	id := q.nextID
	q.timers = append(q.timers, timer{id: id, deadline: q.now().Add(d), fn: fn})
	q.mu.Unlock()

	return func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		for i, t := range q.timers {
			if t.id == id {
				q.timers = append(q.timers[:i], q.timers[i+1:]...)
				return
			}
		}
	}
}

// RunFrame fires due timers in deadline order, then the frame callbacks queued
// before this call. Callbacks scheduled while running wait for the next frame.
func (q *FrameQueue) RunFrame(now time.Time) {
	q.mu.Lock()
	var due []timer
	kept := q.timers[:0]
	for _, t := range q.timers {
		if !t.deadline.After(now) {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	q.timers = kept
	frames := q.frames
	q.frames = nil
	q.mu.Unlock()

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].deadline.Before(due[j].deadline)
	})
	for _, t := range due {
		t.fn()
	}
	for _, fn := range frames {
		fn(now)
	}
}

// Pending reports whether any frame callback or timer is queued.
func (q *FrameQueue) Pending() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.frames) > 0 || len(q.timers) > 0
}

// NextDeadline returns the earliest timer deadline, if any.
func (q *FrameQueue) NextDeadline() (time.Time, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.timers) == 0 {
		return time.Time{}, false
	}
	earliest := q.timers[0].deadline
	for _, t := range q.timers[1:] {
		if t.deadline.Before(earliest) {
			earliest = t.deadline
		}
	}
	return earliest, true
}
