package mainloop

import (
	"context"
	"time"

	"github.com/bnema/floatpane/internal/logging"
)

// FrameInterval is the frame cadence of Loop.
const FrameInterval = time.Second / 60

const taskBuffer = 256

// Loop owns the goroutine every overlay component runs on. Posted tasks and
// frames are executed one at a time, in order.
type Loop struct {
	frames *FrameQueue
	tasks  chan func()
	done   chan struct{}
}

// NewLoop returns a loop driving frames at FrameInterval.
func NewLoop(frames *FrameQueue) *Loop {
	return &Loop{
		frames: frames,
		tasks:  make(chan func(), taskBuffer),
		done:   make(chan struct{}),
	}
}

// Frames returns the loop's frame queue.
func (l *Loop) Frames() *FrameQueue {
	return l.frames
}

// Post queues fn to run on the loop goroutine. Tasks posted after Run
// returned are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	select {
	case <-l.done:
	case l.tasks <- fn:
	}
}

// Run executes tasks and frames until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)
	defer close(l.done)

	ticker := time.NewTicker(FrameInterval)
	defer ticker.Stop()

	log.Debug().Dur("frame_interval", FrameInterval).Msg("main loop started")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("main loop stopped")
			return ctx.Err()
		case fn := <-l.tasks:
			fn()
		case now := <-ticker.C:
			if l.frames.Pending() {
				l.frames.RunFrame(now)
			}
		}
	}
}
