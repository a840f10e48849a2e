package logging

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Milestone is a named checkpoint of a StartupTrace.
type Milestone struct {
	Name    string
	Elapsed time.Duration
	Delta   time.Duration
}

// StartupTrace records how long each step of bringing the overlay on screen
// took. Milestones are logged at debug level as they are marked and Finish
// logs one summary line. Safe for concurrent use.
type StartupTrace struct {
	mu         sync.Mutex
	t0         time.Time
	now        func() time.Time
	logger     *zerolog.Logger
	milestones []Milestone
	finished   bool
}

// NewStartupTrace starts a trace at t0. A nil now uses time.Now.
func NewStartupTrace(logger *zerolog.Logger, t0 time.Time, now func() time.Time) *StartupTrace {
	if now == nil {
		now = time.Now
	}
	return &StartupTrace{t0: t0, now: now, logger: logger}
}

// Mark records a milestone. Marks after Finish are ignored.
func (st *StartupTrace) Mark(name string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}

	m := Milestone{Name: name, Elapsed: st.now().Sub(st.t0)}
	if n := len(st.milestones); n > 0 {
		m.Delta = m.Elapsed - st.milestones[n-1].Elapsed
	}
	st.milestones = append(st.milestones, m)

	if st.logger != nil {
		st.logger.Debug().
			Str("milestone", m.Name).
			Int64("t_ms", m.Elapsed.Milliseconds()).
			Int64("delta_ms", m.Delta.Milliseconds()).
			Msgf("startup: %s (T+%dms)", m.Name, m.Elapsed.Milliseconds())
	}
}

// Finish logs the summary once.
func (st *StartupTrace) Finish() {
	st.mu.Lock()
	defer st.mu.Unlock()

	if st.finished {
		return
	}
	st.finished = true

	if st.logger == nil {
		return
	}
	parts := make([]string, 0, len(st.milestones))
	for _, m := range st.milestones {
		parts = append(parts, fmt.Sprintf("%s:%d", m.Name, m.Elapsed.Milliseconds()))
	}
	st.logger.Info().
		Int64("total_ms", st.now().Sub(st.t0).Milliseconds()).
		Str("milestones", strings.Join(parts, ",")).
		Msg("startup complete")
}

// Milestones returns a copy of the recorded milestones.
func (st *StartupTrace) Milestones() []Milestone {
	st.mu.Lock()
	defer st.mu.Unlock()
	return append([]Milestone(nil), st.milestones...)
}
