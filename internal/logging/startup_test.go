package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStartupTrace_MarkAndFinish(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)

	t0 := time.Unix(1000, 0)
	now := t0
	trace := NewStartupTrace(&logger, t0, func() time.Time { return now })

	now = t0.Add(20 * time.Millisecond)
	trace.Mark("x11_connected")
	now = t0.Add(50 * time.Millisecond)
	trace.Mark("overlay_open")
	trace.Finish()

	now = t0.Add(90 * time.Millisecond)
	trace.Mark("late")
	trace.Finish()

	ms := trace.Milestones()
	require.Len(t, ms, 2)
	assert.Equal(t, 20*time.Millisecond, ms[0].Elapsed)
	assert.Zero(t, ms[0].Delta)
	assert.Equal(t, 30*time.Millisecond, ms[1].Delta)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], `"milestones":"x11_connected:20,overlay_open:50"`)
	assert.Contains(t, lines[2], `"total_ms":50`)
}

func TestStartupTrace_NilLogger(t *testing.T) {
	trace := NewStartupTrace(nil, time.Now(), nil)
	trace.Mark("a")
	trace.Finish()
	assert.Len(t, trace.Milestones(), 1)
}
