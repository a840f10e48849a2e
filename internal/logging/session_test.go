package logging

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFilename_RoundTrip(t *testing.T) {
	id := GenerateSessionID(time.Date(2026, 10, 17, 20, 51, 6, 0, time.UTC))
	require.Len(t, id, len("20261017_205106_a7b3"))
	assert.Contains(t, id, "20261017_205106_")

	got, ok := ParseSessionFilename(SessionFilename(id))
	require.True(t, ok)
	assert.Equal(t, id, got)
	assert.Len(t, ShortSessionID(id), 4)
}

func TestParseSessionFilename_Rejects(t *testing.T) {
	for _, name := range []string{"floatpane.log", "session_.log", "session_x.txt", ""} {
		_, ok := ParseSessionFilename(name)
		assert.False(t, ok, name)
	}
}
