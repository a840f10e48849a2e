package viewport

import (
	"context"
	"sync"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/logging"
)

// HintBoard keeps the currently shown hint.
type HintBoard struct {
	mu      sync.RWMutex
	text    string
	visible bool
}

var _ port.HintPresenter = (*HintBoard)(nil)

// NewHintBoard creates an empty hint board.
func NewHintBoard() *HintBoard {
	return &HintBoard{}
}

// ShowHint replaces the visible hint.
func (h *HintBoard) ShowHint(ctx context.Context, text string) {
	h.mu.Lock()
	h.text, h.visible = text, true
	h.mu.Unlock()
	logging.FromContext(ctx).Debug().Str("hint", text).Msg("hint shown")
}

// HideHint hides the hint.
func (h *HintBoard) HideHint(_ context.Context) {
	h.mu.Lock()
	h.visible = false
	h.mu.Unlock()
}

// Current returns the visible hint, if any.
func (h *HintBoard) Current() (string, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.text, h.visible
}
