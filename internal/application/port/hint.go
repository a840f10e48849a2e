package port

import "context"

// HintPresenter shows a short transient text over the overlay
// (zoom percentage, navigation feedback, size while resizing).
type HintPresenter interface {
	ShowHint(ctx context.Context, text string)
	HideHint(ctx context.Context)
}
