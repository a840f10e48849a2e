package port

import "context"

// ScrollEdge selects a scroll destination.
type ScrollEdge int

const (
	ScrollTop ScrollEdge = iota
	ScrollBottom
)

// String returns a human-readable representation of the scroll edge.
func (e ScrollEdge) String() string {
	if e == ScrollBottom {
		return "bottom"
	}
	return "top"
}

// ContentViewport is the embedded content the overlay hosts.
type ContentViewport interface {
	// CanGoBack returns true if back navigation is available.
	CanGoBack() bool

	// GoBack navigates back in history.
	GoBack(ctx context.Context) error

	// CanGoForward returns true if forward navigation is available.
	CanGoForward() bool

	// GoForward navigates forward in history.
	GoForward(ctx context.Context) error

	// ScrollTo scrolls the content to the top or the bottom.
	ScrollTo(ctx context.Context, edge ScrollEdge) error

	// SetScale sets the content scale (1.0 = 100%).
	SetScale(ctx context.Context, factor float64) error

	// Scale returns the authoritative current content scale.
	Scale() float64

	// SetScrollEnabled enables or disables content scrolling.
	SetScrollEnabled(ctx context.Context, enabled bool) error
}
