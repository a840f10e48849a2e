// Package viewport provides a headless content viewport: an in-memory page
// history with a scroll position and a scale. The sim and replay hosts embed
// it where a real host would embed a browsing engine.
package viewport

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
)

// Document is an in-memory ContentViewport.
type Document struct {
	ctx context.Context

	mu            sync.RWMutex
	history       []string
	index         int
	scale         float64
	scroll        port.ScrollEdge
	scrollEnabled bool

	closed atomic.Bool
}

var _ port.ContentViewport = (*Document)(nil)

// NewDocument creates a document showing the last of pages, with the earlier
// ones in its back history.
func NewDocument(ctx context.Context, pages ...string) *Document {
	if len(pages) == 0 {
		pages = []string{"about:blank"}
	}
	history := make([]string, len(pages))
	copy(history, pages)
	return &Document{
		ctx:           logging.WithComponent(ctx, "viewport"),
		history:       history,
		index:         len(history) - 1,
		scale:         entity.ScaleDefault,
		scrollEnabled: true,
	}
}

// Navigate opens page, dropping any forward history.
func (d *Document) Navigate(page string) {
	d.mu.Lock()
	d.history = append(d.history[:d.index+1], page)
	d.index = len(d.history) - 1
	d.scroll = port.ScrollTop
	d.mu.Unlock()
	logging.FromContext(d.ctx).Debug().Str("page", page).Msg("navigated")
}

// CanGoBack returns true if back navigation is possible.
func (d *Document) CanGoBack() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index > 0
}

// CanGoForward returns true if forward navigation is possible.
func (d *Document) CanGoForward() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.index < len(d.history)-1
}

// GoBack navigates back in history.
func (d *Document) GoBack(_ context.Context) error {
	return d.step(-1)
}

// GoForward navigates forward in history.
func (d *Document) GoForward(_ context.Context) error {
	return d.step(1)
}

func (d *Document) step(delta int) error {
	if d.closed.Load() {
		return fmt.Errorf("viewport is closed: %w", port.ErrSurfaceGone)
	}
	d.mu.Lock()
	next := d.index + delta
	if next < 0 || next >= len(d.history) {
		d.mu.Unlock()
		if delta < 0 {
			return fmt.Errorf("cannot go back")
		}
		return fmt.Errorf("cannot go forward")
	}
	d.index = next
	d.scroll = port.ScrollTop
	page := d.history[next]
	d.mu.Unlock()

	logging.FromContext(d.ctx).Debug().Str("page", page).Int("delta", delta).Msg("history step")
	return nil
}

// ScrollTo jumps to the top or the bottom of the page. It fails while
// scrolling is disabled.
func (d *Document) ScrollTo(_ context.Context, edge port.ScrollEdge) error {
	if d.closed.Load() {
		return fmt.Errorf("viewport is closed: %w", port.ErrSurfaceGone)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.scrollEnabled {
		return fmt.Errorf("scrolling is disabled")
	}
	d.scroll = edge
	logging.FromContext(d.ctx).Debug().Str("edge", edge.String()).Msg("scrolled")
	return nil
}

// SetScale sets the content scale (1.0 = 100%), clamped to the valid range.
func (d *Document) SetScale(_ context.Context, factor float64) error {
	if d.closed.Load() {
		return fmt.Errorf("viewport is closed: %w", port.ErrSurfaceGone)
	}
	d.mu.Lock()
	d.scale = entity.ClampScale(factor)
	d.mu.Unlock()
	return nil
}

// Scale returns the current content scale.
func (d *Document) Scale() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.scale
}

// SetScrollEnabled enables or disables scrolling.
func (d *Document) SetScrollEnabled(_ context.Context, enabled bool) error {
	d.mu.Lock()
	d.scrollEnabled = enabled
	d.mu.Unlock()
	return nil
}

// Snapshot is a copy of the document state for rendering.
type Snapshot struct {
	Page          string
	CanGoBack     bool
	CanGoForward  bool
	Scale         float64
	Scroll        port.ScrollEdge
	ScrollEnabled bool
}

// Snapshot returns the current state.
func (d *Document) Snapshot() Snapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return Snapshot{
		Page:          d.history[d.index],
		CanGoBack:     d.index > 0,
		CanGoForward:  d.index < len(d.history)-1,
		Scale:         d.scale,
		Scroll:        d.scroll,
		ScrollEnabled: d.scrollEnabled,
	}
}

// Close invalidates the document; later navigation fails with
// port.ErrSurfaceGone.
func (d *Document) Close() {
	d.closed.Store(true)
}
