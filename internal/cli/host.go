package cli

import (
	"context"
	"time"

	"github.com/bnema/floatpane/internal/application/usecase"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/infrastructure/viewport"
	"github.com/bnema/floatpane/internal/infrastructure/virtual"
	"github.com/bnema/floatpane/internal/ui/coordinator"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

// DefaultPages seed the virtual content history.
var DefaultPages = []string{"floatpane://welcome", "floatpane://docs", "floatpane://about"}

// VirtualHost is an overlay running on an in-memory screen.
type VirtualHost struct {
	Overlay  *coordinator.Overlay
	Frames   *mainloop.FrameQueue
	Surface  *virtual.Surface
	Document *viewport.Document
	Hints    *viewport.HintBoard
	Store    *usecase.WindowStateStore
}

// NewVirtualHost builds an overlay on a virtual screen. now drives the frame
// queue clock; nil means the wall clock. store may be nil.
func NewVirtualHost(ctx context.Context, opts coordinator.Options, store *usecase.WindowStateStore, now func() time.Time) *VirtualHost {
	h := &VirtualHost{
		Frames:   mainloop.NewFrameQueue(now),
		Surface:  virtual.NewSurface(),
		Document: viewport.NewDocument(ctx, DefaultPages...),
		Hints:    viewport.NewHintBoard(),
		Store:    store,
	}
	h.Overlay = coordinator.NewOverlay(ctx, coordinator.Deps{
		Compositor: h.Surface,
		Shapes:     h.Surface,
		Panel:      h.Surface,
		Viewport:   h.Document,
		Hints:      h.Hints,
		Store:      store,
		Scheduler:  h.Frames,
	}, opts)
	return h
}

// NewVirtualHost builds a virtual host for the configured screen with the
// configured storage.
func (a *App) NewVirtualHost(screen entity.Screen) *VirtualHost {
	return NewVirtualHost(a.ctx, a.Config.OverlayOptions(screen), a.NewStore(screen), nil)
}

// Close flushes pending state writes.
func (h *VirtualHost) Close() {
	if h.Store != nil {
		h.Store.Close()
	}
	h.Document.Close()
}
