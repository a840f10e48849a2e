// Package usecase contains application use cases that orchestrate domain logic.
package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/domain/repository"
	"github.com/bnema/floatpane/internal/logging"
	"github.com/bnema/floatpane/internal/ui/mainloop"
)

const (
	// DefaultWidthRatio and DefaultHeightRatio size the default geometry
	// relative to the screen.
	DefaultWidthRatio  = 0.9
	DefaultHeightRatio = 0.6

	geometryKey      = "geometry"
	writeQueueLength = 16
)

// DefaultLayout describes the geometry used when nothing usable is stored.
type DefaultLayout struct {
	WidthRatio  float64
	HeightRatio float64
	Limits      entity.Limits
}

// WindowStateStore loads and persists the overlay's settled geometry.
// Saves are fire-and-forget: they are coalesced (latest wins) and written
// by a single background writer, never on the caller's goroutine.
type WindowStateStore struct {
	repo   repository.WindowStateRepository
	layout DefaultLayout

	ctx       context.Context
	coalescer *mainloop.Coalescer[string]

	mu     sync.Mutex
	closed bool
	writes chan func()
	done   chan struct{}
}

// NewWindowStateStore creates the store and starts its writer.
func NewWindowStateStore(ctx context.Context, repo repository.WindowStateRepository, layout DefaultLayout) *WindowStateStore {
	if layout.WidthRatio <= 0 || layout.WidthRatio > 1 {
		layout.WidthRatio = DefaultWidthRatio
	}
	if layout.HeightRatio <= 0 || layout.HeightRatio > 1 {
		layout.HeightRatio = DefaultHeightRatio
	}

	s := &WindowStateStore{
		repo:   repo,
		layout: layout,
		ctx:    logging.WithComponent(ctx, "window-state"),
		writes: make(chan func(), writeQueueLength),
		done:   make(chan struct{}),
	}
	s.coalescer = mainloop.NewCoalescer[string](s.enqueue)
	go s.run()
	return s
}

func (s *WindowStateStore) run() {
	defer close(s.done)
	for fn := range s.writes {
		fn()
	}
}

func (s *WindowStateStore) enqueue(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.writes <- fn
}

// Default returns the screen-ratio geometry: centered horizontally, at a
// third of the remaining height.
func (s *WindowStateStore) Default(screen entity.Screen) entity.Geometry {
	return entity.DefaultGeometry(screen, s.layout.WidthRatio, s.layout.HeightRatio, s.layout.Limits)
}

// Load returns the stored geometry clamped to screen, or the default when
// nothing usable is stored. It never fails.
func (s *WindowStateStore) Load(ctx context.Context, screen entity.Screen) entity.Geometry {
	log := logging.FromContext(ctx)

	stored, err := s.repo.Get(ctx)
	switch {
	case err != nil:
		log.Warn().Err(err).Msg("failed to load window state, using default geometry")
		return s.Default(screen)
	case stored == nil:
		log.Debug().Msg("no stored window state, using default geometry")
		return s.Default(screen)
	case stored.IsZero():
		log.Warn().Int("width", stored.Width).Int("height", stored.Height).Msg("malformed window state, using default geometry")
		return s.Default(screen)
	case stored.Orientation != screen.Orientation():
		log.Debug().
			Str("stored", stored.Orientation.String()).
			Str("screen", screen.Orientation().String()).
			Msg("stored window state is for another orientation, using default geometry")
		return s.Default(screen)
	}

	g := entity.ClampSize(*stored, screen, s.layout.Limits)
	g = entity.ClampPosition(g, screen)
	log.Debug().
		Int("x", g.X).
		Int("y", g.Y).
		Int("width", g.Width).
		Int("height", g.Height).
		Msg("window state loaded")
	return g
}

// Save schedules a write of g. Bursts collapse to the latest geometry.
func (s *WindowStateStore) Save(g entity.Geometry) {
	if g.IsZero() {
		return
	}
	s.coalescer.Post(geometryKey, func() {
		log := logging.FromContext(s.ctx)
		if err := s.repo.Save(s.ctx, g); err != nil {
			log.Warn().Err(err).Msg("failed to save window state")
			return
		}
		log.Debug().Int("x", g.X).Int("y", g.Y).Int("width", g.Width).Int("height", g.Height).Msg("window state saved")
	})
}

// Reset deletes the stored geometry. Pending saves run before the delete.
func (s *WindowStateStore) Reset(ctx context.Context) error {
	s.Flush()
	if err := s.repo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to reset window state: %w", err)
	}
	logging.FromContext(ctx).Info().Msg("window state reset")
	return nil
}

// Flush blocks until every write queued so far has run.
func (s *WindowStateStore) Flush() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	barrier := make(chan struct{})
	s.writes <- func() { close(barrier) }
	s.mu.Unlock()
	<-barrier
}

// Close flushes pending writes and stops the writer.
func (s *WindowStateStore) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	close(s.writes)
	s.mu.Unlock()

	<-s.done
	s.coalescer.Destroy()
}
