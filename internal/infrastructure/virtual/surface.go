// Package virtual implements the overlay host ports on an in-memory screen.
// The sim and replay commands draw from it; tests read it back.
package virtual

import (
	"context"
	"fmt"
	"sync"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/logging"
)

// Surface is an in-memory overlay window.
type Surface struct {
	mu          sync.RWMutex
	open        bool
	gone        bool
	geometry    entity.Geometry
	shape       entity.Shape
	interactive bool
	updates     int
}

var (
	_ port.Compositor    = (*Surface)(nil)
	_ port.ShapeRenderer = (*Surface)(nil)
	_ port.Panel         = (*Surface)(nil)
)

// NewSurface creates a closed surface.
func NewSurface() *Surface {
	return &Surface{interactive: true}
}

// AddWindow opens the surface at geometry.
func (s *Surface) AddWindow(ctx context.Context, geometry entity.Geometry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone {
		return fmt.Errorf("add window: %w", port.ErrSurfaceGone)
	}
	if s.open {
		return fmt.Errorf("window already added")
	}
	s.open = true
	s.geometry = geometry
	logging.FromContext(ctx).Debug().
		Int("x", geometry.X).
		Int("y", geometry.Y).
		Int("width", geometry.Width).
		Int("height", geometry.Height).
		Msg("virtual window added")
	return nil
}

// UpdateWindow moves and resizes the surface.
func (s *Surface) UpdateWindow(_ context.Context, geometry entity.Geometry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone || !s.open {
		return fmt.Errorf("update window: %w", port.ErrSurfaceGone)
	}
	s.geometry = geometry
	s.updates++
	return nil
}

// RemoveWindow closes the surface.
func (s *Surface) RemoveWindow(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	logging.FromContext(ctx).Debug().Int("updates", s.updates).Msg("virtual window removed")
	return nil
}

// ApplyShape records the silhouette.
func (s *Surface) ApplyShape(_ context.Context, shape entity.Shape) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gone {
		return fmt.Errorf("apply shape: %w", port.ErrSurfaceGone)
	}
	s.shape = shape
	return nil
}

// SetInteractive toggles the panel surfaces.
func (s *Surface) SetInteractive(_ context.Context, interactive bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interactive = interactive
	return nil
}

// Invalidate simulates the host destroying the window underneath the
// overlay. Every later call fails with port.ErrSurfaceGone.
func (s *Surface) Invalidate() {
	s.mu.Lock()
	s.gone = true
	s.mu.Unlock()
}

// State is a copy of the surface for rendering.
type State struct {
	Open        bool
	Geometry    entity.Geometry
	Shape       entity.Shape
	Interactive bool
	Updates     int
}

// State returns the current surface state.
func (s *Surface) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Open:        s.open,
		Geometry:    s.geometry,
		Shape:       s.shape,
		Interactive: s.interactive,
		Updates:     s.updates,
	}
}
