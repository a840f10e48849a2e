// Package port defines application-layer interfaces for external capabilities.
// Ports abstract the host window system and the embedded content, allowing
// the overlay core to remain independent of specific implementations
// (X11, terminal, a real browsing engine).
package port

import (
	"context"
	"errors"

	"github.com/bnema/floatpane/internal/domain/entity"
)

// ErrSurfaceGone is returned (possibly wrapped) by hosts whose window
// surface has been invalidated. The overlay never retries after it.
var ErrSurfaceGone = errors.New("host surface is gone")

// Compositor places the overlay window above all other content.
type Compositor interface {
	// AddWindow creates the overlay window at the given geometry.
	AddWindow(ctx context.Context, geometry entity.Geometry) error

	// UpdateWindow moves and resizes the overlay window.
	UpdateWindow(ctx context.Context, geometry entity.Geometry) error

	// RemoveWindow destroys the overlay window.
	RemoveWindow(ctx context.Context) error
}

// ShapeRenderer draws the overlay silhouette (corner radii, content fade).
type ShapeRenderer interface {
	ApplyShape(ctx context.Context, shape entity.Shape) error
}

// Panel toggles the overlay's interactive surfaces (content, title bar
// buttons, resize handle). Disabled surfaces leave the click-vs-drag path
// as the only way to interact with the window.
type Panel interface {
	SetInteractive(ctx context.Context, interactive bool) error
}
