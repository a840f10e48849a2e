// Package repository defines persistence interfaces for domain entities.
package repository

import (
	"context"

	"github.com/bnema/floatpane/internal/domain/entity"
)

// WindowStateRepository persists the overlay's settled geometry as a single
// flat record: x, y, width, height and orientation.
type WindowStateRepository interface {
	// Get retrieves the stored geometry.
	// Returns nil if nothing is stored.
	Get(ctx context.Context) (*entity.Geometry, error)

	// Save replaces the stored geometry.
	Save(ctx context.Context, geometry entity.Geometry) error

	// Delete removes the stored geometry.
	Delete(ctx context.Context) error
}
