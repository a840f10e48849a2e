package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/domain/repository"
	"github.com/bnema/floatpane/internal/logging"
)

const (
	getWindowStateQuery = `SELECT x, y, width, height, landscape FROM window_state WHERE id = 1`

	saveWindowStateQuery = `
INSERT INTO window_state (id, x, y, width, height, landscape, updated_at)
VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(id) DO UPDATE SET
    x = excluded.x,
    y = excluded.y,
    width = excluded.width,
    height = excluded.height,
    landscape = excluded.landscape,
    updated_at = excluded.updated_at`

	deleteWindowStateQuery = `DELETE FROM window_state WHERE id = 1`
)

type windowStateRepo struct {
	db *sql.DB
}

// NewWindowStateRepository creates a new SQLite-backed window state repository.
func NewWindowStateRepository(db *sql.DB) repository.WindowStateRepository {
	return &windowStateRepo{db: db}
}

func (r *windowStateRepo) Get(ctx context.Context) (*entity.Geometry, error) {
	log := logging.FromContext(ctx)
	log.Debug().Msg("getting window state")

	var (
		g         entity.Geometry
		landscape bool
	)
	err := r.db.QueryRowContext(ctx, getWindowStateQuery).Scan(&g.X, &g.Y, &g.Width, &g.Height, &landscape)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query window state: %w", err)
	}
	if landscape {
		g.Orientation = entity.OrientationLandscape
	}
	return &g, nil
}

func (r *windowStateRepo) Save(ctx context.Context, g entity.Geometry) error {
	log := logging.FromContext(ctx)
	log.Debug().Int("x", g.X).Int("y", g.Y).Int("width", g.Width).Int("height", g.Height).Msg("saving window state")

	landscape := g.Orientation == entity.OrientationLandscape
	if _, err := r.db.ExecContext(ctx, saveWindowStateQuery, g.X, g.Y, g.Width, g.Height, landscape); err != nil {
		return fmt.Errorf("save window state: %w", err)
	}
	return nil
}

func (r *windowStateRepo) Delete(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteWindowStateQuery); err != nil {
		return fmt.Errorf("delete window state: %w", err)
	}
	return nil
}
