// Package file persists the window state as a small TOML document.
package file

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/domain/repository"
	"github.com/bnema/floatpane/internal/logging"
)

const (
	dirPerm  = 0o755
	filePerm = 0o600
)

type stateDocument struct {
	Window    windowRecord `toml:"window"`
	UpdatedAt time.Time    `toml:"updated_at"`
}

type windowRecord struct {
	X         int  `toml:"x"`
	Y         int  `toml:"y"`
	Width     int  `toml:"width"`
	Height    int  `toml:"height"`
	Landscape bool `toml:"landscape"`
}

type stateRepo struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewWindowStateRepository creates a TOML-file-backed window state repository.
func NewWindowStateRepository(path string) repository.WindowStateRepository {
	return &stateRepo{path: path, now: time.Now}
}

func (r *stateRepo) Get(ctx context.Context) (*entity.Geometry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var doc stateDocument
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", r.path, err)
	}

	g := entity.Geometry{
		X:      doc.Window.X,
		Y:      doc.Window.Y,
		Width:  doc.Window.Width,
		Height: doc.Window.Height,
	}
	if doc.Window.Landscape {
		g.Orientation = entity.OrientationLandscape
	}
	logging.FromContext(ctx).Debug().Str("path", r.path).Msg("loaded window state")
	return &g, nil
}

func (r *stateRepo) Save(ctx context.Context, g entity.Geometry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc := stateDocument{
		Window: windowRecord{
			X:         g.X,
			Y:         g.Y,
			Width:     g.Width,
			Height:    g.Height,
			Landscape: g.Orientation == entity.OrientationLandscape,
		},
		UpdatedAt: r.now().UTC().Truncate(time.Second),
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), dirPerm); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), filePerm); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace state file: %w", err)
	}

	logging.FromContext(ctx).Debug().Str("path", r.path).Msg("saved window state")
	return nil
}

func (r *stateRepo) Delete(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := os.Remove(r.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete state file: %w", err)
	}
	return nil
}
