package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/floatpane/internal/application/port"
	"github.com/bnema/floatpane/internal/domain/entity"
	"github.com/bnema/floatpane/internal/domain/repository"
)

// LazyWindowStateRepository wraps the window state repository with lazy
// database initialization.
type LazyWindowStateRepository struct {
	provider port.DatabaseProvider
	repo     repository.WindowStateRepository
	once     sync.Once
	initErr  error
}

// NewLazyWindowStateRepository creates a lazy-loading window state repository.
func NewLazyWindowStateRepository(provider port.DatabaseProvider) repository.WindowStateRepository {
	return &LazyWindowStateRepository{provider: provider}
}

func (r *LazyWindowStateRepository) init(ctx context.Context) error {
	r.once.Do(func() {
		db, err := r.provider.DB(ctx)
		if err != nil {
			r.initErr = err
			return
		}
		r.repo = NewWindowStateRepository(db)
	})
	return r.initErr
}

func (r *LazyWindowStateRepository) Get(ctx context.Context) (*entity.Geometry, error) {
	if err := r.init(ctx); err != nil {
		return nil, err
	}
	return r.repo.Get(ctx)
}

func (r *LazyWindowStateRepository) Save(ctx context.Context, g entity.Geometry) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Save(ctx, g)
}

func (r *LazyWindowStateRepository) Delete(ctx context.Context) error {
	if err := r.init(ctx); err != nil {
		return err
	}
	return r.repo.Delete(ctx)
}
