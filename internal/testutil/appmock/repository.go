package appmock

import (
	"context"

	domain "loandesk-backend/internal/domain/application"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn              func(ctx context.Context, a *domain.Application) error
	GetByAppIDFn          func(ctx context.Context, appID string) (*domain.Application, error)
	GetByAppIDForUpdateFn func(ctx context.Context, appID string) (*domain.Application, error)
	ListFn                func(ctx context.Context) ([]domain.Application, error)
	ListBySalesFn         func(ctx context.Context, sales string) ([]domain.Application, error)
	SaveFn                func(ctx context.Context, a *domain.Application) error
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByAppID(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDFn != nil {
		return m.GetByAppIDFn(ctx, appID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByAppIDForUpdate(ctx context.Context, appID string) (*domain.Application, error) {
	if m.GetByAppIDForUpdateFn != nil {
		return m.GetByAppIDForUpdateFn(ctx, appID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListBySales(ctx context.Context, sales string) ([]domain.Application, error) {
	if m.ListBySalesFn != nil {
		return m.ListBySalesFn(ctx, sales)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}
