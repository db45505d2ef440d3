package visitmock

import (
	"context"

	domain "loandesk-backend/internal/domain/visit"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                func(ctx context.Context, v *domain.BuilderVisit) error
	GetByVisitIDFn          func(ctx context.Context, visitID string) (*domain.BuilderVisit, error)
	GetByVisitIDForUpdateFn func(ctx context.Context, visitID string) (*domain.BuilderVisit, error)
	ListFn                  func(ctx context.Context) ([]domain.BuilderVisit, error)
	SaveFn                  func(ctx context.Context, v *domain.BuilderVisit) error
}

func (m *Repo) Create(ctx context.Context, v *domain.BuilderVisit) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}

func (m *Repo) GetByVisitID(ctx context.Context, visitID string) (*domain.BuilderVisit, error) {
	if m.GetByVisitIDFn != nil {
		return m.GetByVisitIDFn(ctx, visitID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByVisitIDForUpdate(ctx context.Context, visitID string) (*domain.BuilderVisit, error) {
	if m.GetByVisitIDForUpdateFn != nil {
		return m.GetByVisitIDForUpdateFn(ctx, visitID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) List(ctx context.Context) ([]domain.BuilderVisit, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) Save(ctx context.Context, v *domain.BuilderVisit) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, v)
	}
	return nil
}
