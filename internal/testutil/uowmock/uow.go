package uowmock

import (
	"context"

	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/internal/domain/visit"
)

// UoW is a function-backed mock that satisfies uow.UnitOfWork. Repos holds
// the repositories handed to the callback when no override is set.
type UoW struct {
	Repos                 uow.Repos
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, appID string, fn func(r uow.Repos, a *application.Application) error) error
	WithinVisitTxFn       func(ctx context.Context, visitID string, fn func(r uow.Repos, v *visit.BuilderVisit) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return fn(m.Repos)
}

func (m *UoW) WithinApplicationTx(ctx context.Context, appID string, fn func(r uow.Repos, a *application.Application) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, appID, fn)
	}
	a, err := m.Repos.Applications.GetByAppIDForUpdate(ctx, appID)
	if err != nil {
		return err
	}
	return fn(m.Repos, a)
}

func (m *UoW) WithinVisitTx(ctx context.Context, visitID string, fn func(r uow.Repos, v *visit.BuilderVisit) error) error {
	if m.WithinVisitTxFn != nil {
		return m.WithinVisitTxFn(ctx, visitID, fn)
	}
	v, err := m.Repos.Visits.GetByVisitIDForUpdate(ctx, visitID)
	if err != nil {
		return err
	}
	return fn(m.Repos, v)
}
