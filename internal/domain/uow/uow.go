package uow

import (
	"context"

	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/visit"
)

type Repos struct {
	Applications application.Repository
	Visits       visit.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, appID string, fn func(r Repos, a *application.Application) error) error
	// same, for a builder visit row
	WithinVisitTx(ctx context.Context, visitID string, fn func(r Repos, v *visit.BuilderVisit) error) error
}
