package mysql

import (
	"context"
	"errors"

	"loandesk-backend/internal/domain/application"
	"loandesk-backend/internal/domain/uow"
	"loandesk-backend/internal/domain/visit"

	"gorm.io/gorm"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Applications: &ApplicationRepository{db: tx},
		Visits:       &VisitRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, appID string, fn func(r uow.Repos, a *application.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the row up-front to prevent races
		a, err := r.Applications.GetByAppIDForUpdate(ctx, appID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return application.ErrNotFound
			}
			return err
		}
		return fn(r, a)
	})
}

func (u *GormUoW) WithinVisitTx(ctx context.Context, visitID string, fn func(r uow.Repos, v *visit.BuilderVisit) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		v, err := r.Visits.GetByVisitIDForUpdate(ctx, visitID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return visit.ErrNotFound
			}
			return err
		}
		return fn(r, v)
	})
}
