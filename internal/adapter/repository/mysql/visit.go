package mysql

import (
	"context"

	visitDomain "loandesk-backend/internal/domain/visit"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VisitRepository struct{ db *gorm.DB }

func NewVisitRepository(db *gorm.DB) *VisitRepository { return &VisitRepository{db: db} }

func (r *VisitRepository) Create(ctx context.Context, v *visitDomain.BuilderVisit) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VisitRepository) Save(ctx context.Context, v *visitDomain.BuilderVisit) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VisitRepository) GetByVisitID(ctx context.Context, visitID string) (*visitDomain.BuilderVisit, error) {
	var out visitDomain.BuilderVisit
	res := r.db.WithContext(ctx).Where("visit_id = ?", visitID).First(&out)
	return &out, res.Error
}

func (r *VisitRepository) GetByVisitIDForUpdate(ctx context.Context, visitID string) (*visitDomain.BuilderVisit, error) {
	var out visitDomain.BuilderVisit
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("visit_id = ?", visitID).
		First(&out)
	return &out, res.Error
}

func (r *VisitRepository) List(ctx context.Context) ([]visitDomain.BuilderVisit, error) {
	var out []visitDomain.BuilderVisit
	res := r.db.WithContext(ctx).Order("id DESC").Find(&out)
	return out, res.Error
}
