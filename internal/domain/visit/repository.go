package visit

import "context"

type Repository interface {
	Create(ctx context.Context, v *BuilderVisit) error
	GetByVisitID(ctx context.Context, visitID string) (*BuilderVisit, error)
	GetByVisitIDForUpdate(ctx context.Context, visitID string) (*BuilderVisit, error)
	List(ctx context.Context) ([]BuilderVisit, error)
	Save(ctx context.Context, v *BuilderVisit) error
}
