package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByAppID(ctx context.Context, appID string) (*Application, error)
	GetByAppIDForUpdate(ctx context.Context, appID string) (*Application, error)
	List(ctx context.Context) ([]Application, error)
	ListBySales(ctx context.Context, sales string) ([]Application, error)
	Save(ctx context.Context, a *Application) error
}
