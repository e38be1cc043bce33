package dashboard

import "context"

type Repository interface {
	Create(ctx context.Context, v View) error
	GetByID(ctx context.Context, id string) (View, error)
	Update(ctx context.Context, v View) error
	Delete(ctx context.Context, id string) error
}
