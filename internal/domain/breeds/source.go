package breeds

import "context"

// Source es el puerto hacia la API externa de razas (solo lectura).
type Source interface {
	ListBreeds(ctx context.Context) ([]Breed, error)
	GetBreed(ctx context.Context, id string) (Breed, error)
}
