package breeds

import (
	"context"
	"errors"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("breed not found")
	ErrUpstream     = errors.New("breed api unavailable")
)

type Service struct {
	src Source
}

func NewService(src Source) *Service {
	return &Service{src: src}
}

// Result es la respuesta de una búsqueda puntual (sin vista).
type Result struct {
	Search  string
	Group   string
	Breeds  []Breed
	Summary Summary
	Groups  []string
}

func (s *Service) List(ctx context.Context) ([]Breed, error) {
	return s.src.ListBreeds(ctx)
}

func (s *Service) Get(ctx context.Context, id string) (Breed, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Breed{}, ErrInvalidInput
	}
	return s.src.GetBreed(ctx, id)
}

// Search trae el listado completo y aplica filtro + estadísticas en una sola llamada.
func (s *Service) Search(ctx context.Context, search, group string) (Result, error) {
	all, err := s.src.ListBreeds(ctx)
	if err != nil {
		return Result{}, err
	}
	if strings.TrimSpace(group) == "" {
		group = GroupAll
	}

	filtered := Filter(all, search, group)
	return Result{
		Search:  search,
		Group:   group,
		Breeds:  filtered,
		Summary: Summarize(filtered),
		Groups:  append([]string{GroupAll}, Groups(all)...),
	}, nil
}
