package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"dog-breeds-dashboard/internal/domain/breeds"

	"github.com/google/uuid"
)

var (
	ErrNotFound = errors.New("view not found")
	// ErrStaleFetch indica que la respuesta llegó después de un fetch más nuevo
	// y fue descartada.
	ErrStaleFetch = errors.New("fetch superseded by a newer one")
)

type Service struct {
	repo Repository
	src  breeds.Source
	now  func() time.Time

	// serializa el read-modify-write de Generation; el fetch corre fuera del lock
	mu sync.Mutex
}

func NewService(repo Repository, src breeds.Source) *Service {
	return &Service{
		repo: repo,
		src:  src,
		now:  time.Now,
	}
}

// Open crea una vista nueva y dispara la carga inicial del listado.
// Un fallo del fetch no es un error de Open: la vista queda en StatusError.
func (s *Service) Open(ctx context.Context) (View, error) {
	now := s.now()
	v := View{
		ID:        uuid.NewString(),
		Group:     breeds.GroupAll,
		Status:    StatusLoading,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		return View{}, err
	}
	return s.Load(ctx, v.ID)
}

// Load vuelve a traer el listado. Cada llamada toma una generación nueva; si
// mientras tanto se emitió otra, el resultado se descarta con ErrStaleFetch.
func (s *Service) Load(ctx context.Context, id string) (View, error) {
	gen, err := s.begin(ctx, id)
	if err != nil {
		return View{}, err
	}

	records, fetchErr := s.src.ListBreeds(ctx)
	return s.commit(ctx, id, gen, records, fetchErr)
}

func (s *Service) begin(ctx context.Context, id string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.get(ctx, id)
	if err != nil {
		return 0, err
	}
	v.Generation++
	v.Status = StatusLoading
	v.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, v); err != nil {
		return 0, err
	}
	return v.Generation, nil
}

func (s *Service) commit(ctx context.Context, id string, gen uint64, records []breeds.Breed, fetchErr error) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// el contexto del request pudo cancelarse durante el fetch; el commit igual debe ocurrir
	ctx = context.WithoutCancel(ctx)

	v, err := s.get(ctx, id)
	if err != nil {
		return View{}, err
	}
	if v.Generation != gen {
		return v, ErrStaleFetch
	}

	now := s.now()
	v.UpdatedAt = now
	if fetchErr != nil {
		v.Status = StatusError
		v.Error = fetchErr.Error()
	} else {
		v.Records = records
		v.Status = StatusReady
		v.Error = ""
		v.LoadedAt = &now
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return View{}, err
	}
	return v, nil
}

// SetFilter guarda búsqueda y grupo de la vista. Grupo vacío equivale a "All".
func (s *Service) SetFilter(ctx context.Context, id, search, group string) (View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.get(ctx, id)
	if err != nil {
		return View{}, err
	}

	group = strings.TrimSpace(group)
	if group == "" {
		group = breeds.GroupAll
	}
	v.Search = search
	v.Group = group
	v.UpdatedAt = s.now()

	if err := s.repo.Update(ctx, v); err != nil {
		return View{}, err
	}
	return v, nil
}

func (s *Service) Get(ctx context.Context, id string) (View, error) {
	return s.get(ctx, id)
}

// Board deriva el modelo de pantalla a partir del estado de la vista.
func (s *Service) Board(ctx context.Context, id string) (Board, error) {
	v, err := s.get(ctx, id)
	if err != nil {
		return Board{}, err
	}
	return BuildBoard(v), nil
}

// Close descarta la vista y su set de registros.
func (s *Service) Close(ctx context.Context, id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrNotFound
	}
	return s.repo.Delete(ctx, id)
}

func (s *Service) get(ctx context.Context, id string) (View, error) {
	if strings.TrimSpace(id) == "" {
		return View{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// BuildBoard es puro: mismo View => mismo Board. Los gráficos usan el
// subconjunto filtrado.
func BuildBoard(v View) Board {
	filtered := breeds.Filter(v.Records, v.Search, v.Group)
	return Board{
		View:         v,
		Breeds:       filtered,
		Summary:      breeds.Summarize(filtered),
		Groups:       append([]string{breeds.GroupAll}, breeds.Groups(v.Records)...),
		GroupCounts:  breeds.GroupCounts(filtered),
		HeightWeight: breeds.HeightWeightPairs(filtered),
	}
}
