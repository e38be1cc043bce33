package memory

import (
	"context"
	"errors"
	"strings"
	"sync"

	"dog-breeds-dashboard/internal/domain/dashboard"
)

var (
	ErrViewIDRequired = errors.New("view id required")
	ErrViewExists     = errors.New("view already exists")
)

// viewRepo guarda las vistas abiertas en memoria. Se pierden al reiniciar
// el proceso; no hay persistencia entre sesiones.
type viewRepo struct {
	mu   sync.RWMutex
	byID map[string]dashboard.View
}

func NewViewRepo() dashboard.Repository {
	return &viewRepo{
		byID: make(map[string]dashboard.View),
	}
}

func (r *viewRepo) Create(ctx context.Context, v dashboard.View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return ErrViewIDRequired
	}
	if _, exists := r.byID[v.ID]; exists {
		return ErrViewExists
	}
	r.byID[v.ID] = v
	return nil
}

func (r *viewRepo) Update(ctx context.Context, v dashboard.View) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return ErrViewIDRequired
	}
	if _, exists := r.byID[v.ID]; !exists {
		return dashboard.ErrNotFound
	}
	r.byID[v.ID] = v
	return nil
}

func (r *viewRepo) GetByID(ctx context.Context, id string) (dashboard.View, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	v, ok := r.byID[id]
	if !ok {
		return dashboard.View{}, dashboard.ErrNotFound
	}
	return v, nil
}

func (r *viewRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return dashboard.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

