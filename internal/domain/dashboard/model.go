package dashboard

import (
	"time"

	"dog-breeds-dashboard/internal/domain/breeds"
)

// Status del ciclo de carga de una vista.
// @Enum loading, ready, error
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// View es el estado propio de una vista del dashboard: el set de razas
// traído de la API (inmutable una vez cargado) y el filtro actual.
// Se descarta al cerrar la vista; no hay persistencia entre sesiones.
type View struct {
	ID string

	Search string
	Group  string // breeds.GroupAll = sin filtro

	Records []breeds.Breed
	Status  Status
	Error   string // texto visible cuando Status == error

	// Generation se incrementa en cada fetch emitido; solo se acepta la
	// respuesta del último.
	Generation uint64

	CreatedAt time.Time
	UpdatedAt time.Time
	LoadedAt  *time.Time
}

// Board es el modelo derivado que consume la capa de vista.
type Board struct {
	View View

	Breeds       []breeds.Breed // filtrado por Search/Group
	Summary      breeds.Summary
	Groups       []string // opciones del selector, "All" primero
	GroupCounts  []breeds.GroupCount
	HeightWeight []breeds.HeightWeight
}
