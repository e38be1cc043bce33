package breeds

// GroupAll es el valor reservado del filtro de grupo: "sin filtro".
const GroupAll = "All"

// GroupUnknown es la etiqueta usada cuando un registro no trae breed_group.
const GroupUnknown = "Unknown"

// Breed representa una raza tal como la entrega la API externa.
// Es de solo lectura: los valores numéricos (lifespan, altura, peso) se derivan
// bajo demanda con ParseRange y nunca se guardan en el registro.
type Breed struct {
	ID   string // opaco; la API lo manda como entero, lo normalizamos a string
	Name string

	BreedGroup string // "" = ausente
	BredFor    string
	Origin     string

	LifeSpan       string // texto libre, p.ej. "10 - 12 years"
	HeightMetric   string // p.ej. "46 - 56" (cm)
	WeightMetric   string // p.ej. "23 - 32" (kg)
	HeightImperial string
	WeightImperial string

	Temperament      string
	ImageURL         string
	ReferenceImageID string
}

// HasGroup indica si el registro trae breed_group.
func (b Breed) HasGroup() bool {
	return b.BreedGroup != ""
}

// Range es un rango numérico parseado desde texto libre.
type Range struct {
	Low  float64
	High float64
}

// Midpoint devuelve (Low + High) / 2.
func (r Range) Midpoint() float64 {
	return (r.Low + r.High) / 2
}

// Span es el rango de lifespan de un conjunto de registros.
type Span struct {
	Min float64 `json:"min" yaml:"min"`
	Max float64 `json:"max" yaml:"max"`
}

// GroupCount es una barra del gráfico "breeds per group".
type GroupCount struct {
	Group string `json:"group" yaml:"group"`
	Count int    `json:"count" yaml:"count"`
}

// HeightWeight es un punto del scatter altura vs peso (cm / kg).
type HeightWeight struct {
	Name   string  `json:"name" yaml:"name"`
	Height float64 `json:"height" yaml:"height"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Summary agrupa las estadísticas del panel del dashboard.
type Summary struct {
	TotalBreeds     int     `json:"total_breeds" yaml:"total_breeds"`
	AverageLifespan float64 `json:"average_lifespan" yaml:"average_lifespan"`
	LifespanRange   *Span   `json:"lifespan_range,omitempty" yaml:"lifespan_range,omitempty"` // nil = N/A
	MostCommonGroup string  `json:"most_common_group" yaml:"most_common_group"`
}
