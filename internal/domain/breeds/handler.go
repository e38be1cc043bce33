package breeds

import (
	"encoding/json"
	"errors"
	"net/http"

	"dog-breeds-dashboard/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", searchBreedsHandler(svc))
		br.Get("/{breedID}", getBreedHandler(svc))
	})
}

// Response es una raza tal como se expone a la capa de vista.
type Response struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	BreedGroup  string `json:"breed_group,omitempty" yaml:"breed_group,omitempty"`
	BredFor     string `json:"bred_for,omitempty" yaml:"bred_for,omitempty"`
	Origin      string `json:"origin,omitempty" yaml:"origin,omitempty"`
	LifeSpan    string `json:"life_span" yaml:"life_span"`
	Temperament string `json:"temperament,omitempty" yaml:"temperament,omitempty"`
	ImageURL    string `json:"image_url,omitempty" yaml:"image_url,omitempty"`
}

// DetailResponse agrega las medidas para la vista de detalle.
type DetailResponse struct {
	Response       `yaml:",inline"`
	HeightMetric   string `json:"height_metric,omitempty" yaml:"height_metric,omitempty"`
	WeightMetric   string `json:"weight_metric,omitempty" yaml:"weight_metric,omitempty"`
	HeightImperial string `json:"height_imperial,omitempty" yaml:"height_imperial,omitempty"`
	WeightImperial string `json:"weight_imperial,omitempty" yaml:"weight_imperial,omitempty"`
}

// searchResponse es el listado filtrado con su panel de estadísticas.
type searchResponse struct {
	Search  string     `json:"search"`
	Group   string     `json:"group"`
	Groups  []string   `json:"groups"`
	Summary Summary    `json:"summary"`
	Breeds  []Response `json:"breeds"`
}

// searchBreedsHandler godoc
// @Summary Buscar razas
// @Description Trae el listado de la API externa y aplica búsqueda por nombre y filtro por grupo. Devuelve además las estadísticas del subconjunto filtrado.
// @Tags breeds
// @Produce json
// @Param search query string false "Substring del nombre (sin distinguir mayúsculas)"
// @Param group query string false "Grupo exacto; All = sin filtro"
// @Success 200 {object} searchResponse
// @Failure 502 {string} string "breed api unavailable"
// @Router /breeds [get]
func searchBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		res, err := svc.Search(r.Context(), q.Get("search"), q.Get("group"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, searchResponse{
			Search:  res.Search,
			Group:   res.Group,
			Groups:  res.Groups,
			Summary: res.Summary,
			Breeds:  ToResponses(res.Breeds),
		})
	}
}

// getBreedHandler godoc
// @Summary Detalle de una raza
// @Tags breeds
// @Produce json
// @Param breedID path string true "ID de la raza"
// @Success 200 {object} DetailResponse
// @Failure 404 {string} string "breed not found"
// @Failure 502 {string} string "breed api unavailable"
// @Router /breeds/{breedID} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Get(r.Context(), chi.URLParam(r, "breedID"))
		if err != nil {
			writeServiceError(w, r, err)
			return
		}

		writeJSON(w, http.StatusOK, ToDetailResponse(b))
	}
}

// ToResponses mapea registros a su forma JSON; lo reutiliza el módulo dashboard.
func ToResponses(items []Breed) []Response {
	out := make([]Response, 0, len(items))
	for _, b := range items {
		out = append(out, toResponse(b))
	}
	return out
}

func ToDetailResponse(b Breed) DetailResponse {
	return DetailResponse{
		Response:       toResponse(b),
		HeightMetric:   b.HeightMetric,
		WeightMetric:   b.WeightMetric,
		HeightImperial: b.HeightImperial,
		WeightImperial: b.WeightImperial,
	}
}

func toResponse(b Breed) Response {
	return Response{
		ID:          b.ID,
		Name:        b.Name,
		BreedGroup:  b.BreedGroup,
		BredFor:     b.BredFor,
		Origin:      b.Origin,
		LifeSpan:    b.LifeSpan,
		Temperament: b.Temperament,
		ImageURL:    b.ImageURL,
	}
}

// StatusFor traduce errores del dominio a status HTTP.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUpstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "internal error"
	}
	if status >= http.StatusInternalServerError {
		middleware.GetLogger(r.Context()).Error("breeds request failed", map[string]any{"error": err})
	}
	http.Error(w, msg, status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
