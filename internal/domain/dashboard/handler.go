package dashboard

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"dog-breeds-dashboard/internal/domain/breeds"
	"dog-breeds-dashboard/internal/middleware"
	"dog-breeds-dashboard/internal/platform/charts"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/views", func(vr chi.Router) {
		vr.Post("/", openViewHandler(svc))

		vr.Route("/{viewID}", func(one chi.Router) {
			one.Get("/", getViewHandler(svc))
			one.Delete("/", closeViewHandler(svc))
			one.Patch("/filter", setFilterHandler(svc))
			one.Post("/reload", reloadViewHandler(svc))

			one.Get("/charts/groups.png", groupsChartHandler(svc))
			one.Get("/charts/height-weight.png", heightWeightChartHandler(svc))
		})
	})
}

type setFilterRequest struct {
	Search string `json:"search"`
	Group  string `json:"group"` // vacío o "All" = sin filtro
}

// boardResponse es el dashboard completo de una vista.
type boardResponse struct {
	ID         string     `json:"id"`
	Status     Status     `json:"status" enums:"loading,ready,error"`
	Error      string     `json:"error,omitempty"`
	Search     string     `json:"search"`
	Group      string     `json:"group"`
	Generation uint64     `json:"generation"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	LoadedAt   *time.Time `json:"loaded_at,omitempty"`

	TotalRecords int                   `json:"total_records"` // sin filtrar
	Groups       []string              `json:"groups"`
	Summary      breeds.Summary        `json:"summary"`
	Breeds       []breeds.Response     `json:"breeds"`
	GroupCounts  []breeds.GroupCount   `json:"group_counts"`
	HeightWeight []breeds.HeightWeight `json:"height_weight"`
}

// openViewHandler godoc
// @Summary Abrir una vista del dashboard
// @Description Crea una vista y trae el listado de razas una vez. Si la API externa falla la vista queda con status=error y el texto del error.
// @Tags views
// @Produce json
// @Success 201 {object} boardResponse
// @Router /views [post]
func openViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Open(r.Context())
		if err != nil {
			writeViewError(w, r, err)
			return
		}
		logLoad(r, v)
		writeJSON(w, http.StatusCreated, toBoardResponse(BuildBoard(v)))
	}
}

// getViewHandler godoc
// @Summary Dashboard de una vista
// @Tags views
// @Produce json
// @Param viewID path string true "ID de la vista"
// @Success 200 {object} boardResponse
// @Failure 404 {string} string "view not found"
// @Router /views/{viewID} [get]
func getViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Board(r.Context(), chi.URLParam(r, "viewID"))
		if err != nil {
			writeViewError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBoardResponse(b))
	}
}

// setFilterHandler godoc
// @Summary Cambiar búsqueda / grupo
// @Tags views
// @Accept json
// @Produce json
// @Param viewID path string true "ID de la vista"
// @Param payload body setFilterRequest true "Filtro"
// @Success 200 {object} boardResponse
// @Failure 400 {string} string "invalid json"
// @Failure 404 {string} string "view not found"
// @Router /views/{viewID}/filter [patch]
func setFilterHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req setFilterRequest
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.SetFilter(r.Context(), chi.URLParam(r, "viewID"), req.Search, req.Group)
		if err != nil {
			writeViewError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toBoardResponse(BuildBoard(v)))
	}
}

// reloadViewHandler godoc
// @Summary Volver a traer el listado
// @Tags views
// @Produce json
// @Param viewID path string true "ID de la vista"
// @Success 200 {object} boardResponse
// @Failure 404 {string} string "view not found"
// @Failure 409 {string} string "fetch superseded by a newer one"
// @Router /views/{viewID}/reload [post]
func reloadViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.Load(r.Context(), chi.URLParam(r, "viewID"))
		if err != nil {
			writeViewError(w, r, err)
			return
		}
		logLoad(r, v)
		writeJSON(w, http.StatusOK, toBoardResponse(BuildBoard(v)))
	}
}

// closeViewHandler godoc
// @Summary Cerrar una vista
// @Tags views
// @Param viewID path string true "ID de la vista"
// @Success 204
// @Failure 404 {string} string "view not found"
// @Router /views/{viewID} [delete]
func closeViewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Close(r.Context(), chi.URLParam(r, "viewID")); err != nil {
			writeViewError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// groupsChartHandler godoc
// @Summary Gráfico de razas por grupo (top 10)
// @Tags views
// @Produce png
// @Param viewID path string true "ID de la vista"
// @Param width query int false "Ancho en px"
// @Param height query int false "Alto en px"
// @Success 200 {file} binary
// @Failure 404 {string} string "view not found / not enough data"
// @Router /views/{viewID}/charts/groups.png [get]
func groupsChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Board(r.Context(), chi.URLParam(r, "viewID"))
		if err != nil {
			writeViewError(w, r, err)
			return
		}

		opts := chartOptions(r, "Breeds per Group (Top 10)")
		opts.YName = "Breeds"

		var buf bytes.Buffer
		if err := charts.BarPNG(&buf, GroupBars(b.GroupCounts), opts); err != nil {
			writeChartError(w, r, err)
			return
		}
		writePNG(w, buf.Bytes())
	}
}

// heightWeightChartHandler godoc
// @Summary Scatter altura vs peso
// @Tags views
// @Produce png
// @Param viewID path string true "ID de la vista"
// @Param width query int false "Ancho en px"
// @Param height query int false "Alto en px"
// @Success 200 {file} binary
// @Failure 404 {string} string "view not found / not enough data"
// @Router /views/{viewID}/charts/height-weight.png [get]
func heightWeightChartHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b, err := svc.Board(r.Context(), chi.URLParam(r, "viewID"))
		if err != nil {
			writeViewError(w, r, err)
			return
		}

		opts := chartOptions(r, "Height vs Weight")
		opts.XName = "Weight (kg)"
		opts.YName = "Height (cm)"

		var buf bytes.Buffer
		if err := charts.ScatterPNG(&buf, "Breeds", HeightWeightPoints(b.HeightWeight), opts); err != nil {
			writeChartError(w, r, err)
			return
		}
		writePNG(w, buf.Bytes())
	}
}

// GroupBars adapta los conteos al formato del renderer.
func GroupBars(counts []breeds.GroupCount) []charts.Bar {
	out := make([]charts.Bar, 0, len(counts))
	for _, c := range counts {
		out = append(out, charts.Bar{Label: c.Group, Value: float64(c.Count)})
	}
	return out
}

// HeightWeightPoints usa peso en X y altura en Y.
func HeightWeightPoints(pairs []breeds.HeightWeight) []charts.Point {
	out := make([]charts.Point, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, charts.Point{X: p.Weight, Y: p.Height})
	}
	return out
}

func chartOptions(r *http.Request, title string) charts.Options {
	opts := charts.Options{Title: title}
	if v, err := strconv.Atoi(r.URL.Query().Get("width")); err == nil && v > 0 && v <= 4000 {
		opts.Width = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("height")); err == nil && v > 0 && v <= 4000 {
		opts.Height = v
	}
	return opts
}

func logLoad(r *http.Request, v View) {
	log := middleware.GetLogger(r.Context()).With(map[string]any{"view_id": v.ID, "generation": v.Generation})
	if v.Status == StatusError {
		log.Warn("view load failed", map[string]any{"error": v.Error})
		return
	}
	log.Info("view loaded", map[string]any{"records": len(v.Records)})
}

func toBoardResponse(b Board) boardResponse {
	v := b.View
	return boardResponse{
		ID:           v.ID,
		Status:       v.Status,
		Error:        v.Error,
		Search:       v.Search,
		Group:        v.Group,
		Generation:   v.Generation,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
		LoadedAt:     v.LoadedAt,
		TotalRecords: len(v.Records),
		Groups:       b.Groups,
		Summary:      b.Summary,
		Breeds:       breeds.ToResponses(b.Breeds),
		GroupCounts:  b.GroupCounts,
		HeightWeight: b.HeightWeight,
	}
}

func writeViewError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		http.Error(w, "view not found", http.StatusNotFound)
	case errors.Is(err, ErrStaleFetch):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		middleware.GetLogger(r.Context()).Error("view request failed", map[string]any{"error": err})
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeChartError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, charts.ErrNoData) {
		http.Error(w, "not enough data", http.StatusNotFound)
		return
	}
	middleware.GetLogger(r.Context()).Error("chart render failed", map[string]any{"error": err})
	http.Error(w, "chart render failed", http.StatusInternalServerError)
}

func writePNG(w http.ResponseWriter, b []byte) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(b)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
