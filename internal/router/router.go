package router

import (
	"net/http"

	mem "dog-breeds-dashboard/internal/adapters/storage/memory"
	_ "dog-breeds-dashboard/internal/docs"
	"dog-breeds-dashboard/internal/domain/breeds"
	"dog-breeds-dashboard/internal/domain/dashboard"
	"dog-breeds-dashboard/internal/middleware"
	"dog-breeds-dashboard/internal/platform/logger"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Source es la API de razas (obligatoria).
	Source breeds.Source

	// Opcional: si viene nil se usa el repo in-memory.
	Views dashboard.Repository

	Logger        logger.Logger // opcional
	EnableSwagger bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if opts.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	views := opts.Views
	if views == nil {
		views = mem.NewViewRepo()
	}

	// Services por módulo
	breedsSvc := breeds.NewService(opts.Source)
	dashboardSvc := dashboard.NewService(views, opts.Source)

	// Rutas por módulo
	breeds.RegisterRoutes(r, breedsSvc)
	dashboard.RegisterRoutes(r, dashboardSvc)

	return r
}
