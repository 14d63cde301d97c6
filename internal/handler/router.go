package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/joestump/joe-jokes/docs/swagger"
	"github.com/joestump/joe-jokes/internal/api"
	"github.com/joestump/joe-jokes/internal/logging"
	"github.com/joestump/joe-jokes/internal/metrics"
	"github.com/joestump/joe-jokes/internal/store"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	Logger    zerolog.Logger
	JokeStore store.JokeStoreIface
	MasterKey string
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	// Standard middleware
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer)
	r.Use(metrics.Instrument)

	health := NewHealthHandler(deps.JokeStore)
	r.Get("/healthz", health.Check)

	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI, no key required.
	r.Get("/docs/*", httpSwagger.WrapHandler)

	r.Mount("/", api.NewAPIRouter(api.Deps{
		JokeStore: deps.JokeStore,
		MasterKey: deps.MasterKey,
	}))

	return r
}
