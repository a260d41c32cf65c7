package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	_ "github.com/joestump/content-genius/docs/swagger"
	"github.com/joestump/content-genius/internal/api"
)

// Deps holds all dependencies required to build the HTTP router.
type Deps struct {
	API            api.Deps
	AllowedOrigins []string
	Log            *zap.Logger
}

// NewRouter assembles the full chi router with all middleware and routes.
func NewRouter(deps Deps) http.Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	// Standard middleware
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(CORS(deps.AllowedOrigins))

	r.Get("/healthz", Health)
	r.Handle("/metrics", promhttp.Handler())

	// Swagger UI must be registered before the /api mount claims the prefix.
	r.Get("/api/docs/*", httpSwagger.WrapHandler)

	if deps.API.Log == nil {
		deps.API.Log = log
	}
	r.Mount("/api", api.NewAPIRouter(deps.API))

	return r
}

// Health reports liveness.
func Health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
