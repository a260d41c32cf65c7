package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/llm"
	"github.com/joestump/content-genius/internal/store"
)

// TemplateAccessor resolves templates with fallback semantics.
type TemplateAccessor interface {
	List(ctx context.Context) []*store.Template
	Get(ctx context.Context, id string) (*store.Template, bool)
}

// Deps holds all dependencies required to build the API router.
type Deps struct {
	Templates TemplateAccessor
	Generator llm.Generator
	Catalog   llm.Catalog
	// StrictErrors reports generation failures as 502 failure envelopes
	// instead of success envelopes whose content is the error text.
	StrictErrors bool
	Log          *zap.Logger
}

// NewAPIRouter creates the chi sub-router mounted at /api.
// Every response, including recovered panics, is a JSON envelope.
func NewAPIRouter(deps Deps) chi.Router {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()
	r.Use(jsonContentType)
	r.Use(recoverEnvelope(log))

	templates := &templatesAPIHandler{templates: deps.Templates}
	models := &modelsAPIHandler{catalog: deps.Catalog}
	generate := &generateAPIHandler{
		templates: deps.Templates,
		generator: deps.Generator,
		strict:    deps.StrictErrors,
		log:       log,
	}

	r.Get("/templates", templates.List)
	r.Get("/models", models.List)
	r.Post("/generate", generate.Generate)

	return r
}

// jsonContentType is a middleware that sets Content-Type: application/json on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

// recoverEnvelope turns a panic in a handler into a 500 failure envelope.
func recoverEnvelope(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("api: handler panic",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
					zap.Stack("stack"))
				writeError(w, http.StatusInternalServerError, fmt.Sprint(rec))
			}()
			next.ServeHTTP(w, r)
		})
	}
}
