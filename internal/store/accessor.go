package store

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/joestump/content-genius/internal/metrics"
)

// Accessor serves templates from the store with the built-in templates as a
// fallback. The store is optional: a nil store serves built-ins only.
//
// A store error and a missing row both fall through to the built-ins. An id
// unknown to both is reported as absent, never as an error.
type Accessor struct {
	store TemplateStoreIface
	log   *zap.Logger
}

// NewAccessor layers the built-in templates over s. s may be nil.
func NewAccessor(s TemplateStoreIface, log *zap.Logger) *Accessor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Accessor{store: s, log: log}
}

// List returns all templates in the store, or the built-ins if the store
// is unavailable.
func (a *Accessor) List(ctx context.Context) []*Template {
	if a.store == nil {
		return builtinTemplates()
	}
	templates, err := a.store.ListAll(ctx)
	if err != nil {
		metrics.TemplateStoreErrorsTotal.Inc()
		a.log.Warn("template store list failed, serving built-in templates", zap.Error(err))
		return builtinTemplates()
	}
	if templates == nil {
		templates = []*Template{}
	}
	return templates
}

// Get resolves id against the store, then the built-ins.
func (a *Accessor) Get(ctx context.Context, id string) (*Template, bool) {
	if a.store != nil {
		t, err := a.store.GetByID(ctx, id)
		switch {
		case err == nil:
			metrics.TemplateLookupsTotal.WithLabelValues("store").Inc()
			return t, true
		case errors.Is(err, ErrNotFound):
			a.log.Debug("template not in store", zap.String("template_id", id))
		default:
			metrics.TemplateStoreErrorsTotal.Inc()
			a.log.Warn("template store lookup failed", zap.String("template_id", id), zap.Error(err))
		}
	}

	if t, ok := builtinByID(id); ok {
		metrics.TemplateLookupsTotal.WithLabelValues("builtin").Inc()
		return t, true
	}
	metrics.TemplateLookupsTotal.WithLabelValues("miss").Inc()
	return nil, false
}
