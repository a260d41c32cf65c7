package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	TemplateLookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contentgenius_template_lookups_total",
		Help: "Template lookups by the source that answered them (store, builtin, miss).",
	}, []string{"source"})

	TemplateStoreErrorsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contentgenius_template_store_errors_total",
		Help: "Template store queries that failed and fell back to built-in templates.",
	})

	GenerationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "contentgenius_generations_total",
		Help: "Generation attempts by upstream model and outcome.",
	}, []string{"model", "outcome"})

	UpstreamDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "contentgenius_upstream_request_duration_seconds",
		Help:    "Latency of calls to the generation provider.",
		Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
	}, []string{"endpoint"})

	ModelCatalogFallbacksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "contentgenius_model_catalog_fallbacks_total",
		Help: "Model listings served from the static catalog because the provider call failed.",
	})
)
