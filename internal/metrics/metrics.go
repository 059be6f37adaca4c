package metrics

import (
	"net/http"

	"invoice-dashboard/internal/usecase/shared"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "invoice_dashboard"

// Recorder counts action outcomes and view cache lookups.
type Recorder struct {
	registry   *prometheus.Registry
	mutations  *prometheus.CounterVec
	signIns    *prometheus.CounterVec
	cacheHits  *prometheus.CounterVec
	cacheMisses *prometheus.CounterVec
}

var _ shared.ActionMetrics = (*Recorder)(nil)

func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return registry
}

func NewRecorder(registry *prometheus.Registry) *Recorder {
	factory := promauto.With(registry)
	return &Recorder{
		registry: registry,
		mutations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "invoice_mutations_total",
				Help:      "Invoice form actions by action and outcome",
			},
			[]string{"action", "outcome"},
		),
		signIns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "sign_ins_total",
				Help:      "Credential sign-in attempts by outcome",
			},
			[]string{"outcome"},
		),
		cacheHits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_cache_hits_total",
				Help:      "Cached view renders served",
			},
			[]string{"path"},
		),
		cacheMisses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "view_cache_misses_total",
				Help:      "View renders produced without a cached copy",
			},
			[]string{"path"},
		),
	}
}

func (r *Recorder) ObserveMutation(action, outcome string) {
	r.mutations.WithLabelValues(action, outcome).Inc()
}

func (r *Recorder) ObserveSignIn(outcome string) {
	r.signIns.WithLabelValues(outcome).Inc()
}

func (r *Recorder) ObserveViewCache(path string, hit bool) {
	if hit {
		r.cacheHits.WithLabelValues(path).Inc()
		return
	}
	r.cacheMisses.WithLabelValues(path).Inc()
}

func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
