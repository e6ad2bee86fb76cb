package observability

import (
	"net/http"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SubmitResponsesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autopilot_submit_responses_total",
			Help: "Respostas do POST /v1/autopilots por desfecho",
		},
		[]string{"outcome"},
	)

	OverridesDroppedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "autopilot_overrides_dropped_total",
			Help: "Linhas da planilha descartadas por não conterem instrução",
		},
	)

	OverridesRemovedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "autopilot_overrides_removed_total",
			Help: "Registros removidos do lote após rejeição do artigo pela API",
		},
	)

	SyncRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "autopilot_sync_runs_total",
			Help: "Execuções dos fluxos de sincronização por resultado",
		},
		[]string{"job", "result"},
	)

	SyncDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "autopilot_sync_duration_seconds",
			Help:    "Duração das execuções dos fluxos de sincronização",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
		[]string{"job"},
	)

	registerOnce sync.Once
)

// Register registra os coletores no registry padrão. Pode ser chamado mais de uma vez.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			SubmitResponsesTotal,
			OverridesDroppedTotal,
			OverridesRemovedTotal,
			SyncRunsTotal,
			SyncDuration,
		)
	})
}

// Handler expõe as métricas no formato do Prometheus
func Handler() http.Handler {
	Register()
	return promhttp.Handler()
}

// ObserveRun registra o resultado e a duração de uma execução
func ObserveRun(job string, seconds float64, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	SyncRunsTotal.WithLabelValues(job, result).Inc()
	SyncDuration.WithLabelValues(job).Observe(seconds)
}
