package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adhub_http_requests_total",
		Help: "Total de requisições HTTP por método, path e status.",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "adhub_http_request_duration_seconds",
		Help:    "Duração das requisições HTTP.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	reconciliationRuns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adhub_reconciliation_runs_total",
		Help: "Execuções da reconciliação de entrega por escopo.",
	}, []string{"scope"})

	retentionPurgedEntries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adhub_retention_purged_entries_total",
		Help: "Entradas de performance removidas pelo job de retenção.",
	})
)

// ObserveReconciliation conta uma execução de reconciliação (order, campaign,
// publication).
func ObserveReconciliation(scope string) {
	reconciliationRuns.WithLabelValues(scope).Inc()
}

// ObserveRetentionPurge conta entradas removidas pelo job de retenção.
func ObserveRetentionPurge(count int64) {
	retentionPurgedEntries.Add(float64(count))
}

// Handler expõe o endpoint /metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Middleware instrumenta cada requisição com contador e histograma.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			mrw := &metricsResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(mrw, r)

			httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(mrw.statusCode)).Inc()
			httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		})
	}
}

type metricsResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *metricsResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
