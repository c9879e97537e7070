package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residencial_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "residencial_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	exportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residencial_exports_total",
		Help: "Count of export files by format and result",
	}, []string{"format", "result"})

	reportsGenerated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residencial_reports_generated_total",
		Help: "Count of aggregated reports by kind",
	}, []string{"kind"})

	statusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "residencial_status_transitions_total",
		Help: "Count of status changes by entity and target status",
	}, []string{"entity", "status"})

	reservationConflicts = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "residencial_reservation_conflict_dates",
		Help: "Number of dates with conflicting approved reservations at last calendar projection",
	})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// ObserveExport counts a delimited or plain-text export; result is delivered, skipped or failed.
func ObserveExport(format, result string) {
	exportsTotal.WithLabelValues(format, result).Inc()
}

func ObserveReport(kind string) {
	reportsGenerated.WithLabelValues(kind).Inc()
}

func ObserveStatusTransition(entity, status string) {
	statusTransitions.WithLabelValues(entity, status).Inc()
}

func SetConflictDates(count int) {
	if count < 0 {
		count = 0
	}
	reservationConflicts.Set(float64(count))
}
