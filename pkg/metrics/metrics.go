package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	MQConsumeLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mq_consume_latency_ms",
			Help:    "MQ message consumption latency in milliseconds",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10), // 10ms to ~10s
		},
		[]string{"routing_key", "queue"},
	)

	StatsComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stats_compute_duration_seconds",
			Help:    "Time spent computing production statistics",
			Buckets: prometheus.ExponentialBuckets(0.0001, 2, 12),
		},
	)

	ProjectMutationCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_mutation_count",
			Help: "Total number of project mutations",
		},
		[]string{"section", "op"}, // op: create, update, delete
	)

	ExportCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "export_count",
			Help: "Total number of section exports",
		},
		[]string{"section"},
	)

	OverdueMilestones = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "overdue_milestones",
			Help: "Current number of overdue milestones per project",
		},
		[]string{"project_id"},
	)
)

// ObserveHTTPRequest records one HTTP request duration sample.
func ObserveHTTPRequest(method, path, status string, d time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(d.Seconds())
}

// ObserveMQConsume records one MQ consumption latency sample.
func ObserveMQConsume(routingKey, queue string, d time.Duration) {
	MQConsumeLatency.WithLabelValues(routingKey, queue).Observe(float64(d.Milliseconds()))
}
