// Package metrics exposes job pipeline counters on the default prometheus
// registry, served at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thumbsvc_jobs_created_total",
		Help: "Jobs accepted for processing.",
	})
	JobsSucceeded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thumbsvc_jobs_succeeded_total",
		Help: "Jobs that produced a thumbnail.",
	})
	JobsFailed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "thumbsvc_jobs_failed_total",
		Help: "Jobs that ended in failure.",
	})
	ProcessingSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "thumbsvc_processing_seconds",
		Help:    "Wall time of successful thumbnail generation.",
		Buckets: prometheus.DefBuckets,
	})
)
