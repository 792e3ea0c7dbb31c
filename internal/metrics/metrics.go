package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds all Prometheus metrics for the analytics pipeline
type Metrics struct {
	PipelineRuns   *prometheus.CounterVec
	RunDuration    *prometheus.HistogramVec
	PostsProcessed *prometheus.GaugeVec
	ArtifactWrites *prometheus.CounterVec
}
