package batch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// tasksTotal counts finished tasks by backend and result.
	tasksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anyangle_batch_tasks_total",
		Help: "Total batch search tasks by backend and result",
	}, []string{"backend", "result"}) // result: "found" or "unreachable"

	// runDuration tracks wall-clock time of whole batch runs.
	runDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "anyangle_batch_duration_seconds",
		Help:    "Batch run duration in seconds",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14), // 0.5ms to ~4s
	}, []string{"backend"})

	// runErrors counts runs rejected or aborted by an error.
	runErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "anyangle_batch_errors_total",
		Help: "Total batch runs that returned an error",
	}, []string{"backend"})

	// expandedNodes tracks nodes closed per search.
	expandedNodes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "anyangle_search_expanded_nodes",
		Help:    "Nodes expanded per Lazy Theta* search",
		Buckets: prometheus.ExponentialBuckets(1, 4, 10), // 1 to ~260k
	})
)

// observe records the outcomes of a finished run.
func observe(backend string, outcomes []Outcome) (unreachable int) {
	found := tasksTotal.WithLabelValues(backend, "found")
	missed := tasksTotal.WithLabelValues(backend, "unreachable")
	for _, o := range outcomes {
		expandedNodes.Observe(float64(o.Stats.Expanded))
		if o.Found() {
			found.Inc()
		} else {
			missed.Inc()
			unreachable++
		}
	}

	return unreachable
}
