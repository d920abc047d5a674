// Package metrics holds the Prometheus instruments exposed by the flight
// server.  All collectors are registered with the global registry, so
// mounting Handler() on the configured metrics endpoint is enough to
// expose them.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	TasksActive = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "flight_tasks_active",
			Help: "Number of tasks currently executing.",
		})

	TasksCompletedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flight_tasks_completed_total",
			Help: "Cumulative number of tasks that finished successfully.",
		})

	TasksFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flight_tasks_failed_total",
			Help: "Cumulative number of tasks that finished with an error.",
		})

	MemTrimTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "flight_memory_trim_total",
			Help: "Cumulative number of periodic free-OS-memory passes.",
		})
)

func init() {
	prometheus.MustRegister(
		TasksActive,
		TasksCompletedTotal,
		TasksFailedTotal,
		MemTrimTotal,
	)
}

// Handler serves the global registry in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
