package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var Registry = prometheus.NewRegistry()

var (
	SeedRuns = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mlmsite",
		Subsystem: "plans",
		Name:      "seed_runs_total",
		Help:      "Plan seed runs by status (ok, failed).",
	}, []string{"status"})

	SeedItems = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "mlmsite",
		Subsystem: "plans",
		Name:      "seed_items_total",
		Help:      "Seeded catalog entries by outcome (created, updated, error).",
	}, []string{"outcome"})
)

func init() {
	Registry.MustRegister(
		SeedRuns,
		SeedItems,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// RecordSeed counts one finished run and its per-entry outcomes.
func RecordSeed(created, updated, failed int) {
	SeedRuns.WithLabelValues("ok").Inc()
	SeedItems.WithLabelValues("created").Add(float64(created))
	SeedItems.WithLabelValues("updated").Add(float64(updated))
	SeedItems.WithLabelValues("error").Add(float64(failed))
}

func RecordSeedFailure() {
	SeedRuns.WithLabelValues("failed").Inc()
}

func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}
