package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus metrics of the simulator.
type Metrics struct {
	registry *prometheus.Registry

	SimulationsTotal   *prometheus.CounterVec
	RollsTotal         prometheus.Counter
	SuccessesTotal     prometheus.Counter
	SimulationDuration prometheus.Histogram
	CatalogReloads     prometheus.Counter
}

// NewMetrics creates a Metrics instance on its own registry.
func NewMetrics(namespace string) *Metrics {
	if namespace == "" {
		namespace = "skyblock_rng"
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		SimulationsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulations_total",
			Help:      "Total number of finished simulations",
		}, []string{"drop"}),
		RollsTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rolls_total",
			Help:      "Total number of simulated rolls",
		}),
		SuccessesTotal: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "successes_total",
			Help:      "Total number of successful rolls",
		}),
		SimulationDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "simulation_duration_seconds",
			Help:      "Wall time of a simulation run",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}),
		CatalogReloads: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_reloads_total",
			Help:      "Number of times the drop catalog was invalidated by the file watcher",
		}),
	}
}

// ObserveRun records a finished simulation.
func (m *Metrics) ObserveRun(drop string, rolls, successes int, elapsed time.Duration) {
	m.SimulationsTotal.WithLabelValues(drop).Inc()
	m.RollsTotal.Add(float64(rolls))
	m.SuccessesTotal.Add(float64(successes))
	m.SimulationDuration.Observe(elapsed.Seconds())
}

// Handler returns the HTTP handler for the metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
