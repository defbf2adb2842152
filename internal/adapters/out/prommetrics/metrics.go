// Package prommetrics exports planning and HTTP metrics to Prometheus on a dedicated registry.
package prommetrics

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"fleetplan/internal/core/ports"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics implements ports.SearchObserver and records HTTP traffic.
//
// Example:
//
//	m := prommetrics.New()
//	handler := commands.NewPlanRoutesCommandHandler(uowFactory, topology, options, seed, m)
//	e.GET("/metrics", echo.WrapHandler(m.Handler()))
type Metrics struct {
	registry *prometheus.Registry

	searchRuns       *prometheus.CounterVec
	searchIterations *prometheus.HistogramVec
	searchDuration   *prometheus.HistogramVec
	acceptedWorse    prometheus.Counter
	improvements     prometheus.Counter
	initialCost      prometheus.Gauge
	bestCost         prometheus.Gauge
	plannedTasks     prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	runtimeOnce sync.Once
}

// New creates the collectors and registers them on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		searchRuns: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "planner_search_runs_total", Help: "Finished optimization runs."},
			[]string{"strategy", "acceptance"},
		),
		searchIterations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planner_search_iterations",
				Help:    "Iterations performed per optimization run.",
				Buckets: prometheus.ExponentialBuckets(10, 4, 8),
			},
			[]string{"strategy"},
		),
		searchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "planner_search_duration_seconds",
				Help:    "Wall time of optimization runs in seconds.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"strategy"},
		),
		acceptedWorse: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "planner_accepted_worse_total", Help: "Worse neighbors accepted by annealing."},
		),
		improvements: prometheus.NewCounter(
			prometheus.CounterOpts{Name: "planner_improvements_total", Help: "Steps that improved the best plan."},
		),
		initialCost: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "planner_initial_cost", Help: "Cost of the initial plan of the last run."},
		),
		bestCost: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "planner_best_cost", Help: "Cost of the best plan of the last run."},
		),
		plannedTasks: prometheus.NewGauge(
			prometheus.GaugeOpts{Name: "planner_tasks", Help: "Tasks in the last planned universe."},
		),
		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
			[]string{"method", "path", "status"},
		),
		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request duration in seconds.", Buckets: prometheus.DefBuckets},
			[]string{"method", "path", "status"},
		),
	}

	m.registry.MustRegister(
		m.searchRuns,
		m.searchIterations,
		m.searchDuration,
		m.acceptedWorse,
		m.improvements,
		m.initialCost,
		m.bestCost,
		m.plannedTasks,
		m.httpRequests,
		m.httpDuration,
	)

	return m
}

// RegisterRuntime adds the Go and process collectors. Safe to call more than once.
func (m *Metrics) RegisterRuntime() {
	m.runtimeOnce.Do(func() {
		m.registry.MustRegister(collectors.NewGoCollector())
		m.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveSearch implements ports.SearchObserver.
func (m *Metrics) ObserveSearch(_ context.Context, summary ports.SearchSummary) {
	m.searchRuns.WithLabelValues(summary.Strategy, summary.Acceptance).Inc()
	m.searchIterations.WithLabelValues(summary.Strategy).Observe(float64(summary.Iterations))
	m.searchDuration.WithLabelValues(summary.Strategy).Observe(summary.Duration.Seconds())
	m.acceptedWorse.Add(float64(summary.AcceptedWorse))
	m.improvements.Add(float64(summary.Improvements))
	m.initialCost.Set(summary.InitialCost)
	m.bestCost.Set(summary.BestCost)
	m.plannedTasks.Set(float64(summary.Tasks))
}

// ObserveHTTP records one served request. path should be the route template, not the raw URL.
func (m *Metrics) ObserveHTTP(method, path string, status int, elapsed time.Duration) {
	code := strconv.Itoa(status)
	m.httpRequests.WithLabelValues(method, path, code).Inc()
	m.httpDuration.WithLabelValues(method, path, code).Observe(elapsed.Seconds())
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
