// Package metrics exposes solver counters on a private Prometheus registry
// and serves them over HTTP while an experiment suite runs.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Namespace prefixes every metric name.
const Namespace = "freqassign"

// shutdownTimeout bounds Serve's graceful shutdown.
const shutdownTimeout = 5 * time.Second

// Collector holds the solver metrics.
type Collector struct {
	registry *prometheus.Registry

	// Runs counts finished pipeline runs by search method.
	Runs *prometheus.CounterVec
	// Moves counts applied local-search moves by search method.
	Moves *prometheus.CounterVec
	// FinalCost observes the verified cost of each run.
	FinalCost *prometheus.HistogramVec
	// Conflicts holds the conflict count of the latest run per method.
	Conflicts *prometheus.GaugeVec
	// Duration observes wall time per run.
	Duration *prometheus.HistogramVec
}

// New registers a fresh set of collectors on its own registry, so several
// Collectors may coexist in one process.
func New() *Collector {
	registry := prometheus.NewRegistry()

	runs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "runs_total",
			Help:      "Total number of pipeline runs",
		},
		[]string{"method", "valid"},
	)

	moves := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "moves_total",
			Help:      "Total number of applied local search moves",
		},
		[]string{"method"},
	)

	finalCost := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "final_cost",
			Help:      "Verified total cost of the final assignment",
			Buckets:   prometheus.ExponentialBuckets(50, 2, 10),
		},
		[]string{"method"},
	)

	conflicts := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "final_conflicts",
			Help:      "Conflicting edges left by the latest run",
		},
		[]string{"method"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "run_duration_seconds",
			Help:      "Pipeline run duration in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	registry.MustRegister(runs, moves, finalCost, conflicts, duration)

	return &Collector{
		registry:  registry,
		Runs:      runs,
		Moves:     moves,
		FinalCost: finalCost,
		Conflicts: conflicts,
		Duration:  duration,
	}
}

// Registry returns the private registry.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// ObserveRun records one finished run.
func (c *Collector) ObserveRun(method string, valid bool, cost float64, conflicts int, elapsed time.Duration) {
	label := "false"
	if valid {
		label = "true"
	}
	c.Runs.WithLabelValues(method, label).Inc()
	c.FinalCost.WithLabelValues(method).Observe(cost)
	c.Conflicts.WithLabelValues(method).Set(float64(conflicts))
	c.Duration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// MoveCounter returns the move counter of method, for use in a search
// OnMove hook.
func (c *Collector) MoveCounter(method string) prometheus.Counter {
	return c.Moves.WithLabelValues(method)
}

// Handler serves /metrics from the private registry and /healthz.
func (c *Collector) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return r
}

// Serve listens on addr until ctx is done, then shuts down gracefully.
func (c *Collector) Serve(ctx context.Context, addr string, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           c.Handler(),
		ReadHeaderTimeout: shutdownTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("metrics server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("metrics server stopped", zap.String("addr", addr))

	return nil
}
