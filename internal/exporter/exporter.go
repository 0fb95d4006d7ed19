// Package exporter drives the collection loop that polls performance
// counters and the HTTP responder that serves them as Prometheus metrics.
package exporter

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zaphar/win-utils/internal/config"
	"github.com/zaphar/win-utils/internal/pdh"
)

const instanceLabel = "instance"

// Exporter owns one counter query session, one gauge per configured metric
// and the HTTP server exposing the registry. The collection goroutine is the
// only writer to the gauges; scrapes read a consistent snapshot through the
// registry.
type Exporter struct {
	cfg      *config.Config
	logger   *slog.Logger
	registry *prometheus.Registry
	source   counterSource
	bindings []*binding

	server   *http.Server
	addr     net.Addr
	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// binding pairs one gauge series with the stream feeding it.
type binding struct {
	name   string
	gauge  prometheus.Gauge
	stream valueStream

	// The first reading after counter creation is a transient for
	// rate-based counters; it is discarded instead of published.
	primed bool
}

// New builds an exporter from the configuration: it opens the query,
// expands wildcard paths, attaches every counter and registers every gauge.
// Setup is fail-fast; a single bad path aborts with an error naming it,
// since a misconfigured counter set is a deployment error rather than a
// transient condition.
func New(cfg *config.Config, logger *slog.Logger) (*Exporter, error) {
	source, err := openPDHSource(cfg.Machine)
	if err != nil {
		return nil, err
	}
	return newWithSource(cfg, logger, source)
}

func newWithSource(cfg *config.Config, logger *slog.Logger, source counterSource) (*Exporter, error) {
	e := &Exporter{
		cfg:      cfg,
		logger:   logger.With("component", "exporter"),
		registry: prometheus.NewRegistry(),
		source:   source,
		stopCh:   make(chan struct{}),
	}

	for _, metric := range cfg.Metrics {
		if err := e.bind(metric); err != nil {
			_ = source.Close()
			return nil, err
		}
	}

	return e, nil
}

// bind registers the metric's gauge and attaches a stream for each concrete
// path behind it. Wildcard paths become one labelled series per expanded
// instance.
func (e *Exporter) bind(metric config.Metric) error {
	path := metric.Path
	if e.cfg.Machine != "" {
		path = fmt.Sprintf(`\\%s%s`, e.cfg.Machine, path)
	}

	paths := []string{path}
	var labels []string
	wildcard := strings.Contains(path, "*")
	if wildcard {
		expanded, err := e.source.ExpandWildcardPath(path)
		if err != nil {
			return fmt.Errorf("expanding %q for metric %q: %w", path, metric.Name, err)
		}
		paths = expanded
		labels = []string{instanceLabel}
	}

	help := metric.Help
	if help == "" {
		help = metric.Path
	}
	vec := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: metric.Name,
		Help: help,
	}, labels)
	if err := e.registry.Register(vec); err != nil {
		return fmt.Errorf("registering metric %q: %w", metric.Name, err)
	}

	for _, p := range paths {
		stream, err := e.source.AddStream(p)
		if err != nil {
			return fmt.Errorf("attaching %q for metric %q: %w", p, metric.Name, err)
		}
		var gauge prometheus.Gauge
		if wildcard {
			gauge = vec.WithLabelValues(pdh.InstanceFromPath(p))
		} else {
			gauge = vec.WithLabelValues()
		}
		e.bindings = append(e.bindings, &binding{
			name:   metric.Name,
			gauge:  gauge,
			stream: stream,
		})
	}

	return nil
}

// Start binds the listener and launches the responder and collector
// goroutines. Both observe ctx and the exporter's own stop signal.
func (e *Exporter) Start(ctx context.Context) error {
	listener, err := net.Listen("tcp", e.cfg.ListenAddress)
	if err != nil {
		return fmt.Errorf("binding metrics listener: %w", err)
	}
	e.addr = listener.Addr()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}))
	mux.HandleFunc("/health", e.healthHandler)

	e.server = &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		if err := e.server.Serve(listener); err != nil && err != http.ErrServerClosed {
			e.logger.Error("metrics server failed", "error", err)
		}
	}()

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.collectLoop(ctx)
	}()

	e.logger.Info("exporter started", "address", e.addr.String(), "interval", e.cfg.PollInterval)
	return nil
}

// Addr returns the bound listener address. Valid after Start.
func (e *Exporter) Addr() net.Addr {
	return e.addr
}

// Stop shuts the HTTP server down, stops the collection loop, waits for
// both goroutines and releases the query.
func (e *Exporter) Stop(ctx context.Context) error {
	e.stopOnce.Do(func() { close(e.stopCh) })

	var err error
	if e.server != nil {
		err = e.server.Shutdown(ctx)
	}
	e.wg.Wait()

	if cerr := e.source.Close(); cerr != nil && err == nil {
		err = cerr
	}
	e.logger.Info("exporter stopped")
	return err
}

func (e *Exporter) collectLoop(ctx context.Context) {
	// The first poll runs immediately; it also absorbs the transient first
	// reading of every stream so the metrics settle one interval sooner.
	e.pollOnce()

	ticker := time.NewTicker(e.cfg.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-e.stopCh:
			return
		case <-ticker.C:
			e.pollOnce()
		}
	}
}

// pollOnce reads every stream once. A failed read is logged and the gauge
// keeps its previous value; the remaining streams still update this tick.
func (e *Exporter) pollOnce() {
	for _, b := range e.bindings {
		value, err := b.stream.Next()
		if err != nil {
			e.logger.Warn("counter collection failed",
				"metric", b.name, "path", b.stream.Path(), "error", err)
			continue
		}
		if !b.primed {
			b.primed = true
			continue
		}
		b.gauge.Set(value)
	}
}

func (e *Exporter) healthHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy","service":"win-perf-exporter"}`))
}
