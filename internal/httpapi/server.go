// Package httpapi is the thin HTTP facade over the routing store: it
// translates requests into store operations and marshals their results as
// JSON, and carries the service's ambient concerns (structured logging via
// logrus, Prometheus instrumentation) that sit outside the store itself.
package httpapi

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/ramzeth/routetable"
)

// Service bundles the route store with its ambient collaborators. Every
// handler takes it as a receiver rather than reaching for package-level
// globals, per spec.md §9's "global store" design note.
type Service struct {
	Store   *routetable.RouteStore
	Log     *logrus.Logger
	Metrics *Metrics
}

// NewService wires a store, logger, and metrics registry into a Service.
func NewService(store *routetable.RouteStore, log *logrus.Logger) *Service {
	return &Service{
		Store:   store,
		Log:     log,
		Metrics: NewMetrics(store),
	}
}

// Router builds the complete route table. Go 1.22's ServeMux
// method+wildcard patterns give us the whole surface without pulling in a
// third-party router — the pack's examples don't carry one.
func (s *Service) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /{$}", s.handleRoot)
	mux.HandleFunc("GET /docs", s.handleDocs)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /destination/{prefix}", s.handleDestination)
	mux.HandleFunc("PUT /prefix/{prefix}/nh/{nh}/metric/{metric}", s.handleUpdateOrLonger)
	mux.HandleFunc("PUT /prefix/{prefix}/nh/{nh}/metric/{metric}/match/{matchd}", s.handleUpdateMatch)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.Metrics.Registry, promhttp.HandlerOpts{}))

	return s.withLogging(mux)
}

// withLogging wraps h with one logrus line per request, matching the
// teacher's preference for structured fields over printf-style messages.
func (s *Service) withLogging(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		h.ServeHTTP(sw, r)
		s.Log.WithFields(logrus.Fields{
			"method":      r.Method,
			"path":        r.URL.Path,
			"status":      sw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}).Info("request handled")
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}
