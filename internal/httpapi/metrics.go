package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/ramzeth/routetable"
)

// Metrics mirrors the original Python service's own Prometheus counters
// (original_source/service/main.py), carried over verbatim by name since
// nothing about a Go rewrite changes what an operator dashboards on.
type Metrics struct {
	Registry *prometheus.Registry

	Lookups     *prometheus.CounterVec
	Updates     *prometheus.CounterVec
	TableRoutes prometheus.Gauge
	Errors      *prometheus.CounterVec
}

// NewMetrics builds a fresh registry and registers every collector against
// it via promauto.With, rather than the global DefaultRegisterer — so a
// test can spin up any number of Services without colliding on duplicate
// registration, the same reason the store itself takes no package globals.
//
// routing_cache_hits_total/routing_cache_misses_total are registered as
// CounterFuncs reading store.CacheStats() directly, rather than as
// Inc()-driven counters mirrored from a handler: the original service
// increments its cache_hits/cache_misses Counters at the exact point the
// cache is consulted, inside the cache-wrapping function itself
// (original_source/service/main.py's cached_radix_lookup/get_cached_route),
// not at the HTTP call site. RouteStore.Lookup is that point in this repo,
// so it is the one true source for these two totals; a CounterFunc scrapes
// them live instead of requiring every Lookup call site to separately push
// an Inc() through the facade.
func NewMetrics(store *routetable.RouteStore) *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "routing_cache_hits_total",
		Help: "Total number of lookup-cache hits.",
	}, func() float64 {
		hits, _ := store.CacheStats()
		return float64(hits)
	}))
	reg.MustRegister(prometheus.NewCounterFunc(prometheus.CounterOpts{
		Name: "routing_cache_misses_total",
		Help: "Total number of lookup-cache misses.",
	}, func() float64 {
		_, misses := store.CacheStats()
		return float64(misses)
	}))

	return &Metrics{
		Registry: reg,
		Lookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "routing_lookups_total",
			Help: "Total number of destination lookups performed.",
		}, []string{"result"}),
		Updates: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "routing_updates_total",
			Help: "Total number of metric update requests performed.",
		}, []string{"mode", "result"}),
		TableRoutes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "routing_table_routes",
			Help: "Current number of routes held in the table.",
		}),
		Errors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "routing_errors_total",
			Help: "Total number of requests that ended in an error response.",
		}, []string{"kind"}),
	}
}
