// Command routetabled serves longest-prefix-match lookups and metric
// updates over a routing table loaded from a CSV file at startup.
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/ramzeth/routetable"
	"github.com/ramzeth/routetable/internal/config"
	"github.com/ramzeth/routetable/internal/httpapi"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	log := httpapi.NewLogger(cfg.LogLevel, cfg.LogFormat)

	store := routetable.NewStore(cfg.CacheCapacity, cfg.MaxMetric)

	f, err := os.Open(cfg.RoutesFile)
	if err != nil {
		log.WithError(err).Fatal("opening routes file")
	}
	defer f.Close()

	if err := routetable.LoadCSV(f, store, log); err != nil {
		log.WithError(err).Fatal("loading routes file")
	}

	log.WithFields(map[string]any{
		"routes_loaded": store.RouteCount(),
		"addr":          cfg.Addr(),
	}).Info("starting routetabled")

	svc := httpapi.NewService(store, log)
	if err := http.ListenAndServe(cfg.Addr(), svc.Router()); err != nil {
		log.WithError(err).Fatal("http server exited")
	}
}
