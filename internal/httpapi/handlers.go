package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ramzeth/routetable"
)

func (s *Service) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/docs", http.StatusTemporaryRedirect)
}

const docsHTML = `<!DOCTYPE html>
<html><head><title>routetabled</title></head>
<body>
<h1>routetabled</h1>
<ul>
<li>GET /health</li>
<li>GET /destination/{prefix}</li>
<li>PUT /prefix/{prefix}/nh/{nh}/metric/{metric}</li>
<li>PUT /prefix/{prefix}/nh/{nh}/metric/{metric}/match/{matchd}</li>
</ul>
</body></html>
`

func (s *Service) handleDocs(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(docsHTML))
}

type healthResponse struct {
	Status          string `json:"status"`
	RoutesLoaded    uint64 `json:"routes_loaded"`
	RadixTreeRoutes uint64 `json:"radix_tree_routes"`
}

func (s *Service) handleHealth(w http.ResponseWriter, r *http.Request) {
	stats := s.Store.Stats()
	s.Metrics.TableRoutes.Set(float64(stats.RadixTreeRoutes))

	status := "healthy"
	if stats.RoutesLoaded != stats.RadixTreeRoutes {
		status = "degraded"
	}
	writeJSON(w, http.StatusOK, healthResponse{
		Status:          status,
		RoutesLoaded:    stats.RoutesLoaded,
		RadixTreeRoutes: stats.RadixTreeRoutes,
	})
}

type destinationResponse struct {
	Dst string `json:"dst"`
	NH  string `json:"nh"`
}

func (s *Service) handleDestination(w http.ResponseWriter, r *http.Request) {
	prefix := r.PathValue("prefix")

	entry, err := s.Store.Lookup(prefix)
	if err != nil {
		s.writeStoreError(w, "lookup", err)
		return
	}
	s.Metrics.Lookups.WithLabelValues("hit").Inc()
	writeJSON(w, http.StatusOK, destinationResponse{Dst: entry.PrefixStr, NH: entry.NextHopStr})
}

type updateResponse struct {
	Status        string `json:"status"`
	UpdatedRoutes int    `json:"updated_routes"`
}

func (s *Service) handleUpdateOrLonger(w http.ResponseWriter, r *http.Request) {
	s.handleUpdate(w, r, "orlonger")
}

func (s *Service) handleUpdateMatch(w http.ResponseWriter, r *http.Request) {
	mode := r.PathValue("matchd")
	s.handleUpdate(w, r, mode)
}

func (s *Service) handleUpdate(w http.ResponseWriter, r *http.Request, mode string) {
	prefix := r.PathValue("prefix")
	nh := r.PathValue("nh")
	metricStr := r.PathValue("metric")

	metric, err := strconv.ParseUint(metricStr, 10, 16)
	if err != nil {
		s.Metrics.Updates.WithLabelValues(mode, "error").Inc()
		s.Metrics.Errors.WithLabelValues("invalid_metric").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: "invalid metric"})
		return
	}

	n, err := s.Store.UpdateMetric(prefix, nh, uint16(metric), mode)
	if err != nil {
		s.Metrics.Updates.WithLabelValues(mode, "error").Inc()
		s.writeStoreError(w, "update", err)
		return
	}
	if n == 0 {
		s.Metrics.Updates.WithLabelValues(mode, "not_found").Inc()
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "no matching route"})
		return
	}

	s.Metrics.Updates.WithLabelValues(mode, "success").Inc()
	writeJSON(w, http.StatusOK, updateResponse{Status: "success", UpdatedRoutes: n})
}

type errorResponse struct {
	Detail string `json:"detail"`
}

// writeStoreError translates a core sentinel error into the HTTP status the
// facade contract names, per spec.md §6.2/§7.
func (s *Service) writeStoreError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, routetable.ErrNotFound):
		s.Metrics.Lookups.WithLabelValues("miss").Inc()
		s.Metrics.Errors.WithLabelValues("not_found").Inc()
		writeJSON(w, http.StatusNotFound, errorResponse{Detail: "no matching route"})
	case errors.Is(err, routetable.ErrInvalidPrefix),
		errors.Is(err, routetable.ErrInvalidNextHop),
		errors.Is(err, routetable.ErrInvalidMetric),
		errors.Is(err, routetable.ErrInvalidMode):
		s.Metrics.Errors.WithLabelValues("bad_request").Inc()
		writeJSON(w, http.StatusBadRequest, errorResponse{Detail: err.Error()})
	default:
		s.Metrics.Errors.WithLabelValues("internal").Inc()
		s.Log.WithFields(map[string]any{"op": op, "err": err}).Error("unexpected store error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
