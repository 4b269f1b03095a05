package routetable

import (
	"net/netip"
	"sync/atomic"
)

// RouteEntry is a single (prefix, next_hop, metric) row of the table.
// Everything but Metric is fixed at insert time.
type RouteEntry struct {
	// PrefixStr is the canonical CIDR text, used for equality in exact-match
	// updates and returned verbatim to HTTP callers.
	PrefixStr string

	Family    Family
	PrefixLen int

	// NextHopStr is the textual next hop, returned verbatim to callers.
	NextHopStr string

	// nextHopNumeric is the next hop parsed as an address, used solely as
	// the final tie-breaker in ordering. The zero Addr (unparsable next
	// hop) sorts before any valid one, matching the "numeric defaults to
	// 0" rule in spec.
	nextHopNumeric netip.Addr

	metric atomic.Uint32
}

// NewRouteEntry builds an entry with the given starting metric. nextHop, if
// it fails to parse as an address, still has its text preserved; its
// numeric tie-breaker value is the zero Addr.
func NewRouteEntry(prefixStr string, family Family, prefixLen int, nextHopStr string, nextHopNumeric netip.Addr, metric uint16) *RouteEntry {
	e := &RouteEntry{
		PrefixStr:      prefixStr,
		Family:         family,
		PrefixLen:      prefixLen,
		NextHopStr:     nextHopStr,
		nextHopNumeric: nextHopNumeric,
	}
	e.metric.Store(uint32(metric))
	return e
}

// Metric returns the current metric. Safe for concurrent use.
func (e *RouteEntry) Metric() uint16 {
	return uint16(e.metric.Load())
}

// SetMetric updates the metric. Safe for concurrent use, but structural
// visibility (making the update observable to new lookups) is still
// governed by the store's writer lock and cache invalidation, see store.go.
func (e *RouteEntry) SetMetric(m uint16) {
	e.metric.Store(uint32(m))
}

// Less implements the §4.1 ordering: longer prefix wins, then lower
// metric, then lower next-hop address. Used to pick the single best route
// out of the candidate set Lookup returns.
func (e *RouteEntry) Less(other *RouteEntry) bool {
	if e.PrefixLen != other.PrefixLen {
		return e.PrefixLen > other.PrefixLen
	}
	if m1, m2 := e.Metric(), other.Metric(); m1 != m2 {
		return m1 < m2
	}
	return e.nextHopNumeric.Compare(other.nextHopNumeric) < 0
}

// Best returns the minimum entry under the §4.1 ordering from a non-empty
// candidate list. Callers must check for an empty slice themselves; Best
// panics on an empty input.
func Best(candidates []*RouteEntry) *RouteEntry {
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.Less(best) {
			best = c
		}
	}
	return best
}
