package routetable

import (
	"net/netip"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/ramzeth/routetable/internal/ipaddr"
)

// RouteStore owns the IPv4 and IPv6 tries, the global route count, and the
// LRU lookup cache. A single sync.RWMutex arbitrates structural access:
// any number of concurrent Lookups, or one Insert/UpdateMetric at a time.
// The cache additionally has its own mutex (see cache.go), because
// Lookups holding the shared RLock still mutate its recency list; cache
// operations from concurrent readers are serialized by that mutex.
type RouteStore struct {
	mu sync.RWMutex

	v4 *trie
	v6 *trie

	routeCount atomic.Uint64

	cache *lruCache

	// cacheHits and cacheMisses count cache consultations at the exact
	// point Lookup checks the cache, mirroring original_source/service/main.py's
	// cache_hits/cache_misses Counters which are incremented inside the
	// cache-wrapping function itself rather than by its caller. Exposed via
	// CacheStats for internal/httpapi to mirror into Prometheus.
	cacheHits   atomic.Uint64
	cacheMisses atomic.Uint64

	// misses collapses concurrent cache-misses for the same query key into
	// a single trie walk, so a stampede of requests for a cold but
	// suddenly-popular destination doesn't each re-walk the trie.
	misses singleflight.Group

	// maxMetric is the upper bound UpdateMetric validates against; operator
	// configurable via MAX_METRIC (see internal/config), mirroring
	// original_source/service/main.py's settings.max_metric gate.
	maxMetric uint16
}

// NewStore creates an empty store with the given lookup-cache capacity and
// maximum valid metric. maxMetric <= 0 falls back to MaxMetric.
func NewStore(cacheCapacity, maxMetric int) *RouteStore {
	if maxMetric <= 0 {
		maxMetric = MaxMetric
	}
	return &RouteStore{
		v4:        newTrie(),
		v6:        newTrie(),
		cache:     newLRUCache(cacheCapacity),
		maxMetric: uint16(maxMetric),
	}
}

func (s *RouteStore) trieFor(f Family) *trie {
	if f == V6 {
		return s.v6
	}
	return s.v4
}

// RouteCount returns the total number of entries across both tries.
func (s *RouteStore) RouteCount() uint64 {
	return s.routeCount.Load()
}

// Insert adds a route. It returns ErrInvalidPrefix if prefixStr fails to
// parse. An unparsable nextHop is not fatal: the entry is still inserted,
// with its textual next hop preserved and its numeric tie-breaker set to
// the zero address, and ErrInvalidNextHop is returned so the caller (the
// loader, in particular) can decide whether to tolerate it. This mirrors
// the reference service's load-time behavior, see LoadCSV.
func (s *RouteStore) Insert(prefixStr, nextHopStr string, metric uint16) error {
	p, err := ipaddr.ParsePrefix(prefixStr)
	if err != nil {
		return ErrInvalidPrefix
	}

	var nhErr error
	nhAddr, _, perr := ipaddr.ParseAddr(nextHopStr)
	if perr != nil {
		nhErr = ErrInvalidNextHop
		nhAddr = netip.Addr{}
	}

	entry := NewRouteEntry(p.String(), Family(p.Family), p.Bits, nextHopStr, nhAddr, metric)

	s.mu.Lock()
	s.trieFor(Family(p.Family)).insert(p.Addr, p.Bits, entry)
	s.routeCount.Add(1)
	s.cache.clear()
	s.mu.Unlock()

	return nhErr
}

// lookupAll returns every candidate entry on the path to addr, read-locked.
func (s *RouteStore) lookupAll(addr netip.Addr, fam Family) []*RouteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trieFor(fam).lookup(addr)
}

// Lookup implements the end-to-end lookup engine of §4.5: parse, consult
// the cache, fall through to the trie on miss, apply the §4.1 ordering,
// populate the cache, and return the single best route.
//
// Every cache consultation — the fast path below and the re-check inside
// the miss path — happens under s.mu.RLock(), never bare. UpdateMetric
// holds s.mu.Lock() across its mutate-then-clear sequence, so a reader can
// only observe the cache entirely before or entirely after a concurrent
// update: never in the window between the update's mutation and its
// cache.clear(), which would otherwise let a stale pre-update "best" choice
// be returned to a caller even though the cache itself gets cleared a
// moment later. The miss path additionally holds the lock across the trie
// walk, ordering selection, and cache population as a single unit, so an
// UpdateMetric arriving mid-miss either completes entirely before this
// reader starts or waits for this reader to finish populating the cache
// before it clears.
func (s *RouteStore) Lookup(queryText string) (*RouteEntry, error) {
	p, err := ipaddr.ParsePrefix(queryText)
	if err != nil {
		return nil, ErrInvalidPrefix
	}
	key := p.Addr.String()

	s.mu.RLock()
	cached, ok := s.cache.get(key)
	s.mu.RUnlock()
	if ok {
		s.cacheHits.Add(1)
		return cached, nil
	}
	s.cacheMisses.Add(1)

	v, err, _ := s.misses.Do(key, func() (any, error) {
		s.mu.RLock()
		defer s.mu.RUnlock()

		if cached, ok := s.cache.get(key); ok {
			return cached, nil
		}
		candidates := s.trieFor(Family(p.Family)).lookup(p.Addr)
		if len(candidates) == 0 {
			return nil, ErrNotFound
		}
		best := Best(candidates)
		s.cache.put(key, best)
		return best, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RouteEntry), nil
}

// UpdateMetric mutates the metric of every entry matching prefixStr/nextHop
// under the given mode ("exact" or "orlonger"), clearing the lookup cache
// before returning if any entry changed. Returns the number of entries
// updated; zero is not an error (see spec §4.3/§9).
func (s *RouteStore) UpdateMetric(prefixStr, nextHopStr string, metric uint16, mode string) (int, error) {
	if metric < 1 || metric > s.maxMetric {
		return 0, ErrInvalidMetric
	}
	if mode != "exact" && mode != "orlonger" {
		return 0, ErrInvalidMode
	}
	p, err := ipaddr.ParsePrefix(prefixStr)
	if err != nil {
		return 0, ErrInvalidPrefix
	}
	if _, _, err := ipaddr.ParseAddr(nextHopStr); err != nil {
		return 0, ErrInvalidNextHop
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.trieFor(Family(p.Family))
	var n int
	if mode == "exact" {
		n = t.updateExact(p.Addr, p.Bits, p.String(), nextHopStr, metric)
	} else {
		n = t.updateOrLonger(p.Addr, p.Bits, nextHopStr, metric)
	}
	if n > 0 {
		s.cache.clear()
	}
	return n, nil
}

// Stats is a point-in-time snapshot used by the /health endpoint and by
// Prometheus gauges. It is computed on demand rather than kept as a
// standing structure: per spec §9, the trie is the only source of truth.
type Stats struct {
	RoutesLoaded    uint64
	RadixTreeRoutes uint64
}

// Stats returns the current route counts. RoutesLoaded and RadixTreeRoutes
// are always equal in this implementation (there is no separate tabular
// mirror to drift from the trie), so health is always "healthy"; the two
// fields are kept distinct because the facade's /health contract names
// both.
func (s *RouteStore) Stats() Stats {
	n := s.RouteCount()
	return Stats{RoutesLoaded: n, RadixTreeRoutes: n}
}

// CacheStats returns the running totals of cache hits and misses observed
// by Lookup since the store was created.
func (s *RouteStore) CacheStats() (hits, misses uint64) {
	return s.cacheHits.Load(), s.cacheMisses.Load()
}

// MaxMetric is the default upper bound of the valid metric range, §3/§6.3;
// NewStore falls back to it when given no positive maxMetric.
const MaxMetric = 32768

// DefaultMetric is the metric new loader rows get when the CSV doesn't
// carry one (the CSV format never does; every loaded row starts here).
const DefaultMetric = MaxMetric
