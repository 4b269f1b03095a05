// Package routetable implements an in-memory IP routing information
// store: a dual IPv4/IPv6 binary radix trie supporting longest-prefix-match
// lookups, bulk prefix-or-longer metric updates, and an LRU lookup cache
// kept coherent with the store under concurrent access.
//
// The store is the only exported surface most callers need:
//
//	store := routetable.NewStore(10000, routetable.MaxMetric)
//	routetable.LoadCSV(f, store, logger)
//	best, err := store.Lookup("192.168.1.100")
//
// The HTTP facade over this package lives in internal/httpapi; the CLI
// entrypoint wiring config, logging, and the facade together lives in
// cmd/routetabled.
package routetable
