package routetable

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// progressInterval matches the reference loader's own progress cadence
// (original_source/service/lib/data.py logs every 100,000 rows).
const progressInterval = 100000

// Logger is the minimal logging surface the loader needs. *logrus.Logger
// and *logrus.Entry both satisfy it; tests can pass a no-op stub.
type Logger interface {
	Infof(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Infof(string, ...any) {}

// LoadCSV reads a ';'-separated, header-less routes file (§6.1:
// `prefix;next_hop` per line) and bulk-inserts every row into store. It is
// meant to run once, single-threaded, before the HTTP facade starts
// accepting requests — the store's own locking would serialize concurrent
// loads correctly, but there is no concurrency to serialize at startup.
//
// The first row that fails to parse as a prefix aborts the whole load with
// a *LoadError* naming the line number, per §6.1/§7. A row whose next hop
// doesn't parse does NOT abort the load: the original service stores the
// next-hop text verbatim and treats its tie-break value as 0, and this
// loader preserves that.
func LoadCSV(r io.Reader, store *RouteStore, log Logger) error {
	if log == nil {
		log = nopLogger{}
	}

	scanner := bufio.NewScanner(r)
	// Routing tables can have long lines once IPv6 prefixes with many
	// next-hop candidates are present; grow past bufio's 64KiB default.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	loaded := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}

		prefix, nextHop, ok := strings.Cut(line, ";")
		if !ok {
			return &LoadError{Line: lineNo, Err: fmt.Errorf("expected 'prefix;next_hop', got %q", line)}
		}

		err := store.Insert(prefix, nextHop, DefaultMetric)
		if err != nil && err != ErrInvalidNextHop {
			return &LoadError{Line: lineNo, Err: err}
		}

		loaded++
		if loaded%progressInterval == 0 {
			log.Infof("loaded %d routes so far", loaded)
		}
	}
	if err := scanner.Err(); err != nil {
		return &LoadError{Line: lineNo, Err: err}
	}

	log.Infof("routes file loaded: %d routes", loaded)
	return nil
}
