package routetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRouteEntryOrderingPrefixLenWins(t *testing.T) {
	short := entryAt("10.0.0.0/8", 8, "1.1.1.1", 1)
	long := entryAt("10.0.0.0/16", 16, "1.1.1.1", 32768)
	assert.True(t, long.Less(short))
	assert.False(t, short.Less(long))
}

func TestRouteEntryOrderingMetricWins(t *testing.T) {
	lo := entryAt("10.0.0.0/24", 24, "1.1.1.2", 100)
	hi := entryAt("10.0.0.0/24", 24, "1.1.1.1", 200)
	assert.True(t, lo.Less(hi))
}

func TestRouteEntryOrderingNextHopWins(t *testing.T) {
	lo := entryAt("10.0.0.0/24", 24, "1.1.1.1", 100)
	hi := entryAt("10.0.0.0/24", 24, "1.1.1.2", 100)
	assert.True(t, lo.Less(hi))
}

func TestBestPicksMinimum(t *testing.T) {
	a := entryAt("10.0.0.0/8", 8, "1.1.1.1", 100)
	b := entryAt("10.0.0.0/16", 16, "1.1.1.1", 100)
	c := entryAt("10.0.0.0/24", 24, "1.1.1.1", 100)
	best := Best([]*RouteEntry{a, b, c})
	assert.Equal(t, "10.0.0.0/24", best.PrefixStr)
}

func TestRouteEntryMetricMutationIsConcurrencySafe(t *testing.T) {
	e := entryAt("10.0.0.0/8", 8, "1.1.1.1", 100)
	done := make(chan struct{})
	go func() {
		for i := 0; i < 1000; i++ {
			e.SetMetric(uint16(i%32768 + 1))
		}
		close(done)
	}()
	for i := 0; i < 1000; i++ {
		_ = e.Metric()
	}
	<-done
}
