package routetable

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLRUCacheGetPutMiss(t *testing.T) {
	c := newLRUCache(2)
	_, ok := c.get("192.168.1.1")
	assert.False(t, ok)

	e := entryAt("192.168.1.0/24", 24, "10.0.0.1", 100)
	c.put("192.168.1.1", e)

	got, ok := c.get("192.168.1.1")
	assert.True(t, ok)
	assert.Same(t, e, got)
}

func TestLRUCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := newLRUCache(2)
	a := entryAt("10.0.0.0/8", 8, "1.1.1.1", 100)
	b := entryAt("20.0.0.0/8", 8, "2.2.2.2", 100)
	d := entryAt("30.0.0.0/8", 8, "3.3.3.3", 100)

	c.put("a", a)
	c.put("b", b)
	// touch a so it becomes most-recently-used, leaving b as the oldest
	_, _ = c.get("a")
	c.put("d", d)

	_, ok := c.get("b")
	assert.False(t, ok, "b should have been evicted")

	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("d")
	assert.True(t, ok)
}

func TestLRUCacheClear(t *testing.T) {
	c := newLRUCache(4)
	c.put("a", entryAt("10.0.0.0/8", 8, "1.1.1.1", 100))
	c.clear()

	_, ok := c.get("a")
	assert.False(t, ok)
}
