package radial

import (
	"maps"
	"strconv"

	"github.com/matzehuels/ripple/pkg/geom"
)

// KeywordKey identifies one keyword satellite.
type KeywordKey struct {
	TopicID string
	Keyword string
	Index   int
}

// String returns the key as "<topic>-<keyword>-<index>", which also seeds the
// keyword's jitter.
func (k KeywordKey) String() string {
	return k.TopicID + "-" + k.Keyword + "-" + strconv.Itoa(k.Index)
}

// KeywordCache remembers resolved keyword positions between frames.
type KeywordCache struct {
	entries map[KeywordKey]geom.Point
}

// NewKeywordCache returns an empty cache.
func NewKeywordCache() *KeywordCache {
	return &KeywordCache{entries: map[KeywordKey]geom.Point{}}
}

// Get returns the cached position for k.
func (c *KeywordCache) Get(k KeywordKey) (geom.Point, bool) {
	p, ok := c.entries[k]
	return p, ok
}

// Put stores the position for k.
func (c *KeywordCache) Put(k KeywordKey, p geom.Point) {
	c.entries[k] = p
}

// Prune evicts every key not in live and returns how many were evicted.
func (c *KeywordCache) Prune(live map[KeywordKey]struct{}) int {
	n := 0
	for k := range c.entries {
		if _, ok := live[k]; !ok {
			delete(c.entries, k)
			n++
		}
	}
	return n
}

// Len returns the number of cached keywords.
func (c *KeywordCache) Len() int { return len(c.entries) }

// Reset empties the cache and returns how many entries it held.
func (c *KeywordCache) Reset() int {
	n := len(c.entries)
	c.entries = map[KeywordKey]geom.Point{}
	return n
}

// Snapshot returns a copy of the cached keys and positions.
func (c *KeywordCache) Snapshot() map[KeywordKey]geom.Point {
	return maps.Clone(c.entries)
}
