package layout

import (
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/odvcencio/tessera/pkg/ui/geometry"
)

// Cache memoizes Split results. A Cache may be shared by several layouts;
// the key covers every input that affects the result.
type Cache struct {
	entries *lru.Cache[cacheKey, []geometry.Rect]
	hits    atomic.Uint64
	misses  atomic.Uint64
}

// CacheStats is a snapshot of cache effectiveness.
type CacheStats struct {
	Hits   uint64
	Misses uint64
	Len    int
}

type cacheKey struct {
	area        geometry.Rect
	direction   Direction
	flex        Flex
	spacing     Spacing
	margin      geometry.Margin
	constraints string
}

// NewCache creates a cache holding up to capacity results. It returns nil,
// meaning no caching, when capacity is not positive.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		return nil
	}
	entries, err := lru.New[cacheKey, []geometry.Rect](capacity)
	if err != nil {
		return nil
	}
	return &Cache{entries: entries}
}

// Stats returns hit, miss and size counts. It is safe on a nil cache.
func (c *Cache) Stats() CacheStats {
	if c == nil {
		return CacheStats{}
	}
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Len:    c.entries.Len(),
	}
}

// Purge drops every cached result.
func (c *Cache) Purge() {
	if c == nil {
		return
	}
	c.entries.Purge()
}

func (c *Cache) get(key cacheKey) ([]geometry.Rect, bool) {
	rects, ok := c.entries.Get(key)
	if !ok {
		c.misses.Add(1)
		return nil, false
	}
	c.hits.Add(1)
	return cloneRects(rects), true
}

func (c *Cache) put(key cacheKey, rects []geometry.Rect) {
	c.entries.Add(key, cloneRects(rects))
}

func encodeConstraints(cs []Constraint) string {
	var sb strings.Builder
	sb.Grow(len(cs) * 5)
	for _, c := range cs {
		sb.WriteByte(byte(c.kind))
		sb.WriteByte(byte(c.a))
		sb.WriteByte(byte(c.a >> 8))
		sb.WriteByte(byte(c.b))
		sb.WriteByte(byte(c.b >> 8))
	}
	return sb.String()
}

func cloneRects(rects []geometry.Rect) []geometry.Rect {
	out := make([]geometry.Rect, len(rects))
	copy(out, rects)
	return out
}
