package segment

import (
	"fmt"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCacheSize bounds the number of memoized words.
const DefaultCacheSize = 256

// Cached memoizes another Segmenter. Partial matching re-segments every
// prior entry on each submission, so a round's words are hit repeatedly.
type Cached struct {
	next  Segmenter
	cache *lru.Cache[string, []string]
}

func NewCached(next Segmenter, size int) (*Cached, error) {
	if size <= 0 {
		size = DefaultCacheSize
	}
	c, err := lru.New[string, []string](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create segment cache: %w", err)
	}
	return &Cached{next: next, cache: c}, nil
}

// Segment returns a copy so callers can never mutate a cached value.
func (c *Cached) Segment(word string) []string {
	if units, ok := c.cache.Get(word); ok {
		return slices.Clone(units)
	}
	units := c.next.Segment(word)
	c.cache.Add(word, units)
	return slices.Clone(units)
}

func (c *Cached) Len() int {
	return c.cache.Len()
}
