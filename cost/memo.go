package cost

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemoSize is the default number of labels whose cost is kept.
const DefaultMemoSize = 4096

// Memo wraps a Func with an LRU cache so repeated lookups of the same label
// skip recomputation. Results are identical to the wrapped Func.
// Safe for concurrent use.
type Memo struct {
	inner Func
	cache *lru.Cache[string, int64]
}

// NewMemo creates a memoizing wrapper around inner with room for size labels.
// A non-positive size selects DefaultMemoSize; a nil inner selects ASCII.
func NewMemo(inner Func, size int) *Memo {
	if size <= 0 {
		size = DefaultMemoSize
	}
	if inner == nil {
		inner = ASCII
	}
	// lru.New only fails for size <= 0, which is excluded above.
	cache, _ := lru.New[string, int64](size)
	return &Memo{inner: inner, cache: cache}
}

// Cost returns the cost of label, computing and caching it on a miss.
func (m *Memo) Cost(label string) int64 {
	if v, ok := m.cache.Get(label); ok {
		return v
	}
	v := m.inner(label)
	m.cache.Add(label, v)

	return v
}

// Func exposes the memoized lookup as a Func.
func (m *Memo) Func() Func {
	return m.Cost
}

// Len returns the number of cached labels.
func (m *Memo) Len() int {
	return m.cache.Len()
}
