// Package cache keeps parsed source values for the lifetime of its owner.
//
// A value is stored only after its fetch succeeded, so a failed fetch is
// attempted again by the next caller. Concurrent callers asking for the same
// key share a single in-flight fetch.
package cache

import (
	"context"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

type Result string

const (
	ResultHit   Result = "hit"
	ResultMiss  Result = "miss"
	ResultError Result = "error"
)

// Called after every lookup, e.g. to feed metrics
type Observer func(key string, result Result)

type entry struct {
	mu    sync.Mutex
	ok    bool
	value any
}

type Cache struct {
	entries  *xsync.MapOf[string, *entry]
	observer Observer
}

func New() *Cache {
	return &Cache{
		entries: xsync.NewMapOf[string, *entry](),
	}
}

// Set the lookup observer. Not safe to call while the cache is in use.
func (c *Cache) SetObserver(observer Observer) {
	c.observer = observer
}

// Number of keys holding a value
func (c *Cache) Len() int {
	n := 0
	c.entries.Range(func(_ string, e *entry) bool {
		e.mu.Lock()
		if e.ok {
			n++
		}
		e.mu.Unlock()
		return true
	})
	return n
}

func (c *Cache) observe(key string, result Result) {
	if c.observer != nil {
		c.observer(key, result)
	}
}

// Fetch returns the cached value for key, calling fn to produce it on a
// miss. fn errors are returned as-is and leave the key empty.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(context.Context) (T, error)) (T, error) {
	e, _ := c.entries.LoadOrStore(key, &entry{})

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.ok {
		if v, ok := e.value.(T); ok {
			c.observe(key, ResultHit)
			return v, nil
		}
	}

	var zero T
	if err := ctx.Err(); err != nil {
		c.observe(key, ResultError)
		return zero, err
	}

	v, err := fn(ctx)
	if err != nil {
		c.observe(key, ResultError)
		return zero, err
	}
	e.value = v
	e.ok = true
	c.observe(key, ResultMiss)
	return v, nil
}
