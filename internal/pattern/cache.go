package pattern

import (
	"sync"

	rc "github.com/dgraph-io/ristretto"
)

// CacheConfig sizes the process-wide layout cache.
type CacheConfig struct {
	NumCounters int64
	MaxCost     int64 // one unit per layout
	BufferItems int64
}

var DefaultCacheConfig = CacheConfig{
	NumCounters: 10_000,
	MaxCost:     1_000,
	BufferItems: 64,
}

var (
	cacheOnce sync.Once
	cache     *rc.Cache
)

// layouts returns the shared cache, building it on first use. A nil result
// means the cache could not be built and every Get compiles.
func layouts() *rc.Cache {
	cacheOnce.Do(func() {
		cfg := DefaultCacheConfig
		c, err := rc.NewCache(&rc.Config{
			NumCounters: cfg.NumCounters,
			MaxCost:     cfg.MaxCost,
			BufferItems: cfg.BufferItems,
		})
		if err == nil {
			cache = c
		}
	})
	return cache
}

// Get returns the compiled layout for src, compiling and caching on a miss.
// Ristretto admits entries asynchronously, so two concurrent misses may both
// compile; layouts are immutable and either result is valid.
func Get(src string) (*Layout, error) {
	c := layouts()
	if c != nil {
		if v, ok := c.Get(src); ok {
			if l, ok := v.(*Layout); ok {
				return l, nil
			}
			// unexpected entry shape
			c.Del(src)
		}
	}
	l, err := Compile(src)
	if err != nil {
		return nil, err
	}
	if c != nil {
		c.Set(src, l, 1)
	}
	return l, nil
}
