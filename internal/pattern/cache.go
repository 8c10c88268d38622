package pattern

import "sync"

// Cache memoizes compiled matchers for the duration of one batch
// operation, so a pattern recycled across many vector elements compiles
// once. Keys are the specification text plus compile options. The cache
// is scoped to its owning batch and simply dropped when the batch
// completes, so there is no eviction. Lock-free reads via sync.Map keep
// the hit path cheap when elements are processed in parallel.
type Cache struct {
	cache sync.Map // map[cacheKey]*Matcher
}

type cacheKey struct {
	spec string
	opts Opts
}

// NewCache creates an empty matcher cache.
func NewCache() *Cache {
	return &Cache{}
}

// Get returns a compiled matcher for spec, compiling and caching on the
// first request. A specification that fails to compile is not cached;
// the error recurs on every element that names it.
func (c *Cache) Get(spec string, opts Opts) (*Matcher, error) {
	key := cacheKey{spec: spec, opts: opts}
	if m, ok := c.cache.Load(key); ok {
		return m.(*Matcher), nil
	}

	tracer().Debugf("pattern cache miss, compiling %q", spec)
	m, err := Compile(spec, opts)
	if err != nil {
		return nil, err
	}

	// Another goroutine may have compiled the same spec concurrently;
	// keep whichever matcher landed first.
	if existing, loaded := c.cache.LoadOrStore(key, m); loaded {
		return existing.(*Matcher), nil
	}
	return m, nil
}
