// Package schedcache memoizes schedule parsing.
//
// Configuration files tend to repeat the same few schedules many times,
// and a Cache parses each distinct expression once.
package schedcache

import (
	"github.com/bluele/gcache"

	"schedexpr.dev/pkg/schedule"
)

// DefaultSize is the number of expressions a Cache keeps when no size is given.
const DefaultSize = 1024

// Cache is a fixed-size LRU cache of parse and validation results,
// keyed by the expression exactly as given.
// It is safe for concurrent use.
type Cache struct {
	p       *schedule.Parser
	entries gcache.Cache
}

type entry struct {
	cron  string
	err   error
	diags []schedule.Diagnostic
}

// New returns a cache of the given size in front of p.
// A nil p uses a parser that does not log; a size <= 0 uses DefaultSize.
func New(p *schedule.Parser, size int) *Cache {
	if p == nil {
		p = schedule.New()
	}
	if size <= 0 {
		size = DefaultSize
	}
	c := &Cache{p: p}
	c.entries = gcache.New(size).
		LRU().
		LoaderFunc(func(key any) (any, error) {
			expr := key.(string)
			cron, err := c.p.Parse(expr)
			return &entry{cron: cron, err: err, diags: c.p.Validate(expr)}, nil
		}).
		Build()
	return c
}

func (c *Cache) get(expression string) *entry {
	v, err := c.entries.Get(expression)
	if err != nil {
		// The loader never fails.
		panic(err)
	}
	return v.(*entry)
}

// Parse is like (*schedule.Parser).Parse but remembers the result,
// failures included.
func (c *Cache) Parse(expression string) (string, error) {
	e := c.get(expression)
	return e.cron, e.err
}

// Validate is like (*schedule.Parser).Validate but remembers the result.
// The returned slice must not be modified.
func (c *Cache) Validate(expression string) []schedule.Diagnostic {
	return c.get(expression).diags
}

// Len reports the number of cached expressions.
func (c *Cache) Len() int {
	return c.entries.Len(false)
}

// Stats reports how often a lookup was served from the cache.
func (c *Cache) Stats() (hits, misses uint64) {
	return c.entries.HitCount(), c.entries.MissCount()
}
