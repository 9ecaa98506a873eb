// Package cache keeps per-day availability flags in a bounded, expiring
// in-process store and collapses concurrent loads of the same day.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"
)

type DayCache struct {
	lru   *expirable.LRU[string, bool]
	group singleflight.Group
}

func New(size int, ttl time.Duration) *DayCache {
	return &DayCache{
		lru: expirable.NewLRU[string, bool](size, nil, ttl),
	}
}

func (c *DayCache) Get(key string) (bool, bool) {
	return c.lru.Get(key)
}

func (c *DayCache) Remove(key string) {
	c.lru.Remove(key)
}

func (c *DayCache) Len() int {
	return c.lru.Len()
}

// Load returns the cached flag or runs fn once for all concurrent callers of
// key. Only successful loads are stored.
func (c *DayCache) Load(key string, fn func() (bool, error)) (bool, error) {
	if value, ok := c.lru.Get(key); ok {
		return value, nil
	}

	value, err, _ := c.group.Do(key, func() (any, error) {
		if cached, ok := c.lru.Get(key); ok {
			return cached, nil
		}

		loaded, err := fn()
		if err != nil {
			return false, err
		}

		c.lru.Add(key, loaded)

		return loaded, nil
	})
	if err != nil {
		return false, err
	}

	return value.(bool), nil
}
