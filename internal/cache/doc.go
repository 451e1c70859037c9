// Package cache provides a generic LRU cache with a soft size limit.
//
//	c := cache.New[rune, metrics](512)
//	m := c.GetOrCreate('A', func() metrics { return measure('A') })
//
// When the cache grows past its limit, the least recently used quarter of
// the entries is dropped in one go, so bursts of inserts do not evict on
// every call.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
