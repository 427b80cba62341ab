// Package cache provides a small generic LRU cache used to memoize
// color conversions.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// # Eviction
//
// The capacity is a soft limit: once it is exceeded, the least recently
// used quarter of the entries is dropped in one pass, so eviction cost is
// amortized over many insertions.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
