package gate

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

// cachedHoldingsEntry wraps a snapshot with version metadata for cache invalidation
type cachedHoldingsEntry struct {
	Version  string
	Holdings domain.HoldingsSnapshot
	CachedAt time.Time
}

// holdingsCache is an in-memory LRU of recent snapshots keyed by canonical
// address, with time-based expiration. A nil cache is valid and never hits.
type holdingsCache struct {
	lru *expirable.LRU[string, *cachedHoldingsEntry]
}

// newHoldingsCache returns nil when size is not positive, disabling caching
func newHoldingsCache(size int, ttl time.Duration) *holdingsCache {
	if size <= 0 || ttl <= 0 {
		return nil
	}
	return &holdingsCache{
		lru: expirable.NewLRU[string, *cachedHoldingsEntry](size, nil, ttl),
	}
}

// Get returns the cached snapshot for address and when it was read from the
// ledger. Entries written under another schema version are dropped.
func (c *holdingsCache) Get(address string) (domain.HoldingsSnapshot, time.Time, bool) {
	if c == nil {
		return domain.HoldingsSnapshot{}, time.Time{}, false
	}
	entry, found := c.lru.Get(address)
	if !found {
		return domain.HoldingsSnapshot{}, time.Time{}, false
	}
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(address)
		return domain.HoldingsSnapshot{}, time.Time{}, false
	}
	return entry.Holdings, entry.CachedAt, true
}

// Set stores a snapshot for address read at asOf
func (c *holdingsCache) Set(address string, holdings domain.HoldingsSnapshot, asOf time.Time) {
	if c == nil {
		return
	}
	c.lru.Add(address, &cachedHoldingsEntry{
		Version:  CacheSchemaVersion,
		Holdings: holdings,
		CachedAt: asOf,
	})
}

// Invalidate removes address from the cache
func (c *holdingsCache) Invalidate(address string) {
	if c == nil {
		return
	}
	c.lru.Remove(address)
}

// Len returns the number of cached entries
func (c *holdingsCache) Len() int {
	if c == nil {
		return 0
	}
	return c.lru.Len()
}
