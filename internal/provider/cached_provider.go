package provider

import (
	"context"

	"converterservice/internal/cache"
)

var _ Fetcher = (*CachedFetcherDecorator)(nil)

// CachedFetcherDecorator serves fresh results from an in-memory cache keyed by
// (endpoint, date) and fills it from the wrapped Fetcher on a miss.
type CachedFetcherDecorator struct {
	next     Fetcher
	cache    *cache.Memory[Payload]
	recorder Recorder
}

// NewCachedFetcher wraps next with store. The store is owned by the caller.
func NewCachedFetcher(next Fetcher, store *cache.Memory[Payload], recorder Recorder) *CachedFetcherDecorator {
	if recorder == nil {
		recorder = nopRecorder{}
	}
	return &CachedFetcherDecorator{
		next:     next,
		cache:    store,
		recorder: recorder,
	}
}

// CacheKey returns the key a (endpoint, date) pair is cached under.
func CacheKey(ep Endpoint, date string) string {
	return ep.Path() + "-" + NormalizeDate(date)
}

// Fetch returns the cached payload when fresh; otherwise it fetches and stores the result.
// Failures are never cached.
func (c *CachedFetcherDecorator) Fetch(ctx context.Context, ep Endpoint, date string) (Payload, error) {
	if c.cache == nil {
		return c.next.Fetch(ctx, ep, date)
	}

	key := CacheKey(ep, date)
	if payload, ok := c.cache.Get(key); ok {
		c.recorder.CacheLookup(true)
		return payload, nil
	}
	c.recorder.CacheLookup(false)

	payload, err := c.next.Fetch(ctx, ep, date)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, payload)
	return payload, nil
}
