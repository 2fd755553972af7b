// Package integration exercises the full resolution pipeline against stub providers.
package integration

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"converterservice/internal/cache"
	"converterservice/internal/metrics"
	"converterservice/internal/provider"
	"converterservice/internal/service"
	"converterservice/internal/testkit"
)

// fakeClock is a manually advanced time source shared by the cache and the resolver.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// stack is one fully wired resolver with the collaborators tests inspect.
type stack struct {
	suite    *testkit.Suite
	resolver *service.RateResolver
	metrics  *metrics.Metrics
	clock    *fakeClock
}

// newStack wires stubs → facade → cache → resolver the same way the app does.
func newStack(t *testing.T) *stack {
	t.Helper()

	suite := testkit.NewSuite(t)
	m := metrics.NewMetrics()
	clock := newFakeClock()
	logger := zap.NewNop().Sugar()

	facade := provider.NewProviderFacade(
		suite.Providers(),
		logger,
		provider.WithHTTPClient(provider.NewHTTPClient(suite.ProvidersConfig().TimeoutSec)),
		provider.WithRecorder(m),
	)
	store := cache.NewMemory[provider.Payload](time.Hour, clock.Now)
	fetcher := provider.NewCachedFetcher(facade, store, m)

	return &stack{
		suite:    suite,
		resolver: service.NewRateResolver(fetcher, logger, service.WithClock(clock.Now)),
		metrics:  m,
		clock:    clock,
	}
}

// testContext returns a context with a 30-second deadline tied to the test's cleanup.
func testContext(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	t.Cleanup(cancel)
	return ctx
}
