// Package testkit provides in-process rate provider stubs for end-to-end tests.
package testkit

import (
	"testing"

	"converterservice/internal/config"
	"converterservice/internal/provider"
)

// Suite is the full four-provider fallback chain, each backed by its own stub.
type Suite struct {
	PrimaryCDN       *ProviderStub
	SecondaryCDN     *ProviderStub
	ExchangeRateHost *ProviderStub
	ExchangeRateAPI  *ProviderStub
}

// NewSuite starts four healthy stubs.
func NewSuite(t testing.TB) *Suite {
	t.Helper()
	return &Suite{
		PrimaryCDN:       NewProviderStub(t, StyleCDN),
		SecondaryCDN:     NewProviderStub(t, StyleCDN),
		ExchangeRateHost: NewProviderStub(t, StyleREST),
		ExchangeRateAPI:  NewProviderStub(t, StyleREST),
	}
}

// Stubs returns the stubs in fallback order.
func (s *Suite) Stubs() []*ProviderStub {
	return []*ProviderStub{s.PrimaryCDN, s.SecondaryCDN, s.ExchangeRateHost, s.ExchangeRateAPI}
}

// ProvidersConfig points every provider URL at the stubs.
func (s *Suite) ProvidersConfig() config.ProvidersConfig {
	return config.ProvidersConfig{
		PrimaryCDNURL:       s.PrimaryCDN.BaseURL(),
		SecondaryCDNURL:     s.SecondaryCDN.BaseURL(),
		ExchangeRateHostURL: s.ExchangeRateHost.BaseURL(),
		ExchangeRateAPIURL:  s.ExchangeRateAPI.BaseURL(),
		TimeoutSec:          5,
	}
}

// Providers builds the production provider descriptors against the stubs.
func (s *Suite) Providers() []provider.Provider {
	return []provider.Provider{
		provider.NewPrimaryCDNProvider(s.PrimaryCDN.BaseURL()),
		provider.NewSecondaryCDNProvider(s.SecondaryCDN.BaseURL()),
		provider.NewExchangeRateHostProvider(s.ExchangeRateHost.BaseURL()),
		provider.NewExchangeRateAPIProvider(s.ExchangeRateAPI.BaseURL()),
	}
}

// SetAll switches every stub to m.
func (s *Suite) SetAll(m Mode) {
	for _, stub := range s.Stubs() {
		stub.SetMode(m)
	}
}

// Hits sums the requests served by every stub.
func (s *Suite) Hits() int {
	total := 0
	for _, stub := range s.Stubs() {
		total += stub.Hits()
	}
	return total
}
