// Package provider fetches currency directories and rate tables from remote providers,
// falling back through a fixed priority list and caching normalized results.
package provider

import (
	"context"
	"errors"
	"net/http"
	"strings"
)

// LatestDate is the date token meaning "most recent data".
const LatestDate = "latest"

// ErrAllProvidersFailed is returned when no provider produced a usable response.
var ErrAllProvidersFailed = errors.New("all providers failed")

// Payload is a decoded JSON object in normalized shape.
type Payload map[string]any

// Fetcher resolves an endpoint for a date into a normalized payload.
type Fetcher interface {
	Fetch(ctx context.Context, ep Endpoint, date string) (Payload, error)
}

// HTTPClient is the subset of *http.Client used to reach providers.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Recorder receives fetch pipeline events. *metrics.Metrics satisfies it.
type Recorder interface {
	ProviderAttempt(provider, outcome string)
	CacheLookup(hit bool)
}

type nopRecorder struct{}

func (nopRecorder) ProviderAttempt(string, string) {}
func (nopRecorder) CacheLookup(bool)               {}

// Endpoint identifies either the currency directory or the rate table of one base currency.
type Endpoint struct {
	base string
}

// CurrenciesEndpoint is the full code→name directory.
func CurrenciesEndpoint() Endpoint {
	return Endpoint{}
}

// RatesEndpoint is the rate table for base. The code is lower-cased.
func RatesEndpoint(base string) Endpoint {
	return Endpoint{base: strings.ToLower(strings.TrimSpace(base))}
}

// IsDirectory reports whether the endpoint is the currency directory.
func (e Endpoint) IsDirectory() bool {
	return e.base == ""
}

// Base returns the lower-cased base currency code, or "" for the directory.
func (e Endpoint) Base() string {
	return e.base
}

// Path returns the provider-native request path.
func (e Endpoint) Path() string {
	if e.IsDirectory() {
		return "/currencies.json"
	}
	return "/currencies/" + e.base + ".json"
}

func (e Endpoint) String() string {
	return e.Path()
}

// NormalizeDate maps an empty date to LatestDate.
func NormalizeDate(date string) string {
	date = strings.TrimSpace(date)
	if date == "" {
		return LatestDate
	}
	return date
}
