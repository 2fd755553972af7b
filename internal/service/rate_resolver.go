// Package service resolves currency directories, rate tables and conversions on top of
// the provider fetch pipeline.
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"converterservice/internal/provider"
)

// ResolverInterface defines the operations the HTTP layer consumes.
type ResolverInterface interface {
	ResolveCurrencyDirectory(ctx context.Context, date string) (map[string]string, error)
	ResolveRates(ctx context.Context, base, date string) (*RateTable, error)
	Convert(ctx context.Context, from, to, amount, date string) (*Conversion, error)
	SearchCurrencies(ctx context.Context, term, date string) ([]Currency, error)
	PopularCurrencies() []PopularCurrency
}

var _ ResolverInterface = (*RateResolver)(nil)

// RateResolver turns normalized provider payloads into directories and rate tables.
// All failures are logged and collapsed into ErrLoadCurrencies or ErrFetchRates.
type RateResolver struct {
	fetcher provider.Fetcher
	log     *zap.SugaredLogger
	now     func() time.Time
}

// ResolverOption configures a RateResolver.
type ResolverOption func(*RateResolver)

// WithClock sets the clock used for the fallback effective date.
func WithClock(now func() time.Time) ResolverOption {
	return func(r *RateResolver) {
		if now != nil {
			r.now = now
		}
	}
}

// NewRateResolver creates a resolver over fetcher, normally a cached provider facade.
func NewRateResolver(fetcher provider.Fetcher, logger *zap.SugaredLogger, opts ...ResolverOption) *RateResolver {
	r := &RateResolver{
		fetcher: fetcher,
		log:     logger,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ResolveCurrencyDirectory returns the lower-cased code→name directory for date.
func (s *RateResolver) ResolveCurrencyDirectory(ctx context.Context, date string) (map[string]string, error) {
	date = provider.NormalizeDate(date)

	payload, err := s.fetcher.Fetch(ctx, provider.CurrenciesEndpoint(), date)
	if err != nil {
		s.log.Errorw("Error loading currencies", "date", date, "error", err)
		return nil, ErrLoadCurrencies
	}

	dir := directoryFromPayload(payload)
	if len(dir) == 0 {
		s.log.Errorw("Error loading currencies", "date", date, "error", "empty currency directory")
		return nil, ErrLoadCurrencies
	}
	return dir, nil
}

// ResolveRates returns the rate table of base on date. The code is case-insensitive.
func (s *RateResolver) ResolveRates(ctx context.Context, base, date string) (*RateTable, error) {
	code := strings.ToLower(strings.TrimSpace(base))
	if code == "" {
		s.log.Errorw("Error fetching exchange rates", "base", base, "error", ErrInvalidCurrencyCode)
		return nil, ErrFetchRates
	}
	date = provider.NormalizeDate(date)

	payload, err := s.fetcher.Fetch(ctx, provider.RatesEndpoint(code), date)
	if err != nil {
		s.log.Errorw("Error fetching exchange rates", "base", code, "date", date, "error", err)
		return nil, ErrFetchRates
	}

	table, err := parseRateTable(payload, code, s.today())
	if err != nil {
		s.log.Errorw("Error fetching exchange rates", "base", code, "date", date, "error", err)
		return nil, ErrFetchRates
	}
	return table, nil
}

func (s *RateResolver) today() string {
	return s.now().UTC().Format(dateLayout)
}

// directoryFromPayload unwraps an optional "currencies" field. Non-string values come from
// the REST fallbacks, which list rates instead of names; the upper-cased code stands in.
func directoryFromPayload(payload provider.Payload) map[string]string {
	src := map[string]any(payload)
	if wrapped, ok := payload["currencies"].(map[string]any); ok {
		src = wrapped
	}

	dir := make(map[string]string, len(src))
	for code, v := range src {
		code = strings.ToLower(code)
		if name, ok := v.(string); ok && name != "" {
			dir[code] = name
			continue
		}
		dir[code] = strings.ToUpper(code)
	}
	return dir
}

func parseRateTable(payload provider.Payload, base, today string) (*RateTable, error) {
	if payload == nil {
		return nil, ErrInvalidResponseFormat
	}

	raw := payload["rates"]
	if raw == nil {
		raw = payload[base]
	}
	m, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: neither rates nor %s present", ErrInvalidResponseFormat, base)
	}

	rates := make(map[string]float64, len(m))
	for code, v := range m {
		if rate, ok := v.(float64); ok {
			rates[strings.ToLower(code)] = rate
		}
	}
	if len(rates) == 0 {
		return nil, fmt.Errorf("%w: no numeric rates for %s", ErrInvalidResponseFormat, base)
	}

	date, _ := payload["date"].(string)
	if date == "" {
		date = today
	}

	return &RateTable{Date: date, Base: base, Rates: rates}, nil
}
