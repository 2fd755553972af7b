package api

import (
	"context"

	"converterservice/internal/service"
)

// mockResolver implements service.ResolverInterface for testing.
type mockResolver struct {
	directoryFunc func(ctx context.Context, date string) (map[string]string, error)
	ratesFunc     func(ctx context.Context, base, date string) (*service.RateTable, error)
	convertFunc   func(ctx context.Context, from, to, amount, date string) (*service.Conversion, error)
	searchFunc    func(ctx context.Context, term, date string) ([]service.Currency, error)
	popular       []service.PopularCurrency
}

func (m *mockResolver) ResolveCurrencyDirectory(ctx context.Context, date string) (map[string]string, error) {
	return m.directoryFunc(ctx, date)
}

func (m *mockResolver) ResolveRates(ctx context.Context, base, date string) (*service.RateTable, error) {
	return m.ratesFunc(ctx, base, date)
}

func (m *mockResolver) Convert(ctx context.Context, from, to, amount, date string) (*service.Conversion, error) {
	return m.convertFunc(ctx, from, to, amount, date)
}

func (m *mockResolver) SearchCurrencies(ctx context.Context, term, date string) ([]service.Currency, error) {
	return m.searchFunc(ctx, term, date)
}

func (m *mockResolver) PopularCurrencies() []service.PopularCurrency {
	return m.popular
}
