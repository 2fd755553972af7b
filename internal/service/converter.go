package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
)

var popularCurrencies = []PopularCurrency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
	{Code: "CNY", Symbol: "¥", Name: "Chinese Yuan"},
	{Code: "INR", Symbol: "₹", Name: "Indian Rupee"},
	{Code: "SGD", Symbol: "S$", Name: "Singapore Dollar"},
	{Code: "AED", Symbol: "د.إ", Name: "UAE Dirham"},
	{Code: "NZD", Symbol: "NZ$", Name: "New Zealand Dollar"},
	{Code: "BRL", Symbol: "R$", Name: "Brazilian Real"},
	{Code: "ZAR", Symbol: "R", Name: "South African Rand"},
	{Code: "BTC", Symbol: "₿", Name: "Bitcoin"},
	{Code: "ETH", Symbol: "Ξ", Name: "Ethereum"},
}

// resultPlaces is the number of decimal places a conversion result is rounded to.
const resultPlaces = 2

// Convert converts amount of from into to using the rate table of from on date.
// Thousands separators in amount are ignored.
func (s *RateResolver) Convert(ctx context.Context, from, to, amount, date string) (*Conversion, error) {
	amt, err := ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	if from == "" || to == "" {
		return nil, ErrInvalidCurrencyCode
	}

	table, err := s.ResolveRates(ctx, from, date)
	if err != nil {
		return nil, err
	}

	rate, ok := table.Rate(to)
	if !ok {
		s.log.Warnw("Target currency missing from rate table", "from", from, "to", to, "date", table.Date)
		return nil, ErrUnknownCurrency
	}

	r := decimal.NewFromFloat(rate)
	return &Conversion{
		From:   from,
		To:     to,
		Date:   table.Date,
		Amount: amt,
		Rate:   r,
		Result: amt.Mul(r).Round(resultPlaces),
	}, nil
}

// SearchCurrencies returns directory entries whose code or name contains term,
// case-insensitively, sorted by code. An empty term matches everything.
func (s *RateResolver) SearchCurrencies(ctx context.Context, term, date string) ([]Currency, error) {
	dir, err := s.ResolveCurrencyDirectory(ctx, date)
	if err != nil {
		return nil, err
	}

	term = strings.ToLower(strings.TrimSpace(term))
	return sortedCurrencies(dir, func(code, name string) bool {
		return term == "" ||
			strings.Contains(strings.ToLower(code), term) ||
			strings.Contains(strings.ToLower(name), term)
	}), nil
}

// PopularCurrencies returns the fixed list of commonly used currencies.
func (s *RateResolver) PopularCurrencies() []PopularCurrency {
	out := make([]PopularCurrency, len(popularCurrencies))
	copy(out, popularCurrencies)
	return out
}

// ParseAmount parses a non-negative decimal amount, ignoring "," separators.
func ParseAmount(amount string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(amount), ",", "")
	if cleaned == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
