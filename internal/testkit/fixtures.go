package testkit

import "strings"

// FixtureDate is the date stubs report for latest data.
const FixtureDate = "2024-03-01"

// Names is the currency directory served by CDN stubs.
var Names = map[string]string{
	"usd": "US Dollar",
	"eur": "Euro",
	"gbp": "British Pound",
	"jpy": "Japanese Yen",
}

// usdRates quotes every fixture currency against one US dollar.
var usdRates = map[string]float64{
	"usd": 1,
	"eur": 0.8,
	"gbp": 0.5,
	"jpy": 150,
}

// RatesFor derives the fixture rate table for base by crossing through USD.
func RatesFor(base string) (map[string]float64, bool) {
	pivot, ok := usdRates[strings.ToLower(base)]
	if !ok {
		return nil, false
	}
	out := make(map[string]float64, len(usdRates))
	for code, rate := range usdRates {
		out[code] = rate / pivot
	}
	return out, true
}

// restDocument is the exchangerate-style payload, quoted against upper-case USD.
func restDocument() map[string]any {
	rates := make(map[string]float64, len(usdRates))
	for code, rate := range usdRates {
		rates[strings.ToUpper(code)] = rate
	}
	return map[string]any{"base": "USD", "date": FixtureDate, "rates": rates}
}
