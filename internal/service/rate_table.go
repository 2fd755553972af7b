package service

import (
	"encoding/json"
	"sort"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// RateTable is the set of rates for one base currency on an effective date.
// Rates are units of target per one unit of base, keyed by lower-case code.
type RateTable struct {
	Date  string
	Base  string
	Rates map[string]float64
}

// MarshalJSON encodes the table as {"date": ..., "<base>": {<target>: rate}}.
func (t RateTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]any{
		"date": t.Date,
		t.Base: t.Rates,
	})
}

// Rate returns the rate from the table's base to target.
func (t RateTable) Rate(target string) (float64, bool) {
	rate, ok := t.Rates[target]
	if !ok && target == t.Base {
		return 1, true
	}
	return rate, ok
}

// Currency is one entry of the currency directory.
type Currency struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PopularCurrency is a currency shown ahead of the full directory.
type PopularCurrency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// Conversion is the result of converting Amount of From into To.
type Conversion struct {
	From   string
	To     string
	Date   string
	Amount decimal.Decimal
	Rate   decimal.Decimal
	Result decimal.Decimal
}

func sortedCurrencies(dir map[string]string, keep func(code, name string) bool) []Currency {
	out := make([]Currency, 0, len(dir))
	for code, name := range dir {
		if keep(code, name) {
			out = append(out, Currency{Code: code, Name: name})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
