package service

import (
	"errors"
	"regexp"
	"strings"

	"converterservice/internal/provider"
)

// ErrLoadCurrencies is the only error callers see when the directory cannot be resolved.
var ErrLoadCurrencies = errors.New("failed to load currencies")

// ErrFetchRates is the only error callers see when a rate table cannot be resolved.
var ErrFetchRates = errors.New("failed to fetch exchange rates")

// ErrInvalidResponseFormat marks a provider payload without a usable rate object.
// It is logged, never returned.
var ErrInvalidResponseFormat = errors.New("invalid response format")

// ErrInvalidCurrencyCode indicates an empty or malformed currency code.
var ErrInvalidCurrencyCode = errors.New("invalid currency code format")

// ErrInvalidDate indicates a date that is neither "latest" nor YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date format, expected latest or YYYY-MM-DD")

// ErrInvalidAmount indicates an amount that is not a non-negative decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// ErrUnknownCurrency indicates the target currency is absent from the rate table.
var ErrUnknownCurrency = errors.New("unknown target currency")

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidCurrencyCode checks that code is 1 to 10 ASCII letters or digits.
// Crypto tokens in the directory use codes like "1inch", so length and digits are loose.
func IsValidCurrencyCode(code string) bool {
	if len(code) == 0 || len(code) > 10 {
		return false
	}
	for _, c := range strings.ToLower(code) {
		if (c < 'a' || c > 'z') && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// IsValidDate checks that date is empty, "latest", or shaped like YYYY-MM-DD.
// Calendar correctness is left to the providers.
func IsValidDate(date string) bool {
	return date == "" || date == provider.LatestDate || datePattern.MatchString(date)
}
