package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"converterservice/internal/service"
)

// CurrencyListResponse represents search results over the currency directory
type CurrencyListResponse struct {
	Currencies []service.Currency `json:"currencies"`
}

// PopularResponse represents the popular currencies list
type PopularResponse struct {
	Currencies []service.PopularCurrency `json:"currencies"`
}

// RatesResponse is a documentation-only schema for swag; no handler returns it.
// HandleGetRates writes service.RateTable, whose rate object is keyed by the requested
// base code. usd stands in for that key here.
type RatesResponse struct {
	Date string             `json:"date" example:"2024-01-01"`
	USD  map[string]float64 `json:"usd"`
}

// ConversionResponse represents the result of a conversion
type ConversionResponse struct {
	From   string `json:"from" example:"usd"`
	To     string `json:"to" example:"eur"`
	Date   string `json:"date" example:"2024-01-01"`
	Amount string `json:"amount" example:"100"`
	Rate   string `json:"rate" example:"0.9"`
	Result string `json:"result" example:"90.00"`
}

// HandleGetCurrencies godoc
// @Summary Currency directory
// @Description Returns the lower-case code to display name directory. Served from cache when fresh.
// @Tags currencies
// @Produce json
// @Param date query string false "latest or YYYY-MM-DD" default(latest)
// @Success 200 {object} map[string]string "Currency directory"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 502 {object} ErrorResponse "failed to load currencies"
// @Router /currencies [get]
func HandleGetCurrencies(svc service.ResolverInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := dateParam(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		dir, err := svc.ResolveCurrencyDirectory(r.Context(), date)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dir)
	}
}

// HandleSearchCurrencies godoc
// @Summary Search the currency directory
// @Description Case-insensitive substring match on code or name, sorted by code. An empty query returns every currency.
// @Tags currencies
// @Produce json
// @Param q query string false "Search term" example(dollar)
// @Param date query string false "latest or YYYY-MM-DD" default(latest)
// @Success 200 {object} CurrencyListResponse "Matching currencies"
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 502 {object} ErrorResponse "failed to load currencies"
// @Router /currencies/search [get]
func HandleSearchCurrencies(svc service.ResolverInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date, err := dateParam(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		list, err := svc.SearchCurrencies(r.Context(), r.URL.Query().Get("q"), date)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, CurrencyListResponse{Currencies: list})
	}
}

// HandleGetPopularCurrencies godoc
// @Summary Popular currencies
// @Description Fixed list of commonly used currencies with their symbols.
// @Tags currencies
// @Produce json
// @Success 200 {object} PopularResponse
// @Router /currencies/popular [get]
func HandleGetPopularCurrencies(svc service.ResolverInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, PopularResponse{Currencies: svc.PopularCurrencies()})
	}
}

// HandleGetRates godoc
// @Summary Rate table for a base currency
// @Description Returns {"date": ..., "<base>": {"<target>": rate}}. Historical dates may degrade to latest data when only the REST fallbacks answer.
// @Tags rates
// @Produce json
// @Param base path string true "Base currency code, any case" example(usd)
// @Param date query string false "latest or YYYY-MM-DD" default(latest)
// @Success 200 {object} RatesResponse "Rate table"
// @Failure 400 {object} ErrorResponse "Invalid currency code or date"
// @Failure 502 {object} ErrorResponse "failed to fetch exchange rates"
// @Router /rates/{base} [get]
func HandleGetRates(svc service.ResolverInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		base := chi.URLParam(r, "base")
		if !service.IsValidCurrencyCode(base) {
			writeServiceError(w, service.ErrInvalidCurrencyCode)
			return
		}
		date, err := dateParam(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		table, err := svc.ResolveRates(r.Context(), base, date)
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, table)
	}
}

// HandleConvert godoc
// @Summary Convert an amount
// @Description Converts amount of from into to, rounded to two decimal places. Thousands separators are ignored.
// @Tags rates
// @Produce json
// @Param from query string true "Source currency code" example(usd)
// @Param to query string true "Target currency code" example(eur)
// @Param amount query string false "Amount" default(1)
// @Param date query string false "latest or YYYY-MM-DD" default(latest)
// @Success 200 {object} ConversionResponse "Conversion result"
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Target currency not in rate table"
// @Failure 502 {object} ErrorResponse "failed to fetch exchange rates"
// @Router /convert [get]
func HandleConvert(svc service.ResolverInterface) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		from := strings.TrimSpace(q.Get("from"))
		to := strings.TrimSpace(q.Get("to"))
		if !service.IsValidCurrencyCode(from) || !service.IsValidCurrencyCode(to) {
			writeServiceError(w, service.ErrInvalidCurrencyCode)
			return
		}
		amount := q.Get("amount")
		if amount == "" {
			amount = "1"
		}
		date, err := dateParam(r)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		conv, err := svc.Convert(r.Context(), from, to, amount, date)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, ConversionResponse{
			From:   conv.From,
			To:     conv.To,
			Date:   conv.Date,
			Amount: conv.Amount.String(),
			Rate:   conv.Rate.String(),
			Result: conv.Result.StringFixed(2),
		})
	}
}
