// Package api implements HTTP handlers for the currency converter service.
package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"converterservice/internal/service"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"failed to fetch exchange rates"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeServiceError maps resolver errors to status codes. Provider failures only ever
// expose the coarse resolver message.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidCurrencyCode),
		errors.Is(err, service.ErrInvalidDate),
		errors.Is(err, service.ErrInvalidAmount):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrUnknownCurrency):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrLoadCurrencies), errors.Is(err, service.ErrFetchRates):
		writeJSON(w, http.StatusBadGateway, ErrorResponse{Error: err.Error()})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "Internal error"})
	}
}

// dateParam reads the optional date query parameter.
func dateParam(r *http.Request) (string, error) {
	date := r.URL.Query().Get("date")
	if !service.IsValidDate(date) {
		return "", service.ErrInvalidDate
	}
	return date, nil
}
