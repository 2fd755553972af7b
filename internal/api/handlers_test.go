package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"converterservice/internal/service"
)

func withURLParam(req *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp ErrorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return resp.Error
}

func TestHandleGetCurrencies(t *testing.T) {
	t.Run("returns directory", func(t *testing.T) {
		var gotDate string
		svc := &mockResolver{
			directoryFunc: func(ctx context.Context, date string) (map[string]string, error) {
				gotDate = date
				return map[string]string{"usd": "US Dollar"}, nil
			},
		}

		req := httptest.NewRequest(http.MethodGet, "/currencies?date=2024-01-01", nil)
		w := httptest.NewRecorder()
		HandleGetCurrencies(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		if gotDate != "2024-01-01" {
			t.Errorf("Expected date 2024-01-01, got %s", gotDate)
		}
		var dir map[string]string
		if err := json.NewDecoder(w.Body).Decode(&dir); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if dir["usd"] != "US Dollar" {
			t.Errorf("Expected usd=US Dollar, got %v", dir)
		}
	})

	t.Run("provider failure returns coarse 502", func(t *testing.T) {
		svc := &mockResolver{
			directoryFunc: func(ctx context.Context, date string) (map[string]string, error) {
				return nil, service.ErrLoadCurrencies
			},
		}

		w := httptest.NewRecorder()
		HandleGetCurrencies(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/currencies", nil))

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected status 502, got %d", w.Code)
		}
		if msg := decodeError(t, w); msg != "failed to load currencies" {
			t.Errorf("Expected coarse message, got %q", msg)
		}
	})

	t.Run("malformed date returns 400", func(t *testing.T) {
		svc := &mockResolver{}

		w := httptest.NewRecorder()
		HandleGetCurrencies(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/currencies?date=yesterday", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}

func TestHandleSearchCurrencies(t *testing.T) {
	svc := &mockResolver{
		searchFunc: func(ctx context.Context, term, date string) ([]service.Currency, error) {
			if term != "dollar" {
				t.Errorf("Expected term dollar, got %s", term)
			}
			return []service.Currency{{Code: "usd", Name: "US Dollar"}}, nil
		},
	}

	w := httptest.NewRecorder()
	HandleSearchCurrencies(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/currencies/search?q=dollar", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	var resp CurrencyListResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Currencies) != 1 || resp.Currencies[0].Code != "usd" {
		t.Errorf("Unexpected currencies: %+v", resp.Currencies)
	}
}

func TestHandleGetPopularCurrencies(t *testing.T) {
	svc := &mockResolver{popular: []service.PopularCurrency{{Code: "USD", Symbol: "$", Name: "US Dollar"}}}

	w := httptest.NewRecorder()
	HandleGetPopularCurrencies(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/currencies/popular", nil))

	var resp PopularResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(resp.Currencies) != 1 || resp.Currencies[0].Symbol != "$" {
		t.Errorf("Unexpected popular list: %+v", resp.Currencies)
	}
}

func TestHandleGetRates(t *testing.T) {
	t.Run("returns table keyed by base", func(t *testing.T) {
		svc := &mockResolver{
			ratesFunc: func(ctx context.Context, base, date string) (*service.RateTable, error) {
				if base != "USD" || date != "2024-01-01" {
					t.Errorf("Unexpected args base=%s date=%s", base, date)
				}
				return &service.RateTable{Date: "2024-01-01", Base: "usd", Rates: map[string]float64{"eur": 0.9}}, nil
			},
		}

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/rates/USD?date=2024-01-01", nil), "base", "USD")
		w := httptest.NewRecorder()
		HandleGetRates(svc).ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var body map[string]json.RawMessage
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if string(body["date"]) != `"2024-01-01"` {
			t.Errorf("Unexpected date %s", body["date"])
		}
		if string(body["usd"]) != `{"eur":0.9}` {
			t.Errorf("Unexpected rates %s", body["usd"])
		}
	})

	t.Run("invalid base returns 400", func(t *testing.T) {
		svc := &mockResolver{}

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/rates/u$d", nil), "base", "u$d")
		w := httptest.NewRecorder()
		HandleGetRates(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("fetch failure returns 502", func(t *testing.T) {
		svc := &mockResolver{
			ratesFunc: func(ctx context.Context, base, date string) (*service.RateTable, error) {
				return nil, service.ErrFetchRates
			},
		}

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/rates/usd", nil), "base", "usd")
		w := httptest.NewRecorder()
		HandleGetRates(svc).ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Errorf("Expected status 502, got %d", w.Code)
		}
		if msg := decodeError(t, w); msg != "failed to fetch exchange rates" {
			t.Errorf("Expected coarse message, got %q", msg)
		}
	})
}

func TestHandleConvert(t *testing.T) {
	t.Run("converts with default amount", func(t *testing.T) {
		svc := &mockResolver{
			convertFunc: func(ctx context.Context, from, to, amount, date string) (*service.Conversion, error) {
				if amount != "1" {
					t.Errorf("Expected default amount 1, got %s", amount)
				}
				return &service.Conversion{
					From:   "usd",
					To:     "eur",
					Date:   "2024-01-01",
					Amount: decimal.NewFromInt(1),
					Rate:   decimal.RequireFromString("0.9"),
					Result: decimal.RequireFromString("0.9"),
				}, nil
			},
		}

		w := httptest.NewRecorder()
		HandleConvert(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/convert?from=USD&to=EUR", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}
		var resp ConversionResponse
		if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if resp.Result != "0.90" || resp.Rate != "0.9" || resp.Amount != "1" {
			t.Errorf("Unexpected conversion %+v", resp)
		}
	})

	t.Run("missing currency returns 400", func(t *testing.T) {
		w := httptest.NewRecorder()
		HandleConvert(&mockResolver{}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/convert?from=usd", nil))

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("errors are mapped", func(t *testing.T) {
		cases := map[error]int{
			service.ErrInvalidAmount:   http.StatusBadRequest,
			service.ErrUnknownCurrency: http.StatusNotFound,
			service.ErrFetchRates:      http.StatusBadGateway,
			context.Canceled:           http.StatusInternalServerError,
		}
		for svcErr, want := range cases {
			svc := &mockResolver{
				convertFunc: func(ctx context.Context, from, to, amount, date string) (*service.Conversion, error) {
					return nil, svcErr
				},
			}
			w := httptest.NewRecorder()
			HandleConvert(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/convert?from=usd&to=eur&amount=5", nil))
			if w.Code != want {
				t.Errorf("%v: expected status %d, got %d", svcErr, want, w.Code)
			}
		}
	})
}

func TestHandleHealth(t *testing.T) {
	w := httptest.NewRecorder()
	HandleHealthz().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK || w.Body.String() != "OK" {
		t.Errorf("Unexpected healthz response %d %q", w.Code, w.Body.String())
	}

	ready := &mockResolver{
		directoryFunc: func(ctx context.Context, date string) (map[string]string, error) {
			return map[string]string{"usd": "US Dollar"}, nil
		},
	}
	w = httptest.NewRecorder()
	HandleReadyz(ready).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	notReady := &mockResolver{
		directoryFunc: func(ctx context.Context, date string) (map[string]string, error) {
			return nil, service.ErrLoadCurrencies
		},
	}
	w = httptest.NewRecorder()
	HandleReadyz(notReady).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("Expected status 503, got %d", w.Code)
	}
}

func TestRatesResponse_MatchesRateTableShape(t *testing.T) {
	table := service.RateTable{Date: "2024-01-01", Base: "usd", Rates: map[string]float64{"eur": 0.9}}
	doc := RatesResponse{Date: "2024-01-01", USD: map[string]float64{"eur": 0.9}}

	got, err := json.Marshal(table)
	if err != nil {
		t.Fatalf("Failed to marshal rate table: %v", err)
	}
	want, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Failed to marshal schema: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Documented schema %s does not match served body %s", want, got)
	}
}
