package testkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
)

// Mode selects how a ProviderStub answers.
type Mode int32

const (
	// ModeOK serves well-formed fixture data.
	ModeOK Mode = iota
	// ModeDown answers every request with 503.
	ModeDown
	// ModeGarbage answers 200 with a body that is not JSON.
	ModeGarbage
)

// Style is the response shape a stub imitates.
type Style int

const (
	// StyleCDN serves /{date}/currencies.json and /{date}/currencies/{base}.json.
	StyleCDN Style = iota
	// StyleREST serves the flat {base, date, rates} document on every path.
	StyleREST
)

// ProviderStub is an in-process rate provider backed by the fixture tables.
type ProviderStub struct {
	srv   *httptest.Server
	style Style
	mode  atomic.Int32
	hits  atomic.Int32

	mu    sync.Mutex
	paths []string
}

// NewProviderStub starts a stub and closes it when the test ends.
func NewProviderStub(t testing.TB, style Style) *ProviderStub {
	t.Helper()
	s := &ProviderStub{style: style}
	s.srv = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.srv.Close)
	return s
}

// BaseURL is the provider base URL to configure. CDN stubs carry the date placeholder.
func (s *ProviderStub) BaseURL() string {
	if s.style == StyleCDN {
		return s.srv.URL + "/{date}"
	}
	return s.srv.URL + "/latest"
}

// SetMode switches the stub's behavior for subsequent requests.
func (s *ProviderStub) SetMode(m Mode) {
	s.mode.Store(int32(m))
}

// Hits is the number of requests served so far.
func (s *ProviderStub) Hits() int {
	return int(s.hits.Load())
}

// Paths returns every request path in arrival order.
func (s *ProviderStub) Paths() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.paths...)
}

func (s *ProviderStub) serve(w http.ResponseWriter, r *http.Request) {
	s.hits.Add(1)
	s.mu.Lock()
	s.paths = append(s.paths, r.URL.Path)
	s.mu.Unlock()

	switch Mode(s.mode.Load()) {
	case ModeDown:
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
		return
	case ModeGarbage:
		_, _ = w.Write([]byte("<html>maintenance</html>"))
		return
	}

	if s.style == StyleREST {
		writeBody(w, restDocument())
		return
	}
	s.serveCDN(w, r.URL.Path)
}

func (s *ProviderStub) serveCDN(w http.ResponseWriter, path string) {
	// /{date}/currencies.json or /{date}/currencies/{base}.json
	parts := strings.Split(strings.Trim(path, "/"), "/")
	switch {
	case len(parts) == 2 && parts[1] == "currencies.json":
		writeBody(w, Names)
	case len(parts) == 3 && parts[1] == "currencies":
		base := strings.TrimSuffix(parts[2], ".json")
		table, ok := RatesFor(base)
		if !ok {
			http.NotFound(w, nil)
			return
		}
		date := parts[0]
		if date == "latest" {
			date = FixtureDate
		}
		writeBody(w, map[string]any{"date": date, base: table})
	default:
		http.NotFound(w, nil)
	}
}

func writeBody(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}
