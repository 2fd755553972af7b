package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/mock"
)

type MockFetcher struct {
	mock.Mock
}

func (m *MockFetcher) Fetch(ctx context.Context, ep Endpoint, date string) (Payload, error) {
	args := m.Called(ctx, ep, date)
	p, _ := args.Get(0).(Payload)
	return p, args.Error(1)
}

type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ProviderAttempt(provider, outcome string) {
	m.Called(provider, outcome)
}

func (m *MockRecorder) CacheLookup(hit bool) {
	m.Called(hit)
}

// countingServer is an httptest provider that counts requests and remembers the last path.
type countingServer struct {
	*httptest.Server
	calls    atomic.Int32
	lastPath atomic.Value
}

func newCountingServer(t *testing.T, status int, body string) *countingServer {
	t.Helper()
	cs := &countingServer{}
	cs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cs.calls.Add(1)
		cs.lastPath.Store(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(cs.Close)
	return cs
}

func (cs *countingServer) Calls() int {
	return int(cs.calls.Load())
}

func (cs *countingServer) LastPath() string {
	p, _ := cs.lastPath.Load().(string)
	return p
}

// deadURL returns the URL of a server that has already been shut down, so every
// request to it fails at the transport level.
func deadURL(t *testing.T) string {
	t.Helper()
	srv := httptest.NewServer(http.NotFoundHandler())
	u := srv.URL
	srv.Close()
	return u
}
