package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Outcomes reported to the Recorder for each provider attempt.
const (
	OutcomeSuccess       = "success"
	OutcomeNetworkError  = "network_error"
	OutcomeBadStatus     = "bad_status"
	OutcomeDecodeError   = "decode_error"
	OutcomeTransformFail = "transform_error"
)

var _ Fetcher = (*ProviderFacade)(nil)

// ProviderFacade tries providers strictly in order and returns the first normalized response.
type ProviderFacade struct {
	providers []Provider
	client    HTTPClient
	log       *zap.SugaredLogger
	recorder  Recorder
}

// FacadeOption configures a ProviderFacade.
type FacadeOption func(*ProviderFacade)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c HTTPClient) FacadeOption {
	return func(f *ProviderFacade) { f.client = c }
}

// WithRecorder reports attempts to r.
func WithRecorder(r Recorder) FacadeOption {
	return func(f *ProviderFacade) {
		if r != nil {
			f.recorder = r
		}
	}
}

// NewProviderFacade creates a facade over providers, tried in the given order.
func NewProviderFacade(providers []Provider, logger *zap.SugaredLogger, opts ...FacadeOption) *ProviderFacade {
	f := &ProviderFacade{
		providers: providers,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       logger,
		recorder:  nopRecorder{},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewHTTPClient returns a client with the given per-request timeout in seconds.
// Zero means no client-side timeout.
func NewHTTPClient(timeoutSec int) *http.Client {
	return &http.Client{Timeout: time.Duration(timeoutSec) * time.Second}
}

// Fetch calls providers sequentially until one succeeds. Provider failures are logged
// and skipped; only exhaustion is reported.
func (f *ProviderFacade) Fetch(ctx context.Context, ep Endpoint, date string) (Payload, error) {
	date = NormalizeDate(date)

	var errs []error
	for _, p := range f.providers {
		if date != LatestDate && !p.HonorsDate() {
			f.log.Debugw("Provider serves latest data only", "provider", p.Name, "endpoint", ep.Path(), "date", date)
		}

		payload, outcome, err := f.fetchOne(ctx, p, ep, date)
		f.recorder.ProviderAttempt(p.Name, outcome)
		if err == nil {
			return payload, nil
		}

		f.log.Warnw("Provider failed", "provider", p.Name, "endpoint", ep.Path(), "date", date, "error", err)
		errs = append(errs, fmt.Errorf("%s: %w", p.Name, err))

		if ctx.Err() != nil {
			break
		}
	}

	if len(errs) == 0 {
		return nil, ErrAllProvidersFailed
	}
	return nil, fmt.Errorf("%w: %w", ErrAllProvidersFailed, errors.Join(errs...))
}

func (f *ProviderFacade) fetchOne(ctx context.Context, p Provider, ep Endpoint, date string) (Payload, string, error) {
	reqURL := p.URL(ep, date)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, OutcomeNetworkError, fmt.Errorf("request creation failed: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, OutcomeNetworkError, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort close

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, OutcomeBadStatus, fmt.Errorf("returned status %d: %s", resp.StatusCode, string(body))
	}

	var raw Payload
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, OutcomeDecodeError, fmt.Errorf("failed to decode response: %w", err)
	}
	if raw == nil {
		return nil, OutcomeDecodeError, errors.New("empty response body")
	}

	normalized, err := p.transform(ep, raw)
	if err != nil {
		return nil, OutcomeTransformFail, fmt.Errorf("transform failed: %w", err)
	}
	return normalized, OutcomeSuccess, nil
}
