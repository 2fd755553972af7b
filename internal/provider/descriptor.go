package provider

import (
	"strings"
)

// datePlaceholder is replaced with the requested date in a provider base URL.
const datePlaceholder = "{date}"

// TransformFunc maps a provider's raw response into the normalized shape for ep.
type TransformFunc func(ep Endpoint, raw Payload) (Payload, error)

// PathFunc overrides the request path for ep.
type PathFunc func(ep Endpoint) string

// Provider describes one remote source of currency data.
type Provider struct {
	Name      string
	BaseURL   string
	Transform TransformFunc
	// Path is nil when the provider serves the endpoint's native path.
	Path PathFunc
}

// URL builds the request URL for ep on date.
// Providers without a date placeholder always serve latest data whatever date is asked for.
func (p Provider) URL(ep Endpoint, date string) string {
	path := ep.Path()
	if p.Path != nil {
		path = p.Path(ep)
	}
	base := strings.TrimRight(p.BaseURL, "/")
	return strings.ReplaceAll(base, datePlaceholder, date) + path
}

// HonorsDate reports whether the provider can serve historical dates.
func (p Provider) HonorsDate() bool {
	return strings.Contains(p.BaseURL, datePlaceholder)
}

func (p Provider) transform(ep Endpoint, raw Payload) (Payload, error) {
	if p.Transform == nil {
		return raw, nil
	}
	return p.Transform(ep, raw)
}
