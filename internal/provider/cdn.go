package provider

// Default CDN mirrors of the currency-api dataset. Both serve the native nested shape.
const (
	DefaultPrimaryCDNURL   = "https://cdn.jsdelivr.net/npm/@fawazahmed0/currency-api@{date}/v1"
	DefaultSecondaryCDNURL = "https://{date}.currency-api.pages.dev/v1"
)

// NewPrimaryCDNProvider creates the jsDelivr mirror.
func NewPrimaryCDNProvider(baseURL string) Provider {
	if baseURL == "" {
		baseURL = DefaultPrimaryCDNURL
	}
	return Provider{
		Name:      "primary_cdn",
		BaseURL:   baseURL,
		Transform: identityTransform,
	}
}

// NewSecondaryCDNProvider creates the Cloudflare Pages mirror.
func NewSecondaryCDNProvider(baseURL string) Provider {
	if baseURL == "" {
		baseURL = DefaultSecondaryCDNURL
	}
	return Provider{
		Name:      "secondary_cdn",
		BaseURL:   baseURL,
		Transform: identityTransform,
	}
}

func identityTransform(_ Endpoint, raw Payload) (Payload, error) {
	return raw, nil
}
