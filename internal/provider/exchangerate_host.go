package provider

// DefaultExchangeRateHostURL is the exchangerate.host REST API.
const DefaultExchangeRateHostURL = "https://api.exchangerate.host"

// NewExchangeRateHostProvider creates the exchangerate.host fallback.
// Every endpoint is served from /latest, so historical dates are not honored.
func NewExchangeRateHostProvider(baseURL string) Provider {
	if baseURL == "" {
		baseURL = DefaultExchangeRateHostURL
	}
	return Provider{
		Name:      "exchangerate_host",
		BaseURL:   baseURL,
		Transform: restTransform,
		Path:      func(Endpoint) string { return "/latest" },
	}
}
