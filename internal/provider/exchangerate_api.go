package provider

// DefaultExchangeRateAPIURL already points at the latest rates, so no path is appended.
const DefaultExchangeRateAPIURL = "https://api.exchangerate-api.com/v4/latest"

// NewExchangeRateAPIProvider creates the exchangerate-api.com fallback.
func NewExchangeRateAPIProvider(baseURL string) Provider {
	if baseURL == "" {
		baseURL = DefaultExchangeRateAPIURL
	}
	return Provider{
		Name:      "exchangerate_api",
		BaseURL:   baseURL,
		Transform: restTransform,
		Path:      func(Endpoint) string { return "" },
	}
}

// DefaultProviders returns the four providers in priority order with their default URLs.
func DefaultProviders() []Provider {
	return []Provider{
		NewPrimaryCDNProvider(""),
		NewSecondaryCDNProvider(""),
		NewExchangeRateHostProvider(""),
		NewExchangeRateAPIProvider(""),
	}
}
