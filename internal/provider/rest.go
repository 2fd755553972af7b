package provider

import (
	"errors"
	"strings"
)

var errNoRates = errors.New("response has no rates object")

// restTransform normalizes the flat {base, date, rates} shape of the REST fallbacks.
// Directory requests get .rates as the code mapping; rate requests get .rates, keys
// lower-cased, wrapped under the requested base. The provider's own base is not
// consulted, so a table quoted against another currency is passed through as is.
func restTransform(ep Endpoint, raw Payload) (Payload, error) {
	rates, ok := raw["rates"].(map[string]any)
	if !ok {
		return nil, errNoRates
	}
	if ep.IsDirectory() {
		return Payload(rates), nil
	}

	table := make(map[string]any, len(rates))
	for code, v := range rates {
		table[strings.ToLower(code)] = v
	}

	out := Payload{ep.Base(): table}
	if date, ok := raw["date"].(string); ok && date != "" {
		out["date"] = date
	}
	return out, nil
}
