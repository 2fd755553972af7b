package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"converterservice/internal/provider"
)

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.True(t, cfg.Server.ServeSwagger)
	assert.True(t, cfg.Server.ServeMetrics)
	assert.Equal(t, provider.DefaultPrimaryCDNURL, cfg.Providers.PrimaryCDNURL)
	assert.Equal(t, provider.DefaultSecondaryCDNURL, cfg.Providers.SecondaryCDNURL)
	assert.Equal(t, provider.DefaultExchangeRateHostURL, cfg.Providers.ExchangeRateHostURL)
	assert.Equal(t, provider.DefaultExchangeRateAPIURL, cfg.Providers.ExchangeRateAPIURL)
	assert.Equal(t, 10, cfg.Providers.TimeoutSec)
	assert.Equal(t, 3600, cfg.Cache.TTLSec)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONVERTER_SERVER_PORT", "9090")
	t.Setenv("CONVERTER_CACHE_TTL_SEC", "60")
	t.Setenv("CONVERTER_PROVIDERS_PRIMARY_CDN_URL", "http://localhost:1234/{date}")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 60, cfg.Cache.TTLSec)
	assert.Equal(t, "http://localhost:1234/{date}", cfg.Providers.PrimaryCDNURL)
}

func TestLoadConfig_Invalid(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("CONVERTER_CACHE_TTL_SEC", "0")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cache.ttl_sec")
}

func TestValidate(t *testing.T) {
	cfg := Config{
		Server:    ServerConfig{Port: 0},
		Providers: ProvidersConfig{PrimaryCDNURL: "ftp://nope", TimeoutSec: -1},
		Cache:     CacheConfig{TTLSec: -5},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "server.port")
	assert.Contains(t, err.Error(), "providers.primary_cdn_url")
	assert.Contains(t, err.Error(), "providers.timeout_sec")
	assert.Contains(t, err.Error(), "cache.ttl_sec")
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir on Go < 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
