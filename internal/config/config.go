// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"converterservice/internal/provider"
)

// Config holds the complete application configuration.
type Config struct {
	Server    ServerConfig
	Providers ProvidersConfig
	Cache     CacheConfig
	Log       LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	ServeSwagger bool `mapstructure:"serve_swagger"`
	ServeMetrics bool `mapstructure:"serve_metrics"`
}

// ProvidersConfig holds the base URLs of the rate providers, in priority order,
// and the per-request timeout shared by all of them.
type ProvidersConfig struct {
	PrimaryCDNURL       string `mapstructure:"primary_cdn_url"`
	SecondaryCDNURL     string `mapstructure:"secondary_cdn_url"`
	ExchangeRateHostURL string `mapstructure:"exchangerate_host_url"`
	ExchangeRateAPIURL  string `mapstructure:"exchangerate_api_url"`
	TimeoutSec          int    `mapstructure:"timeout_sec"`
}

// CacheConfig holds caching settings.
type CacheConfig struct {
	TTLSec int `mapstructure:"ttl_sec"`
}

// LogConfig selects the zap preset.
type LogConfig struct {
	Development bool `mapstructure:"development"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		fmt.Printf("No .env file found or error loading it: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("CONVERTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if no config file, we have defaults and env
		fmt.Printf("Config file not found: %v\n", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.serve_metrics", true)
	v.SetDefault("providers.primary_cdn_url", provider.DefaultPrimaryCDNURL)
	v.SetDefault("providers.secondary_cdn_url", provider.DefaultSecondaryCDNURL)
	v.SetDefault("providers.exchangerate_host_url", provider.DefaultExchangeRateHostURL)
	v.SetDefault("providers.exchangerate_api_url", provider.DefaultExchangeRateAPIURL)
	v.SetDefault("providers.timeout_sec", 10)
	v.SetDefault("cache.ttl_sec", 3600)
	v.SetDefault("log.development", false)
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 {
		errs = append(errs, fmt.Errorf("server.port must be positive, got %d", c.Server.Port))
	}

	urls := map[string]string{
		"providers.primary_cdn_url":       c.Providers.PrimaryCDNURL,
		"providers.secondary_cdn_url":     c.Providers.SecondaryCDNURL,
		"providers.exchangerate_host_url": c.Providers.ExchangeRateHostURL,
		"providers.exchangerate_api_url":  c.Providers.ExchangeRateAPIURL,
	}
	for key, u := range urls {
		if u != "" && !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			errs = append(errs, fmt.Errorf("%s must be an http(s) URL, got %q", key, u))
		}
	}
	if c.Providers.TimeoutSec < 0 {
		errs = append(errs, fmt.Errorf("providers.timeout_sec must be non-negative, got %d", c.Providers.TimeoutSec))
	}

	if c.Cache.TTLSec <= 0 {
		errs = append(errs, fmt.Errorf("cache.ttl_sec must be positive, got %d", c.Cache.TTLSec))
	}

	return errors.Join(errs...)
}
