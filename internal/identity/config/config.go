// Package config handles configuration for the identity service,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the identity service.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseURL: storage connection string (postgres:// or a sqlite path).
//   - SecretKey: HMAC secret for signing tokens (HS256). Shared with any
//     party that decodes tokens locally. Do not use the default in prod.
//   - TokenValidityDuration: lifetime of issued tokens.
type Config struct {
	EndpointAddr          string
	DatabaseURL           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5001"
	c.DatabaseURL = "sqlite://identity.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 1 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
