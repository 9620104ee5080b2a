// Package config handles configuration for the wiki service,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the wiki service.
//
// Fields:
//   - EndpointAddr: bind address for the public HTTP endpoint.
//   - DatabaseURL: storage connection string (postgres:// or a sqlite path).
//   - IdentityAddr: base URL of the identity service used for token
//     verification.
//   - VerifyTimeout: per-call timeout for a single verification request.
//   - VerifyMaxAttempts: total verification calls per incoming request,
//     including the first one.
//   - VerifyRetryDelay: fixed pause between verification attempts.
//   - RestrictEditsToAuthor: when set, edits become author-only like deletes.
type Config struct {
	EndpointAddr          string
	DatabaseURL           string
	IdentityAddr          string
	VerifyTimeout         time.Duration
	VerifyMaxAttempts     uint64
	VerifyRetryDelay      time.Duration
	RestrictEditsToAuthor bool
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":5002"
	c.DatabaseURL = "sqlite://wiki.db"
	c.IdentityAddr = "http://127.0.0.1:5001"
	c.VerifyTimeout = 3 * time.Second
	c.VerifyMaxAttempts = 10
	c.VerifyRetryDelay = 1 * time.Second
	c.RestrictEditsToAuthor = false
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
