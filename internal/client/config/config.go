// Package config handles configuration for the command-line client.
package config

// Config holds the endpoints of the two services the client talks to.
type Config struct {
	IdentityAddr string
	WikiAddr     string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.IdentityAddr = "http://127.0.0.1:5001"
	c.WikiAddr = "http://127.0.0.1:5002"
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
