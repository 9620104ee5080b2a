package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/AaronBlvde/wiki-platform/internal/flagx"
	"github.com/AaronBlvde/wiki-platform/internal/timex"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files. Interval fields use timex.Duration, which accepts
// both string values such as "3s" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseURL           string         `json:"database_url"`
	IdentityAddr          string         `json:"identity_addr"`
	VerifyTimeout         timex.Duration `json:"verify_timeout"`
	VerifyMaxAttempts     uint64         `json:"verify_max_attempts"`
	VerifyRetryDelay      timex.Duration `json:"verify_retry_delay"`
	RestrictEditsToAuthor bool           `json:"restrict_edits_to_author"`
}

// parseJson loads configuration values from the JSON file given via the
// -c/-config flags into the provided Config. If no config flag is set,
// nothing is loaded. If the file cannot be read or contains invalid JSON,
// the function panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.EndpointAddr = c.EndpointAddr
	config.DatabaseURL = c.DatabaseURL
	config.IdentityAddr = c.IdentityAddr
	config.VerifyTimeout = time.Duration(c.VerifyTimeout.Duration)
	config.VerifyMaxAttempts = c.VerifyMaxAttempts
	config.VerifyRetryDelay = time.Duration(c.VerifyRetryDelay.Duration)
	config.RestrictEditsToAuthor = c.RestrictEditsToAuthor
}
