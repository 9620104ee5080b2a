package config

import (
	"encoding/json"
	"os"

	"github.com/AaronBlvde/wiki-platform/internal/flagx"
)

// JsonConfig is the intermediate DTO used only for reading JSON
// configuration files.
type JsonConfig struct {
	IdentityAddr string `json:"identity_addr"`
	WikiAddr     string `json:"wiki_addr"`
}

// parseJson loads configuration values from the JSON file given via the
// -c/-config flags into the provided Config. If no config flag is set,
// nothing is loaded.
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

	config.IdentityAddr = c.IdentityAddr
	config.WikiAddr = c.WikiAddr
}
