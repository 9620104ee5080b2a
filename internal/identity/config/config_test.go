package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, ":5001", c.EndpointAddr)
	assert.Equal(t, "sqlite://identity.db", c.DatabaseURL)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"identityserver"}

	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")
	assert.Equal(t, ":5001", c.EndpointAddr)
	assert.Equal(t, "sqlite://identity.db", c.DatabaseURL)
	assert.Equal(t, "secretKey", c.SecretKey)
	assert.Equal(t, 1*time.Hour, c.TokenValidityDuration)
}

func TestParseFlags_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	os.Args = []string{"identityserver", "-a", ":6001", "-d", "postgres://localhost/id", "-s", "k2", "-t", "30"}

	var c Config
	c.LoadDefaults()
	parseFlags(&c)

	assert.Equal(t, ":6001", c.EndpointAddr)
	assert.Equal(t, "postgres://localhost/id", c.DatabaseURL)
	assert.Equal(t, "k2", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.TokenValidityDuration)
}

func TestParseJson_Overrides(t *testing.T) {
	origArgs := os.Args
	defer func() { os.Args = origArgs }()

	f, err := os.CreateTemp(t.TempDir(), "cfg-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{
		"endpoint_addr": ":7001",
		"database_url": "sqlite://other.db",
		"secret_key": "json-secret",
		"token_validity_duration": "45m"
	}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	os.Args = []string{"identityserver", "-c", f.Name()}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, ":7001", c.EndpointAddr)
	assert.Equal(t, "sqlite://other.db", c.DatabaseURL)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 45*time.Minute, c.TokenValidityDuration)
}
