package fetch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

func TestConfigFromFile(t *testing.T) {
	path := writeConfigFile(t, `
timeout_seconds: 15
user_agent: file-test/1.0
requests_per_second: 2.5
headers:
  X-Env: staging
bearer_token: secret-token
`)

	config, err := ConfigFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, config.Timeout)
	assert.Equal(t, "file-test/1.0", config.UserAgent)
	assert.Equal(t, 2.5, config.RequestsPerSecond)
	assert.Equal(t, "staging", config.Headers["X-Env"])
	require.NotNil(t, config.TokenSource)

	token, err := config.TokenSource.Token()
	require.NoError(t, err)
	assert.Equal(t, "secret-token", token.AccessToken)
}

func TestConfigFromFile_Empty(t *testing.T) {
	path := writeConfigFile(t, "")

	config, err := ConfigFromFile(path)
	require.NoError(t, err)
	assert.Zero(t, config.Timeout)
	assert.Nil(t, config.TokenSource)

	// Defaults still apply when the loaded config builds a client.
	client := NewClient(config)
	assert.Equal(t, "utilkit/1.0", client.config.Headers["User-Agent"])
}

func TestConfigFromFile_MissingFile(t *testing.T) {
	_, err := ConfigFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestConfigFromFile_InvalidYAML(t *testing.T) {
	path := writeConfigFile(t, "headers: [not: a: map")

	_, err := ConfigFromFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}
