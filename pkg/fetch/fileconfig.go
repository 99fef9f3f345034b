package fetch

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"
	"gopkg.in/yaml.v3"
)

// FileConfig is the YAML representation of a Client Config.
type FileConfig struct {
	// TimeoutSeconds applies to each request end to end. Zero means no timeout.
	TimeoutSeconds int `yaml:"timeout_seconds"`

	// Headers are set on every request.
	Headers map[string]string `yaml:"headers"`

	// UserAgent overrides the default User-Agent header.
	UserAgent string `yaml:"user_agent"`

	// RequestsPerSecond caps the outgoing request rate when greater than zero.
	RequestsPerSecond float64 `yaml:"requests_per_second"`

	// BearerToken, when set, is sent as a static bearer credential.
	BearerToken string `yaml:"bearer_token"`
}

// ClientConfig converts the file form into a Config.
func (f FileConfig) ClientConfig() Config {
	config := Config{
		Timeout:           time.Duration(f.TimeoutSeconds) * time.Second,
		Headers:           f.Headers,
		UserAgent:         f.UserAgent,
		RequestsPerSecond: f.RequestsPerSecond,
	}
	if f.BearerToken != "" {
		config.TokenSource = oauth2.StaticTokenSource(&oauth2.Token{AccessToken: f.BearerToken})
	}
	return config
}

// ConfigFromFile loads a Client Config from a YAML file.
func ConfigFromFile(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fileConfig FileConfig
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return fileConfig.ClientConfig(), nil
}
