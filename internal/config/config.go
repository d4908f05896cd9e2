// Package config loads optional defaults for the CLI from a YAML file,
// with environment variables filling remaining gaps.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Built-in defaults.
const (
	DefaultPath      = "ytup.yaml"
	DefaultTokenFile = "token.json"
	DefaultProgress  = "percent"
)

// Environment variables consulted when neither flag nor config file set a
// value.
const (
	EnvClientSecret = "YTUP_CLIENT_SECRET"
	EnvTokenFile    = "YTUP_TOKEN_FILE"
)

// Config captures file-sourced defaults. Flags always win over these.
type Config struct {
	ClientSecret string `yaml:"client_secret"`
	TokenFile    string `yaml:"token_file"`
	Progress     string `yaml:"progress"`
}

// Load reads the config file at path. A missing file is not an error and
// yields an empty Config; a present but unparseable file is.
func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// ResolveClientSecret applies the flag > file > environment precedence for
// the client secret path. Empty means unresolved.
func (c Config) ResolveClientSecret(flagValue string) string {
	return firstNonEmpty(flagValue, c.ClientSecret, os.Getenv(EnvClientSecret))
}

// ResolveTokenFile applies the flag > file > environment > default
// precedence for the token store path.
func (c Config) ResolveTokenFile(flagValue string) string {
	return firstNonEmpty(flagValue, c.TokenFile, os.Getenv(EnvTokenFile), DefaultTokenFile)
}

// ResolveProgress applies the flag > file > default precedence for the
// progress rendering mode.
func (c Config) ResolveProgress(flagValue string) string {
	return firstNonEmpty(flagValue, c.Progress, DefaultProgress)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
