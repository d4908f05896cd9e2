package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err, "a missing config file is not an error")
	assert.Equal(t, Config{}, cfg)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytup.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"client_secret: /secrets/cs.json\ntoken_file: /state/token.json\nprogress: bar\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/secrets/cs.json", cfg.ClientSecret)
	assert.Equal(t, "/state/token.json", cfg.TokenFile)
	assert.Equal(t, "bar", cfg.Progress)
}

func TestLoadUnparseable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ytup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("client_secret: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestResolveClientSecretPrecedence(t *testing.T) {
	t.Setenv(EnvClientSecret, "/env/cs.json")
	cfg := Config{ClientSecret: "/file/cs.json"}

	assert.Equal(t, "/flag/cs.json", cfg.ResolveClientSecret("/flag/cs.json"), "flag wins")
	assert.Equal(t, "/file/cs.json", cfg.ResolveClientSecret(""), "config file next")
	assert.Equal(t, "/env/cs.json", Config{}.ResolveClientSecret(""), "environment last")
	t.Setenv(EnvClientSecret, "")
	assert.Empty(t, Config{}.ResolveClientSecret(""), "empty means unresolved")
}

func TestResolveTokenFileDefault(t *testing.T) {
	t.Setenv(EnvTokenFile, "")
	assert.Equal(t, DefaultTokenFile, Config{}.ResolveTokenFile(""))

	t.Setenv(EnvTokenFile, "/env/token.json")
	assert.Equal(t, "/env/token.json", Config{}.ResolveTokenFile(""))
	assert.Equal(t, "/flag/token.json", Config{}.ResolveTokenFile("/flag/token.json"))
}

func TestResolveProgress(t *testing.T) {
	assert.Equal(t, DefaultProgress, Config{}.ResolveProgress(""))
	assert.Equal(t, "bar", Config{Progress: "bar"}.ResolveProgress(""))
	assert.Equal(t, "percent", Config{Progress: "bar"}.ResolveProgress("percent"))
}
