package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "investor_list.md", cfg.OutputFile)
	assert.Equal(t, 10*time.Second, cfg.Browser.WaitTimeout)
	assert.Zero(t, cfg.MaxExpansions)
	assert.Empty(t, cfg.Cache.RedisAddr)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
start_url: https://www.proff.no/selskap/acme-as/oslo/x/ABC123/
max_expansions: 5
browser:
  headless: false
  wait_timeout: 3s
cache:
  redis_addr: localhost:6379
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://www.proff.no/selskap/acme-as/oslo/x/ABC123/", cfg.StartURL)
	assert.Equal(t, 5, cfg.MaxExpansions)
	assert.False(t, cfg.Browser.Headless)
	assert.Equal(t, 3*time.Second, cfg.Browser.WaitTimeout)
	assert.Equal(t, "localhost:6379", cfg.Cache.RedisAddr)

	// untouched keys keep their defaults
	assert.Equal(t, "investor_list.md", cfg.OutputFile)
	assert.Equal(t, 12*time.Hour, cfg.Cache.TTL)
	assert.Equal(t, "8000", cfg.Server.Port)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "empty start url", content: `start_url: ""`, want: ErrMissingStartURL},
		{name: "empty output", content: `output_file: ""`, want: ErrMissingOutputFile},
		{name: "zero timeout", content: "browser:\n  wait_timeout: 0s", want: ErrInvalidTimeout},
		{name: "negative expansions", content: `max_expansions: -1`, want: ErrInvalidExpansions},
		{name: "negative ttl", content: "cache:\n  ttl: -1m", want: ErrInvalidCacheTTL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}
