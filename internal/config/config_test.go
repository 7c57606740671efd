package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"LEDGER_LOG_LEVEL", "LEDGER_LOG_HANDLER", "LEDGER_CURRENCY", "LEDGER_COLOR"} {
		prev, had := os.LookupEnv(key)
		require.NoError(t, os.Unsetenv(key))
		t.Cleanup(func() {
			if had {
				os.Setenv(key, prev)
			} else {
				os.Unsetenv(key)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(Options{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Nil(t, cfg.Color)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: debug\ncurrency: \"€\"\ncolor: false\n"), 0o600))

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "€", cfg.Currency)
	assert.Equal(t, "dev", cfg.LogHandler)
	require.NotNil(t, cfg.Color)
	assert.False(t, *cfg.Color)
}

func TestLoadJSONFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ledger.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"log-handler": "json", "currency": "£"}`), 0o600))

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.LogHandler)
	assert.Equal(t, "£", cfg.Currency)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "ledger.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: debug\n"), 0o600))
	t.Setenv("LEDGER_LOG_LEVEL", "error")
	t.Setenv("LEDGER_COLOR", "true")

	cfg, err := Load(Options{ConfigPath: path})
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	require.NotNil(t, cfg.Color)
	assert.True(t, *cfg.Color)
}

func TestDotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LEDGER_CURRENCY=CHF\n"), 0o600))

	cfg, err := Load(Options{DotEnvPath: path})
	require.NoError(t, err)
	assert.Equal(t, "CHF", cfg.Currency)
}

func TestMissingDotEnvIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{DotEnvPath: filepath.Join(t.TempDir(), "missing.env")})
	require.NoError(t, err)
}

func TestMissingConfigFileFails(t *testing.T) {
	clearEnv(t)

	_, err := Load(Options{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	require.Error(t, err)
}
