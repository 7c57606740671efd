package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable the ledger reads.
const EnvPrefix = "LEDGER_"

// Config is the runtime configuration of the ledger console.
type Config struct {
	LogLevel   string `koanf:"log-level"`
	LogHandler string `koanf:"log-handler"`
	Currency   string `koanf:"currency"`
	// Color is nil when neither file nor env set it; the caller decides from the TTY.
	Color *bool `koanf:"color"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		LogLevel:   "warn",
		LogHandler: "dev",
		Currency:   "$",
	}
}

// Options tell Load where to look.
type Options struct {
	// ConfigPath is an optional YAML or JSON file. Empty means none.
	ConfigPath string
	// DotEnvPath is an optional .env file. A missing file is not an error.
	DotEnvPath string
}

// Load merges, in increasing priority: defaults, the config file, the .env
// file and the process environment. CLI flags are applied by the caller.
func Load(opts Options) (Config, error) {
	cfg := Default()
	k := koanf.New(".")

	if opts.ConfigPath != "" {
		if err := loadConfigFromPath(k, opts.ConfigPath); err != nil {
			return cfg, fmt.Errorf("error reading config file %s: %w", opts.ConfigPath, err)
		}
	}

	if opts.DotEnvPath != "" {
		// godotenv never overrides variables already present in the environment.
		if err := godotenv.Load(opts.DotEnvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("error reading env file %s: %w", opts.DotEnvPath, err)
		}
	}

	if err := loadEnvironmentVariables(k); err != nil {
		return cfg, fmt.Errorf("error loading environment variables: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return cfg, nil
}

func loadConfigFromPath(k *koanf.Koanf, path string) error {
	var parser koanf.Parser
	switch filepath.Ext(path) {
	case ".json":
		parser = json.Parser()
	default:
		parser = yaml.Parser()
	}
	return k.Load(file.Provider(path), parser)
}

// loadEnvironmentVariables maps LEDGER_LOG_LEVEL -> log-level and so on.
func loadEnvironmentVariables(k *koanf.Koanf) error {
	return k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		configKey := strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(key, EnvPrefix), "_", "-"))
		if configKey == "color" {
			switch strings.ToLower(value) {
			case "1", "true", "yes", "on":
				return configKey, true
			default:
				return configKey, false
			}
		}
		return configKey, value
	}), nil)
}
