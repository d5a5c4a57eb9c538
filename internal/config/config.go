// Package config loads the server configuration in layers: built-in
// defaults, then an optional YAML file, then a .env file if present,
// then process environment variables. Later layers win. API keys are
// env-only so they never end up in a checked-in config file.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds every knob the server reads at startup.
type Config struct {
	// Addr is the listen address of the HTTP API.
	Addr string `yaml:"addr"`

	// ForceLocal disables all external provider calls.
	ForceLocal bool `yaml:"force_local"`

	// Seed drives the synthetic data generators. Zero means the
	// current time is used, giving varied local results per run.
	Seed int64 `yaml:"seed"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// API credentials, env-only. An empty key disables that provider
	// and routes its analyzer through the local path.
	NumverifyAPIKey  string `yaml:"-"`
	VirusTotalAPIKey string `yaml:"-"`
	GeminiAPIKey     string `yaml:"-"`
	NewsAPIKey       string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:     ":8080",
		LogLevel: "info",
	}
}

// Load builds the configuration from path (ignored when empty or
// missing) plus the environment. A malformed file or unparsable
// environment value is an error; a missing file is not.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(raw, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config file %s: %w", path, err)
			}
		}
	}

	// Populates the process env from .env when one exists; real env
	// vars still take precedence over .env entries.
	_ = godotenv.Load()

	if v := os.Getenv("SCAMSHIELD_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SCAMSHIELD_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("SCAMSHIELD_FORCE_LOCAL"); v != "" {
		forceLocal, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse SCAMSHIELD_FORCE_LOCAL: %w", err)
		}
		cfg.ForceLocal = forceLocal
	}
	if v := os.Getenv("SCAMSHIELD_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("parse SCAMSHIELD_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	cfg.NumverifyAPIKey = os.Getenv("NUMVERIFY_API_KEY")
	cfg.VirusTotalAPIKey = os.Getenv("VIRUSTOTAL_API_KEY")
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.NewsAPIKey = os.Getenv("NEWS_API_KEY")

	return cfg, nil
}
