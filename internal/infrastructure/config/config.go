// Package config loads the server configuration from an optional YAML
// file, with .env / environment variables taking precedence.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the serve command.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `yaml:"addr"`
	// Storage selects the puzzle store backend: "fs" or "sqlite".
	Storage string `yaml:"storage"`
	// DataDir is the directory for the fs backend.
	DataDir string `yaml:"dataDir"`
	// DBPath is the database file for the sqlite backend.
	DBPath string `yaml:"dbPath"`
	// LogFile enables rotating file logging when non-empty.
	LogFile string `yaml:"logFile"`
	// Dev switches logging to colored console output at debug level.
	Dev bool `yaml:"dev"`
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() Config {
	return Config{
		Addr:    ":8080",
		Storage: "fs",
		DataDir: "./data",
		DBPath:  "./skyscraper.db",
	}
}

// Load reads path (when non-empty), then applies environment overrides.
// A .env file in the working directory is honored if present.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	// Missing .env is fine; explicit environment still applies.
	_ = godotenv.Load()
	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SKYSCRAPER_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("SKYSCRAPER_STORAGE"); v != "" {
		cfg.Storage = v
	}
	if v := os.Getenv("SKYSCRAPER_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("SKYSCRAPER_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("SKYSCRAPER_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if os.Getenv("SKYSCRAPER_DEV") == "true" {
		cfg.Dev = true
	}
}
