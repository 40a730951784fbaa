// Package config assembles settings for the transitworld CLI from a YAML
// file, a .env file, and process environment variables, in that order of
// increasing precedence. Command-line flags are merged on top by the caller.
package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the settings the CLI runs with.
type Config struct {
	// APIKey authenticates against the API. Required for every command.
	APIKey string `yaml:"apikey" validate:"required"`
	// BaseURL overrides the production API root.
	BaseURL string `yaml:"base_url" validate:"omitempty,url"`
	// Spec filters queries to one feed specification.
	Spec string `yaml:"spec" validate:"omitempty,oneof=gtfs gtfs-rt gbfs mds"`
	// Limit is the page size for searches; zero means the library default.
	Limit uint64 `yaml:"limit"`
}

// DefaultPath is where Load looks when no config file is named explicitly.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".transitworld.yml")
}

// Load assembles the configuration. A named file must exist; the default
// path is skipped silently when absent. A .env file in the working
// directory is folded into the environment before it is read.
func Load(path string) (Config, error) {
	var cfg Config

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, err
			}
		case explicit || !os.IsNotExist(err):
			return Config{}, err
		}
	}

	_ = godotenv.Load()

	if v := os.Getenv("TRANSITLAND_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("TRANSITLAND_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("TRANSITLAND_SPEC"); v != "" {
		cfg.Spec = v
	}
	if v := os.Getenv("TRANSITLAND_LIMIT"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Limit = n
		}
	}

	return cfg, nil
}

// Validate checks the fully merged configuration.
func (c Config) Validate() error {
	v := validator.New()
	return v.Struct(c)
}
