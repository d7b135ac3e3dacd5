// Package config loads seiconf settings from the environment, an optional
// .env file and the project file.
package config

import (
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultProjectFile is the project file looked up in the working directory
const DefaultProjectFile = "seiconf.toml"

// DefaultEnvFile is the dotenv file loaded when present
const DefaultEnvFile = ".env"

// Config holds all configuration for a run
type Config struct {
	Credentials CredentialsConfig `toml:"-"`
	Logging     LoggingConfig     `toml:"logging"`
	Output      OutputConfig      `toml:"output"`
	Strict      bool              `env:"SEICONF_STRICT" toml:"strict"`
	MetricsFile string            `env:"SEICONF_METRICS_FILE" toml:"metrics_file,omitempty"`
}

// CredentialsConfig holds the secrets. They are only ever read from the
// environment, never from the project file.
type CredentialsConfig struct {
	PrivateKey  string `env:"PRIVATE_KEY" toml:"-"`
	SeitraceKey string `env:"SEITRACE_KEY" toml:"-"`
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL" toml:"level"`
	Format string `env:"LOG_FORMAT" toml:"format"` // "text" or "json"
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `env:"SEICONF_FORMAT" toml:"format"` // json, yaml, toml, js, ts
	Path   string `env:"SEICONF_OUTPUT" toml:"path"`   // empty = stdout
}

// LoadOptions selects the files Load reads
type LoadOptions struct {
	// ProjectFile is an explicit project file. Empty means DefaultProjectFile
	// if it exists.
	ProjectFile string
	// EnvFile is an explicit dotenv file. Empty means DefaultEnvFile if it
	// exists.
	EnvFile string
}

// Defaults returns the settings used when nothing else sets a value
func Defaults() Config {
	return Config{
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
		},
		Output: OutputConfig{
			Format: "json",
		},
	}
}

// Load builds the configuration. Environment variables win over the project
// file, which wins over Defaults. Returns the project file path used, if any.
func Load(opts LoadOptions) (*Config, string, error) {
	if err := loadEnvFile(opts.EnvFile); err != nil {
		return nil, "", err
	}

	cfg := &Config{}
	project, path, err := LoadProjectFile(opts.ProjectFile)
	if err != nil {
		// Only an explicitly requested file has to exist
		if opts.ProjectFile != "" || !errors.Is(err, os.ErrNotExist) {
			return nil, path, err
		}
	}
	if project != nil {
		cfg = project
	}

	// Parsed over the project values: only variables that are set replace
	// them, so an explicit false still wins
	if err := env.Parse(cfg); err != nil {
		return nil, path, fmt.Errorf("parsing environment: %w", err)
	}

	defaults := Defaults()
	if err := mergo.Merge(cfg, defaults); err != nil {
		return nil, path, fmt.Errorf("applying defaults: %w", err)
	}

	return cfg, path, nil
}

// LoadProjectFile decodes the project file. An empty path searches for
// DefaultProjectFile; os.ErrNotExist is returned when there is none.
func LoadProjectFile(path string) (*Config, string, error) {
	if path == "" {
		if _, err := os.Stat(DefaultProjectFile); err != nil {
			return nil, "", os.ErrNotExist
		}
		path = DefaultProjectFile
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, err
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, path, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, path, nil
}

// loadEnvFile loads a dotenv file without overriding variables that are
// already set
func loadEnvFile(path string) error {
	explicit := path != ""
	if !explicit {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !explicit {
			return nil
		}
		return fmt.Errorf("env file: %w", err)
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}
