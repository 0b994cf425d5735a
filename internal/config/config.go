// Package config handles takeoff CLI and server configuration.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// DefaultFile is the config file looked up in the working directory.
const DefaultFile = "takeoff.config.yaml"

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config represents the takeoff.config.yaml file.
type Config struct {
	Version int          `yaml:"version"`
	Server  ServerConfig `yaml:"server"`
	Output  OutputConfig `yaml:"output"`
}

type ServerConfig struct {
	Port     int    `yaml:"port"`
	LogLevel string `yaml:"log_level"`
	// Dev switches the logger to zap's human-readable development encoder.
	Dev bool `yaml:"dev,omitempty"`
}

type OutputConfig struct {
	Format string `yaml:"format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentConfigVersion,
		Server:  ServerConfig{Port: 3000, LogLevel: "info"},
		Output:  OutputConfig{Format: FormatText},
	}
}

// Load reads a Config from a file path. Fields missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	// an empty file decodes to io.EOF and keeps the defaults
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Resolve loads path if it exists, falls back to defaults otherwise, then
// applies environment overrides. A .env file in the working directory is
// read first when present.
func Resolve(path string, getenv func(string) string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	cfg, err := Load(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg = Default()
	case err != nil:
		return nil, err
	}

	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

// ApplyEnv overrides fields from TAKEOFF_PORT, TAKEOFF_LOG_LEVEL and
// TAKEOFF_OUTPUT.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := getenv("TAKEOFF_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("TAKEOFF_PORT: %w", err)
		}
		c.Server.Port = port
	}
	if v := getenv("TAKEOFF_LOG_LEVEL"); v != "" {
		c.Server.LogLevel = v
	}
	if v := getenv("TAKEOFF_OUTPUT"); v != "" {
		c.Output.Format = v
	}
	return nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}
	switch c.Output.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("output.format %q must be %q or %q", c.Output.Format, FormatText, FormatJSON)
	}
	return nil
}
