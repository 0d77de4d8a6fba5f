// Package config provides configuration loading and management.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/drachir000/elib/internal/domain/entities"
)

const (
	// DefaultConfigDir is the directory name for elib configuration.
	DefaultConfigDir = ".elib"
	// DefaultConfigFile is the default config file name.
	DefaultConfigFile = "config.yaml"
	// DefaultVanillaFile is the default vanilla definitions file name.
	DefaultVanillaFile = "vanilla.yaml"
	// DefaultSQLiteFile is the default database file name.
	DefaultSQLiteFile = "elib.db"
)

// Config holds static configuration (read-only after init).
type Config struct {
	Definitions DefinitionsConfig `yaml:"definitions"`
	Display     DisplayConfig     `yaml:"display"`
	Storage     StorageConfig     `yaml:"storage"`
	Logging     LoggingConfig     `yaml:"logging"`
}

// DefinitionsConfig locates the vanilla definitions file.
type DefinitionsConfig struct {
	// VanillaFile is resolved against the config directory when relative.
	VanillaFile string `yaml:"vanilla_file" env:"ELIB_VANILLA_FILE"`
}

// DisplayConfig holds lore rendering settings.
type DisplayConfig struct {
	DefaultPrefix string `yaml:"default_prefix" env:"ELIB_DEFAULT_PREFIX"`
	MaxPrefix     string `yaml:"max_prefix" env:"ELIB_MAX_PREFIX"`
	HideFlags     bool   `yaml:"hide_flags"`
}

// StorageConfig holds configuration for the SQLite store.
type StorageConfig struct {
	// SQLitePath is resolved against the config directory when relative.
	// ":memory:" keeps everything in process.
	SQLitePath string `yaml:"sqlite_path" env:"ELIB_SQLITE_PATH"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level string `yaml:"level" env:"ELIB_LOG_LEVEL"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Definitions: DefinitionsConfig{
			VanillaFile: DefaultVanillaFile,
		},
		Display: DisplayConfig{
			DefaultPrefix: entities.DefaultLorePrefix,
			MaxPrefix:     entities.DefaultMaxLorePrefix,
			HideFlags:     true,
		},
		Storage: StorageConfig{
			SQLitePath: DefaultSQLiteFile,
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load loads configuration from the .elib directory in the given path and
// applies environment overrides on top.
func Load(basePath string) (*Config, error) {
	configFile := ConfigFilePath(basePath)

	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s (run 'elib init' first)", configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Start with defaults
	cfg := Default()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyEnvOverrides applies ELIB_* environment variables. Unset variables
// leave the loaded values alone.
func (c *Config) applyEnvOverrides() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// VanillaFilePath returns the absolute location of the vanilla definitions file.
func (c *Config) VanillaFilePath(basePath string) string {
	return resolve(basePath, c.Definitions.VanillaFile)
}

// SQLitePath returns the database location, or ":memory:".
func (c *Config) SQLitePath(basePath string) string {
	if c.Storage.SQLitePath == ":memory:" {
		return c.Storage.SQLitePath
	}
	return resolve(basePath, c.Storage.SQLitePath)
}

func resolve(basePath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(ConfigDir(basePath), p)
}

// ConfigDir returns the path to the .elib config directory.
func ConfigDir(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir)
}

// ConfigFilePath returns the path to the config file.
func ConfigFilePath(basePath string) string {
	return filepath.Join(basePath, DefaultConfigDir, DefaultConfigFile)
}

// Exists checks if an elib config exists in the given path.
func Exists(basePath string) bool {
	_, err := os.Stat(ConfigFilePath(basePath))
	return err == nil
}
