package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigYAML is the default configuration content.
const DefaultConfigYAML = `# elib configuration

definitions:
  # relative paths are resolved against this directory
  vanilla_file: vanilla.yaml

display:
  default_prefix: "§r§7"
  max_prefix: "§r§6"
  # hide the host's own enchantment list on reconciled items
  hide_flags: true

storage:
  sqlite_path: elib.db   # or set ELIB_SQLITE_PATH

logging:
  level: warn            # or set ELIB_LOG_LEVEL
`

// WriteDefault creates the .elib directory and writes the default config and
// vanilla definitions files. Existing files are an error.
func WriteDefault(basePath string) error {
	configDir := ConfigDir(basePath)
	configFile := ConfigFilePath(basePath)
	vanillaFile := filepath.Join(configDir, DefaultVanillaFile)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("config file already exists: %s", configFile)
	}

	if err := os.WriteFile(configFile, []byte(DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	if _, err := os.Stat(vanillaFile); err == nil {
		return nil
	}
	if err := os.WriteFile(vanillaFile, []byte(DefaultVanillaYAML), 0644); err != nil {
		return fmt.Errorf("writing vanilla definitions file: %w", err)
	}

	return nil
}

// Write writes the given config to the config file.
func Write(basePath string, cfg *Config) error {
	configDir := ConfigDir(basePath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(ConfigFilePath(basePath), data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
