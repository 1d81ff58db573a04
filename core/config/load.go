package config

import (
	"fmt"
	"os"
	"path/filepath"

	"sigs.k8s.io/yaml"
)

func unmarshalStrict(data []byte, out *Config) error {
	return yaml.UnmarshalStrict(data, out)
}

// Load reads the configuration from the directory.
func Load(path string) (*Config, error) {
	// If given the path to a config.yaml file, move back up a level.
	if filepath.Base(path) == ConfigurationName {
		path = filepath.Dir(path)
	}

	configContents, err := os.ReadFile(filepath.Join(path, ConfigurationName))
	if err != nil {
		return nil, err
	}
	var out Config
	if err := unmarshalStrict(configContents, &out); err != nil {
		return nil, err
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}

// Initialize writes the default configuration into the directory. It
// fails rather than overwrite an existing configuration.
func Initialize(path string) (*Config, error) {
	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, err
	}

	configPath := filepath.Join(path, ConfigurationName)
	if _, err := os.Stat(configPath); err == nil {
		return nil, fmt.Errorf("configuration already exists: %s", configPath)
	}

	if err := os.WriteFile(configPath, defaultConfigData, 0644); err != nil {
		return nil, err
	}

	return Load(path)
}
