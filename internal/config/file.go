package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlays a yaml config file on top of cfg; keys missing from the file keep their value
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}
