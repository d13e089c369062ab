package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config sources reported by Load.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// Load loads the rocket configuration and reports where it came from.
// Search order: customPath -> ~/.rocket/configs/rocket.yaml -> ./configs/rocket.yaml -> embedded default.
// Keys missing from a file keep their default values.
func Load(customPath string) (RocketConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RocketConfig{}, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RocketConfig{}, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return RocketConfig{}, "", fmt.Errorf("%s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath("rocket.yaml"), filepath.Join("configs", "rocket.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parse(data); err == nil && cfg.Validate() == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	if cfg, err := parse(defaultRocketYAML); err == nil {
		return cfg, SourceEmbedded, nil
	}
	return DefaultRocketConfig(), SourceBuiltin, nil
}

// parse decodes YAML on top of the built-in defaults.
func parse(data []byte) (RocketConfig, error) {
	cfg := DefaultRocketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RocketConfig{}, err
	}
	return cfg, nil
}

// Marshal renders a configuration as YAML.
func Marshal(cfg RocketConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rocket", "configs", filename)
}
