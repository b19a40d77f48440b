package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the user and local config directories.
const ConfigFile = "skybird.yaml"

// SourceEmbedded is reported by LoadSkybird when no file was found.
const SourceEmbedded = "embedded"

// LoadSkybird loads the skybird configuration and reports where it came from.
// Search order: customPath -> ~/.skybird/configs/skybird.yaml -> ./configs/skybird.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it names. A custom path that cannot be read or parsed is an error;
// broken files in the implicit locations are skipped.
func LoadSkybird(customPath string) (SkybirdConfig, string, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return SkybirdConfig{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := ParseSkybird(data)
		if err != nil {
			return SkybirdConfig{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, nil
	}

	candidates := []string{
		userConfigPath(ConfigFile),
		filepath.Join("configs", ConfigFile),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := ParseSkybird(data); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseSkybird(defaultSkybirdYAML)
	if err != nil {
		return DefaultSkybirdConfig(), SourceEmbedded, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ParseSkybird decodes YAML on top of DefaultSkybirdConfig and validates the result.
// Unknown keys are rejected so typos do not silently fall back to defaults.
func ParseSkybird(data []byte) (SkybirdConfig, error) {
	cfg := DefaultSkybirdConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return SkybirdConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return SkybirdConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	dir := UserDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, "configs", filename)
}

// UserDir returns ~/.skybird, or empty if the home directory is unavailable.
// The log file and the score database live here as well.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".skybird")
}
