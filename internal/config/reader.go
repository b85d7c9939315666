package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/paths"
)

// ReadFile loads the user configuration file.
// A missing or empty file is created with the visible defaults.
func ReadFile() (map[string]string, error) {
	configPath, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(strings.TrimSpace(string(content))) == 0) {
		values := initializeDefaults()
		if err := WriteFile(values); err != nil {
			log.Warn("config: could not write default config: %v", err)
		}
		return values, nil
	}
	if err != nil {
		return nil, err
	}

	if err := os.Chmod(configPath, 0600); err != nil {
		log.Warn("config: could not set permissions on config file: %v", err)
	}

	return Parse(string(content))
}

// Parse decodes TOML into flat string values.
// Nested tables are rejected; every key lives at the top level.
func Parse(data string) (map[string]string, error) {
	var raw map[string]any
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	values := make(map[string]string, len(raw))
	for key, v := range raw {
		switch val := v.(type) {
		case map[string]any, []map[string]any:
			return nil, fmt.Errorf("parse config: %q must be a plain value, not a table", key)
		case string:
			values[key] = val
		default:
			values[key] = fmt.Sprint(val)
		}
	}
	return values, nil
}

// initializeDefaults returns the values written to a fresh config file.
// HideIfEmpty and hidden keys are left out.
func initializeDefaults() map[string]string {
	values := make(map[string]string)

	for _, key := range domain.ConfigKeys {
		if key.Hidden || key.HideIfEmpty {
			continue
		}

		value := key.Default
		if fn, ok := Defaults[key.Name]; ok {
			value = fn()
		}
		values[key.Name] = value
	}

	return values
}
