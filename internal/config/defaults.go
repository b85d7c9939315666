package config

import (
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/paths"
)

// Defaults holds values computed at runtime. Static defaults come from domain.ConfigKeys.
var Defaults = map[string]func() string{
	"db_path": paths.DBPath,
}

func defaultValue(key string) (string, bool) {
	if fn, ok := Defaults[key]; ok {
		return fn(), true
	}
	return domain.GetDefaultValue(key)
}

// Get returns the value for a config key.
// Precedence: BRIG_* environment, config file, default.
func Get(key string) (string, bool) {
	if o, err := EnvOverrides(); err == nil {
		if value, ok := o.Values()[key]; ok {
			return value, true
		}
	}

	if values, err := ReadFile(); err == nil {
		if value, ok := values[key]; ok {
			return value, true
		}
	} else {
		log.Warn("config: %v", err)
	}

	return defaultValue(key)
}

// GetAll returns all config values: defaults, overridden by the file, then by the environment.
func GetAll() (map[string]string, error) {
	result := make(map[string]string)

	for _, key := range domain.ConfigKeys {
		if value, ok := defaultValue(key.Name); ok {
			result[key.Name] = value
		}
	}

	values, err := ReadFile()
	if err != nil {
		return result, err
	}
	for key, value := range values {
		result[key] = value
	}

	o, err := EnvOverrides()
	if err != nil {
		return result, err
	}
	for key, value := range o.Values() {
		result[key] = value
	}

	return result, nil
}
