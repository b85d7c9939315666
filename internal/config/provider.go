package config

import (
	"fmt"

	"github.com/footprint-tools/brig/internal/domain"
)

// Provider wraps configuration operations and implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set sets a configuration value.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	return WithLock(func() error {
		values, err := ReadFile()
		if err != nil {
			return err
		}
		Set(values, key, value)
		return WriteFile(values)
	})
}

// Unset removes a configuration value.
func (p *Provider) Unset(key string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}

	return WithLock(func() error {
		values, err := ReadFile()
		if err != nil {
			return err
		}
		Unset(values, key)
		return WriteFile(values)
	})
}

// Verify Provider implements domain.ConfigProvider
var _ domain.ConfigProvider = (*Provider)(nil)
