package config

import (
	"github.com/footprint-tools/brig/internal/domain"
)

// Deps is what the config commands read and write through.
type Deps struct {
	Get    func(string) (string, bool)
	GetAll func() (map[string]string, error)
	Set    func(string, string) error
	Unset  func(string) error
	// Changed runs after a key is written so live settings can be reapplied.
	Changed func(key string)
}

func DefaultDeps(p domain.ConfigProvider) Deps {
	return Deps{
		Get:     p.Get,
		GetAll:  p.GetAll,
		Set:     p.Set,
		Unset:   p.Unset,
		Changed: func(string) {},
	}
}
