// Package theme registers the commands that list and switch color themes.
package theme

import (
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/ui/style"
)

type Deps struct {
	Get        func(string) (string, bool)
	Set        func(string, string) error
	Apply      func(name string)
	Resolve    func(string) string
	ThemeNames []string
	Themes     map[string]style.ColorConfig
}

// DefaultDeps reads and writes the theme through p. Apply reinitializes
// the global styles so the change shows on the next line.
func DefaultDeps(p domain.ConfigProvider) Deps {
	return Deps{
		Get: p.Get,
		Set: p.Set,
		Apply: func(string) {
			all, err := p.GetAll()
			if err != nil {
				return
			}
			style.Init(style.Enabled(), all)
		},
		Resolve:    style.ResolveThemeName,
		ThemeNames: style.ThemeNames(),
		Themes:     style.Themes,
	}
}
