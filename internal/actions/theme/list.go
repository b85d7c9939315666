package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/ui/style"
)

func List(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}

		current, _ := deps.Get("theme")
		if current == "" {
			current = "default"
		}
		current = deps.Resolve(current)

		s.Feedback("Available themes (* = current)")
		shown := 0
		for _, name := range deps.ThemeNames {
			theme, ok := deps.Themes[name]
			if !ok {
				continue
			}
			marker := "  "
			if name == current {
				marker = s.Styler().Success("* ")
			}
			preview := ""
			if s.Styler().Enabled() {
				preview = renderColorPreview(theme)
			}
			s.Feedback("%s%-14s  %s", marker, name, preview)
			shown++
		}
		s.Feedback("Use 'theme set <name>' to change")
		return shown, nil
	}
}

// renderColorPreview returns colored text samples for a theme.
func renderColorPreview(cfg style.ColorConfig) string {
	colorize := func(text, color string) string {
		if color == "" || color == "bold" {
			return lipgloss.NewStyle().Bold(true).Render(text)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(text)
	}

	return colorize("success ", cfg.Success) +
		colorize("error ", cfg.Error) +
		colorize("info ", cfg.Info) +
		colorize("muted", cfg.Muted) +
		"   " +
		colorize("time ", cfg.Literal) +
		colorize("<amount> ", cfg.Argument) +
		colorize("selected", cfg.Selected)
}
