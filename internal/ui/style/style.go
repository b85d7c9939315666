// Package style provides semantic terminal styling using lipgloss.
//
// Outside the console and the theme preview, this package is the only
// place lipgloss is imported. All styling is semantic (Success, Literal, etc.) rather than
// visual (RedBold, etc.).
//
// When disabled, all helpers return the input string unchanged with no ANSI codes.
package style

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	mu      sync.RWMutex
	enabled bool
	colors  ColorConfig
	styles  palette
)

type palette struct {
	success, warning, error, info, muted, header lipgloss.Style
	literal, argument, selected                  lipgloss.Style
}

// Init initializes the style package with the given enabled state and config.
// NO_COLOR and BRIG_NO_COLOR (any non-empty value) disable styling
// regardless of enable.
func Init(enable bool, cfg map[string]string) {
	mu.Lock()
	defer mu.Unlock()

	if os.Getenv("NO_COLOR") != "" || os.Getenv("BRIG_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		colors = LoadColorConfig(cfg)
		styles = newPalette(colors)
	}
}

// ShouldColor resolves the color setting (auto, always, never) for an output.
func ShouldColor(setting string, isTerminal bool) bool {
	switch strings.ToLower(strings.TrimSpace(setting)) {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal
	}
}

// GetColors returns the current color configuration.
// Returns empty config if styling is not enabled.
func GetColors() ColorConfig {
	mu.RLock()
	defer mu.RUnlock()
	return colors
}

func newPalette(c ColorConfig) palette {
	// ANSI256 covers both basic (0-15) and extended colors regardless of TTY detection.
	lipgloss.SetColorProfile(termenv.ANSI256)

	return palette{
		success:  makeStyle(c.Success),
		warning:  makeStyle(c.Warning),
		error:    makeStyle(c.Error),
		info:     makeStyle(c.Info),
		muted:    makeStyle(c.Muted),
		header:   makeStyle(c.Header),
		literal:  makeStyle(c.Literal).Bold(true),
		argument: makeStyle(c.Argument),
		selected: makeStyle(c.Selected).Reverse(true),
	}
}

// makeStyle creates a lipgloss style from a color value.
// The value can be "bold" for bold styling, or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

func render(pick func(palette) lipgloss.Style, text string) string {
	mu.RLock()
	defer mu.RUnlock()
	if !enabled {
		return text
	}
	return pick(styles).Render(text)
}

// Success styles text for successful operations.
func Success(text string) string {
	return render(func(p palette) lipgloss.Style { return p.success }, text)
}

// Warning styles text for warning messages.
func Warning(text string) string {
	return render(func(p palette) lipgloss.Style { return p.warning }, text)
}

// Error styles text for error messages.
func Error(text string) string {
	return render(func(p palette) lipgloss.Style { return p.error }, text)
}

// Info styles text for informational messages.
func Info(text string) string {
	return render(func(p palette) lipgloss.Style { return p.info }, text)
}

// Header styles text for section headers or titles.
func Header(text string) string {
	return render(func(p palette) lipgloss.Style { return p.header }, text)
}

// Muted styles text for less important or secondary information.
func Muted(text string) string {
	return render(func(p palette) lipgloss.Style { return p.muted }, text)
}

// Literal styles a command keyword.
func Literal(text string) string {
	return render(func(p palette) lipgloss.Style { return p.literal }, text)
}

// Argument styles an argument placeholder or value.
func Argument(text string) string {
	return render(func(p palette) lipgloss.Style { return p.argument }, text)
}

// Selected styles the highlighted console suggestion.
func Selected(text string) string {
	return render(func(p palette) lipgloss.Style { return p.selected }, text)
}

// Usage highlights a usage line: <args>, [optional] and (a|b) groups
// as arguments, everything else as literals.
func Usage(line string) string {
	if !Enabled() {
		return line
	}

	words := strings.Split(line, " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		switch w[0] {
		case '<', '[', '(', '-':
			words[i] = Argument(w)
		default:
			words[i] = Literal(w)
		}
	}
	return strings.Join(words, " ")
}
