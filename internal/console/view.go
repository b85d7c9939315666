package console

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	muted := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Muted))
	selected := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Selected)).Bold(true)
	warn := lipgloss.NewStyle().Foreground(lipgloss.Color(m.colors.Warning))

	var b strings.Builder
	b.WriteString(m.input.View())

	if m.visible() {
		start, end := window(len(m.suggestions), m.selected, m.cfg.SuggestionLimit)
		indent := strings.Repeat(" ", lipgloss.Width(m.input.Prompt)+m.suggestions[0].Range.Start)
		for i := start; i < end; i++ {
			s := m.suggestions[i]
			line := " " + s.Text
			if i == m.selected {
				line = selected.Render("›" + s.Text)
			}
			if s.Tooltip != "" {
				line += "  " + muted.Render(s.Tooltip)
			}
			b.WriteString("\n" + indent + line)
		}
		if end-start < len(m.suggestions) {
			b.WriteString("\n" + indent + muted.Render(" …"))
		}
	} else if m.hint != "" {
		b.WriteString("\n" + warn.Render(truncate(m.hint, m.width)))
	}

	b.WriteString("\n" + muted.Render("tab complete · ↑↓ select · enter run · ctrl+c quit"))
	return b.String()
}

// window returns the slice of n items of at most size that keeps sel visible.
func window(n, sel, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := max(0, min(sel-size/2, n-size))
	return start, start + size
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	r := []rune(s)
	if len(r) > width-1 {
		r = r[:width-1]
	}
	return string(r) + "…"
}
