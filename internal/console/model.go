// Package console is the interactive brig shell: a prompt whose
// suggestions are recomputed from the command tree on every keystroke.
package console

import (
	"bytes"
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/ui/style"
)

const defaultSuggestionLimit = 8

// Config is what a console session runs against.
type Config struct {
	Dispatcher *dispatchers.Dispatcher
	Source     dispatchers.Source
	// Run executes one line. Feedback must be written to Output.
	Run    func(line string) (int, error)
	Output *bytes.Buffer
	// History is recalled oldest first with the arrow keys.
	History         []string
	HistorySize     int
	SuggestionLimit int
}

// Model is the bubbletea model of the console.
type Model struct {
	cfg   Config
	input textinput.Model

	suggestions []suggestion.Suggestion
	selected    int
	dismissed   bool
	hint        string

	history []string
	histPos int
	draft   string

	width    int
	quitting bool
	colors   style.ColorConfig
}

// New returns a focused console model.
func New(cfg Config) Model {
	if cfg.SuggestionLimit <= 0 {
		cfg.SuggestionLimit = defaultSuggestionLimit
	}
	if cfg.Output == nil {
		cfg.Output = &bytes.Buffer{}
	}

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "type a command, Tab to complete"
	_ = ti.Focus()

	history := trimHistory(cfg.History, cfg.HistorySize)
	m := Model{
		cfg:     cfg,
		input:   ti,
		history: history,
		histPos: len(history),
		colors:  style.GetColors(),
	}
	m.refresh()
	return m
}

// Run starts the console and blocks until the user quits or ctx ends.
func Run(ctx context.Context, cfg Config) error {
	_, err := tea.NewProgram(New(cfg), tea.WithContext(ctx)).Run()
	return err
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true
			return m, tea.Quit
		}

	case tea.KeyTab:
		m.apply()
		return m, nil

	case tea.KeyUp:
		if m.visible() {
			m.move(-1)
		} else {
			m.recall(-1)
		}
		return m, nil

	case tea.KeyDown:
		if m.visible() {
			m.move(1)
		} else {
			m.recall(1)
		}
		return m, nil

	case tea.KeyEsc:
		m.dismissed = true
		return m, nil

	case tea.KeyEnter:
		return m.submit()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.dismissed = false
		m.selected = 0
		m.refresh()
	}
	return m, cmd
}

// refresh recomputes suggestions and the parse hint for the current input.
func (m *Model) refresh() {
	line := m.input.Value()
	parse := m.cfg.Dispatcher.Parse(line, m.cfg.Source)

	sugs := m.cfg.Dispatcher.CompletionSuggestions(parse, m.input.Position())
	m.suggestions = sugs.List
	if m.selected >= len(m.suggestions) {
		m.selected = 0
	}

	m.hint = ""
	if strings.TrimSpace(line) != "" && len(m.suggestions) == 0 {
		if err := parse.Err(); err != nil {
			m.hint = err.Error()
		}
	}
}

func (m Model) visible() bool {
	return !m.dismissed && len(m.suggestions) > 0
}

func (m *Model) move(delta int) {
	n := len(m.suggestions)
	m.selected = ((m.selected+delta)%n + n) % n
}

// apply replaces the completed span with the selected suggestion.
func (m *Model) apply() {
	if !m.visible() {
		return
	}
	sug := m.suggestions[m.selected]
	m.input.SetValue(sug.Apply(m.input.Value()))
	m.input.SetCursor(sug.Range.Start + len(sug.Text))
	m.selected = 0
	m.refresh()
}

// recall walks the history; past the newest entry the draft comes back.
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	if m.histPos == len(m.history) {
		m.draft = m.input.Value()
	}

	m.histPos = min(max(m.histPos+delta, 0), len(m.history))
	if m.histPos == len(m.history) {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history[m.histPos])
	}
	m.input.CursorEnd()
	m.dismissed = true
	m.refresh()
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()
	m.dismissed = false
	m.selected = 0

	trimmed := strings.TrimSpace(line)
	switch trimmed {
	case "":
		m.refresh()
		return m, nil
	case "exit", "quit":
		m.quitting = true
		return m, tea.Quit
	}

	m.cfg.Output.Reset()
	_, err := m.cfg.Run(line)

	var out strings.Builder
	out.WriteString(m.echo(line))
	if m.cfg.Output.Len() > 0 {
		out.WriteString("\n")
		out.WriteString(strings.TrimRight(m.cfg.Output.String(), "\n"))
	}
	if err != nil {
		out.WriteString("\n")
		out.WriteString(RenderError(m.cfg.Dispatcher, m.cfg.Source, line, err))
	}
	m.cfg.Output.Reset()

	m.history = trimHistory(append(m.history, line), m.cfg.HistorySize)
	m.histPos = len(m.history)
	m.draft = ""
	m.refresh()

	return m, tea.Println(out.String())
}

// echo is the submitted line as it is printed above the prompt.
func (m Model) echo(line string) string {
	return style.Muted(m.input.Prompt + line)
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool { return m.quitting }

// Value returns the text currently at the prompt.
func (m Model) Value() string { return m.input.Value() }

// Suggestions returns the texts currently offered.
func (m Model) Suggestions() []string {
	texts := make([]string, len(m.suggestions))
	for i, s := range m.suggestions {
		texts[i] = s.Text
	}
	return texts
}

// Selected returns the index of the highlighted suggestion.
func (m Model) Selected() int { return m.selected }

func trimHistory(h []string, size int) []string {
	if size > 0 && len(h) > size {
		return h[len(h)-size:]
	}
	return h
}
