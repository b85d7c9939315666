package console

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/testutil"
)

type harness struct {
	d    *dispatchers.Dispatcher
	src  *testutil.Source
	out  *bytes.Buffer
	ran  []string
	fail error
}

func newHarness() *harness {
	h := &harness{out: &bytes.Buffer{}, src: testutil.NewConsoleSource()}
	h.d = dispatchers.NewDispatcher()
	echo := func(ctx *dispatchers.Context) (int, error) {
		h.out.WriteString("ran " + ctx.Input() + "\n")
		return 1, nil
	}
	h.d.Register(dispatchers.Literal("time").
		Then(dispatchers.Literal("set").
			Then(dispatchers.Literal("day").Executes(echo)).
			Then(dispatchers.Literal("noon").Executes(echo)).
			Then(dispatchers.Argument("amount", arguments.Integer()).Executes(echo))).
		Then(dispatchers.Literal("query").Executes(echo)))
	h.d.Register(dispatchers.Literal("tp").Executes(echo))
	return h
}

func (h *harness) model(history ...string) Model {
	return New(Config{
		Dispatcher: h.d,
		Source:     h.src,
		Output:     h.out,
		History:    history,
		Run: func(line string) (int, error) {
			h.ran = append(h.ran, line)
			if h.fail != nil {
				return 0, h.fail
			}
			return h.d.Execute(line, h.src)
		},
	})
}

func typeText(m Model, s string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(Model)
}

func press(m Model, k tea.KeyType) (Model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(Model), cmd
}

func TestModel_SuggestsOnEmptyInput(t *testing.T) {
	m := newHarness().model()
	require.Equal(t, []string{"time", "tp"}, m.Suggestions())
}

func TestModel_SuggestionsFollowTyping(t *testing.T) {
	m := newHarness().model()

	m = typeText(m, "time set ")
	require.Equal(t, []string{"day", "noon"}, m.Suggestions())

	m = typeText(m, "n")
	require.Equal(t, []string{"noon"}, m.Suggestions())
}

func TestModel_TabAppliesSelected(t *testing.T) {
	m := newHarness().model()

	m = typeText(m, "time set ")
	m, _ = press(m, tea.KeyDown)
	require.Equal(t, 1, m.Selected())

	m, _ = press(m, tea.KeyTab)
	require.Equal(t, "time set noon", m.Value())
}

func TestModel_SelectionWraps(t *testing.T) {
	m := newHarness().model()

	m = typeText(m, "t")
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, 1, m.Selected())
	m, _ = press(m, tea.KeyDown)
	require.Equal(t, 0, m.Selected())
}

func TestModel_EnterRunsAndRecords(t *testing.T) {
	h := newHarness()
	m := h.model()

	m = typeText(m, "time set day")
	m, cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	require.Equal(t, []string{"time set day"}, h.ran)
	require.Empty(t, m.Value())
	require.Zero(t, h.out.Len())

	// History comes back with Up once suggestions are dismissed.
	m, _ = press(m, tea.KeyEsc)
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, "time set day", m.Value())
}

func TestModel_HistoryRestoresDraft(t *testing.T) {
	m := newHarness().model("time query", "tp")

	m = typeText(m, "zz")
	require.Empty(t, m.Suggestions())

	m, _ = press(m, tea.KeyUp)
	require.Equal(t, "tp", m.Value())
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, "time query", m.Value())
	m, _ = press(m, tea.KeyUp)
	require.Equal(t, "time query", m.Value())
	m, _ = press(m, tea.KeyDown)
	m, _ = press(m, tea.KeyDown)
	require.Equal(t, "zz", m.Value())
}

func TestModel_HintForBadInput(t *testing.T) {
	m := newHarness().model()

	m = typeText(m, "time set 1x")
	require.Contains(t, m.View(), "at position")
}

func TestModel_QuitKeys(t *testing.T) {
	m := newHarness().model()

	m, cmd := press(m, tea.KeyCtrlD)
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)

	m = newHarness().model()
	m = typeText(m, "exit")
	m, _ = press(m, tea.KeyEnter)
	require.True(t, m.Quitting())
	require.Empty(t, m.View())
}

func TestModel_BlankEnterDoesNothing(t *testing.T) {
	h := newHarness()
	m := h.model()

	m = typeText(m, "   ")
	_, cmd := press(m, tea.KeyEnter)
	require.Nil(t, cmd)
	require.Empty(t, h.ran)
}

func TestRenderError_SuggestsSimilar(t *testing.T) {
	h := newHarness()
	_, err := h.d.Execute("tme set day", h.src)
	require.Error(t, err)

	msg := RenderError(h.d, h.src, "tme set day", err)
	require.Contains(t, msg, "Unknown command")
	require.Contains(t, msg, "did you mean: time")
}

func TestRenderError_PlainError(t *testing.T) {
	h := newHarness()
	msg := RenderError(h.d, h.src, "tp", errors.New("disk full"))
	require.Equal(t, "error: disk full", msg)
}

func TestRunLines(t *testing.T) {
	h := newHarness()
	input := strings.Join([]string{
		"# warm up",
		"time set day",
		"",
		"time set never",
		"tp",
	}, "\n")
	errOut := &bytes.Buffer{}

	failed, err := RunLines(strings.NewReader(input), h.d, h.src, func(line string) (int, error) {
		return h.d.Execute(line, h.src)
	}, errOut)
	require.NoError(t, err)
	require.Equal(t, 1, failed)
	require.True(t, strings.HasPrefix(errOut.String(), "4: "))
	require.Equal(t, "ran time set day\nran tp\n", h.out.String())
}

func TestWindow(t *testing.T) {
	tests := []struct {
		n, sel, size       int
		wantStart, wantEnd int
	}{
		{3, 0, 8, 0, 3},
		{20, 0, 8, 0, 8},
		{20, 10, 8, 6, 14},
		{20, 19, 8, 12, 20},
	}
	for _, tt := range tests {
		start, end := window(tt.n, tt.sel, tt.size)
		require.Equal(t, tt.wantStart, start)
		require.Equal(t, tt.wantEnd, end)
	}
}
