package logs

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/testutil"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

const sample = `[2026-03-01 12:00:00] DEBUG: handler "say hi" as Console: success=true result=1
[2026-03-01 12:00:01] INFO: dispatch "say hi" as Console: result=1 in 2ms
[2026-03-01 12:00:02] WARN: dispatch "fly" as Console: structural: Unknown command
not a log line
[2026-03-01 12:00:03] ERROR: history: record "x": disk full
`

type fixture struct {
	d    *dispatchers.Dispatcher
	out  *bytes.Buffer
	cons *actions.Session
	path string
}

func setup(t *testing.T, content *string) *fixture {
	t.Helper()
	f := &fixture{
		d:    dispatchers.NewDispatcher(),
		out:  &bytes.Buffer{},
		path: filepath.Join(t.TempDir(), "brig.log"),
	}
	if content != nil {
		require.NoError(t, os.WriteFile(f.path, []byte(*content), 0o600))
	}
	Register(f.d, Deps{
		LogFilePath: func() string { return f.path },
		ReadFile:    os.ReadFile,
		WriteFile:   os.WriteFile,
		Stat:        os.Stat,
	})
	f.cons = actions.NewConsole(f.out, style.NopStyler{})
	return f
}

func (f *fixture) lines() []string {
	return strings.Split(strings.TrimRight(f.out.String(), "\n"), "\n")
}

func TestView_NoFile(t *testing.T) {
	f := setup(t, nil)

	n, err := f.d.Execute("logs", f.cons)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Contains(t, f.out.String(), "No log file found at "+f.path)
}

func TestView_Empty(t *testing.T) {
	empty := ""
	f := setup(t, &empty)

	_, err := f.d.Execute("logs", f.cons)
	require.NoError(t, err)
	require.Equal(t, "Log file is empty\n", f.out.String())
}

func TestView_All(t *testing.T) {
	content := sample
	f := setup(t, &content)

	n, err := f.d.Execute("logs", f.cons)
	require.NoError(t, err)
	require.Equal(t, 5, n)
	require.Equal(t, strings.Split(strings.TrimRight(sample, "\n"), "\n"), f.lines())
}

func TestView_Limit(t *testing.T) {
	content := sample
	f := setup(t, &content)

	n, err := f.d.Execute("logs 2", f.cons)
	require.NoError(t, err)
	require.Equal(t, 2, n)
	require.Equal(t, []string{"not a log line", `[2026-03-01 12:00:03] ERROR: history: record "x": disk full`}, f.lines())

	_, err = f.d.Execute("logs 0", f.cons)
	require.True(t, usage.IsType(err, usage.IntegerTooLow))
}

func TestView_Level(t *testing.T) {
	content := sample
	f := setup(t, &content)

	n, err := f.d.Execute("logs --level warn", f.cons)
	require.NoError(t, err)
	require.Equal(t, 3, n)
	require.Contains(t, f.out.String(), "WARN:")
	require.Contains(t, f.out.String(), "not a log line")
	require.NotContains(t, f.out.String(), "INFO:")

	f.out.Reset()
	n, err = f.d.Execute("logs 1 --level info", f.cons)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Contains(t, f.out.String(), "ERROR:")

	_, err = f.d.Execute("logs --level loud", f.cons)
	require.Error(t, err)
}

func TestViewJSON(t *testing.T) {
	content := sample
	f := setup(t, &content)

	n, err := f.d.Execute("logs json 3 --level info", f.cons)
	require.NoError(t, err)
	require.Equal(t, 3, n)

	var entries []entry
	require.NoError(t, json.Unmarshal(f.out.Bytes(), &entries))
	require.Equal(t, []entry{
		{Timestamp: "2026-03-01 12:00:02", Level: "WARN", Message: `dispatch "fly" as Console: structural: Unknown command`},
		{Message: "not a log line", Raw: true},
		{Timestamp: "2026-03-01 12:00:03", Level: "ERROR", Message: `history: record "x": disk full`},
	}, entries)
}

func TestViewJSON_NoFile(t *testing.T) {
	f := setup(t, nil)

	n, err := f.d.Execute("logs json", f.cons)
	require.NoError(t, err)
	require.Equal(t, 0, n)
	require.Equal(t, "[]\n", f.out.String())
}

func TestClear(t *testing.T) {
	content := sample
	f := setup(t, &content)

	_, err := f.d.Execute("logs clear", f.cons)
	require.NoError(t, err)
	require.Contains(t, f.out.String(), "Log file cleared")

	data, err := os.ReadFile(f.path)
	require.NoError(t, err)
	require.Empty(t, data)
}

func TestClear_WriteError(t *testing.T) {
	f := setup(t, nil)
	d := dispatchers.NewDispatcher()
	Register(d, Deps{
		LogFilePath: func() string { return f.path },
		WriteFile:   func(string, []byte, os.FileMode) error { return errors.New("read-only") },
	})

	_, err := d.Execute("logs clear", f.cons)
	require.ErrorContains(t, err, "clear log file: read-only")
}

func TestLogs_HiddenFromPlayers(t *testing.T) {
	f := setup(t, nil)
	p := actions.NewPlayerSession(domain.Player{Name: "alex", Operator: true}, f.out, style.NopStyler{})

	_, err := f.d.Execute("logs", p)
	require.True(t, usage.IsType(err, usage.DispatcherUnknownCommand))

	_, err = f.d.Execute("logs", testutil.NewSource("foreign", actions.PermissionConfig))
	require.Error(t, err)
}

func TestColorize(t *testing.T) {
	st := style.NopStyler{}
	for _, line := range strings.Split(strings.TrimRight(sample, "\n"), "\n") {
		require.Equal(t, line, colorize(st, line))
	}
}
