package log

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

func TestLogger_BasicLogging(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")

	logger, err := New(logPath, LevelDebug)
	require.NoError(t, err)

	logger.Debug("debug message")
	logger.Info("info %d", 2)
	logger.Warn("warning message")
	logger.Error("error message")
	require.NoError(t, logger.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "DEBUG: debug message")
	require.Contains(t, content, "INFO: info 2")
	require.Contains(t, content, "WARN: warning message")
	require.Contains(t, content, "ERROR: error message")
}

func TestLogger_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)
	logger.Warn("unknown command %q", "tiem")

	line := strings.TrimRight(buf.String(), "\n")
	require.Regexp(t, regexp.MustCompile(`^\[\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\] WARN: unknown command "tiem"$`), line)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelWarn)

	logger.Debug("debug message")
	logger.Info("info message")
	logger.Warn("warning message")
	logger.Error("error message")

	content := buf.String()
	require.NotContains(t, content, "DEBUG")
	require.NotContains(t, content, "INFO")
	require.Contains(t, content, "WARN: warning message")
	require.Contains(t, content, "ERROR: error message")
}

func TestLogger_FilePermissions(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "perm.log")
	require.NoError(t, os.WriteFile(logPath, nil, 0644))

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestLogger_CreatesDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "brig.log")

	logger, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	require.NoError(t, logger.Close())

	info, err := os.Stat(filepath.Dir(logPath))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestLogger_AppendMode(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "append.log")

	first, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	first.Info("first")
	require.NoError(t, first.Close())

	second, err := New(logPath, LevelInfo)
	require.NoError(t, err)
	second.Info("second")
	require.NoError(t, second.Close())

	content := readLog(t, logPath)
	require.Contains(t, content, "INFO: first")
	require.Contains(t, content, "INFO: second")
}

func TestLogger_Disabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	logger.SetEnabled(false)
	logger.Error("hidden")
	logger.SetEnabled(true)
	logger.Error("shown")

	require.NotContains(t, buf.String(), "hidden")
	require.Contains(t, buf.String(), "shown")
}

func TestLogger_Writer(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelDebug)

	n, err := logger.Writer(LevelInfo).Write([]byte("from writer\n"))
	require.NoError(t, err)
	require.Equal(t, 12, n)
	require.Contains(t, buf.String(), "INFO: from writer\n")
	require.NotContains(t, buf.String(), "from writer\n\n")
}

func TestLogger_NilSafe(t *testing.T) {
	var logger *Logger
	require.NoError(t, logger.Close())
	logger.SetEnabled(true)
	logger.Debug("nothing")
	logger.Error("nothing")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"Error":   LevelError,
		"verbose": LevelWarn,
		"":        LevelWarn,
	}
	for input, want := range tests {
		require.Equal(t, want, ParseLevel(input), input)
	}
}

func TestLevel_String(t *testing.T) {
	require.Equal(t, "DEBUG", LevelDebug.String())
	require.Equal(t, "INFO", LevelInfo.String())
	require.Equal(t, "WARN", LevelWarn.String())
	require.Equal(t, "ERROR", LevelError.String())
	require.Equal(t, "UNKNOWN", Level(42).String())
}

func TestGlobalLogger(t *testing.T) {
	SetDefault(nil)
	require.Nil(t, GetLogger())
	Warn("dropped")
	require.NoError(t, Close())

	var buf bytes.Buffer
	SetDefault(NewWriter(&buf, LevelDebug))
	t.Cleanup(func() { SetDefault(nil) })

	Debug("global %s", "debug")
	Info("global info")
	Warn("global warn")
	Error("global error")

	content := buf.String()
	require.Contains(t, content, "DEBUG: global debug")
	require.Contains(t, content, "INFO: global info")
	require.Contains(t, content, "WARN: global warn")
	require.Contains(t, content, "ERROR: global error")
}

func TestInit(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "init.log")
	require.NoError(t, Init(logPath, LevelInfo))
	t.Cleanup(func() { SetDefault(nil) })

	Info("after init")
	require.NoError(t, Close())
	require.Contains(t, readLog(t, logPath), "INFO: after init")
}

func TestNew_ErrorCases(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0600))

	_, err := New(filepath.Join(blocker, "sub", "x.log"), LevelInfo)
	require.Error(t, err)
}
