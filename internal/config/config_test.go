package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/footprint-tools/brig/internal/paths"
)

// setupTempConfig points the config file at a fresh temp dir and clears BRIG_* overrides.
func setupTempConfig(t *testing.T) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "brig", "config.toml")
	t.Setenv(paths.ConfigEnvVar, configPath)
	for _, name := range []string{"LOG_LEVEL", "ENABLE_LOG", "DB_PATH", "COLOR", "PAGER", "PLAYER", "THEME", "SUGGESTION_LIMIT",
		"HISTORY_SIZE", "DISPLAY_DATE", "DISPLAY_TIME", "COLOR_SUCCESS", "COLOR_WARNING", "COLOR_ERROR",
		"COLOR_INFO", "COLOR_MUTED", "COLOR_HEADER"} {
		t.Setenv(EnvPrefix+name, "")
	}
	return configPath
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    map[string]string
		wantErr bool
	}{
		{
			name:  "empty",
			input: "",
			want:  map[string]string{},
		},
		{
			name:  "strings and comments",
			input: "# comment\nlog_level = \"debug\"\npager = \"less -R\"\n",
			want:  map[string]string{"log_level": "debug", "pager": "less -R"},
		},
		{
			name:  "non-string values are stringified",
			input: "suggestion_limit = 12\nenable_log = false\n",
			want:  map[string]string{"suggestion_limit": "12", "enable_log": "false"},
		},
		{
			name:    "tables are rejected",
			input:   "[display]\ntheme = \"mono\"\n",
			wantErr: true,
		},
		{
			name:    "invalid toml",
			input:   "log_level = \n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestReadFile_CreatesDefaults(t *testing.T) {
	configPath := setupTempConfig(t)

	values, err := ReadFile()
	require.NoError(t, err)
	require.Equal(t, "warn", values["log_level"])
	require.Equal(t, "auto", values["color"])
	require.NotContains(t, values, "player", "HideIfEmpty keys are not written")
	require.NotContains(t, values, "last_session", "hidden keys are not written")

	info, err := os.Stat(configPath)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	again, err := ReadFile()
	require.NoError(t, err)
	require.Equal(t, values, again)
}

func TestWriteFile_RoundTrip(t *testing.T) {
	configPath := setupTempConfig(t)

	want := map[string]string{"theme": "ocean", "pager": "less -FRSX"}
	require.NoError(t, WriteFile(want))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)
	require.Contains(t, string(content), "# brig configuration")

	got, err := ReadFile()
	require.NoError(t, err)
	require.Equal(t, want, got)

	entries, err := os.ReadDir(filepath.Dir(configPath))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestSetUnset(t *testing.T) {
	values := map[string]string{"theme": "mono"}

	require.True(t, Set(values, "theme", "ocean"))
	require.False(t, Set(values, "pager", "more"))
	require.Equal(t, map[string]string{"theme": "ocean", "pager": "more"}, values)

	require.True(t, Unset(values, "theme"))
	require.False(t, Unset(values, "theme"))
	require.Equal(t, map[string]string{"pager": "more"}, values)
}

func TestGet_Precedence(t *testing.T) {
	setupTempConfig(t)
	require.NoError(t, WriteFile(map[string]string{"log_level": "error"}))

	value, ok := Get("log_level")
	require.True(t, ok)
	require.Equal(t, "error", value, "file overrides default")

	value, ok = Get("theme")
	require.True(t, ok)
	require.Equal(t, "default", value, "default used when file lacks key")

	t.Setenv("BRIG_LOG_LEVEL", "debug")
	value, ok = Get("log_level")
	require.True(t, ok)
	require.Equal(t, "debug", value, "environment overrides file")

	_, ok = Get("no_such_key")
	require.False(t, ok)
}

func TestGet_DynamicDefault(t *testing.T) {
	setupTempConfig(t)

	value, ok := Get("db_path")
	require.True(t, ok)
	require.Equal(t, paths.DBPath(), value)
}

func TestGetAll(t *testing.T) {
	setupTempConfig(t)
	require.NoError(t, WriteFile(map[string]string{"pager": "more"}))
	t.Setenv("BRIG_PLAYER", "alex")

	all, err := GetAll()
	require.NoError(t, err)
	require.Equal(t, "more", all["pager"])
	require.Equal(t, "alex", all["player"])
	require.Equal(t, "8", all["suggestion_limit"])
}

func TestProvider_SetUnset(t *testing.T) {
	setupTempConfig(t)
	p := NewProvider()

	require.NoError(t, p.Set("theme", "contrast"))
	value, ok := p.Get("theme")
	require.True(t, ok)
	require.Equal(t, "contrast", value)

	require.NoError(t, p.Unset("theme"))
	value, _ = p.Get("theme")
	require.Equal(t, "default", value)

	require.Error(t, p.Set("bogus", "1"))
	require.Error(t, p.Unset("bogus"))
}

func TestWithLock_Exclusive(t *testing.T) {
	setupTempConfig(t)
	l, err := newFileLock()
	require.NoError(t, err)

	err = WithLock(func() error {
		_, err := os.Stat(l.path)
		require.NoError(t, err, "lock file exists while held")
		return nil
	})
	require.NoError(t, err)

	_, err = os.Stat(l.path)
	require.True(t, os.IsNotExist(err), "lock file removed after release")
}

func TestFileLock_TimeoutAndStale(t *testing.T) {
	setupTempConfig(t)
	l, err := newFileLock()
	require.NoError(t, err)
	l.wait = 20 * time.Millisecond
	l.poll = 5 * time.Millisecond

	held, err := l.acquire()
	require.NoError(t, err)

	_, err = l.acquire()
	require.ErrorIs(t, err, ErrLockTimeout)

	old := time.Now().Add(-time.Minute)
	require.NoError(t, os.Chtimes(l.path, old, old))
	again, err := l.acquire()
	require.NoError(t, err, "stale lock is taken over")

	_ = held.Close()
	l.release(again)
}

func TestEnvOverrides(t *testing.T) {
	setupTempConfig(t)
	t.Setenv("BRIG_COLOR", "never")
	t.Setenv("BRIG_SUGGESTION_LIMIT", "3")

	o, err := EnvOverrides()
	require.NoError(t, err)
	require.Equal(t, map[string]string{"color": "never", "suggestion_limit": "3"}, o.Values())
}

func TestEnvOverrides_EveryUserKey(t *testing.T) {
	setupTempConfig(t)
	t.Setenv("BRIG_HISTORY_SIZE", "50")
	t.Setenv("BRIG_DISPLAY_DATE", "dd/mm/yyyy")
	t.Setenv("BRIG_DISPLAY_TIME", "12h")
	t.Setenv("BRIG_COLOR_HEADER", "bold")
	t.Setenv("BRIG_COLOR_MUTED", "245")

	o, err := EnvOverrides()
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"history_size": "50",
		"display_date": "dd/mm/yyyy",
		"display_time": "12h",
		"color_header": "bold",
		"color_muted":  "245",
	}, o.Values())

	value, ok := Get("display_time")
	require.True(t, ok)
	require.Equal(t, "12h", value)
}
