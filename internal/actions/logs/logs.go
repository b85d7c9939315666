package logs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
)

// logLineRegex matches lines like: [2025-01-29 10:30:45] INFO: message
var logLineRegex = regexp.MustCompile(`^\[([^\]]+)\]\s+(DEBUG|INFO|WARN|ERROR):\s*(.*)$`)

type entry struct {
	Timestamp string `json:"timestamp,omitempty"`
	Level     string `json:"level,omitempty"`
	Message   string `json:"message"`
	Raw       bool   `json:"raw,omitempty"`
}

func parseLine(line string) entry {
	m := logLineRegex.FindStringSubmatch(line)
	if m == nil {
		return entry{Message: line, Raw: true}
	}
	return entry{Timestamp: m[1], Level: m[2], Message: m[3]}
}

// View shows the last lines of the log file.
func View(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		lines, ok, err := tail(ctx, s, deps, true)
		if err != nil || !ok {
			return 0, err
		}
		for _, line := range lines {
			s.Feedback("%s", colorize(s.Styler(), line))
		}
		return len(lines), nil
	}
}

// ViewJSON prints the same lines as a JSON array.
func ViewJSON(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		lines, _, err := tail(ctx, s, deps, false)
		if err != nil {
			return 0, err
		}

		entries := make([]entry, 0, len(lines))
		for _, line := range lines {
			entries = append(entries, parseLine(line))
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return 0, err
		}
		s.Feedback("%s", data)
		return len(entries), nil
	}
}

// tail reads the log and keeps the last lines that pass the level filter.
// ok is false when there was nothing to read; with announce the session is
// told why.
func tail(ctx *dispatchers.Context, s *actions.Session, deps Deps, announce bool) ([]string, bool, error) {
	logPath := deps.LogFilePath()

	info, err := deps.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		if announce {
			s.Feedback("%s", s.Styler().Muted("No log file found at "+logPath))
		}
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("stat log file: %w", err)
	}
	if info.Size() == 0 {
		if announce {
			s.Feedback("%s", s.Styler().Muted("Log file is empty"))
		}
		return nil, false, nil
	}

	content, err := deps.ReadFile(logPath)
	if err != nil {
		return nil, false, fmt.Errorf("read log file: %w", err)
	}

	limit := defaultLimit
	if _, ok := ctx.Argument("limit"); ok {
		if limit, err = arguments.GetInteger(ctx, "limit"); err != nil {
			return nil, false, err
		}
	}
	level, err := dispatchers.OptionOr(ctx, "level", "debug")
	if err != nil {
		return nil, false, err
	}
	minLevel := log.ParseLevel(level)

	var kept []string
	for _, line := range strings.Split(strings.TrimRight(string(content), "\n"), "\n") {
		if line == "" {
			continue
		}
		e := parseLine(line)
		if !e.Raw && log.ParseLevel(e.Level) < minLevel {
			continue
		}
		kept = append(kept, line)
	}
	if len(kept) > limit {
		kept = kept[len(kept)-limit:]
	}
	return kept, true, nil
}

// Clear empties the log file.
func Clear(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		if err := deps.WriteFile(deps.LogFilePath(), []byte{}, 0o600); err != nil {
			return 0, fmt.Errorf("clear log file: %w", err)
		}
		s.Success("Log file cleared")
		return dispatchers.SingleSuccess, nil
	}
}

// colorize styles a log line by its level.
func colorize(st domain.Styler, line string) string {
	switch parseLine(line).Level {
	case "ERROR":
		return st.Error(line)
	case "WARN":
		return st.Warning(line)
	case "INFO":
		return st.Info(line)
	case "DEBUG":
		return st.Muted(line)
	default:
		return line
	}
}
