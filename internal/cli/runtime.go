package cli

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/app"
	"github.com/footprint-tools/brig/internal/config"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/paths"
	"github.com/footprint-tools/brig/internal/telemetry"
)

// Runtime is an opened application with its command tree and the session
// lines run as.
type Runtime struct {
	App        *domain.Application
	Recorder   *telemetry.Recorder
	Dispatcher *dispatchers.Dispatcher
	Session    *actions.Session
}

// OpenFunc opens a Runtime. feedback is where the session writes; nil
// means the application output.
type OpenFunc func(flags *GlobalFlags, stdout, feedback io.Writer) (*Runtime, error)

// Open applies the global flags to the configured options, opens the world
// and resolves who lines run as: --as, then the player config key, then
// the console.
func Open(flags *GlobalFlags, stdout, feedback io.Writer) (*Runtime, error) {
	config.LoadDotEnv()
	if flags.Config != "" {
		if err := os.Setenv(paths.ConfigEnvVar, flags.Config); err != nil {
			return nil, fmt.Errorf("set config path: %w", err)
		}
	}

	opts := app.DefaultOptions()
	opts.Out = stdout
	if flags.NoColor {
		opts.StyleEnabled = false
	}
	if flags.NoPager {
		opts.PagerDisabled = true
	}
	if flags.Pager != "" {
		opts.PagerOverride = flags.Pager
	}
	if flags.LogLevel != "" {
		opts.LogLevel = log.ParseLevel(flags.LogLevel)
	}

	application, err := app.New(opts)
	if err != nil {
		return nil, err
	}

	if feedback == nil {
		feedback = application.Output
	}

	session, err := resolveSession(application, flags.As, feedback)
	if err != nil {
		_ = app.Close(application)
		return nil, err
	}

	rec := telemetry.NewRecorder(application.History, application.Logger)
	return &Runtime{
		App:        application,
		Recorder:   rec,
		Dispatcher: BuildTree(DefaultDeps(application, rec.Consumer())),
		Session:    session,
	}, nil
}

func resolveSession(application *domain.Application, as string, out io.Writer) (*actions.Session, error) {
	if as == "" {
		as, _ = application.Config.Get("player")
	}
	if as == "" {
		return actions.NewConsole(out, application.Styler), nil
	}

	p, err := application.Store.PlayerByName(as)
	if err != nil {
		return nil, fmt.Errorf("run as %s: %w", as, err)
	}
	application.Logger.Debug("cli: running as player %s", p.Name)
	return actions.NewPlayerSession(p, out, application.Styler), nil
}

// Dispatch executes one line as the session and records it.
func (rt *Runtime) Dispatch(line string) (int, error) {
	return rt.Recorder.Dispatch(rt.Dispatcher, line, rt.Session)
}

// RecentLines returns up to n lines this session dispatched, oldest first.
func (rt *Runtime) RecentLines(n int) []string {
	entries, err := rt.App.History.History(domain.HistoryFilter{Source: rt.Session.Name(), Limit: n})
	if err != nil {
		rt.App.Logger.Warn("cli: load history: %v", err)
		return nil
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line
	}
	slices.Reverse(lines)
	return lines
}

// ConfigInt reads a positive integer config key, falling back to def.
func (rt *Runtime) ConfigInt(key string, def int) int {
	v, ok := rt.App.Config.Get(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

// LastSession returns when the previous console session ended.
func (rt *Runtime) LastSession() (time.Time, bool) {
	v, ok := rt.App.Config.Get("last_session")
	if !ok || v == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		rt.App.Logger.Warn("cli: bad last_session %q: %v", v, err)
		return time.Time{}, false
	}
	return t, true
}

// MarkSession records now as the end of a console session.
func (rt *Runtime) MarkSession(now time.Time) {
	if err := rt.App.Config.Set("last_session", now.UTC().Format(time.RFC3339)); err != nil {
		rt.App.Logger.Warn("cli: save last_session: %v", err)
	}
}

// Close releases the application.
func (rt *Runtime) Close() error {
	return app.Close(rt.App)
}
