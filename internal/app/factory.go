package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/footprint-tools/brig/internal/config"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/log"
	"github.com/footprint-tools/brig/internal/paths"
	"github.com/footprint-tools/brig/internal/store"
	"github.com/footprint-tools/brig/internal/ui"
	"github.com/footprint-tools/brig/internal/ui/style"
)

// Options configures the application factory.
type Options struct {
	// Pager options
	PagerDisabled bool
	PagerOverride string

	// Log options
	LogEnabled bool
	LogLevel   log.Level
	LogPath    string

	// Storage
	DBPath string

	// Style options
	StyleEnabled bool
	StyleConfig  map[string]string

	// Out replaces stdout as the output destination when set.
	Out io.Writer
}

// DefaultOptions reads the configuration to fill in Options.
// Color is enabled when the config says always, or auto on a terminal.
func DefaultOptions() Options {
	all, _ := config.GetAll()
	if all == nil {
		all = map[string]string{}
	}

	return Options{
		LogEnabled:   all["enable_log"] != "false",
		LogLevel:     log.ParseLevel(all["log_level"]),
		LogPath:      paths.LogFilePath(),
		DBPath:       all["db_path"],
		StyleEnabled: style.ShouldColor(all["color"], ui.IsTerminal(os.Stdout)),
		StyleConfig:  all,
	}
}

// New creates a new Application with all dependencies wired up.
func New(opts Options) (*domain.Application, error) {
	var logger domain.Logger = log.NopLogger{}
	if opts.LogEnabled && opts.LogPath != "" {
		l, err := log.New(opts.LogPath, opts.LogLevel)
		if err == nil {
			logger = l
			log.SetDefault(l)
		}
	}

	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = paths.DBPath()
	}
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
			_ = logger.Close()
			return nil, fmt.Errorf("create world directory: %w", err)
		}
	}
	worldStore, err := store.New(dbPath)
	if err != nil {
		_ = logger.Close()
		return nil, fmt.Errorf("open world %s: %w", dbPath, err)
	}

	style.Init(opts.StyleEnabled, opts.StyleConfig)

	var writerOpts []ui.WriterOption
	if opts.PagerDisabled {
		writerOpts = append(writerOpts, ui.WithPagerDisabled())
	}
	if opts.PagerOverride != "" {
		writerOpts = append(writerOpts, ui.WithPagerOverride(opts.PagerOverride))
	}
	writerOpts = append(writerOpts, ui.WithConfigGetter(config.Get))

	var output *ui.Writer
	if opts.Out != nil {
		output = ui.NewWriterTo(opts.Out, writerOpts...)
	} else {
		output = ui.NewWriter(writerOpts...)
	}

	logger.Debug("app: world %s ready", dbPath)

	return &domain.Application{
		Store:   worldStore,
		History: worldStore,
		Config:  config.NewProvider(),
		Logger:  logger,
		Output:  output,
		Styler:  style.NewStyler(),
	}, nil
}

// NewForTesting creates an Application on an in-memory world with a
// NopLogger and no styling.
func NewForTesting() (*domain.Application, error) {
	worldStore, err := store.New(":memory:")
	if err != nil {
		return nil, err
	}
	return &domain.Application{
		Store:   worldStore,
		History: worldStore,
		Config:  config.NewProvider(),
		Logger:  log.NopLogger{},
		Output:  ui.NewWriter(ui.WithPagerDisabled()),
		Styler:  style.NopStyler{},
	}, nil
}

// Close cleans up application resources.
func Close(app *domain.Application) error {
	if app.Logger != nil {
		_ = app.Logger.Close()
	}
	if app.Store != nil {
		_ = app.Store.Close()
	}
	return nil
}
