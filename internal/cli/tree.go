// Package cli assembles the brig command tree from the action packages.
package cli

import (
	"github.com/footprint-tools/brig/internal/actions"
	configactions "github.com/footprint-tools/brig/internal/actions/config"
	"github.com/footprint-tools/brig/internal/actions/help"
	"github.com/footprint-tools/brig/internal/actions/history"
	"github.com/footprint-tools/brig/internal/actions/logs"
	"github.com/footprint-tools/brig/internal/actions/theme"
	"github.com/footprint-tools/brig/internal/actions/world"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/ui/style"
)

// Deps is everything the registered commands run against.
type Deps struct {
	Env      *actions.Env
	Config   configactions.Deps
	Theme    theme.Deps
	History  history.Deps
	Logs     logs.Deps
	Help     help.Deps
	Consumer dispatchers.ResultConsumer
}

// DefaultDeps wires the command packages to app. Changing a display key
// through config reapplies the styles.
func DefaultDeps(app *domain.Application, consumer dispatchers.ResultConsumer) Deps {
	cfg := configactions.DefaultDeps(app.Config)
	cfg.Changed = func(key string) {
		switch key {
		case "theme", "color_success", "color_warning", "color_error", "color_info", "color_muted", "color_header":
			if all, err := app.Config.GetAll(); err == nil {
				style.Init(style.Enabled(), all)
			}
		}
		app.Logger.Info("config: %s changed", key)
	}

	return Deps{
		Env:      actions.NewEnv(app),
		Config:   cfg,
		Theme:    theme.DefaultDeps(app.Config),
		History:  history.DefaultDeps(app.History, app.Config),
		Logs:     logs.DefaultDeps(),
		Help:     help.DefaultDeps(),
		Consumer: consumer,
	}
}

// BuildTree returns a dispatcher with every brig command registered.
func BuildTree(deps Deps) *dispatchers.Dispatcher {
	var opts []dispatchers.Option
	if deps.Consumer != nil {
		opts = append(opts, dispatchers.WithResultConsumer(deps.Consumer))
	}
	d := dispatchers.NewDispatcher(opts...)

	world.Register(d, deps.Env)
	history.Register(d, deps.History)
	configactions.Register(d, deps.Config)
	logs.Register(d, deps.Logs)
	theme.Register(d, deps.Theme)
	actions.RegisterVersion(d, deps.Env)
	help.Register(d, deps.Help)

	return d
}
