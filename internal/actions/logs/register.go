package logs

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// Levels are the values --level accepts, lowest first.
var Levels = []string{"debug", "info", "warn", "error"}

func Register(d *dispatchers.Dispatcher, deps Deps) {
	level := func(cmd dispatchers.Command) *dispatchers.Builder {
		return dispatchers.Argument("level", arguments.Choice(Levels...)).
			AsOption().
			Describe("Only lines at this level or above").
			Executes(cmd)
	}
	limited := func(cmd dispatchers.Command) *dispatchers.Builder {
		return dispatchers.Argument("limit", arguments.IntegerBetween(1, maxLimit)).
			Executes(cmd).
			Then(level(cmd))
	}

	d.Register(dispatchers.Literal("logs").
		RequiresPermission(actions.PermissionConfig).
		InCategory(dispatchers.CategoryHost).
		Describe("Show or clear the application log").
		Executes(View(deps)).
		Then(limited(View(deps))).
		Then(level(View(deps))).
		Then(dispatchers.Literal("json").
			Executes(ViewJSON(deps)).
			Then(limited(ViewJSON(deps))).
			Then(level(ViewJSON(deps)))).
		Then(dispatchers.Literal("clear").
			Executes(Clear(deps))))
}
