package history

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

// Most entries one listing may show.
const maxLimit = 500

const defaultLimit = 20

func Register(d *dispatchers.Dispatcher, deps Deps) {
	source := func() *dispatchers.Builder {
		return dispatchers.Argument("source", arguments.Word()).
			AsOption().
			Describe("Only lines run as this player or Console").
			Executes(List(deps))
	}

	d.Register(dispatchers.Literal("history").
		InCategory(dispatchers.CategoryHost).
		Describe("Show, export or clear dispatched lines").
		Executes(List(deps)).
		Then(dispatchers.Argument("limit", arguments.IntegerBetween(1, maxLimit)).
			Executes(List(deps)).
			Then(source())).
		Then(source()).
		Then(dispatchers.Literal("export").
			Then(dispatchers.Argument("format", arguments.Choice(Formats()...)).
				Executes(Export(deps)).
				Then(dispatchers.Argument("out", arguments.Phrase()).
					AsOption().
					RequiresPermission(actions.PermissionConfig).
					Describe("Write to this file instead of the session").
					Executes(Export(deps))))).
		Then(dispatchers.Literal("clear").
			RequiresPermission(actions.PermissionOp).
			Executes(Clear(deps))))
}
