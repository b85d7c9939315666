package theme

import (
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

func Register(d *dispatchers.Dispatcher, deps Deps) {
	d.Register(dispatchers.Literal("theme").
		InCategory(dispatchers.CategoryHost).
		Describe("List or switch color themes").
		Executes(List(deps)).
		Then(dispatchers.Literal("list").Executes(List(deps))).
		Then(dispatchers.Literal("set").
			Then(dispatchers.Argument("name", arguments.Choice(deps.ThemeNames...)).Executes(Set(deps)))))
}
