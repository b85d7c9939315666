// Package config registers the commands that inspect and edit the
// configuration file.
package config

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
)

// Register adds "config get|set|unset|list" to d.
func Register(d *dispatchers.Dispatcher, deps Deps) {
	keys := keyNames()

	d.Register(dispatchers.Literal("config").
		RequiresPermission(actions.PermissionConfig).
		InCategory(dispatchers.CategoryHost).
		Describe("Read and change configuration").
		Then(dispatchers.Literal("get").
			Then(dispatchers.Argument("key", arguments.Choice(keys...)).Executes(Get(deps)))).
		Then(dispatchers.Literal("set").
			Then(dispatchers.Argument("key", arguments.Choice(keys...)).
				Then(dispatchers.Argument("value", arguments.Greedy()).Executes(Set(deps))))).
		Then(dispatchers.Literal("unset").
			Then(dispatchers.Argument("key", arguments.Choice(keys...)).Executes(Unset(deps)))).
		Then(dispatchers.Literal("list").Executes(List(deps))))
}

func keyNames() []string {
	visible := domain.VisibleConfigKeys()
	names := make([]string, len(visible))
	for i, k := range visible {
		names[i] = k.Name
	}
	return names
}
