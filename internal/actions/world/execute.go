package world

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

// registerExecute wires "execute as <targets> ..." as a fork back into
// execute and "execute run ..." as a redirect to the root.
func registerExecute(d *dispatchers.Dispatcher, env *actions.Env) {
	execute := d.Register(dispatchers.Literal("execute").
		RequiresPermission(actions.PermissionOp).
		InCategory(dispatchers.CategoryAdmin).
		Describe("Run a command as other players"))

	d.Register(dispatchers.Literal("execute").
		Then(dispatchers.Literal("run").Redirect(d.Root())).
		Then(dispatchers.Literal("as").
			Then(dispatchers.Argument("targets", actions.Players(env.Store)).
				Fork(execute, asTargets(env)))))
}

func asTargets(env *actions.Env) dispatchers.RedirectModifier {
	return func(ctx *dispatchers.Context) ([]dispatchers.Source, error) {
		s, err := feedback(ctx)
		if err != nil {
			return nil, err
		}
		players, err := actions.ResolvePlayers(ctx, env.Store, "targets")
		if err != nil {
			return nil, err
		}

		sources := make([]dispatchers.Source, len(players))
		for i, p := range players {
			sources[i] = s.As(p)
		}
		return sources, nil
	}
}
