package world

import (
	"fmt"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

// Largest stack a single give may hand out.
const maxStack = 64

func registerInventory(d *dispatchers.Dispatcher, env *actions.Env) {
	d.Register(dispatchers.Literal("give").
		RequiresPermission(actions.PermissionOp).
		InCategory(dispatchers.CategoryPlayers).
		Describe("Give items to players").
		Then(dispatchers.Argument("targets", actions.Players(env.Store)).
			Then(dispatchers.Argument("item", arguments.Word()).
				Executes(give(env)).
				Then(dispatchers.Argument("count", arguments.IntegerBetween(1, maxStack)).
					AsOption().
					Executes(give(env))))))
}

func give(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		item, err := arguments.GetString(ctx, "item")
		if err != nil {
			return 0, err
		}
		count, err := dispatchers.OptionOr(ctx, "count", 1)
		if err != nil {
			return 0, err
		}
		players, err := actions.ResolvePlayers(ctx, env.Store, "targets")
		if err != nil {
			return 0, err
		}

		for i, p := range players {
			total, err := env.Store.GiveItem(p.ID, item, count)
			if err != nil {
				return i, fmt.Errorf("give %s: %w", p.Name, err)
			}
			s.Feedback("Gave %d [%s] to %s (now %d)", count, item, p.Name, total)
		}
		return len(players), nil
	}
}
