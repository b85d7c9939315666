package world

import (
	"errors"
	"fmt"
	"strings"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/usage"
)

var errPlayerExists = usage.NewDynamic1Type("player_exists", usage.CategoryCommand, func(a any) string {
	return fmt.Sprintf("A player named '%v' already exists", a)
})

func registerPlayers(d *dispatchers.Dispatcher, env *actions.Env) {
	d.Register(dispatchers.Literal("player").
		RequiresPermission(actions.PermissionOp).
		InCategory(dispatchers.CategoryPlayers).
		Describe("Add, remove or inspect players").
		Then(dispatchers.Literal("add").
			Then(dispatchers.Argument("name", arguments.Word()).Executes(playerAdd(env)))).
		Then(dispatchers.Literal("remove").
			Then(dispatchers.Argument("target", actions.Player(env.Store)).Executes(playerRemove(env)))).
		Then(dispatchers.Literal("info").
			Then(dispatchers.Argument("id", arguments.UUID()).Executes(playerInfo(env)))))

	d.Register(dispatchers.Literal("list").
		InCategory(dispatchers.CategoryPlayers).
		Describe("List the players in the world").
		Executes(list(env)))

	d.Register(dispatchers.Literal("op").
		RequiresPermission(actions.PermissionOp).
		InCategory(dispatchers.CategoryAdmin).
		Describe("Grant operator status").
		Then(dispatchers.Argument("targets", actions.Players(env.Store)).Executes(setOperator(env, true))))

	d.Register(dispatchers.Literal("deop").
		RequiresPermission(actions.PermissionOp).
		InCategory(dispatchers.CategoryAdmin).
		Describe("Revoke operator status").
		Then(dispatchers.Argument("targets", actions.Players(env.Store)).Executes(setOperator(env, false))))

	// A bare kill targets the caller, so the console may only use the targeted form.
	d.Register(dispatchers.Literal("kill").
		ConsoleUsage(dispatchers.ConsoleDenied).
		InCategory(dispatchers.CategoryPlayers).
		Describe("Kill players, clearing their inventory").
		Executes(killSelf(env)).
		Then(dispatchers.Argument("targets", actions.Players(env.Store)).
			RequiresPermission(actions.PermissionOp).
			ConsoleUsage(dispatchers.ConsoleAllowed).
			Executes(killTargets(env))))

	coords := dispatchers.Argument("x", arguments.Double()).
		Then(dispatchers.Argument("y", arguments.Double()).
			Then(dispatchers.Argument("z", arguments.Double()).Executes(teleportTo(env))))

	d.Register(dispatchers.Literal("tp").
		RequiresPermission(actions.PermissionOp).
		InCategory(dispatchers.CategoryPlayers).
		Describe("Teleport players to a position or another player").
		Then(dispatchers.Argument("targets", actions.Players(env.Store)).
			Then(coords).
			Then(dispatchers.Argument("destination", actions.Player(env.Store)).Executes(teleportToPlayer(env)))))
}

func playerAdd(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		name, err := arguments.GetString(ctx, "name")
		if err != nil {
			return 0, err
		}
		if strings.HasPrefix(name, "@") {
			return 0, actions.ErrUnknownSelector.Create(name)
		}

		p, err := env.Store.AddPlayer(name)
		if errors.Is(err, domain.ErrPlayerExists) {
			return 0, errPlayerExists.Create(name)
		}
		if err != nil {
			return 0, fmt.Errorf("player add: %w", err)
		}

		s.Success("Added %s (%s)", p.Name, p.ID)
		return dispatchers.SingleSuccess, nil
	}
}

func playerRemove(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		p, err := actions.ResolvePlayer(ctx, env.Store, "target")
		if err != nil {
			return 0, err
		}
		if err := env.Store.RemovePlayer(p.ID); err != nil {
			return 0, fmt.Errorf("player remove: %w", err)
		}
		s.Success("Removed %s", p.Name)
		return dispatchers.SingleSuccess, nil
	}
}

func playerInfo(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		id, err := arguments.GetUUID(ctx, "id")
		if err != nil {
			return 0, err
		}

		p, err := env.Store.PlayerByID(id)
		if errors.Is(err, domain.ErrPlayerNotFound) {
			return 0, actions.ErrPlayerNotFound.Create(id.String())
		}
		if err != nil {
			return 0, fmt.Errorf("player info: %w", err)
		}
		items, err := env.Store.Inventory(p.ID)
		if err != nil {
			return 0, fmt.Errorf("player info: %w", err)
		}

		st := s.Styler()
		s.Feedback("%s %s", st.Header(p.Name), st.Muted(p.ID.String()))
		s.Feedback("  operator: %t", p.Operator)
		s.Feedback("  position: %s", formatPos(p.X, p.Y, p.Z))
		s.Feedback("  deaths:   %d", p.Deaths)
		if len(items) == 0 {
			s.Feedback("  inventory: empty")
		} else {
			parts := make([]string, len(items))
			for i, it := range items {
				parts[i] = fmt.Sprintf("%d %s", it.Count, it.Item)
			}
			s.Feedback("  inventory: %s", strings.Join(parts, ", "))
		}
		return dispatchers.SingleSuccess, nil
	}
}

func list(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		players, err := env.Store.Players()
		if err != nil {
			return 0, fmt.Errorf("list: %w", err)
		}

		names := make([]string, len(players))
		for i, p := range players {
			names[i] = p.Name
			if p.Operator {
				names[i] += s.Styler().Muted(" (op)")
			}
		}
		s.Feedback("There are %d players: %s", len(players), strings.Join(names, ", "))
		return len(players), nil
	}
}

func setOperator(env *actions.Env, operator bool) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		players, err := actions.ResolvePlayers(ctx, env.Store, "targets")
		if err != nil {
			return 0, err
		}

		changed := 0
		for _, p := range players {
			if p.Operator == operator {
				continue
			}
			if err := env.Store.SetOperator(p.ID, operator); err != nil {
				return changed, fmt.Errorf("op %s: %w", p.Name, err)
			}
			changed++
			if operator {
				s.Success("Made %s a server operator", p.Name)
			} else {
				s.Success("Made %s no longer a server operator", p.Name)
			}
		}

		if changed == 0 {
			return 0, usage.CommandFailed.Create("Nothing changed")
		}
		return changed, nil
	}
}

func killSelf(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		p, ok := s.Player()
		if !ok {
			return 0, actions.ErrNotPlayer.Create()
		}
		return kill(s, env, []domain.Player{p})
	}
}

func killTargets(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := feedback(ctx)
		if err != nil {
			return 0, err
		}
		players, err := actions.ResolvePlayers(ctx, env.Store, "targets")
		if err != nil {
			return 0, err
		}
		return kill(s, env, players)
	}
}

func kill(s *actions.Session, env *actions.Env, players []domain.Player) (int, error) {
	for i, p := range players {
		if err := env.Store.KillPlayer(p.ID); err != nil {
			return i, fmt.Errorf("kill %s: %w", p.Name, err)
		}
		s.Feedback("Killed %s", p.Name)
	}
	return len(players), nil
}

func teleportTo(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		x, err := arguments.GetDouble(ctx, "x")
		if err != nil {
			return 0, err
		}
		y, err := arguments.GetDouble(ctx, "y")
		if err != nil {
			return 0, err
		}
		z, err := arguments.GetDouble(ctx, "z")
		if err != nil {
			return 0, err
		}
		return teleport(ctx, env, x, y, z, formatPos(x, y, z))
	}
}

func teleportToPlayer(env *actions.Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		dest, err := actions.ResolvePlayer(ctx, env.Store, "destination")
		if err != nil {
			return 0, err
		}
		return teleport(ctx, env, dest.X, dest.Y, dest.Z, dest.Name)
	}
}

func teleport(ctx *dispatchers.Context, env *actions.Env, x, y, z float64, label string) (int, error) {
	s, err := feedback(ctx)
	if err != nil {
		return 0, err
	}
	players, err := actions.ResolvePlayers(ctx, env.Store, "targets")
	if err != nil {
		return 0, err
	}

	for i, p := range players {
		if err := env.Store.MovePlayer(p.ID, x, y, z); err != nil {
			return i, fmt.Errorf("tp %s: %w", p.Name, err)
		}
		s.Feedback("Teleported %s to %s", p.Name, label)
	}
	return len(players), nil
}

func formatPos(x, y, z float64) string {
	return fmt.Sprintf("%g, %g, %g", x, y, z)
}
