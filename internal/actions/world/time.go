package world

import (
	"fmt"
	"slices"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/format"
)

func registerTime(d *dispatchers.Dispatcher, env *actions.Env) {
	set := dispatchers.Literal("set").
		Then(dispatchers.Argument("amount", arguments.LongMin(0)).
			Executes(func(ctx *dispatchers.Context) (int, error) {
				amount, err := arguments.GetLong(ctx, "amount")
				if err != nil {
					return 0, err
				}
				return setTime(ctx, env, amount)
			}))

	names := make([]string, 0, len(domain.NamedTimes))
	for name := range domain.NamedTimes {
		names = append(names, name)
	}
	slices.Sort(names)
	for _, name := range names {
		ticks := domain.NamedTimes[name]
		set.Then(dispatchers.Literal(name).Executes(func(ctx *dispatchers.Context) (int, error) {
			return setTime(ctx, env, ticks)
		}))
	}

	add := dispatchers.Literal("add").
		Then(dispatchers.Argument("amount", arguments.IntegerMin(0)).
			Executes(func(ctx *dispatchers.Context) (int, error) {
				amount, err := arguments.GetInteger(ctx, "amount")
				if err != nil {
					return 0, err
				}
				s, err := feedback(ctx)
				if err != nil {
					return 0, err
				}
				clock, err := env.Store.AddTime(int64(amount))
				if err != nil {
					return 0, fmt.Errorf("time add: %w", err)
				}
				s.Success("Set the time to %d", clock.DayTime)
				return int(clock.TimeOfDay()), nil
			}))

	query := dispatchers.Literal("query")
	for _, q := range []struct {
		name  string
		value func(domain.WorldClock) int64
	}{
		{"daytime", domain.WorldClock.TimeOfDay},
		{"gametime", func(c domain.WorldClock) int64 { return c.GameTime }},
		{"day", domain.WorldClock.Day},
	} {
		query.Then(dispatchers.Literal(q.name).Executes(func(ctx *dispatchers.Context) (int, error) {
			s, err := feedback(ctx)
			if err != nil {
				return 0, err
			}
			clock, err := env.Store.Clock()
			if err != nil {
				return 0, fmt.Errorf("time query: %w", err)
			}
			v := q.value(clock)
			if q.name == "daytime" {
				s.Feedback("The time is %d (%s)", v, format.Ticks(v))
			} else {
				s.Feedback("The time is %d", v)
			}
			return clampInt(v), nil
		}))
	}

	d.Register(dispatchers.Literal("time").
		RequiresPermission(actions.PermissionOp).
		InCategory(dispatchers.CategoryWorld).
		Describe("Change or query the world clock").
		Then(set).
		Then(add).
		Then(query))
}

func setTime(ctx *dispatchers.Context, env *actions.Env, ticks int64) (int, error) {
	s, err := feedback(ctx)
	if err != nil {
		return 0, err
	}
	clock, err := env.Store.SetDayTime(ticks)
	if err != nil {
		return 0, fmt.Errorf("time set: %w", err)
	}
	s.Success("Set the time to %d", clock.DayTime)
	return clampInt(clock.TimeOfDay()), nil
}

// clampInt fits a tick count into a command result.
func clampInt(v int64) int {
	const maxResult = 1<<31 - 1
	if v > maxResult {
		return maxResult
	}
	return int(v)
}
