package config

import (
	"fmt"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

func Unset(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		key, err := arguments.GetString(ctx, "key")
		if err != nil {
			return 0, err
		}

		if err := deps.Unset(key); err != nil {
			return 0, fmt.Errorf("config unset %s: %w", key, err)
		}
		deps.Changed(key)

		s.Success("unset %s", key)
		return dispatchers.SingleSuccess, nil
	}
}
