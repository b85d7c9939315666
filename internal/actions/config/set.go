package config

import (
	"fmt"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

func Set(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		key, err := arguments.GetString(ctx, "key")
		if err != nil {
			return 0, err
		}
		value, err := arguments.GetString(ctx, "value")
		if err != nil {
			return 0, err
		}

		if err := Validate(key, value); err != nil {
			return 0, err
		}

		_, existed := deps.Get(key)
		if err := deps.Set(key, value); err != nil {
			return 0, fmt.Errorf("config set %s: %w", key, err)
		}
		deps.Changed(key)

		action := "added"
		if existed {
			action = "updated"
		}
		s.Success("%s %s=%s", action, key, value)
		return dispatchers.SingleSuccess, nil
	}
}
