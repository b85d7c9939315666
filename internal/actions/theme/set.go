package theme

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
		name, err := arguments.GetString(ctx, "name")
		if err != nil {
			return 0, err
		}

		if err := deps.Set("theme", name); err != nil {
			return 0, fmt.Errorf("theme set: %w", err)
		}
		deps.Apply(name)

		s.Success("theme set to %s", name)
		return dispatchers.SingleSuccess, nil
	}
}
