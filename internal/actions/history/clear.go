package history

import (
	"fmt"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

func Clear(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		n, err := deps.Store.ClearHistory()
		if err != nil {
			return 0, fmt.Errorf("history clear: %w", err)
		}
		s.Success("Removed %d history entries", n)
		return int(n), nil
	}
}
