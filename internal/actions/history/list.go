package history

import (
	"fmt"
	"slices"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
	"github.com/footprint-tools/brig/internal/format"
)

// List prints the newest entries, oldest first.
func List(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		filter, err := filterFrom(ctx, defaultLimit)
		if err != nil {
			return 0, err
		}

		entries, err := deps.Store.History(filter)
		if err != nil {
			return 0, fmt.Errorf("history: %w", err)
		}
		if len(entries) == 0 {
			s.Feedback("%s", s.Styler().Muted("No history yet"))
			return 0, nil
		}
		slices.Reverse(entries)

		st := s.Styler()
		now := deps.Now()
		for _, e := range entries {
			mark := st.Success("ok ")
			if !e.Success {
				mark = st.Error("err")
			}
			s.Feedback("%s %s %-10s %s",
				mark,
				st.Muted(deps.Layout.DateTimeShort(e.At.Local())),
				e.Source,
				e.Line)
			if e.Error != "" {
				s.Feedback("    %s", st.Muted(e.Error+" ("+format.Relative(e.At, now)+")"))
			}
		}
		return len(entries), nil
	}
}

func filterFrom(ctx *dispatchers.Context, fallback int) (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{Limit: fallback}
	if _, ok := ctx.Argument("limit"); ok {
		limit, err := arguments.GetInteger(ctx, "limit")
		if err != nil {
			return filter, err
		}
		filter.Limit = limit
	}
	source, err := dispatchers.OptionOr(ctx, "source", "")
	if err != nil {
		return filter, err
	}
	filter.Source = source
	return filter, nil
}
