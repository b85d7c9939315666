package config

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/domain"
)

func List(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		values, err := deps.GetAll()
		if err != nil {
			return 0, err
		}

		st := s.Styler()
		bySection := domain.ConfigKeysBySection()
		shown := 0
		for _, section := range domain.ConfigSections() {
			var lines []string
			for _, key := range bySection[section] {
				value, ok := values[key.Name]
				if !ok || (key.HideIfEmpty && value == "") {
					continue
				}
				lines = append(lines, st.Literal(key.Name)+"="+value)
			}
			if len(lines) == 0 {
				continue
			}

			if shown > 0 {
				s.Feedback("")
			}
			s.Feedback("%s", st.Header(section))
			for _, line := range lines {
				s.Feedback("  %s", line)
			}
			shown += len(lines)
		}
		return shown, nil
	}
}
