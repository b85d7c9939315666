package config

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/usage"
)

var ErrKeyNotSet = usage.NewDynamic1Type("config_key_not_set", usage.CategoryCommand, func(a any) string {
	return "Config key '" + a.(string) + "' has no value"
})

func Get(deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		key, err := arguments.GetString(ctx, "key")
		if err != nil {
			return 0, err
		}

		value, found := deps.Get(key)
		if !found || value == "" {
			return 0, ErrKeyNotSet.Create(key)
		}

		s.Feedback("%s", value)
		return dispatchers.SingleSuccess, nil
	}
}
