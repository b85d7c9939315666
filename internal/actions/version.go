package actions

import (
	"runtime"

	"github.com/footprint-tools/brig/internal/dispatchers"
)

// RegisterVersion adds "version" to d.
func RegisterVersion(d *dispatchers.Dispatcher, env *Env) {
	d.Register(dispatchers.Literal("version").
		InCategory(dispatchers.CategoryHost).
		Describe("Show the brig version").
		Executes(ShowVersion(env)))
}

func ShowVersion(env *Env) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		s.Feedback("brig %s (%s/%s, %s)", env.Version(), runtime.GOOS, runtime.GOARCH, runtime.Version())
		return dispatchers.SingleSuccess, nil
	}
}
