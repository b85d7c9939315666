// Package world registers the commands that act on the demo world:
// the clock, players, their inventories, chat and execute.
package world

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

// Register adds the world commands to d.
func Register(d *dispatchers.Dispatcher, env *actions.Env) {
	registerTime(d, env)
	registerPlayers(d, env)
	registerInventory(d, env)
	registerChat(d, env)
	registerExecute(d, env)
}

// feedback is how every handler here reaches its session.
func feedback(ctx *dispatchers.Context) (*actions.Session, error) {
	return actions.SessionFrom(ctx)
}
