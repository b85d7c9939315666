package world

import (
	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
)

func registerChat(d *dispatchers.Dispatcher, _ *actions.Env) {
	d.Register(dispatchers.Literal("say").
		InCategory(dispatchers.CategoryChat).
		Describe("Broadcast a message").
		Then(dispatchers.Argument("message", arguments.Greedy()).Executes(say)))

	d.Register(dispatchers.Literal("me").
		ConsoleUsage(dispatchers.ConsoleDenied).
		InCategory(dispatchers.CategoryChat).
		Describe("Describe an action in the third person").
		Then(dispatchers.Argument("action", arguments.Greedy()).Executes(emote)))
}

func say(ctx *dispatchers.Context) (int, error) {
	s, err := feedback(ctx)
	if err != nil {
		return 0, err
	}
	msg, err := arguments.GetString(ctx, "message")
	if err != nil {
		return 0, err
	}
	s.Feedback("[%s] %s", s.Name(), msg)
	return dispatchers.SingleSuccess, nil
}

func emote(ctx *dispatchers.Context) (int, error) {
	s, err := feedback(ctx)
	if err != nil {
		return 0, err
	}
	action, err := arguments.GetString(ctx, "action")
	if err != nil {
		return 0, err
	}
	s.Feedback("* %s %s", s.Name(), action)
	return dispatchers.SingleSuccess, nil
}
