package dispatchers

import (
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
)

// Canonical handler results.
const (
	SingleSuccess = 1
	SingleFailure = 0
)

// Source is the identity a command line is executed as. The dispatcher only
// asks it for permissions and whether it is a non-interactive console.
type Source interface {
	Name() string
	HasPermission(permission string) bool
	IsConsole() bool
}

// ConsoleUsage controls whether a console source may run a command.
// Inherit defers to the closest ancestor that sets a mode.
type ConsoleUsage int

const (
	ConsoleInherit ConsoleUsage = iota
	ConsoleAllowed
	ConsoleDenied
)

func (c ConsoleUsage) String() string {
	switch c {
	case ConsoleAllowed:
		return "allowed"
	case ConsoleDenied:
		return "denied"
	default:
		return "inherit"
	}
}

// resolveConsoleUsage applies next on top of current.
func resolveConsoleUsage(current, next ConsoleUsage) ConsoleUsage {
	if next == ConsoleInherit {
		return current
	}
	return next
}

// Command is the handler run for a fully parsed line.
type Command func(ctx *Context) (int, error)

// Requirement decides whether a source may see and use a node.
type Requirement func(src Source) bool

// RedirectModifier maps the context at a redirect to the sources the rest of
// the line runs as. Returning several sources forks execution.
type RedirectModifier func(ctx *Context) ([]Source, error)

// SingleRedirectModifier substitutes exactly one source.
type SingleRedirectModifier func(ctx *Context) (Source, error)

// SuggestionProvider replaces an argument type's own suggestions.
type SuggestionProvider func(ctx *Context, b *suggestion.Builder) *suggestion.Suggestions

// ResultConsumer observes every handler invocation.
type ResultConsumer func(ctx *Context, success bool, result int)

// AmbiguityConsumer receives inputs accepted by both child and sibling under parent.
type AmbiguityConsumer func(parent, child, sibling *Node, inputs []string)

// ArgumentType converts the text at the reader's cursor into a value.
// On failure it must leave the cursor where it started.
type ArgumentType interface {
	Parse(r *reader.Reader) (any, error)
	Examples() []string
}

// Suggester is implemented by argument types that can complete their own input.
type Suggester interface {
	ListSuggestions(ctx *Context, b *suggestion.Builder) *suggestion.Suggestions
}
