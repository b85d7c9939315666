package dispatchers

import (
	"fmt"
	"maps"
	"slices"

	"github.com/footprint-tools/brig/internal/reader"
)

// ParsedArgument is an argument value together with the input it came from.
type ParsedArgument struct {
	Range reader.Range
	Value any
}

// ParsedCommandNode records which node matched which span of input.
type ParsedCommandNode struct {
	Node  *Node
	Range reader.Range
}

// Context is the immutable result of parsing, handed to handlers and
// redirect modifiers. A redirect produces a child context for the rest of
// the line.
type Context struct {
	source    Source
	input     string
	command   Command
	arguments map[string]ParsedArgument
	names     []string
	options   map[string]struct{}
	root      *Node
	nodes     []ParsedCommandNode
	rng       reader.Range
	child     *Context
	modifier  RedirectModifier
	forks     bool
	console   ConsoleUsage
}

func (c *Context) Source() Source                     { return c.source }
func (c *Context) Input() string                      { return c.input }
func (c *Context) Command() Command                   { return c.command }
func (c *Context) RootNode() *Node                    { return c.root }
func (c *Context) Range() reader.Range                { return c.rng }
func (c *Context) Child() *Context                    { return c.child }
func (c *Context) RedirectModifier() RedirectModifier { return c.modifier }
func (c *Context) IsForked() bool                     { return c.forks }
func (c *Context) HasNodes() bool                     { return len(c.nodes) > 0 }

// Nodes returns the matched nodes in input order.
func (c *Context) Nodes() []ParsedCommandNode {
	return slices.Clone(c.nodes)
}

// LastChild follows the redirect chain to its end.
func (c *Context) LastChild() *Context {
	result := c
	for result.child != nil {
		result = result.child
	}
	return result
}

// ConsoleUsage is the resolved console mode of the matched path.
func (c *Context) ConsoleUsage() ConsoleUsage {
	if c.console == ConsoleInherit {
		return ConsoleAllowed
	}
	return c.console
}

// CopyFor returns the context with a different source.
func (c *Context) CopyFor(src Source) *Context {
	if c.source == src {
		return c
	}
	cp := *c
	cp.source = src
	return &cp
}

// Argument returns the parsed argument called name.
func (c *Context) Argument(name string) (ParsedArgument, bool) {
	arg, ok := c.arguments[name]
	return arg, ok
}

// ArgumentNames lists the parsed argument names in parse order.
func (c *Context) ArgumentNames() []string {
	return slices.Clone(c.names)
}

// HasOption reports whether the option called name was given.
func (c *Context) HasOption(name string) bool {
	_, ok := c.options[name]
	return ok
}

// ArgumentAs returns the argument called name as a T.
func ArgumentAs[T any](ctx *Context, name string) (T, error) {
	var zero T
	arg, ok := ctx.arguments[name]
	if !ok {
		return zero, fmt.Errorf("no such argument '%s' exists on this command", name)
	}
	value, ok := arg.Value.(T)
	if !ok {
		return zero, fmt.Errorf("argument '%s' is defined as %T, not %T", name, arg.Value, zero)
	}
	return value, nil
}

// OptionOr returns the option value when given and fallback otherwise.
func OptionOr[T any](ctx *Context, name string, fallback T) (T, error) {
	if !ctx.HasOption(name) {
		return fallback, nil
	}
	return ArgumentAs[T](ctx, name)
}

func cloneArguments(in map[string]ParsedArgument) map[string]ParsedArgument {
	if in == nil {
		return map[string]ParsedArgument{}
	}
	return maps.Clone(in)
}
