package dispatchers

import (
	"errors"
	"maps"
	"slices"

	"github.com/footprint-tools/brig/internal/reader"
)

var errNoNodeBeforeCursor = errors.New("dispatchers: can't find node before cursor")

// ContextBuilder accumulates parse state. The dispatcher copies it for every
// branch it tries, so a failed branch never leaks into its siblings.
type ContextBuilder struct {
	source    Source
	root      *Node
	command   Command
	arguments map[string]ParsedArgument
	names     []string
	options   map[string]struct{}
	nodes     []ParsedCommandNode
	rng       reader.Range
	child     *ContextBuilder
	modifier  RedirectModifier
	forks     bool
	console   ConsoleUsage
}

// NewContextBuilder starts an empty context at start.
func NewContextBuilder(src Source, root *Node, start int) *ContextBuilder {
	return &ContextBuilder{
		source:    src,
		root:      root,
		arguments: map[string]ParsedArgument{},
		options:   map[string]struct{}{},
		rng:       reader.At(start),
		console:   root.consoleUsage,
	}
}

func (b *ContextBuilder) WithSource(src Source) *ContextBuilder {
	b.source = src
	return b
}

func (b *ContextBuilder) Source() Source                     { return b.source }
func (b *ContextBuilder) RootNode() *Node                    { return b.root }
func (b *ContextBuilder) Command() Command                   { return b.command }
func (b *ContextBuilder) Range() reader.Range                { return b.rng }
func (b *ContextBuilder) Child() *ContextBuilder             { return b.child }
func (b *ContextBuilder) RedirectModifier() RedirectModifier { return b.modifier }
func (b *ContextBuilder) IsForked() bool                     { return b.forks }
func (b *ContextBuilder) ConsoleUsage() ConsoleUsage         { return b.console }

// Nodes returns the matched nodes so far.
func (b *ContextBuilder) Nodes() []ParsedCommandNode {
	return slices.Clone(b.nodes)
}

// Arguments returns a copy of the parsed arguments.
func (b *ContextBuilder) Arguments() map[string]ParsedArgument {
	return maps.Clone(b.arguments)
}

func (b *ContextBuilder) WithArgument(name string, arg ParsedArgument) *ContextBuilder {
	if _, ok := b.arguments[name]; !ok {
		b.names = append(b.names, name)
	}
	b.arguments[name] = arg
	return b
}

func (b *ContextBuilder) WithOption(name string) *ContextBuilder {
	b.options[name] = struct{}{}
	return b
}

func (b *ContextBuilder) HasOption(name string) bool {
	_, ok := b.options[name]
	return ok
}

func (b *ContextBuilder) WithCommand(cmd Command) *ContextBuilder {
	b.command = cmd
	return b
}

// WithNode records a match and carries over the node's redirect settings
// and console mode.
func (b *ContextBuilder) WithNode(node *Node, rng reader.Range) *ContextBuilder {
	b.nodes = append(b.nodes, ParsedCommandNode{Node: node, Range: rng})
	b.rng = reader.Encompassing(b.rng, rng)
	b.modifier = node.modifier
	b.forks = node.forks
	b.console = resolveConsoleUsage(b.console, node.consoleUsage)
	return b
}

func (b *ContextBuilder) WithChild(child *ContextBuilder) *ContextBuilder {
	b.child = child
	return b
}

// LastChild follows the redirect chain to its end.
func (b *ContextBuilder) LastChild() *ContextBuilder {
	result := b
	for result.child != nil {
		result = result.child
	}
	return result
}

// lastNode is the deepest matched node, or the root when nothing matched.
func (b *ContextBuilder) lastNode() *Node {
	if len(b.nodes) == 0 {
		return b.root
	}
	return b.nodes[len(b.nodes)-1].Node
}

// Copy returns an independent builder; the child chain is shared.
func (b *ContextBuilder) Copy() *ContextBuilder {
	cp := *b
	cp.arguments = maps.Clone(b.arguments)
	cp.names = slices.Clone(b.names)
	cp.options = maps.Clone(b.options)
	cp.nodes = slices.Clone(b.nodes)
	return &cp
}

// Build freezes the builder chain into contexts for input.
func (b *ContextBuilder) Build(input string) *Context {
	var child *Context
	if b.child != nil {
		child = b.child.Build(input)
	}
	return &Context{
		source:    b.source,
		input:     input,
		command:   b.command,
		arguments: cloneArguments(b.arguments),
		names:     slices.Clone(b.names),
		options:   maps.Clone(b.options),
		root:      b.root,
		nodes:     slices.Clone(b.nodes),
		rng:       b.rng,
		child:     child,
		modifier:  b.modifier,
		forks:     b.forks,
		console:   b.console,
	}
}

// SuggestionContext is the node whose children complete the input at a
// cursor, and where the completed token starts.
type SuggestionContext struct {
	Parent   *Node
	StartPos int
}

// FindSuggestionContext locates the completion point for cursor.
func (b *ContextBuilder) FindSuggestionContext(cursor int) (SuggestionContext, error) {
	if b.rng.Start > cursor {
		return SuggestionContext{}, errNoNodeBeforeCursor
	}

	if b.rng.End < cursor {
		if b.child != nil {
			return b.child.FindSuggestionContext(cursor)
		}
		if len(b.nodes) > 0 {
			last := b.nodes[len(b.nodes)-1]
			return SuggestionContext{Parent: last.Node, StartPos: last.Range.End + 1}, nil
		}
		return SuggestionContext{Parent: b.root, StartPos: b.rng.Start}, nil
	}

	prev := b.root
	for _, node := range b.nodes {
		if node.Range.Start <= cursor && cursor <= node.Range.End {
			return SuggestionContext{Parent: prev, StartPos: node.Range.Start}, nil
		}
		prev = node.Node
	}
	if prev == nil {
		return SuggestionContext{}, errNoNodeBeforeCursor
	}
	return SuggestionContext{Parent: prev, StartPos: b.rng.Start}, nil
}
