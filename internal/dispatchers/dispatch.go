package dispatchers

import (
	"errors"
	"slices"
	"strings"
	"unicode"

	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

// Dispatcher owns a command tree and parses, executes and completes input
// against it. A configured dispatcher is safe for concurrent Parse and
// Execute calls as long as the tree is not modified meanwhile.
type Dispatcher struct {
	root     *Node
	consumer ResultConsumer
	order    func(a, b suggestion.Suggestion) int
}

type Option func(*Dispatcher)

// WithRoot uses an existing tree.
func WithRoot(root *Node) Option {
	return func(d *Dispatcher) { d.root = root }
}

// WithResultConsumer observes every handler run, success or failure.
func WithResultConsumer(fn ResultConsumer) Option {
	return func(d *Dispatcher) { d.consumer = fn }
}

// WithSuggestionOrder replaces the default literal-first completion order.
func WithSuggestionOrder(cmp func(a, b suggestion.Suggestion) int) Option {
	return func(d *Dispatcher) { d.order = cmp }
}

func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{}
	for _, opt := range opts {
		opt(d)
	}
	if d.root == nil {
		d.root = NewRootNode()
	}
	if d.consumer == nil {
		d.consumer = func(*Context, bool, int) {}
	}
	return d
}

func (d *Dispatcher) Root() *Node { return d.root }

// Register builds b and merges it below the root. It returns the node that
// ends up in the tree, which differs from a fresh build when merged.
func (d *Dispatcher) Register(b *Builder) *Node {
	node := b.Build()
	if err := d.root.AddChild(node); err != nil {
		panic(err)
	}
	return d.root.Child(node.Name())
}

// NodeError is a failure recorded while trying one child.
type NodeError struct {
	Node *Node
	Err  error
}

// ParseResults is the outcome of Parse: the best context found, the reader
// positioned where that context stopped, and the failures recorded at that
// point in the order the children were tried.
type ParseResults struct {
	Context *ContextBuilder
	Reader  *reader.Reader
	Errors  []NodeError
}

// Err describes why the input cannot be executed as parsed, or returns nil
// when all of it was consumed.
func (p *ParseResults) Err() error {
	if !p.Reader.CanRead() || p.acceptsTrailing() {
		return nil
	}

	if len(p.Errors) > 0 {
		best, bestCursor := p.Errors[0].Err, errorCursor(p.Errors[0].Err)
		for _, e := range p.Errors[1:] {
			if c := errorCursor(e.Err); c > bestCursor {
				best, bestCursor = e.Err, c
			}
		}
		return best
	}

	if len(p.Context.LastChild().lastNode().order) == 0 {
		return usage.DispatcherUnknownArgument.CreateWithContext(p.Reader)
	}
	return usage.DispatcherUnknownCommand.CreateWithContext(p.Reader)
}

// acceptsTrailing allows whitespace after a complete handler-owning leaf.
func (p *ParseResults) acceptsTrailing() bool {
	if !onlyWhitespace(p.Reader) {
		return false
	}
	last := p.Context.LastChild()
	node := last.lastNode()
	return last.command != nil && node.command != nil && len(node.order) == 0
}

func errorCursor(err error) int {
	var ue *usage.Error
	if errors.As(err, &ue) && ue.HasContext() {
		return ue.Cursor
	}
	return -1
}

func onlyWhitespace(r *reader.Reader) bool {
	return strings.TrimLeftFunc(r.Remaining(), unicode.IsSpace) == ""
}

// Parse parses input as src without executing anything.
func (d *Dispatcher) Parse(input string, src Source) *ParseResults {
	return d.ParseReader(reader.New(input), src)
}

// ParseReader parses from the reader's cursor.
func (d *Dispatcher) ParseReader(r *reader.Reader, src Source) *ParseResults {
	ctx := NewContextBuilder(src, d.root, r.Cursor())
	return d.parseNodes(d.root, r, ctx)
}

func (d *Dispatcher) parseNodes(node *Node, original *reader.Reader, soFar *ContextBuilder) *ParseResults {
	src := soFar.Source()
	var errs []NodeError
	var potentials []*ParseResults

	for _, child := range node.RelevantNodes(original) {
		if !child.CanUse(src) {
			continue
		}

		ctx := soFar.Copy()
		r := original.Clone()
		if err := child.Parse(r, ctx); err != nil {
			errs = append(errs, NodeError{Node: child, Err: asUsageError(r, err)})
			continue
		}
		if r.CanRead() && r.Peek() != reader.Separator {
			errs = append(errs, NodeError{Node: child, Err: usage.DispatcherExpectedArgumentSeparator.CreateWithContext(r)})
			continue
		}

		ctx.WithCommand(child.command)
		need := 2
		if child.redirect != nil {
			need = 1
		}
		if !r.CanReadN(need) {
			potentials = append(potentials, &ParseResults{Context: ctx, Reader: r})
			continue
		}

		r.Skip()
		if child.redirect != nil {
			childCtx := NewContextBuilder(src, child.redirect, r.Cursor())
			childCtx.console = resolveConsoleUsage(ctx.console, child.redirect.consoleUsage)
			parse := d.parseNodes(child.redirect, r, childCtx)
			ctx.WithChild(parse.Context)
			return &ParseResults{Context: ctx, Reader: parse.Reader, Errors: parse.Errors}
		}
		potentials = append(potentials, d.parseNodes(child, r, ctx))
	}

	if len(potentials) > 0 {
		slices.SortStableFunc(potentials, comparePotentials)
		return potentials[0]
	}
	return &ParseResults{Context: soFar, Reader: original, Errors: errs}
}

// comparePotentials prefers fully consumed input, then error-free results,
// and otherwise keeps declaration order.
func comparePotentials(a, b *ParseResults) int {
	aDone, bDone := onlyWhitespace(a.Reader), onlyWhitespace(b.Reader)
	if aDone && !bDone {
		return -1
	}
	if !aDone && bDone {
		return 1
	}
	if len(a.Errors) == 0 && len(b.Errors) > 0 {
		return -1
	}
	if len(a.Errors) > 0 && len(b.Errors) == 0 {
		return 1
	}
	return 0
}

// asUsageError wraps failures that did not come from the usage catalog.
func asUsageError(r *reader.Reader, err error) error {
	var ue *usage.Error
	if errors.As(err, &ue) {
		return err
	}
	return usage.DispatcherParseException.CreateWithContext(r, err.Error())
}

// Execute parses and runs input as src.
func (d *Dispatcher) Execute(input string, src Source) (int, error) {
	return d.ExecuteParsed(d.Parse(input, src))
}

// ExecuteParsed runs a previous parse. Redirects hand the rest of the line
// to their target with the sources their modifier returns; forks run every
// source and count successes, swallowing individual failures.
func (d *Dispatcher) ExecuteParsed(parse *ParseResults) (int, error) {
	if err := parse.Err(); err != nil {
		return 0, err
	}

	original := parse.Context.Build(parse.Reader.String())
	contexts := []*Context{original}
	var next []*Context

	result := 0
	successfulForks := 0
	forked := false
	foundCommand := false

	for len(contexts) > 0 {
		for _, ctx := range contexts {
			if child := ctx.Child(); child != nil {
				forked = forked || ctx.IsForked()
				if !child.HasNodes() {
					continue
				}
				foundCommand = true

				modifier := ctx.RedirectModifier()
				if modifier == nil {
					next = append(next, child.CopyFor(ctx.Source()))
					continue
				}
				sources, err := modifier(ctx)
				if err != nil {
					d.consumer(ctx, false, 0)
					if !forked {
						return 0, err
					}
					continue
				}
				for _, src := range sources {
					next = append(next, child.CopyFor(src))
				}
				continue
			}

			if ctx.Command() == nil {
				continue
			}
			foundCommand = true

			value, err := d.invoke(ctx)
			if err != nil {
				d.consumer(ctx, false, 0)
				if !forked {
					return 0, err
				}
				continue
			}
			result += value
			d.consumer(ctx, true, value)
			successfulForks++
		}
		contexts, next = next, nil
	}

	if !foundCommand {
		d.consumer(original, false, 0)
		return 0, usage.DispatcherUnknownCommand.CreateWithContext(parse.Reader)
	}
	if forked {
		return successfulForks, nil
	}
	return result, nil
}

func (d *Dispatcher) invoke(ctx *Context) (int, error) {
	if src := ctx.Source(); src != nil && src.IsConsole() && ctx.ConsoleUsage() == ConsoleDenied {
		return 0, usage.ConsoleUsageDenied.Create()
	}
	return ctx.Command()(ctx)
}

// FindAmbiguities reports sibling nodes anywhere in the tree that accept
// the same example input.
func (d *Dispatcher) FindAmbiguities(fn AmbiguityConsumer) {
	d.root.FindAmbiguities(fn)
}
