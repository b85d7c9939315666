package dispatchers

import (
	"errors"
	"slices"
	"strings"

	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

// ErrRootChild is returned when a root node is added below another node.
var ErrRootChild = errors.New("dispatchers: cannot add a root node as a child of another node")

// optionPrefix introduces an option argument on the command line.
const optionPrefix = "--"

type NodeKind int

const (
	KindRoot NodeKind = iota
	KindLiteral
	KindArgument
)

func (k NodeKind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindArgument:
		return "argument"
	default:
		return "root"
	}
}

// Node is a vertex of the command tree. Children keep insertion order;
// literal, positional and option children are also indexed separately so
// that parsing can pick candidates without scanning.
type Node struct {
	kind    NodeKind
	literal string
	name    string
	argType ArgumentType
	option  bool

	suggestions SuggestionProvider

	children   map[string]*Node
	order      []*Node
	literals   map[string]*Node
	options    map[string]*Node
	positional []*Node

	command      Command
	requirement  Requirement
	permission   string
	consoleUsage ConsoleUsage

	redirect *Node
	modifier RedirectModifier
	forks    bool

	category    CommandCategory
	description string
}

func newNode(kind NodeKind) *Node {
	return &Node{
		kind:     kind,
		children: make(map[string]*Node),
		literals: make(map[string]*Node),
		options:  make(map[string]*Node),
	}
}

// NewRootNode returns an empty tree root.
func NewRootNode() *Node {
	return newNode(KindRoot)
}

func (n *Node) Kind() NodeKind { return n.kind }

// Name is the literal text for literals, the argument name for arguments and
// empty for the root.
func (n *Node) Name() string {
	switch n.kind {
	case KindLiteral:
		return n.literal
	case KindArgument:
		return n.name
	default:
		return ""
	}
}

func (n *Node) Literal() string            { return n.literal }
func (n *Node) Type() ArgumentType         { return n.argType }
func (n *Node) IsOption() bool             { return n.option }
func (n *Node) Command() Command           { return n.command }
func (n *Node) Requirement() Requirement   { return n.requirement }
func (n *Node) Permission() string         { return n.permission }
func (n *Node) ConsoleUsage() ConsoleUsage { return n.consoleUsage }
func (n *Node) Redirect() *Node            { return n.redirect }
func (n *Node) RedirectModifier() RedirectModifier {
	return n.modifier
}
func (n *Node) IsFork() bool              { return n.forks }
func (n *Node) Category() CommandCategory { return n.category }
func (n *Node) Description() string       { return n.description }

// Children returns the direct children in insertion order.
func (n *Node) Children() []*Node {
	return slices.Clone(n.order)
}

// Child looks up a direct child by name.
func (n *Node) Child(name string) *Node {
	return n.children[name]
}

// SortedChildren returns the children literals first, each kind by name.
func (n *Node) SortedChildren() []*Node {
	return slices.SortedStableFunc(slices.Values(n.order), func(a, b *Node) int {
		return a.Compare(b)
	})
}

// CanUse reports whether src passes the node's requirement and permission.
func (n *Node) CanUse(src Source) bool {
	if n.requirement != nil && !n.requirement(src) {
		return false
	}
	if n.permission != "" && (src == nil || !src.HasPermission(n.permission)) {
		return false
	}
	return true
}

// AddChild attaches node below n. A child with the same name is merged:
// the incoming handler wins when set and grandchildren are merged recursively.
func (n *Node) AddChild(node *Node) error {
	if node.kind == KindRoot {
		return ErrRootChild
	}

	name := node.Name()
	if existing, ok := n.children[name]; ok {
		if node.command != nil {
			existing.command = node.command
		}
		for _, grandchild := range node.order {
			if err := existing.AddChild(grandchild); err != nil {
				return err
			}
		}
		return nil
	}

	n.children[name] = node
	n.order = append(n.order, node)
	switch {
	case node.kind == KindLiteral:
		n.literals[name] = node
	case node.option:
		n.options[name] = node
	default:
		n.positional = append(n.positional, node)
	}
	return nil
}

// RelevantNodes returns the children worth trying at the reader's cursor.
// A token naming a literal or option child selects that child alone;
// otherwise the positional arguments are returned in declaration order.
func (n *Node) RelevantNodes(r *reader.Reader) []*Node {
	if len(n.literals) > 0 || len(n.options) > 0 {
		token := peekToken(r)
		if literal, ok := n.literals[token]; ok {
			return []*Node{literal}
		}
		if name, ok := strings.CutPrefix(token, optionPrefix); ok {
			if option, ok := n.options[name]; ok {
				return []*Node{option}
			}
		}
	}
	return n.positional
}

func peekToken(r *reader.Reader) string {
	start := r.Cursor()
	for r.CanRead() && r.Peek() != reader.Separator {
		r.Skip()
	}
	token := r.String()[start:r.Cursor()]
	r.SetCursor(start)
	return token
}

// Parse consumes this node's portion of the input and records it in b.
func (n *Node) Parse(r *reader.Reader, b *ContextBuilder) error {
	start := r.Cursor()
	switch n.kind {
	case KindLiteral:
		end := n.parseLiteral(r)
		if end < 0 {
			return usage.LiteralIncorrect.CreateWithContext(r, n.literal)
		}
		b.WithNode(n, reader.Between(start, end))
		return nil

	case KindArgument:
		if n.option {
			if b.HasOption(n.name) {
				return usage.AmbiguousOption.CreateWithContext(r, n.name)
			}
			if err := n.parseFlag(r); err != nil {
				return err
			}
		}

		valueStart := r.Cursor()
		value, err := n.argType.Parse(r)
		if err != nil {
			r.SetCursor(start)
			return err
		}

		b.WithArgument(n.name, ParsedArgument{Range: reader.Between(valueStart, r.Cursor()), Value: value})
		if n.option {
			b.WithOption(n.name)
		}
		b.WithNode(n, reader.Between(start, r.Cursor()))
		return nil
	}
	return nil
}

// parseLiteral returns the end of the literal or -1, leaving the cursor
// untouched on mismatch. The literal must be followed by a separator or EOF.
func (n *Node) parseLiteral(r *reader.Reader) int {
	start := r.Cursor()
	if !r.CanReadN(len(n.literal)) {
		return -1
	}
	end := start + len(n.literal)
	if r.String()[start:end] != n.literal {
		return -1
	}
	r.SetCursor(end)
	if !r.CanRead() || r.Peek() == reader.Separator {
		return end
	}
	r.SetCursor(start)
	return -1
}

func (n *Node) parseFlag(r *reader.Reader) error {
	flag := optionPrefix + n.name
	start := r.Cursor()
	if !strings.HasPrefix(r.Remaining(), flag) {
		return usage.LiteralIncorrect.CreateWithContext(r, flag)
	}
	r.SetCursor(start + len(flag))
	if !r.CanRead() || r.Peek() != reader.Separator {
		err := usage.DispatcherExpectedArgumentSeparator.CreateWithContext(r)
		r.SetCursor(start)
		return err
	}
	r.Skip()
	return nil
}

// ListSuggestions completes the text in b against this node.
func (n *Node) ListSuggestions(ctx *Context, b *suggestion.Builder) *suggestion.Suggestions {
	switch n.kind {
	case KindLiteral:
		if strings.HasPrefix(strings.ToLower(n.literal), b.RemainingLowerCase()) {
			return b.Suggest(n.literal).Build()
		}
		return suggestion.Empty()

	case KindArgument:
		if n.option {
			flag := optionPrefix + n.name
			if !strings.HasPrefix(b.Remaining(), flag+string(reader.Separator)) {
				if strings.HasPrefix(flag, b.RemainingLowerCase()) {
					return b.SuggestTooltip(flag, n.description).Build()
				}
				return suggestion.Empty()
			}
			b = b.CreateOffset(b.Start() + len(flag) + 1)
		}
		if n.suggestions != nil {
			return n.suggestions(ctx, b)
		}
		if s, ok := n.argType.(Suggester); ok {
			return s.ListSuggestions(ctx, b)
		}
	}
	return suggestion.Empty()
}

// IsValidInput reports whether input alone would parse as this node.
func (n *Node) IsValidInput(input string) bool {
	r := reader.New(input)
	switch n.kind {
	case KindLiteral:
		return n.parseLiteral(r) > -1
	case KindArgument:
		if n.option {
			if err := n.parseFlag(r); err != nil {
				return false
			}
		}
		if _, err := n.argType.Parse(r); err != nil {
			return false
		}
		return !r.CanRead() || r.Peek() == reader.Separator
	}
	return false
}

// UsageText is how the node is written in usage strings.
func (n *Node) UsageText() string {
	switch n.kind {
	case KindLiteral:
		return n.literal
	case KindArgument:
		if n.option {
			return optionPrefix + n.name + " <" + n.name + ">"
		}
		return "<" + n.name + ">"
	default:
		return ""
	}
}

// Examples lists sample inputs this node accepts.
func (n *Node) Examples() []string {
	switch n.kind {
	case KindLiteral:
		return []string{n.literal}
	case KindArgument:
		examples := n.argType.Examples()
		if !n.option {
			return examples
		}
		flagged := make([]string, len(examples))
		for i, e := range examples {
			flagged[i] = optionPrefix + n.name + string(reader.Separator) + e
		}
		return flagged
	default:
		return nil
	}
}

// FindAmbiguities walks the subtree and reports every pair of siblings that
// both accept one of the other's example inputs.
func (n *Node) FindAmbiguities(fn AmbiguityConsumer) {
	for _, child := range n.order {
		for _, sibling := range n.order {
			if child == sibling {
				continue
			}
			var matches []string
			for _, input := range child.Examples() {
				if sibling.IsValidInput(input) {
					matches = append(matches, input)
				}
			}
			if len(matches) > 0 {
				fn(n, child, sibling, matches)
			}
		}
		child.FindAmbiguities(fn)
	}
}

// Compare orders literals before arguments and nodes of one kind by name.
func (n *Node) Compare(other *Node) int {
	if n.kind == other.kind {
		return strings.Compare(n.Name(), other.Name())
	}
	if n.kind == KindLiteral {
		return -1
	}
	if other.kind == KindLiteral {
		return 1
	}
	return int(n.kind) - int(other.kind)
}

func (n *Node) String() string {
	switch n.kind {
	case KindLiteral:
		return "<literal " + n.literal + ">"
	case KindArgument:
		return "<argument " + n.name + ">"
	default:
		return "<root>"
	}
}
