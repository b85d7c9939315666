package dispatchers

// Builder assembles a node and its subtree before it is attached to a tree.
// Misuse (children on a forwarding node, forwarding a node with children)
// is a programming error and panics.
type Builder struct {
	kind    NodeKind
	literal string
	name    string
	argType ArgumentType
	option  bool

	suggestions SuggestionProvider
	arguments   *Node

	command      Command
	requirement  Requirement
	permission   string
	consoleUsage ConsoleUsage

	target   *Node
	modifier RedirectModifier
	forks    bool

	category    CommandCategory
	description string
}

// Literal starts a builder for a keyword node.
func Literal(literal string) *Builder {
	return &Builder{kind: KindLiteral, literal: literal, arguments: NewRootNode()}
}

// Argument starts a builder for a typed argument node.
func Argument(name string, t ArgumentType) *Builder {
	return &Builder{kind: KindArgument, name: name, argType: t, arguments: NewRootNode()}
}

// Then adds a child built from child.
func (b *Builder) Then(child *Builder) *Builder {
	return b.ThenNode(child.Build())
}

// ThenNode adds an already built child.
func (b *Builder) ThenNode(child *Node) *Builder {
	if b.target != nil {
		panic("dispatchers: cannot add children to a redirected node")
	}
	if err := b.arguments.AddChild(child); err != nil {
		panic(err)
	}
	return b
}

// Arguments returns the children added so far.
func (b *Builder) Arguments() []*Node {
	return b.arguments.Children()
}

func (b *Builder) Executes(cmd Command) *Builder {
	b.command = cmd
	return b
}

func (b *Builder) Requires(req Requirement) *Builder {
	b.requirement = req
	return b
}

// RequiresPermission hides the node from sources lacking permission.
func (b *Builder) RequiresPermission(permission string) *Builder {
	b.permission = permission
	return b
}

func (b *Builder) ConsoleUsage(mode ConsoleUsage) *Builder {
	b.consoleUsage = mode
	return b
}

// Suggests overrides the argument type's suggestions. Literals ignore it.
func (b *Builder) Suggests(provider SuggestionProvider) *Builder {
	b.suggestions = provider
	return b
}

// AsOption turns an argument into a named option written "--name value".
// Options may appear in any order among their siblings, at most once each.
func (b *Builder) AsOption() *Builder {
	if b.kind != KindArgument {
		panic("dispatchers: only arguments can be options")
	}
	b.option = true
	return b
}

func (b *Builder) InCategory(c CommandCategory) *Builder {
	b.category = c
	return b
}

func (b *Builder) Describe(description string) *Builder {
	b.description = description
	return b
}

// Redirect continues parsing at target with the same source.
func (b *Builder) Redirect(target *Node) *Builder {
	return b.Forward(target, nil, false)
}

// RedirectWith continues parsing at target with the source returned by modifier.
func (b *Builder) RedirectWith(target *Node, modifier SingleRedirectModifier) *Builder {
	var wrapped RedirectModifier
	if modifier != nil {
		wrapped = func(ctx *Context) ([]Source, error) {
			src, err := modifier(ctx)
			if err != nil {
				return nil, err
			}
			return []Source{src}, nil
		}
	}
	return b.Forward(target, wrapped, false)
}

// Fork continues at target once per source returned by modifier.
func (b *Builder) Fork(target *Node, modifier RedirectModifier) *Builder {
	return b.Forward(target, modifier, true)
}

func (b *Builder) Forward(target *Node, modifier RedirectModifier, fork bool) *Builder {
	if len(b.arguments.order) > 0 {
		panic("dispatchers: cannot forward a node with children")
	}
	b.target = target
	b.modifier = modifier
	b.forks = fork
	return b
}

// Build produces the node. Each call returns a fresh node sharing the
// already built children.
func (b *Builder) Build() *Node {
	node := newNode(b.kind)
	node.literal = b.literal
	node.name = b.name
	node.argType = b.argType
	node.option = b.option
	node.suggestions = b.suggestions
	node.command = b.command
	node.requirement = b.requirement
	node.permission = b.permission
	node.consoleUsage = b.consoleUsage
	node.redirect = b.target
	node.modifier = b.modifier
	node.forks = b.forks
	node.category = b.category
	node.description = b.description

	for _, child := range b.arguments.order {
		if err := node.AddChild(child); err != nil {
			panic(err)
		}
	}
	return node
}
