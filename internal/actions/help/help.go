package help

import (
	"slices"
	"strings"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/arguments"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

var ErrNoHelp = usage.NewDynamic1Type("help_not_found", usage.CategoryStructural, func(a any) string {
	return "No help found for '" + a.(string) + "'"
})

// Register adds "help [<command>]" to d.
func Register(d *dispatchers.Dispatcher, deps Deps) {
	d.Register(dispatchers.Literal("help").
		InCategory(dispatchers.CategoryHost).
		Describe("Show usage for every command or one command").
		Executes(Overview(d, deps)).
		Then(dispatchers.Argument("command", arguments.Greedy()).
			Suggests(commandSuggestions(d)).
			Executes(Command(d, deps))))
}

// Overview lists the commands the caller may use, grouped by category.
func Overview(d *dispatchers.Dispatcher, deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}

		groups := map[dispatchers.CommandCategory][]dispatchers.SmartUsage{}
		for _, u := range d.SmartUsage(d.Root(), s) {
			c := u.Node.Category()
			groups[c] = append(groups[c], u)
		}

		width := 0
		for _, list := range groups {
			for _, u := range list {
				width = max(width, len(u.Usage))
			}
		}

		st := s.Styler()
		shown := 0
		for _, c := range dispatchers.CategoryOrder() {
			list := groups[c]
			if len(list) == 0 {
				continue
			}
			slices.SortFunc(list, func(a, b dispatchers.SmartUsage) int {
				return strings.Compare(a.Usage, b.Usage)
			})

			if shown > 0 {
				s.Feedback("")
			}
			s.Feedback("%s", st.Header(strings.ToUpper(c.String())))
			for _, u := range list {
				line := deps.Highlight(u.Usage) + strings.Repeat(" ", width-len(u.Usage))
				if desc := u.Node.Description(); desc != "" {
					line += "  " + st.Muted(desc)
				}
				s.Feedback("  %s", line)
				shown++
			}
		}
		return shown, nil
	}
}

// Command shows the usage below the node the given command text reaches.
func Command(d *dispatchers.Dispatcher, deps Deps) dispatchers.Command {
	return func(ctx *dispatchers.Context) (int, error) {
		s, err := actions.SessionFrom(ctx)
		if err != nil {
			return 0, err
		}
		text, err := arguments.GetString(ctx, "command")
		if err != nil {
			return 0, err
		}
		text = strings.TrimSpace(text)

		parse := d.Parse(text, s)
		nodes := parse.Context.LastChild().Nodes()
		if len(nodes) == 0 || parse.Reader.CanRead() {
			if similar := d.SimilarPaths(text, s, 3); len(similar) > 0 {
				s.Feedback("%s", s.Styler().Muted("did you mean: "+strings.Join(similar, ", ")+"?"))
			}
			return 0, ErrNoHelp.Create(text)
		}
		node := nodes[len(nodes)-1].Node
		prefix := parse.Reader.String()[:nodes[len(nodes)-1].Range.End]

		if desc := node.Description(); desc != "" {
			s.Feedback("%s", s.Styler().Muted(desc))
		}

		lines := 0
		if node.Command() != nil {
			s.Feedback("%s", deps.Highlight(prefix))
			lines++
		}
		for _, u := range d.SmartUsage(node, s) {
			s.Feedback("%s", deps.Highlight(prefix+" "+u.Usage))
			lines++
		}
		if target := node.Redirect(); target != nil {
			s.Feedback("%s", deps.Highlight(prefix+" "+d.RedirectText(target)))
			lines++
		}
		return lines, nil
	}
}

// commandSuggestions completes the help argument as if it were a command line.
func commandSuggestions(d *dispatchers.Dispatcher) dispatchers.SuggestionProvider {
	return func(ctx *dispatchers.Context, b *suggestion.Builder) *suggestion.Suggestions {
		parse := d.Parse(b.Remaining(), ctx.Source())
		inner := d.CompletionSuggestionsAtEnd(parse)
		for _, sug := range inner.List {
			b.SuggestTooltip(b.Remaining()[:sug.Range.Start]+sug.Text, sug.Tooltip)
		}
		return b.Build()
	}
}
