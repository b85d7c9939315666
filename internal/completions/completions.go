// Package completions feeds the command tree to shell completion.
// Candidates come from the same suggestion engine the console uses, so the
// shell sees exactly what the source it runs as may type.
package completions

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
)

// Candidate is one word the shell may offer.
type Candidate struct {
	Value       string
	Description string
}

// Line rebuilds the command line the shell split into args and returns
// the offset where the word being completed starts. Finished words are
// quoted when the reader would otherwise split them.
func Line(args []string, toComplete string) (string, int) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(reader.EscapeIfRequired(a))
		b.WriteByte(' ')
	}
	start := b.Len()
	b.WriteString(toComplete)
	return b.String(), start
}

// Complete returns the candidates for the last word of args+toComplete.
// Suggestions that would rewrite an earlier word are dropped.
func Complete(d *dispatchers.Dispatcher, src dispatchers.Source, args []string, toComplete string) []Candidate {
	line, start := Line(args, toComplete)
	parse := d.Parse(line, src)
	sugs := d.CompletionSuggestionsAtEnd(parse)

	var out []Candidate
	for _, s := range sugs.List {
		applied := s.Apply(line)
		if len(applied) < start || applied[:start] != line[:start] {
			continue
		}
		out = append(out, Candidate{Value: applied[start:], Description: s.Tooltip})
	}
	return out
}

// ValidArgs adapts Complete to cobra. The tree and source are resolved on
// every request and released once the candidates are built; when resolving
// fails the shell gets no completion at all.
func ValidArgs(resolve func() (*dispatchers.Dispatcher, dispatchers.Source, func(), error)) func(*cobra.Command, []string, string) ([]cobra.Completion, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]cobra.Completion, cobra.ShellCompDirective) {
		disp, src, release, err := resolve()
		if err != nil {
			cobra.CompDebugln("brig: "+err.Error(), true)
			return nil, cobra.ShellCompDirectiveError
		}
		defer release()

		var comps []cobra.Completion
		for _, c := range Complete(disp, src, args, toComplete) {
			if c.Description != "" {
				comps = append(comps, cobra.CompletionWithDesc(c.Value, c.Description))
			} else {
				comps = append(comps, c.Value)
			}
		}
		return comps, cobra.ShellCompDirectiveNoFileComp
	}
}
