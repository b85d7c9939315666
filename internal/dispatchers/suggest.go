package dispatchers

import (
	"slices"
	"strings"

	"github.com/footprint-tools/brig/internal/suggestion"
)

// CompletionSuggestions lists what could be typed at cursor, literals
// first. Hidden nodes are never offered.
func (d *Dispatcher) CompletionSuggestions(parse *ParseResults, cursor int) *suggestion.Suggestions {
	builder := parse.Context
	sc, err := builder.FindSuggestionContext(cursor)
	if err != nil {
		return suggestion.Empty()
	}

	full := parse.Reader.String()
	cursor = min(cursor, len(full))
	truncated := full[:cursor]
	start := min(sc.StartPos, cursor)
	ctx := builder.Build(truncated)
	src := builder.Source()

	var literals, arguments []*suggestion.Suggestions
	for _, node := range sc.Parent.order {
		if !node.CanUse(src) {
			continue
		}
		s := node.ListSuggestions(ctx, suggestion.NewBuilder(truncated, start))
		if node.kind == KindLiteral {
			literals = append(literals, s)
		} else {
			arguments = append(arguments, s)
		}
	}

	merged := suggestion.MergeGroups(full, literals, arguments)
	if d.order != nil {
		merged = merged.Sorted(d.order)
	}
	return merged
}

// CompletionSuggestionsAtEnd completes at the end of the parsed input.
func (d *Dispatcher) CompletionSuggestionsAtEnd(parse *ParseResults) *suggestion.Suggestions {
	return d.CompletionSuggestions(parse, parse.Reader.TotalLength())
}

// levenshtein calculates the edit distance between two strings
func levenshtein(a, b string) int {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

type candidate struct {
	name     string
	distance int
}

// SimilarCommands finds literal children of node close to input that src
// may use, nearest first. Exact matches are skipped.
func SimilarCommands(input string, node *Node, src Source, maxResults int) []string {
	if node == nil {
		return nil
	}

	var names []string
	for _, child := range node.order {
		if child.kind == KindLiteral && child.CanUse(src) {
			names = append(names, child.literal)
		}
	}
	return nearest(input, names, maxResults)
}

// nearest returns the names within edit distance 3 of input, nearest
// first. Exact matches are skipped.
func nearest(input string, names []string, maxResults int) []string {
	const maxDistance = 3

	candidates := []candidate{}
	for _, name := range names {
		dist := levenshtein(input, name)
		if dist <= maxDistance && dist > 0 {
			candidates = append(candidates, candidate{name: name, distance: dist})
		}
	}

	slices.SortFunc(candidates, func(a, b candidate) int {
		if a.distance != b.distance {
			return a.distance - b.distance
		}
		return strings.Compare(a.name, b.name)
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.name
	}
	return result
}

// CollectAllCommands lists every literal path below node that src may use,
// without following redirects.
func CollectAllCommands(node *Node, src Source, prefix string) []string {
	if node == nil {
		return nil
	}

	var commands []string
	for _, child := range node.order {
		if child.kind != KindLiteral || !child.CanUse(src) {
			continue
		}
		fullPath := child.literal
		if prefix != "" {
			fullPath = prefix + " " + child.literal
		}
		commands = append(commands, fullPath)
		commands = append(commands, CollectAllCommands(child, src, fullPath)...)
	}
	return commands
}

// SimilarCommands suggests root commands close to token for a "did you mean" hint.
func (d *Dispatcher) SimilarCommands(token string, src Source, maxResults int) []string {
	return SimilarCommands(token, d.root, src, maxResults)
}

// SimilarPaths suggests literal command paths close to path, such as
// "time query" for "time qeury".
func (d *Dispatcher) SimilarPaths(path string, src Source, maxResults int) []string {
	return nearest(strings.Join(strings.Fields(path), " "), CollectAllCommands(d.root, src, ""), maxResults)
}
