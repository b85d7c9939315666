package arguments

import (
	"slices"
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
	"github.com/footprint-tools/brig/internal/usage"
)

// ChoiceType accepts one word out of a fixed set and yields it as a string.
type ChoiceType struct {
	values []string
}

func Choice(values ...string) ChoiceType {
	return ChoiceType{values: slices.Clone(values)}
}

func (c ChoiceType) Values() []string { return slices.Clone(c.values) }

func (c ChoiceType) Parse(r *reader.Reader) (any, error) {
	start := r.Cursor()
	word := r.ReadUnquotedString()
	if !slices.Contains(c.values, word) {
		r.SetCursor(start)
		return nil, usage.ArgumentUnknownChoice.CreateWithContext(r, word, strings.Join(c.values, ", "))
	}
	return word, nil
}

func (c ChoiceType) ListSuggestions(_ *dispatchers.Context, b *suggestion.Builder) *suggestion.Suggestions {
	for _, v := range c.values {
		if strings.HasPrefix(strings.ToLower(v), b.RemainingLowerCase()) {
			b.Suggest(v)
		}
	}
	return b.Build()
}

func (c ChoiceType) Examples() []string { return c.Values() }

func (c ChoiceType) String() string {
	return "choice(" + strings.Join(c.values, ", ") + ")"
}
