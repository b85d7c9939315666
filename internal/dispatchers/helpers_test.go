package dispatchers

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
)

type testSource struct {
	name        string
	console     bool
	permissions map[string]bool
}

func (s *testSource) Name() string                { return s.name }
func (s *testSource) IsConsole() bool             { return s.console }
func (s *testSource) HasPermission(p string) bool { return s.permissions[p] }

func player(name string, permissions ...string) *testSource {
	src := &testSource{name: name, permissions: map[string]bool{}}
	for _, p := range permissions {
		src.permissions[p] = true
	}
	return src
}

type intType struct{}

func (intType) Parse(r *reader.Reader) (any, error) {
	v, err := r.ReadInt()
	if err != nil {
		return nil, err
	}
	return int(v), nil
}

func (intType) Examples() []string { return []string{"0", "123", "-123"} }

type wordType struct{ words []string }

func (w wordType) Parse(r *reader.Reader) (any, error) {
	return r.ReadUnquotedString(), nil
}

func (w wordType) Examples() []string { return []string{"word", "words_with_underscores"} }

func (w wordType) ListSuggestions(_ *Context, b *suggestion.Builder) *suggestion.Suggestions {
	for _, word := range w.words {
		if strings.HasPrefix(word, b.RemainingLowerCase()) {
			b.Suggest(word)
		}
	}
	return b.Build()
}

func returns(v int) Command {
	return func(*Context) (int, error) { return v, nil }
}

func counter(n *int) Command {
	return func(*Context) (int, error) {
		*n++
		return *n, nil
	}
}

func itoa(i int) string { return strconv.Itoa(i) }

// separatorType consumes one character, so a longer token fails on the separator check.
type separatorType struct{}

func (separatorType) Parse(r *reader.Reader) (any, error) {
	return string(r.Read()), nil
}

func (separatorType) Examples() []string { return []string{"a"} }
