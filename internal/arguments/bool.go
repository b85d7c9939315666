package arguments

import (
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/suggestion"
)

type BoolType struct{}

func Bool() BoolType { return BoolType{} }

func (BoolType) Parse(r *reader.Reader) (any, error) {
	return r.ReadBoolean()
}

func (BoolType) ListSuggestions(_ *dispatchers.Context, b *suggestion.Builder) *suggestion.Suggestions {
	for _, candidate := range []string{"true", "false"} {
		if strings.HasPrefix(candidate, b.RemainingLowerCase()) {
			b.Suggest(candidate)
		}
	}
	return b.Build()
}

func (BoolType) Examples() []string { return []string{"true", "false"} }

func (BoolType) String() string { return "bool()" }

func GetBool(ctx *dispatchers.Context, name string) (bool, error) {
	return dispatchers.ArgumentAs[bool](ctx, name)
}
