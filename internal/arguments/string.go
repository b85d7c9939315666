package arguments

import (
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/reader"
)

type StringMode int

const (
	SingleWord StringMode = iota
	QuotablePhrase
	GreedyPhrase
)

// StringType reads text in one of three modes. A greedy string takes the
// rest of the line, so it only makes sense as the last argument of a branch.
type StringType struct {
	mode StringMode
}

func Word() StringType   { return StringType{mode: SingleWord} }
func Phrase() StringType { return StringType{mode: QuotablePhrase} }
func Greedy() StringType { return StringType{mode: GreedyPhrase} }

func (s StringType) Mode() StringMode { return s.mode }

func (s StringType) Parse(r *reader.Reader) (any, error) {
	switch s.mode {
	case GreedyPhrase:
		text := r.Remaining()
		r.SetCursor(r.TotalLength())
		return text, nil
	case SingleWord:
		return r.ReadUnquotedString(), nil
	default:
		return r.ReadString()
	}
}

func (s StringType) Examples() []string {
	switch s.mode {
	case GreedyPhrase:
		return []string{"word", "words with spaces", `"and symbols"`}
	case SingleWord:
		return []string{"word", "words_with_underscores"}
	default:
		return []string{`"quoted phrase"`, "word", `""`}
	}
}

func (s StringType) String() string {
	switch s.mode {
	case GreedyPhrase:
		return "greedyString()"
	case SingleWord:
		return "word()"
	default:
		return "string()"
	}
}

// EscapeIfRequired quotes s when a quotable phrase needs it to round-trip.
func EscapeIfRequired(s string) string {
	return reader.EscapeIfRequired(s)
}

func GetString(ctx *dispatchers.Context, name string) (string, error) {
	return dispatchers.ArgumentAs[string](ctx, name)
}
