// Package suggestion holds completion candidates and the helpers used to
// collect, merge and order them.
package suggestion

import (
	"strconv"
	"strings"

	"github.com/footprint-tools/brig/internal/reader"
)

// Suggestion replaces Range of the input with Text when applied.
type Suggestion struct {
	Range   reader.Range
	Text    string
	Tooltip string

	intValue int
	isInt    bool
}

func New(r reader.Range, text string) Suggestion {
	return Suggestion{Range: r, Text: text}
}

func NewWithTooltip(r reader.Range, text, tooltip string) Suggestion {
	return Suggestion{Range: r, Text: text, Tooltip: tooltip}
}

// NewInteger returns a suggestion that orders numerically against other integer suggestions.
func NewInteger(r reader.Range, value int, tooltip string) Suggestion {
	return Suggestion{
		Range:    r,
		Text:     strconv.Itoa(value),
		Tooltip:  tooltip,
		intValue: value,
		isInt:    true,
	}
}

// IntValue returns the numeric value of an integer suggestion.
func (s Suggestion) IntValue() (int, bool) {
	return s.intValue, s.isInt
}

// Apply returns input with the suggestion's range replaced by its text.
func (s Suggestion) Apply(input string) string {
	if s.Range.Start == 0 && s.Range.End == len(input) {
		return s.Text
	}
	var b strings.Builder
	b.WriteString(input[:s.Range.Start])
	b.WriteString(s.Text)
	if s.Range.End < len(input) {
		b.WriteString(input[s.Range.End:])
	}
	return b.String()
}

// Expand widens the suggestion to r, copying the surrounding text of command
// so that applying the result is equivalent to applying s.
func (s Suggestion) Expand(command string, r reader.Range) Suggestion {
	if r == s.Range {
		return s
	}
	var b strings.Builder
	if r.Start < s.Range.Start {
		b.WriteString(command[r.Start:s.Range.Start])
	}
	b.WriteString(s.Text)
	if r.End > s.Range.End {
		b.WriteString(command[s.Range.End:r.End])
	}
	return Suggestion{Range: r, Text: b.String(), Tooltip: s.Tooltip, intValue: s.intValue, isInt: s.isInt}
}

// Compare orders integer suggestions by value and everything else by
// case-insensitive text.
func Compare(a, b Suggestion) int {
	if a.isInt && b.isInt {
		switch {
		case a.intValue < b.intValue:
			return -1
		case a.intValue > b.intValue:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(a.Text), strings.ToLower(b.Text))
}
