package suggestion

import (
	"strings"

	"github.com/footprint-tools/brig/internal/reader"
)

// Builder collects suggestions for the input from Start to its end.
type Builder struct {
	input          string
	start          int
	remaining      string
	remainingLower string
	result         []Suggestion
}

func NewBuilder(input string, start int) *Builder {
	remaining := input[start:]
	return &Builder{
		input:          input,
		start:          start,
		remaining:      remaining,
		remainingLower: strings.ToLower(remaining),
	}
}

func (b *Builder) Input() string {
	return b.input
}

func (b *Builder) Start() int {
	return b.start
}

// Remaining is the text being completed.
func (b *Builder) Remaining() string {
	return b.remaining
}

func (b *Builder) RemainingLowerCase() string {
	return b.remainingLower
}

func (b *Builder) span() reader.Range {
	return reader.Between(b.start, len(b.input))
}

// Suggest adds text unless it is exactly what was already typed.
func (b *Builder) Suggest(text string) *Builder {
	return b.SuggestTooltip(text, "")
}

func (b *Builder) SuggestTooltip(text, tooltip string) *Builder {
	if text == b.remaining {
		return b
	}
	b.result = append(b.result, NewWithTooltip(b.span(), text, tooltip))
	return b
}

func (b *Builder) SuggestInt(value int) *Builder {
	return b.SuggestIntTooltip(value, "")
}

func (b *Builder) SuggestIntTooltip(value int, tooltip string) *Builder {
	b.result = append(b.result, NewInteger(b.span(), value, tooltip))
	return b
}

// Add appends everything other has collected.
func (b *Builder) Add(other *Builder) *Builder {
	b.result = append(b.result, other.result...)
	return b
}

// CreateOffset returns an empty builder over the same input starting at start.
func (b *Builder) CreateOffset(start int) *Builder {
	return NewBuilder(b.input, start)
}

// Restart returns an empty builder with the same start.
func (b *Builder) Restart() *Builder {
	return b.CreateOffset(b.start)
}

func (b *Builder) Build() *Suggestions {
	return Create(b.input, b.result)
}
