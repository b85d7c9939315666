package reader

import "fmt"

// Range is a half-open [Start, End) byte span of the input line.
type Range struct {
	Start int
	End   int
}

// At returns an empty range positioned at pos.
func At(pos int) Range {
	return Range{Start: pos, End: pos}
}

// Between returns the range [start, end).
func Between(start, end int) Range {
	return Range{Start: start, End: end}
}

// Encompassing returns the smallest range covering both a and b.
func Encompassing(a, b Range) Range {
	return Range{Start: min(a.Start, b.Start), End: max(a.End, b.End)}
}

// Get extracts the covered substring of s.
func (r Range) Get(s string) string {
	return s[r.Start:r.End]
}

func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

func (r Range) Length() int {
	return r.End - r.Start
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d)", r.Start, r.End)
}
