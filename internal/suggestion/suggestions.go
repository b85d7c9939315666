package suggestion

import (
	"slices"

	"github.com/footprint-tools/brig/internal/reader"
)

// Suggestions is a batch of candidates sharing one input range.
type Suggestions struct {
	Range reader.Range
	List  []Suggestion
}

// Empty returns a batch with no candidates.
func Empty() *Suggestions {
	return &Suggestions{Range: reader.At(0)}
}

func (s *Suggestions) IsEmpty() bool {
	return s == nil || len(s.List) == 0
}

// Texts returns the candidate texts in order.
func (s *Suggestions) Texts() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.List))
	for i, sug := range s.List {
		out[i] = sug.Text
	}
	return out
}

func span(list []Suggestion) reader.Range {
	r := list[0].Range
	for _, s := range list[1:] {
		r = reader.Encompassing(r, s.Range)
	}
	return r
}

// Create expands every suggestion to their common range, drops duplicate
// texts and sorts with Compare.
func Create(command string, list []Suggestion) *Suggestions {
	if len(list) == 0 {
		return Empty()
	}
	r := span(list)
	out := dedupe(command, r, list, make(map[string]struct{}))
	slices.SortStableFunc(out, Compare)
	return &Suggestions{Range: r, List: out}
}

// Merge combines several batches into one sorted batch.
func Merge(command string, inputs []*Suggestions) *Suggestions {
	switch len(inputs) {
	case 0:
		return Empty()
	case 1:
		return inputs[0]
	}
	var all []Suggestion
	for _, in := range inputs {
		all = append(all, in.List...)
	}
	return Create(command, all)
}

// MergeGroups combines batches group by group: each group is sorted on its
// own and groups keep their relative order. A text already produced by an
// earlier group is dropped from later ones.
func MergeGroups(command string, groups ...[]*Suggestions) *Suggestions {
	var all []Suggestion
	for _, group := range groups {
		for _, in := range group {
			all = append(all, in.List...)
		}
	}
	if len(all) == 0 {
		return Empty()
	}

	r := span(all)
	seen := make(map[string]struct{})
	var out []Suggestion
	for _, group := range groups {
		var part []Suggestion
		for _, in := range group {
			part = append(part, in.List...)
		}
		part = dedupe(command, r, part, seen)
		slices.SortStableFunc(part, Compare)
		out = append(out, part...)
	}
	return &Suggestions{Range: r, List: out}
}

// Sorted returns a copy ordered by cmp.
func (s *Suggestions) Sorted(cmp func(a, b Suggestion) int) *Suggestions {
	list := slices.Clone(s.List)
	slices.SortStableFunc(list, cmp)
	return &Suggestions{Range: s.Range, List: list}
}

func dedupe(command string, r reader.Range, list []Suggestion, seen map[string]struct{}) []Suggestion {
	out := make([]Suggestion, 0, len(list))
	for _, s := range list {
		e := s.Expand(command, r)
		if _, ok := seen[e.Text]; ok {
			continue
		}
		seen[e.Text] = struct{}{}
		out = append(out, e)
	}
	return out
}
