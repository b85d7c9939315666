package testutil

import (
	"slices"
	"sync"
)

// Source is a dispatch source for engine tests. It grants the
// permissions it was built with and records every Feedback line.
type Source struct {
	name    string
	console bool
	perms   []string

	mu    sync.Mutex
	lines []string
}

// NewSource returns a non-console source holding perms.
func NewSource(name string, perms ...string) *Source {
	return &Source{name: name, perms: perms}
}

// NewConsoleSource returns a console source holding perms.
func NewConsoleSource(perms ...string) *Source {
	return &Source{name: "Console", console: true, perms: perms}
}

func (s *Source) Name() string    { return s.name }
func (s *Source) IsConsole() bool { return s.console }

func (s *Source) HasPermission(permission string) bool {
	return slices.Contains(s.perms, permission)
}

// Feedback records one line.
func (s *Source) Feedback(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

// Lines returns the recorded lines.
func (s *Source) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.lines)
}
