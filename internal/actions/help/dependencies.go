// Package help registers the help command, which renders usage from the
// live command tree for whoever asks.
package help

import (
	"github.com/footprint-tools/brig/internal/ui/style"
)

type Deps struct {
	// Highlight colors one usage line.
	Highlight func(string) string
}

func DefaultDeps() Deps {
	return Deps{Highlight: style.Usage}
}
