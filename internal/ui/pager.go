// Package ui provides the output writer with pager support.
//
// SECURITY NOTE: The pager functionality intentionally allows execution of
// arbitrary commands specified via config or $PAGER. This is standard
// behavior for CLI tools (similar to git, less, man) and requires local
// access to exploit. Users should only configure pagers they trust.
package ui

import (
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/term"
)

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Pager displays content through a pager if appropriate.
//
// Precedence:
//  1. pager disabled → direct output
//  2. output not a TTY → direct output
//  3. override (--pager) → uses it, "cat" bypasses
//  4. config pager → uses it, "cat" bypasses
//  5. $PAGER env var → uses it, "cat" bypasses
//  6. Default: "less -FRSX"
func (w *Writer) Pager(content string) {
	cmd := w.pagerCommand()
	if cmd == "" {
		_, _ = io.WriteString(w, content)
		return
	}
	w.runPagerCmd(cmd, content)
}

// pagerCommand returns the pager to run, or "" to write directly.
func (w *Writer) pagerCommand() string {
	if w.pagerDisabled || !w.isTerminal(w.out) {
		return ""
	}

	candidates := []string{w.pagerOverride}
	if w.configGetter != nil {
		configPager, _ := w.configGetter("pager")
		candidates = append(candidates, configPager)
	}
	if w.envGetter != nil {
		candidates = append(candidates, w.envGetter("PAGER"))
	}

	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if isBypassPager(c) {
			return ""
		}
		return c
	}

	return "less -FRSX"
}

// isBypassPager returns true if the pager command means "bypass pager".
func isBypassPager(cmd string) bool {
	return cmd == "cat"
}

func (w *Writer) runPagerCmd(pagerCmd string, content string) {
	parts := strings.Fields(pagerCmd)

	w.mu.Lock()
	defer w.mu.Unlock()

	cmd := exec.Command(parts[0], parts[1:]...)
	cmd.Stdin = strings.NewReader(content)
	cmd.Stdout = w.out
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		_, _ = io.WriteString(w.out, content)
	}
}
