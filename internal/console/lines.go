package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
)

// RunLines executes every line of r in order. Blank lines and lines
// starting with # are skipped. Errors go to errOut prefixed with their line
// number; the number of failed lines is returned.
func RunLines(r io.Reader, d *dispatchers.Dispatcher, src dispatchers.Source, run func(string) (int, error), errOut io.Writer) (int, error) {
	scanner := bufio.NewScanner(r)
	failed := 0
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		if _, err := run(line); err != nil {
			failed++
			_, _ = fmt.Fprintf(errOut, "%d: %s\n", n, RenderError(d, src, line, err))
		}
	}
	return failed, scanner.Err()
}
