package console

import (
	"errors"
	"strings"

	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

// RenderError formats a failed line for the user. Unknown commands get a
// "did you mean" hint built from the root literals.
func RenderError(d *dispatchers.Dispatcher, src dispatchers.Source, line string, err error) string {
	var ue *usage.Error
	if !errors.As(err, &ue) {
		return style.Error("error: " + err.Error())
	}

	msg := style.Error(ue.Error())
	if usage.IsType(err, usage.DispatcherUnknownCommand) {
		first, _, _ := strings.Cut(strings.TrimSpace(line), " ")
		if similar := d.SimilarCommands(first, src, 3); len(similar) > 0 && d.FindNode(first) == nil {
			msg += "\n" + style.Muted("did you mean: "+strings.Join(similar, ", ")+"?")
		}
	}
	return msg
}
