package completions

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

// Generate writes the completion script for shell to w.
func Generate(w io.Writer, root *cobra.Command, shell Shell) error {
	switch shell {
	case ShellBash:
		return root.GenBashCompletionV2(w, true)
	case ShellZsh:
		return root.GenZshCompletion(w)
	case ShellFish:
		return root.GenFishCompletion(w, true)
	case ShellPowerShell:
		return root.GenPowerShellCompletionWithDesc(w)
	default:
		return fmt.Errorf("unsupported shell: %s", shell)
	}
}

// Install writes the script to the shell's auto-load directory and returns
// the file written. Shells without one get an error naming the rc file line
// to add instead.
func Install(root *cobra.Command, shell Shell) (string, error) {
	path := AutoInstallPath(shell)
	if path == "" {
		return "", fmt.Errorf("%s has no completion directory; add this to %s:\n  %s",
			shell, RcFile(shell), SourceInstructions(shell))
	}

	var buf bytes.Buffer
	if err := Generate(&buf, root, shell); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}
