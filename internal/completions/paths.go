package completions

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Shell is a shell cobra can generate a completion script for.
type Shell string

const (
	ShellBash       Shell = "bash"
	ShellZsh        Shell = "zsh"
	ShellFish       Shell = "fish"
	ShellPowerShell Shell = "powershell"
)

// Shells lists the supported shells in the order they are documented.
var Shells = []Shell{ShellBash, ShellZsh, ShellFish, ShellPowerShell}

// ParseShell accepts a shell name or a path to a shell binary.
func ParseShell(s string) (Shell, error) {
	name := strings.ToLower(filepath.Base(strings.TrimSpace(s)))
	name = strings.TrimSuffix(name, ".exe")
	if name == "pwsh" {
		name = string(ShellPowerShell)
	}
	for _, sh := range Shells {
		if string(sh) == name {
			return sh, nil
		}
	}
	return "", fmt.Errorf("unsupported shell: %q", s)
}

// DetectShell guesses the user's shell from $SHELL.
func DetectShell() (Shell, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "", fmt.Errorf("$SHELL is not set")
	}
	return ParseShell(shell)
}

// SourceInstructions returns the line that loads completions for shell.
func SourceInstructions(shell Shell) string {
	bin := BinaryPath()
	switch shell {
	case ShellBash, ShellZsh:
		return fmt.Sprintf(`eval "$(%s completion %s)"`, bin, shell)
	case ShellFish:
		return fmt.Sprintf(`%s completion fish | source`, bin)
	case ShellPowerShell:
		return fmt.Sprintf(`%s completion powershell | Out-String | Invoke-Expression`, bin)
	default:
		return ""
	}
}

// RcFile returns the startup file SourceInstructions belongs in.
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	case ShellPowerShell:
		return "$PROFILE"
	default:
		return ""
	}
}

// AutoInstallPath returns where the shell loads completions from without
// any rc file change, or "" when it has no such place.
func AutoInstallPath(shell Shell) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	bin := BinaryName()

	switch shell {
	case ShellFish:
		return filepath.Join(home, ".config", "fish", "completions", bin+".fish")
	case ShellBash:
		if IsBashCompletionInstalled() {
			return filepath.Join(home, ".local", "share", "bash-completion", "completions", bin)
		}
		return ""
	default:
		return ""
	}
}

var bashCompletionScripts = []string{
	"/usr/share/bash-completion/bash_completion",
	"/etc/bash_completion",
	"/usr/local/etc/profile.d/bash_completion.sh",
	"/opt/homebrew/etc/profile.d/bash_completion.sh",
}

// IsBashCompletionInstalled reports whether the bash-completion package,
// which lazily loads per-command scripts, is present.
func IsBashCompletionInstalled() bool {
	for _, p := range bashCompletionScripts {
		if _, err := os.Stat(p); err == nil {
			return true
		}
	}
	return false
}
