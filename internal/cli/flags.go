package cli

import (
	"github.com/spf13/cobra"
)

// GlobalFlags are the flags every brig invocation accepts.
type GlobalFlags struct {
	As       string
	NoColor  bool
	NoPager  bool
	Pager    string
	LogLevel string
	Config   string
	Script   string
	Jobs     int
}

// BindFlags registers f on cmd as persistent flags.
func BindFlags(cmd *cobra.Command, f *GlobalFlags) {
	fs := cmd.PersistentFlags()
	fs.StringVar(&f.As, "as", "", "Run as this player instead of the console")
	fs.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&f.NoPager, "no-pager", false, "Do not use pager for output")
	fs.StringVar(&f.Pager, "pager", "", "Use specified pager for this command")
	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.Config, "config", "", "Path to config.toml")

	cmd.Flags().StringVar(&f.Script, "script", "", "Run every line of this file")
	cmd.Flags().IntVar(&f.Jobs, "jobs", 1, "Lines of a script run at once")
}
