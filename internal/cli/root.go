package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/footprint-tools/brig/internal/actions"
	"github.com/footprint-tools/brig/internal/completions"
	"github.com/footprint-tools/brig/internal/console"
	"github.com/footprint-tools/brig/internal/dispatchers"
	"github.com/footprint-tools/brig/internal/format"
	"github.com/footprint-tools/brig/internal/reader"
	"github.com/footprint-tools/brig/internal/ui/style"
	"github.com/footprint-tools/brig/internal/usage"
)

const (
	defaultHistorySize     = 500
	defaultSuggestionLimit = 8
)

// Streams are the standard streams a command runs with.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// ExitError carries the exit code of a run whose failure was already shown.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", e.Code)
}

// ExitCode maps err to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	var ue *usage.Error
	if errors.As(err, &ue) {
		return ue.GetExitCode()
	}
	return 1
}

// NewRootCommand builds the brig command. open is nil outside tests.
func NewRootCommand(streams Streams, open OpenFunc) *cobra.Command {
	if open == nil {
		open = Open
	}
	flags := &GlobalFlags{}

	root := &cobra.Command{
		Use:   "brig [command...]",
		Short: "Type commands against a small world, with live completion",
		Long: `brig parses every line against its command tree.

With no arguments it starts the console when stdin is a terminal and
reads one command per line otherwise. Arguments run a single command;
a single quoted argument is taken as the whole line.`,
		Version:       actions.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case flags.Script != "":
				return runScript(cmd.Context(), streams, flags, open)
			case len(args) > 0:
				return runOnce(streams, flags, open, JoinArgs(args))
			case isTerminal(streams.In):
				return runConsole(cmd.Context(), streams, flags, open)
			default:
				return runLines(streams, flags, open)
			}
		},
	}
	root.Flags().SetInterspersed(false)
	BindFlags(root, flags)

	root.ValidArgsFunction = completions.ValidArgs(func() (*dispatchers.Dispatcher, dispatchers.Source, func(), error) {
		rt, err := open(flags, io.Discard, io.Discard)
		if err != nil {
			return nil, nil, nil, err
		}
		return rt.Dispatcher, rt.Session, func() { _ = rt.Close() }, nil
	})

	root.SetIn(streams.In)
	root.SetOut(streams.Out)
	root.SetErr(streams.Err)

	// help is a brig command; cobra's must not shadow it.
	root.SetHelpCommand(&cobra.Command{Use: "__help", Hidden: true})
	root.CompletionOptions.DisableDefaultCmd = true
	root.AddCommand(newCompletionCommand(streams))
	return root
}

func newCompletionCommand(streams Streams) *cobra.Command {
	var install bool
	shells := make([]string, len(completions.Shells))
	for i, sh := range completions.Shells {
		shells[i] = string(sh)
	}

	cmd := &cobra.Command{
		Use:       "completion [bash|zsh|fish|powershell]",
		Short:     "Print or install the shell completion script",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: shells,
		RunE: func(cmd *cobra.Command, args []string) error {
			var shell completions.Shell
			var err error
			if len(args) == 1 {
				shell, err = completions.ParseShell(args[0])
			} else {
				shell, err = completions.DetectShell()
			}
			if err != nil {
				return err
			}

			if !install {
				return completions.Generate(streams.Out, cmd.Root(), shell)
			}
			path, err := completions.Install(cmd.Root(), shell)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(streams.Out, "Installed %s completions to %s\n", shell, path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&install, "install", false, "Write the script where the shell loads it automatically")
	return cmd
}

// JoinArgs rebuilds a command line from shell words. A single word is
// the line itself; otherwise words the reader would split are quoted.
func JoinArgs(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	quoted := make([]string, len(args))
	for i, a := range args {
		quoted[i] = reader.EscapeIfRequired(a)
	}
	return strings.Join(quoted, " ")
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runOnce executes line and pages whatever it printed.
func runOnce(streams Streams, flags *GlobalFlags, open OpenFunc, line string) error {
	var feedback bytes.Buffer
	rt, err := open(flags, streams.Out, &feedback)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	_, runErr := rt.Dispatch(line)
	if feedback.Len() > 0 {
		rt.App.Output.Pager(feedback.String())
	}
	if runErr != nil {
		_, _ = fmt.Fprintln(streams.Err, console.RenderError(rt.Dispatcher, rt.Session, line, runErr))
		return &ExitError{Code: ExitCode(runErr)}
	}
	return nil
}

func runLines(streams Streams, flags *GlobalFlags, open OpenFunc) error {
	rt, err := open(flags, streams.Out, nil)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	failed, err := console.RunLines(streams.In, rt.Dispatcher, rt.Session, rt.Dispatch, streams.Err)
	if err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

func runConsole(ctx context.Context, streams Streams, flags *GlobalFlags, open OpenFunc) error {
	var feedback bytes.Buffer
	rt, err := open(flags, streams.Out, &feedback)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	if last, ok := rt.LastSession(); ok {
		_, _ = fmt.Fprintln(streams.Out, style.Muted("Last session "+format.Relative(last, time.Now())))
	}
	defer func() { rt.MarkSession(time.Now()) }()

	size := rt.ConfigInt("history_size", defaultHistorySize)
	return console.Run(ctx, console.Config{
		Dispatcher:      rt.Dispatcher,
		Source:          rt.Session,
		Run:             rt.Dispatch,
		Output:          &feedback,
		History:         rt.RecentLines(size),
		HistorySize:     size,
		SuggestionLimit: rt.ConfigInt("suggestion_limit", defaultSuggestionLimit),
	})
}

type scriptLine struct {
	n    int
	text string
}

func readScript(path string) ([]scriptLine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer func() { _ = f.Close() }()

	var lines []scriptLine
	scanner := bufio.NewScanner(f)
	n := 0
	for scanner.Scan() {
		n++
		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, scriptLine{n: n, text: scanner.Text()})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return lines, nil
}

// runScript runs every line of the script with at most --jobs lines in
// flight. One job keeps file order; failed lines do not stop the rest.
func runScript(ctx context.Context, streams Streams, flags *GlobalFlags, open OpenFunc) error {
	if flags.Jobs < 1 {
		return fmt.Errorf("--jobs must be at least 1, got %d", flags.Jobs)
	}
	lines, err := readScript(flags.Script)
	if err != nil {
		return err
	}

	rt, err := open(flags, streams.Out, nil)
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close() }()

	var (
		failed atomic.Int64
		errMu  sync.Mutex
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(flags.Jobs)
	for _, l := range lines {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := rt.Dispatch(l.text); err != nil {
				failed.Add(1)
				msg := console.RenderError(rt.Dispatcher, rt.Session, l.text, err)
				errMu.Lock()
				_, _ = fmt.Fprintf(streams.Err, "%d: %s\n", l.n, msg)
				errMu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	rt.App.Logger.Info("cli: script %s ran %d lines, %d failed", flags.Script, len(lines), failed.Load())
	if failed.Load() > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
