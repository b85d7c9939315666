package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/footprint-tools/brig/internal/cli"
	"github.com/footprint-tools/brig/internal/ui/style"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], cli.Streams{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, streams cli.Streams) int {
	root := cli.NewRootCommand(streams, nil)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var ee *cli.ExitError
	if !errors.As(err, &ee) {
		_, _ = fmt.Fprintln(streams.Err, style.Error("brig: "+err.Error()))
	}
	return cli.ExitCode(err)
}
