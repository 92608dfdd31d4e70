// Command figstyle renders publication figures from TOML descriptions.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/figstyle/internal/cli"
	"github.com/matzehuels/figstyle/pkg/errors"
)

// Exit codes. A bad description or argument exits with exitInput so
// scripts can tell it from a failed write.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInput       = 2
	exitInterrupted = 130
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	cancel()
	if err != nil {
		report(os.Stderr, err)
	}
	os.Exit(exitCode(err))
}

func run(ctx context.Context, args []string) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true
	root.SetArgs(args)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log cache hits, layout passes and clipping checks")

	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return loadConfig(cmd, args)
	}

	return root.ExecuteContext(ctx)
}

// report prints err without its code prefix.
func report(w io.Writer, err error) {
	if stderrors.Is(err, context.Canceled) {
		fmt.Fprintln(w, "figstyle: interrupted")
		return
	}
	fmt.Fprintf(w, "figstyle: %s\n", errors.UserMessage(err))
}

func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if stderrors.Is(err, context.Canceled) {
		return exitInterrupted
	}
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidStyle,
		errors.ErrCodeInvalidPath, errors.ErrCodeFileNotFound, errors.ErrCodeUnsupported:
		return exitInput
	}
	return exitFailure
}
