// Command hypercube renders multi-dimensional parameter tables as spanning
// grids. See internal/cli for the command reference.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/hypercube/internal/cli"
	errs "github.com/matzehuels/hypercube/pkg/errors"
)

// Exit codes.
const (
	exitError       = 1   // I/O, cache, or internal failure
	exitBadDocument = 2   // the document is malformed or leaves a cell unresolved
	exitInterrupted = 130 // SIGINT
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cli.New(os.Stderr, cli.LogInfo).RootCommand().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	}
	fmt.Fprintln(os.Stderr, "Error:", errs.UserMessage(err))
	if errs.IsDocumentError(err) {
		return exitBadDocument
	}
	return exitError
}
