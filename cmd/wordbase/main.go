// Package main provides the wordbase dictionary CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/wordbase-dev/wordbase/internal/cli"
)

func main() {
	// Cancel the context on Ctrl+C or SIGTERM so an in-flight query
	// aborts and the deferred connection close still runs before the
	// process exits.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	err := cli.NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\nExiting.\n", err)
	}
	os.Exit(cli.ExitCode(err))
}
