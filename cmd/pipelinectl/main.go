// Package main is the entry point for the pipelinectl CLI.
//
// pipelinectl is a command-line companion for the Animal Insights data
// pipeline tutorial. It validates the local environment, walks through
// initial setup, generates the pipeline configuration file from deployed
// infrastructure, and tears everything down again when the tutorial is
// done.
//
// Commands: validate, setup, config, cleanup, version, completion.
//
// For detailed usage information, run:
//
//	pipelinectl --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/animal-insights/pipelinectl/cmd/pipelinectl/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.Root().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if ctx.Err() != nil {
			fmt.Fprintln(os.Stderr, "Interrupted. Any resources already created or deleted remain as they are; re-run the command to continue.")
		}
		os.Exit(1)
	}
}
