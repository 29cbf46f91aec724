// Package main provides a CLI for exploring the progress of a single reaction.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/rxnprogress/internal/platform/config"

	rxncmd "github.com/katalvlaran/rxnprogress/internal/cmd/rxnprogress"
)

func main() {
	cfg, err := rxncmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rxncmd.Run(ctx, cfg, os.Stdin, os.Stdout, os.Stderr); err != nil {
		config.Exitf("Error: %v", err)
	}
}
