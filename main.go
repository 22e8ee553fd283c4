// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/pado-dev/pado/cmd"
	"github.com/pado-dev/pado/internal"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	restoreColorMode := colorable.EnableColorsStdout(nil)
	defer restoreColorMode()

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}

	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if !isDebugEnabled() {
		log.SetOutput(io.Discard)
	}

	rootCmd := cmd.NewRootCmd()
	rootCmd.SetOut(colorable.NewColorableStdout())
	rootCmd.SetErr(colorable.NewColorableStderr())

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stderr := rootCmd.ErrOrStderr()
		fmt.Fprintln(stderr, output.WithErrorFormat("ERROR: %s", err.Error()))

		var withSuggestion *internal.ErrorWithSuggestion
		if errors.As(err, &withSuggestion) {
			fmt.Fprintln(stderr, withSuggestion.Suggestion)
		}

		stop()
		os.Exit(1)
	}
}

// isDebugEnabled checks to see if `--debug` was passed with a truthy value, or PADO_DEBUG is set.
func isDebugEnabled() bool {
	if os.Getenv("PADO_DEBUG") != "" {
		return true
	}

	debug := false
	flags := pflag.NewFlagSet("", pflag.ContinueOnError)
	flags.ParseErrorsWhitelist.UnknownFlags = true
	flags.SetOutput(io.Discard)
	flags.BoolVar(&debug, "debug", false, "")
	_ = flags.Parse(os.Args[1:])

	return debug
}
