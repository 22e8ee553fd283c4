// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package cmd builds the pado command tree.
package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/cmd/middleware"
	"github.com/pado-dev/pado/internal"
	"github.com/pado-dev/pado/pkg/ioc"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root pado command and its children. Each call builds an independent container so
// commands can be executed repeatedly in tests.
func NewRootCmd() *cobra.Command {
	prevDir := ""
	opts := &internal.GlobalCommandOptions{}

	rootCmd := &cobra.Command{
		Use:   "pado",
		Short: "pado finds, classifies and indexes the software projects on your machine",
		Long: `pado finds, classifies and indexes the software projects on your machine.

A project root is the nearest directory containing a marker such as .git, go.mod, Cargo.toml or
package.json. Most commands start at the current directory and walk upward to find it.

The most common commands are:

	$ pado root
	$ pado info
	$ pado discover ~/src --depth 2`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Cwd != "" {
				current, err := os.Getwd()
				if err != nil {
					return err
				}

				prevDir = current

				if err := os.Chdir(opts.Cwd); err != nil {
					return fmt.Errorf("failed to change directory to %s: %w", opts.Cwd, err)
				}
			}

			log.SetFlags(log.LstdFlags | log.Lshortfile)
			if !opts.EnableDebugLogging {
				log.SetOutput(io.Discard)
			} else {
				log.SetOutput(cmd.ErrOrStderr())
			}

			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			// Restore the original directory so repeated executions in tests start from the same place.
			if prevDir != "" {
				return os.Chdir(prevDir)
			}

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.CompletionOptions.HiddenDefaultCmd = true
	rootCmd.PersistentFlags().StringVarP(&opts.Cwd, "cwd", "C", "", "Sets the current working directory.")
	rootCmd.PersistentFlags().BoolVar(
		&opts.EnableDebugLogging, "debug", os.Getenv("PADO_DEBUG") != "", "Enables debugging and diagnostics logging.")

	root := actions.NewActionDescriptor("pado", &actions.ActionDescriptorOptions{
		Command: rootCmd,
	}).
		UseMiddleware("debug", middleware.NewDebugMiddleware).
		UseMiddleware("error", middleware.NewErrorMiddleware)

	rootActions(root)
	typeActions(root)
	filesActions(root)
	discoverActions(root)
	infoActions(root)
	commandsActions(root)
	configActions(root)
	versionActions(root)

	container := ioc.NewNestedContainer(nil)
	ioc.RegisterInstance(container, opts)
	registerCommonDependencies(container)

	cmd, err := NewCobraBuilder(container).BuildCommand(root)
	if err != nil {
		// If there is a container registration error we want to fail fast
		panic(err)
	}

	return cmd
}
