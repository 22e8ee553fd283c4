// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/internal"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/pado-dev/pado/pkg/project"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func filesActions(root *actions.ActionDescriptor) {
	root.Add("files", &actions.ActionDescriptorOptions{
		Command:        newFilesCmd(),
		FlagsResolver:  newFilesFlags,
		ActionResolver: newFilesAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})
}

func newFilesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "files [pattern]",
		Short: "List the files of the current project.",
		Long: "List every file of the project enclosing the current directory, honoring .gitignore and .ignore " +
			"files. The optional pattern is matched against file names and may contain one '*' wildcard.",
		Example: `  pado files
  pado files '*.go' --relative`,
		Args: cobra.MaximumNArgs(1),
	}
}

type filesFlags struct {
	relative bool
	global   *internal.GlobalCommandOptions
}

func (f *filesFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	local.BoolVarP(&f.relative, "relative", "r", false, "Print paths relative to the project root.")
	f.global = global
}

func newFilesFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *filesFlags {
	flags := &filesFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

type filesAction struct {
	flags     *filesFlags
	args      []string
	engine    *project.Engine
	formatter output.Formatter
	writer    io.Writer
}

func newFilesAction(
	flags *filesFlags,
	args []string,
	engine *project.Engine,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &filesAction{
		flags:     flags,
		args:      args,
		engine:    engine,
		formatter: formatter,
		writer:    writer,
	}
}

func (a *filesAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	root, err := a.engine.FindRoot(".")
	if err != nil {
		return nil, err
	}

	pattern := ""
	if len(a.args) > 0 {
		pattern = a.args[0]
	}

	files, err := a.engine.ListFiles(ctx, root, pattern)
	if err != nil {
		return nil, err
	}

	if a.flags.relative {
		for i, file := range files {
			if rel, err := filepath.Rel(root, file); err == nil {
				files[i] = rel
			}
		}
	}

	if a.formatter.Kind() == output.JsonFormat {
		return nil, a.formatter.Format(files, a.writer, nil)
	}

	for _, file := range files {
		fmt.Fprintln(a.writer, file)
	}

	return nil, nil
}
