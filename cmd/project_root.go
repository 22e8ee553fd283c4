// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/pado-dev/pado/pkg/project"
	"github.com/spf13/cobra"
)

func rootActions(root *actions.ActionDescriptor) {
	root.Add("root", &actions.ActionDescriptorOptions{
		Command:        newRootPathCmd(),
		ActionResolver: newRootPathAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})
}

func newRootPathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "root [path]",
		Short: "Print the project root enclosing a path.",
		Long: "Print the nearest directory, starting at path (default: the current directory) and walking " +
			"upward, that contains a project marker.",
		Args: cobra.MaximumNArgs(1),
	}
}

type rootPathAction struct {
	args      []string
	engine    *project.Engine
	formatter output.Formatter
	writer    io.Writer
}

func newRootPathAction(
	args []string,
	engine *project.Engine,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &rootPathAction{
		args:      args,
		engine:    engine,
		formatter: formatter,
		writer:    writer,
	}
}

type rootPathResult struct {
	Root string `json:"root"`
}

func (a *rootPathAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	root, err := a.engine.FindRoot(startPath(a.args))
	if err != nil {
		return nil, err
	}

	if a.formatter.Kind() == output.JsonFormat {
		return nil, a.formatter.Format(rootPathResult{Root: root}, a.writer, nil)
	}

	fmt.Fprintln(a.writer, root)
	return nil, nil
}
