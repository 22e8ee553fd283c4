// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"text/tabwriter"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/pado-dev/pado/pkg/project"
	"github.com/spf13/cobra"
)

func infoActions(root *actions.ActionDescriptor) {
	root.Add("info", &actions.ActionDescriptorOptions{
		Command:        newInfoCmd(),
		ActionResolver: newInfoAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info [path]",
		Short: "Summarize the project enclosing a path.",
		Long: "Print the root, ecosystems, file count, build system and monorepo layout of the project " +
			"enclosing path (default: the current directory).",
		Args: cobra.MaximumNArgs(1),
	}
}

type infoAction struct {
	args      []string
	engine    *project.Engine
	formatter output.Formatter
	writer    io.Writer
}

func newInfoAction(
	args []string,
	engine *project.Engine,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &infoAction{
		args:      args,
		engine:    engine,
		formatter: formatter,
		writer:    writer,
	}
}

func (a *infoAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	root, err := a.engine.FindRoot(startPath(a.args))
	if err != nil {
		return nil, err
	}

	info, err := a.engine.Info(ctx, root)
	if err != nil {
		return nil, err
	}

	if a.formatter.Kind() == output.JsonFormat {
		return nil, a.formatter.Format(info, a.writer, nil)
	}

	tabs := tabwriter.NewWriter(a.writer, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tabs, "Project:\t%s\n", output.WithHighLightFormat(info.Name))
	fmt.Fprintf(tabs, "Root:\t%s\n", info.Root)
	fmt.Fprintf(tabs, "Ecosystems:\t%s\n", info.Ecosystems)
	fmt.Fprintf(tabs, "Files:\t%d\n", info.FileCount)
	fmt.Fprintf(tabs, "Build system:\t%s\n", info.BuildSystem.Name)
	if info.IsMonorepo {
		fmt.Fprintf(tabs, "Monorepo:\tyes, %d subprojects\n", len(info.Subprojects))
	} else {
		fmt.Fprintf(tabs, "Monorepo:\tno\n")
	}

	if err := tabs.Flush(); err != nil {
		return nil, err
	}

	for _, sub := range info.Subprojects {
		rel, err := filepath.Rel(info.Root, sub)
		if err != nil {
			rel = sub
		}

		fmt.Fprintf(a.writer, "  %s\n", filepath.ToSlash(rel))
	}

	return nil, nil
}
