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

func commandsActions(root *actions.ActionDescriptor) {
	root.Add("commands", &actions.ActionDescriptorOptions{
		Command:        newCommandsCmd(),
		ActionResolver: newCommandsAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})
}

func newCommandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "commands [path]",
		Short: "Print the build, test and run commands of the project enclosing a path.",
		Args:  cobra.MaximumNArgs(1),
	}
}

type commandsAction struct {
	args      []string
	engine    *project.Engine
	formatter output.Formatter
	writer    io.Writer
}

func newCommandsAction(
	args []string,
	engine *project.Engine,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &commandsAction{
		args:      args,
		engine:    engine,
		formatter: formatter,
		writer:    writer,
	}
}

func (a *commandsAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	root, err := a.engine.FindRoot(startPath(a.args))
	if err != nil {
		return nil, err
	}

	system := a.engine.BuildSystem(root)

	if a.formatter.Kind() == output.JsonFormat {
		return nil, a.formatter.Format(system, a.writer, nil)
	}

	if !system.Known() {
		fmt.Fprintln(a.writer, output.WithWarningFormat("No build system detected in %s", root))
		return nil, nil
	}

	fmt.Fprintf(a.writer, "%s (%s)\n", output.WithHighLightFormat(string(system.Name)), system.Ecosystem.Display())
	for _, step := range []struct {
		name    string
		command string
	}{
		{"build", system.Build},
		{"test", system.Test},
		{"run", system.Run},
	} {
		if step.command == "" {
			continue
		}

		fmt.Fprintf(a.writer, "  %-6s%s\n", step.name, step.command)
	}

	return nil, nil
}
