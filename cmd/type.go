// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/pkg/markers"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/pado-dev/pado/pkg/project"
	"github.com/spf13/cobra"
)

func typeActions(root *actions.ActionDescriptor) {
	root.Add("type", &actions.ActionDescriptorOptions{
		Command:        newTypeCmd(),
		ActionResolver: newTypeAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})
}

func newTypeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "type [path]",
		Short: "Print the ecosystems of the project enclosing a path.",
		Args:  cobra.MaximumNArgs(1),
	}
}

type typeAction struct {
	args      []string
	engine    *project.Engine
	formatter output.Formatter
	writer    io.Writer
}

func newTypeAction(
	args []string,
	engine *project.Engine,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &typeAction{
		args:      args,
		engine:    engine,
		formatter: formatter,
		writer:    writer,
	}
}

type typeResult struct {
	Root       string             `json:"root"`
	Primary    markers.Ecosystem  `json:"primary"`
	Ecosystems markers.Ecosystems `json:"ecosystems"`
}

func (a *typeAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	root, err := a.engine.FindRoot(startPath(a.args))
	if err != nil {
		return nil, err
	}

	ecosystems := a.engine.DetectTypes(root)

	if a.formatter.Kind() == output.JsonFormat {
		return nil, a.formatter.Format(typeResult{
			Root:       root,
			Primary:    ecosystems.Primary(),
			Ecosystems: ecosystems,
		}, a.writer, nil)
	}

	fmt.Fprintln(a.writer, ecosystems.String())
	return nil, nil
}
