// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/internal"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/spf13/cobra"
)

func versionActions(root *actions.ActionDescriptor) {
	root.Add("version", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "version",
			Short: "Print the version number of pado.",
			Args:  cobra.NoArgs,
		},
		ActionResolver: newVersionAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})
}

type versionAction struct {
	formatter output.Formatter
	writer    io.Writer
}

func newVersionAction(formatter output.Formatter, writer io.Writer) actions.Action {
	return &versionAction{
		formatter: formatter,
		writer:    writer,
	}
}

func (v *versionAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	switch v.formatter.Kind() {
	case output.NoneFormat:
		fmt.Fprintf(v.writer, "pado version %s\n", internal.Version)
	case output.JsonFormat:
		if err := v.formatter.Format(internal.VersionInfo(), v.writer, nil); err != nil {
			return nil, err
		}
	}

	return nil, nil
}
