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
	"github.com/pado-dev/pado/pkg/config"
	"github.com/pado-dev/pado/pkg/markers"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/pado-dev/pado/pkg/project"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func discoverActions(root *actions.ActionDescriptor) {
	root.Add("discover", &actions.ActionDescriptorOptions{
		Command:        newDiscoverCmd(),
		FlagsResolver:  newDiscoverFlags,
		ActionResolver: newDiscoverAction,
		OutputFormats:  []output.Format{output.JsonFormat, output.TableFormat, output.NoneFormat},
		DefaultFormat:  output.NoneFormat,
	})
}

func newDiscoverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "discover [directory...]",
		Short: "Find the projects below one or more directories.",
		Long: "Find the project roots below each directory. Without arguments the discovery.roots setting is " +
			"used, falling back to the current directory. Hidden directories are never searched.",
		Example: `  pado discover ~/src --depth 2
  pado discover -o table
  pado discover --no-descend`,
	}
}

type discoverFlags struct {
	depth     int
	noDescend bool
	global    *internal.GlobalCommandOptions
}

func (f *discoverFlags) Bind(local *pflag.FlagSet, global *internal.GlobalCommandOptions) {
	local.IntVarP(&f.depth, "depth", "d", -1,
		fmt.Sprintf("How many directory levels to search (default: discovery.maxDepth, or %d).", config.DefaultMaxDepth))
	local.BoolVar(&f.noDescend, "no-descend", false, "Do not search inside directories already found to be projects.")
	f.global = global
}

func newDiscoverFlags(cmd *cobra.Command, global *internal.GlobalCommandOptions) *discoverFlags {
	flags := &discoverFlags{}
	flags.Bind(cmd.Flags(), global)

	return flags
}

type discoverAction struct {
	flags     *discoverFlags
	args      []string
	settings  config.Settings
	engine    *project.Engine
	formatter output.Formatter
	writer    io.Writer
}

func newDiscoverAction(
	flags *discoverFlags,
	args []string,
	settings config.Settings,
	engine *project.Engine,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &discoverAction{
		flags:     flags,
		args:      args,
		settings:  settings,
		engine:    engine,
		formatter: formatter,
		writer:    writer,
	}
}

type discoveredProject struct {
	Name       string             `json:"name"`
	Path       string             `json:"path"`
	Ecosystems markers.Ecosystems `json:"ecosystems"`
}

func (a *discoverAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	depth := a.flags.depth
	if depth < 0 {
		depth = a.settings.MaxDepth()
	}

	dirs := a.args
	if len(dirs) == 0 {
		roots, err := a.settings.DiscoveryRoots()
		if err != nil {
			return nil, err
		}

		dirs = roots
	}

	if len(dirs) == 0 {
		dirs = []string{"."}
	}

	discover := a.engine.Discover
	if a.flags.noDescend {
		options := append(engineOptions(a.settings), project.WithDescendIntoMatches(false))
		discover = project.NewDiscoverer(a.engine.Markers(), options...).Discover
	}

	seen := map[string]struct{}{}
	found := []string{}
	for _, dir := range dirs {
		roots, err := discover(ctx, dir, depth)
		if err != nil {
			return nil, err
		}

		for _, root := range roots {
			if _, has := seen[root]; has {
				continue
			}
			seen[root] = struct{}{}
			found = append(found, root)
		}
	}

	if a.formatter.Kind() == output.NoneFormat {
		for _, root := range found {
			fmt.Fprintln(a.writer, root)
		}

		return nil, nil
	}

	projects := make([]discoveredProject, 0, len(found))
	for _, root := range found {
		projects = append(projects, discoveredProject{
			Name:       filepath.Base(root),
			Path:       root,
			Ecosystems: a.engine.DetectTypes(root),
		})
	}

	return nil, a.formatter.Format(projects, a.writer, output.TableFormatterOptions{
		Columns: []output.Column{
			{Heading: "Name", ValueTemplate: "{{.Name}}"},
			{Heading: "Ecosystems", ValueTemplate: "{{.Ecosystems}}"},
			{Heading: "Path", ValueTemplate: "{{.Path}}"},
		},
	})
}
