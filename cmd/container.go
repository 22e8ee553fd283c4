// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"io"

	"github.com/pado-dev/pado/pkg/config"
	"github.com/pado-dev/pado/pkg/ioc"
	"github.com/pado-dev/pado/pkg/markers"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/pado-dev/pado/pkg/project"
	"github.com/spf13/cobra"
)

// Registers common pado dependencies within the IoC container
func registerCommonDependencies(container *ioc.NestedContainer) {
	container.RegisterSingleton(func(cmd *cobra.Command) io.Writer {
		return cmd.OutOrStdout()
	})

	container.RegisterSingleton(func(cmd *cobra.Command) (output.Formatter, error) {
		return output.GetCommandFormatter(cmd)
	})

	// Configuration
	container.RegisterSingleton(config.NewManager)
	container.RegisterSingleton(config.NewFileConfigManager)
	container.RegisterSingleton(config.NewUserConfigManager)
	container.RegisterSingleton(func(userConfigManager config.UserConfigManager) (config.Config, error) {
		return userConfigManager.Load()
	})
	container.RegisterSingleton(config.LoadSettings)

	// Project discovery
	container.RegisterSingleton(func(settings config.Settings) *markers.Registry {
		return markers.Default().Extend(settings.Markers.Additional...)
	})
	container.RegisterSingleton(func(registry *markers.Registry, settings config.Settings) *project.Engine {
		return project.NewEngine(registry, engineOptions(settings)...)
	})
}

// engineOptions maps the user settings onto engine options.
func engineOptions(settings config.Settings) []project.Option {
	return []project.Option{
		project.WithIgnorePatterns(settings.Indexing.IgnorePatterns...),
		project.WithDescendIntoMatches(settings.DescendIntoProjects()),
		project.WithIgnoreFiles(settings.RespectIgnoreFiles()),
		project.WithSkipVCSMetadata(settings.SkipVCSMetadata()),
	}
}
