// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/pkg/config"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/spf13/cobra"
)

func configActions(root *actions.ActionDescriptor) {
	group := root.Add("config", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "config",
			Short: "Manage pado configuration.",
			Long: `Manage the pado user configuration, stored in config.json under $PADO_CONFIG_DIR (default ~/.pado).

Available settings:

  markers.additional             Extra boundary markers, e.g. [".pado"].
  indexing.ignorePatterns        Doublestar patterns excluded from listing and discovery.
  indexing.skipVcsMetadata       Leave .git, .hg and similar directories out of 'pado files' (false).
  discovery.maxDepth             Default depth for 'pado discover' (3).
  discovery.descendIntoProjects  Keep searching inside discovered projects (true).
  discovery.respectIgnoreFiles   Skip directories excluded by .gitignore and .ignore files (true).
  discovery.roots                Directories searched by 'pado discover' without arguments. ${VAR} references
                                 are expanded.`,
		},
	})

	group.Add("show", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "show",
			Short: "Show all configuration values.",
			Args:  cobra.NoArgs,
		},
		ActionResolver: newConfigShowAction,
		OutputFormats:  []output.Format{output.JsonFormat},
		DefaultFormat:  output.JsonFormat,
	})

	group.Add("get", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "get <path>",
			Short: "Get a configuration value.",
			Args:  cobra.ExactArgs(1),
		},
		ActionResolver: newConfigGetAction,
		OutputFormats:  []output.Format{output.JsonFormat},
		DefaultFormat:  output.JsonFormat,
	})

	group.Add("set", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "set <path> <value>",
			Short: "Set a configuration value.",
			Long:  "Set a configuration value. Values that parse as JSON are stored as JSON, anything else as a string.",
			Example: `  pado config set discovery.maxDepth 2
  pado config set discovery.roots '["${HOME}/src"]'`,
			Args: cobra.ExactArgs(2),
		},
		ActionResolver: newConfigSetAction,
	})

	group.Add("unset", &actions.ActionDescriptorOptions{
		Command: &cobra.Command{
			Use:   "unset <path>",
			Short: "Unset a configuration value.",
			Args:  cobra.ExactArgs(1),
		},
		ActionResolver: newConfigUnsetAction,
	})
}

// pado config show

type configShowAction struct {
	configManager config.UserConfigManager
	formatter     output.Formatter
	writer        io.Writer
}

func newConfigShowAction(
	configManager config.UserConfigManager,
	formatter output.Formatter,
	writer io.Writer,
) actions.Action {
	return &configShowAction{
		configManager: configManager,
		formatter:     formatter,
		writer:        writer,
	}
}

func (a *configShowAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	padoConfig, err := a.configManager.Load()
	if err != nil {
		return nil, err
	}

	if err := a.formatter.Format(padoConfig.Raw(), a.writer, nil); err != nil {
		return nil, fmt.Errorf("failed formatting config values: %w", err)
	}

	return nil, nil
}

// pado config get <path>

type configGetAction struct {
	configManager config.UserConfigManager
	formatter     output.Formatter
	writer        io.Writer
	args          []string
}

func newConfigGetAction(
	configManager config.UserConfigManager,
	formatter output.Formatter,
	writer io.Writer,
	args []string,
) actions.Action {
	return &configGetAction{
		configManager: configManager,
		formatter:     formatter,
		writer:        writer,
		args:          args,
	}
}

func (a *configGetAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	padoConfig, err := a.configManager.Load()
	if err != nil {
		return nil, err
	}

	key := a.args[0]
	value, ok := padoConfig.Get(key)
	if !ok {
		return nil, fmt.Errorf("no value stored at path '%s'", key)
	}

	if err := a.formatter.Format(value, a.writer, nil); err != nil {
		return nil, fmt.Errorf("failed formatting config value: %w", err)
	}

	return nil, nil
}

// pado config set <path> <value>

type configSetAction struct {
	configManager config.UserConfigManager
	args          []string
}

func newConfigSetAction(configManager config.UserConfigManager, args []string) actions.Action {
	return &configSetAction{
		configManager: configManager,
		args:          args,
	}
}

func (a *configSetAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	padoConfig, err := a.configManager.Load()
	if err != nil {
		return nil, err
	}

	path, raw := a.args[0], a.args[1]

	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		value = raw
	}

	if err := padoConfig.Set(path, value); err != nil {
		return nil, fmt.Errorf("failed setting configuration value '%s' to '%s'. %w", path, raw, err)
	}

	if _, err := config.LoadSettings(padoConfig); err != nil {
		return nil, fmt.Errorf("invalid value for '%s': %w", path, err)
	}

	if err := a.configManager.Save(padoConfig); err != nil {
		return nil, err
	}

	return nil, nil
}

// pado config unset <path>

type configUnsetAction struct {
	configManager config.UserConfigManager
	args          []string
}

func newConfigUnsetAction(configManager config.UserConfigManager, args []string) actions.Action {
	return &configUnsetAction{
		configManager: configManager,
		args:          args,
	}
}

func (a *configUnsetAction) Run(ctx context.Context) (*actions.ActionResult, error) {
	padoConfig, err := a.configManager.Load()
	if err != nil {
		return nil, err
	}

	path := a.args[0]
	if err := padoConfig.Unset(path); err != nil {
		return nil, fmt.Errorf("failed removing configuration with path '%s'. %w", path, err)
	}

	if err := a.configManager.Save(padoConfig); err != nil {
		return nil, err
	}

	return nil, nil
}
