// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigCommands(t *testing.T) {
	configDir := isolateConfig(t)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	require.JSONEq(t, `{}`, out)

	_, err = execute(t, "config", "set", "discovery.maxDepth", "2")
	require.NoError(t, err)
	_, err = execute(t, "config", "set", "markers.additional", `[".pado"]`)
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(configDir, "config.json"))

	out, err = execute(t, "config", "get", "discovery.maxDepth")
	require.NoError(t, err)
	require.JSONEq(t, `2`, out)

	out, err = execute(t, "config", "show")
	require.NoError(t, err)
	require.JSONEq(t, `{"discovery": {"maxDepth": 2}, "markers": {"additional": [".pado"]}}`, out)

	_, err = execute(t, "config", "unset", "discovery")
	require.NoError(t, err)

	_, err = execute(t, "config", "get", "discovery.maxDepth")
	require.Error(t, err)
}

func TestConfigSetPlainString(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "config", "set", "editor", "code")
	require.NoError(t, err)

	out, err := execute(t, "config", "get", "editor")
	require.NoError(t, err)
	require.JSONEq(t, `"code"`, out)
}

func TestConfigSetRejectsInvalidSettings(t *testing.T) {
	isolateConfig(t)

	_, err := execute(t, "config", "set", "--", "discovery.maxDepth", "-1")
	require.Error(t, err)

	_, err = execute(t, "config", "set", "indexing.ignorePatterns", `["[oops"]`)
	require.Error(t, err)

	out, err := execute(t, "config", "show")
	require.NoError(t, err)
	require.JSONEq(t, `{}`, out, "rejected values are not saved")
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t)

	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Equal(t, "pado version 0.0.0-dev.0 (commit 0000000000000000000000000000000000000000)\n", out)

	out, err = execute(t, "version", "-o", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{"version": "0.0.0-dev.0", "commit": "0000000000000000000000000000000000000000"}`, out)
}
