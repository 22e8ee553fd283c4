// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

// startPath returns the path a command starts searching from: its first argument, or the current
// directory.
func startPath(args []string) string {
	if len(args) > 0 && args[0] != "" {
		return args[0]
	}

	return "."
}
