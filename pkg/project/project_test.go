// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// createTree creates the given entries under root. Entries ending in `/` are directories.
func createTree(t *testing.T, root string, entries ...string) {
	t.Helper()

	for _, entry := range entries {
		path := filepath.Join(root, filepath.FromSlash(entry))
		if strings.HasSuffix(entry, "/") {
			require.NoError(t, os.MkdirAll(path, 0755))
			continue
		}

		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, nil, 0600))
	}
}

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

// tempDir returns a canonical temporary directory.
func tempDir(t *testing.T) string {
	t.Helper()

	dir, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	return dir
}

func symlink(t *testing.T, target string, link string) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("symbolic links require elevated privileges on Windows")
	}

	require.NoError(t, os.Symlink(target, link))
}

// paths joins each slash-separated rel onto root.
func paths(root string, rels ...string) []string {
	res := make([]string, 0, len(rels))
	for _, rel := range rels {
		res = append(res, filepath.Join(root, filepath.FromSlash(rel)))
	}

	return res
}

// unreadable sets mode on dir for the rest of the test. Tests are skipped where permission bits do
// not restrict reads.
func unreadable(t *testing.T, dir string, mode os.FileMode) {
	t.Helper()

	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced for this user")
	}

	require.NoError(t, os.Chmod(dir, mode))
	t.Cleanup(func() {
		_ = os.Chmod(dir, 0755)
	})
}
