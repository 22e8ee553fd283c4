// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/pado-dev/pado/pkg/markers"
	"github.com/stretchr/testify/require"
)

func workspace(t *testing.T) string {
	t.Helper()

	root := tempDir(t)
	createTree(t, root,
		"go.mod",
		"alpha/go.mod",
		"alpha/tools/gen/go.mod",
		"alpha/tools/gen/deeper/still/Cargo.toml",
		"beta/.git/",
		"beta/Cargo.toml",
		"beta/package.json",
		".hidden/Cargo.toml",
		"docs/guide/README.md",
		"vendor/lib/go.mod",
	)
	writeFile(t, filepath.Join(root, ".gitignore"), "vendor/\n")
	return root
}

func TestDiscover(t *testing.T) {
	root := workspace(t)

	tests := []struct {
		name     string
		depth    int
		options  []Option
		expected []string
	}{
		{"Zero", 0, nil, []string{}},
		{"Negative", -1, nil, []string{}},
		{"DepthOne", 1, nil, []string{"alpha", "beta"}},
		{"DepthThree", 3, nil, []string{"alpha", "alpha/tools/gen", "beta"}},
		{"DepthFive", 5, nil, []string{"alpha", "alpha/tools/gen", "alpha/tools/gen/deeper/still", "beta"}},
		{"StopAtMatches", 5, []Option{WithDescendIntoMatches(false)}, []string{"alpha", "beta"}},
		{"WithoutIgnoreFiles", 2, []Option{WithIgnoreFiles(false)}, []string{"alpha", "beta", "vendor/lib"}},
		{"IgnorePatterns", 3, []Option{WithIgnorePatterns("alpha/tools")}, []string{"alpha", "beta"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewDiscoverer(markers.Default(), tt.options...).Discover(context.Background(), root, tt.depth)
			require.NoError(t, err)
			require.Equal(t, paths(root, tt.expected...), got)
		})
	}
}

func TestDiscoverMonotonic(t *testing.T) {
	root := workspace(t)
	d := NewDiscoverer(markers.Default())

	var previous []string
	for depth := 0; depth <= 6; depth++ {
		got, err := d.Discover(context.Background(), root, depth)
		require.NoError(t, err)
		require.Subset(t, got, previous, "depth %d dropped roots found at depth %d", depth, depth-1)
		previous = got
	}
}

func TestDiscoverSymlinks(t *testing.T) {
	root := tempDir(t)
	createTree(t, root, "real/go.mod", "nested/a/b/c/Cargo.toml")
	symlink(t, filepath.Join(root, "real"), filepath.Join(root, "alias"))
	symlink(t, root, filepath.Join(root, "real", "up"))
	symlink(t, filepath.Join(root, "nested", "a", "b"), filepath.Join(root, "shortcut"))
	symlink(t, filepath.Join(root, "missing"), filepath.Join(root, "dangling"))

	got, err := NewDiscoverer(markers.Default()).Discover(context.Background(), root, 2)
	require.NoError(t, err)
	require.Equal(t, paths(root, "real", "nested/a/b/c"), got)
}

func TestDiscoverSymlinkToHidden(t *testing.T) {
	root := tempDir(t)
	createTree(t, root, ".hidden/Cargo.toml", "shown/go.mod")
	symlink(t, filepath.Join(root, ".hidden"), filepath.Join(root, "visible"))

	got, err := NewDiscoverer(markers.Default()).Discover(context.Background(), root, 2)
	require.NoError(t, err)
	require.Equal(t, paths(root, "shown"), got)
}

func TestDiscoverUnreadableDirectory(t *testing.T) {
	root := tempDir(t)
	createTree(t, root, "api/go.mod", "locked/web/package.json", "locked/package.json")
	unreadable(t, filepath.Join(root, "locked"), 0)

	got, err := NewDiscoverer(markers.Default()).Discover(context.Background(), root, 3)
	require.NoError(t, err)
	require.Equal(t, paths(root, "api"), got)
}

func TestDiscoverIgnoreFileIsDirectory(t *testing.T) {
	root := tempDir(t)
	createTree(t, root, ".gitignore/", "api/go.mod", "api/.ignore/notes.txt", "api/cmd/tool/go.mod")

	got, err := NewDiscoverer(markers.Default()).Discover(context.Background(), root, 3)
	require.NoError(t, err)
	require.Equal(t, paths(root, "api", "api/cmd/tool"), got)
}

func TestDiscoverFunc(t *testing.T) {
	root := workspace(t)

	named := func(name string) Predicate {
		return func(dir string) bool {
			return filepath.Base(dir) == name
		}
	}

	got, err := NewDiscoverer(markers.Default()).
		DiscoverFunc(context.Background(), root, 3, named("guide"))
	require.NoError(t, err)
	require.Equal(t, paths(root, "docs/guide"), got)

	got, err = NewDiscoverer(markers.Default()).
		DiscoverFunc(context.Background(), root, 3, func(string) bool { return false })
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestDiscoverErrors(t *testing.T) {
	root := workspace(t)
	d := NewDiscoverer(markers.Default())

	_, err := d.Discover(context.Background(), filepath.Join(root, "missing"), 1)
	require.Error(t, err)

	_, err = d.Discover(context.Background(), filepath.Join(root, "go.mod"), 1)
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = d.Discover(ctx, root, 3)
	require.ErrorIs(t, err, context.Canceled)

	_, err = NewDiscoverer(markers.Default(), WithIgnorePatterns("[")).Discover(context.Background(), root, 1)
	require.Error(t, err)
}
