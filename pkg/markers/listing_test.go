// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markers

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListingHas(t *testing.T) {
	l := listing(t, "Cargo.toml", "src/", "Api.csproj", "debian/control")

	require.True(t, l.Has("Cargo.toml"))
	require.True(t, l.Has("src/"))
	require.True(t, l.Has("src"))
	require.False(t, l.Has("Cargo.toml/"))
	require.True(t, l.Has("*.csproj"))
	require.False(t, l.Has("*.sln"))
	require.True(t, l.Has("debian/control"))
	require.False(t, l.Has("debian/rules"))
	require.True(t, l.HasDir("src"))
	require.False(t, l.HasDir("Cargo.toml"))
	require.ElementsMatch(t, []string{"Api.csproj", "Cargo.toml", "debian", "src"}, l.Names())
}

func TestListingSymlinkedDirectory(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks require elevated permissions on windows")
	}

	target := t.TempDir()
	dir := t.TempDir()
	require.NoError(t, os.Symlink(target, filepath.Join(dir, ".helm")))
	require.NoError(t, os.Symlink(filepath.Join(target, "missing"), filepath.Join(dir, "broken")))

	l, err := ReadListing(dir)
	require.NoError(t, err)
	require.True(t, l.HasDir(".helm"))
	require.True(t, l.Has(".helm/"))
	require.False(t, l.HasDir("broken"))
	require.True(t, l.Has("broken"))
}

func TestRuleMatches(t *testing.T) {
	l := listing(t, "Gemfile", "application.yml")

	require.True(t, Rule{AnyOf: []string{"Gemfile"}}.Matches(l))
	require.True(t, Rule{AllOf: []string{"Gemfile", "application.yml"}}.Matches(l))
	require.False(t, Rule{AllOf: []string{"Gemfile", "config.ru"}}.Matches(l))
	require.False(t, Rule{AllOf: []string{"Gemfile"}, AnyOf: []string{"Rakefile"}}.Matches(l))
	require.False(t, Rule{}.Matches(l))
}
