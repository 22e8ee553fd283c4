// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package buildsys

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pado-dev/pado/pkg/markers"
	"github.com/stretchr/testify/require"
)

func listing(t *testing.T, files ...string) *markers.Listing {
	t.Helper()

	dir := t.TempDir()
	for _, file := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, file), nil, 0600))
	}

	l, err := markers.ReadListing(dir)
	require.NoError(t, err)
	return l
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  Name
	}{
		{"Cargo", []string{"Cargo.toml"}, Cargo},
		{"Npm", []string{"package.json"}, Npm},
		{"Yarn", []string{"package.json", "yarn.lock"}, Yarn},
		{"Pnpm", []string{"package.json", "pnpm-lock.yaml"}, Pnpm},
		{"BunBeforePnpm", []string{"package.json", "pnpm-lock.yaml", "bun.lockb"}, Bun},
		{"LockfileWithoutManifest", []string{"yarn.lock"}, Unknown},
		{"UvBeforePoetry", []string{"pyproject.toml", "uv.lock"}, Uv},
		{"Poetry", []string{"pyproject.toml"}, Poetry},
		{"Pip", []string{"setup.py"}, Pip},
		{"GradleKotlin", []string{"build.gradle.kts"}, Gradle},
		{"Go", []string{"go.mod"}, Go},
		{"Dotnet", []string{"App.csproj"}, Dotnet},
		{"Cabal", []string{"app.cabal"}, Cabal},
		{"Terraform", []string{"main.tf"}, Terraform},
		{"Luarocks", []string{"pkg-1.0-1.rockspec"}, Luarocks},
		{"CMakeBeforeMake", []string{"Makefile", "CMakeLists.txt"}, CMake},
		{"Make", []string{"Makefile"}, Make},
		{"CargoWinsOverMake", []string{"Makefile", "Cargo.toml"}, Cargo},
		{"Empty", nil, Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Detect(listing(t, tt.files...))
			require.Equal(t, tt.want, got.Name)
		})
	}
}

func TestCommands(t *testing.T) {
	cargo, ok := Lookup(Cargo)
	require.True(t, ok)
	require.True(t, cargo.Known())
	require.Equal(t, map[string]string{
		"build": "cargo build",
		"test":  "cargo test",
		"run":   "cargo run",
	}, cargo.Commands())

	pip, ok := Lookup(Pip)
	require.True(t, ok)
	require.Empty(t, pip.Build)
	require.Equal(t, "pytest", pip.Test)

	luarocks, _ := Lookup(Luarocks)
	require.Empty(t, luarocks.Commands())

	unknown, ok := Lookup("scons")
	require.False(t, ok)
	require.False(t, unknown.Known())
}

func TestDetectDirMissing(t *testing.T) {
	got := DetectDir(filepath.Join(t.TempDir(), "missing"))
	require.Equal(t, Unknown, got.Name)
}

func TestAllIsACopy(t *testing.T) {
	all := All()
	all[0].Name = "mutated"
	require.Equal(t, Cargo, All()[0].Name)
}
