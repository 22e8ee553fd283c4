// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestTypeCommand(t *testing.T) {
	isolateConfig(t)
	dir := tempDir(t)
	createTree(t, dir, "Cargo.toml", "package.json", "src/")

	out, err := execute(t, "type", filepath.Join(dir, "src"))
	require.NoError(t, err)
	require.Equal(t, "rust, node\n", out)

	out, err = execute(t, "type", dir, "-o", "json")
	require.NoError(t, err)

	var result typeResult
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, dir, result.Root)
	require.Equal(t, "rust", string(result.Primary))
	require.Len(t, result.Ecosystems, 2)
}

func TestFilesCommand(t *testing.T) {
	isolateConfig(t)
	dir := tempDir(t)
	createTree(t, dir, "Cargo.toml", "src/main.rs", "src/lib.rs", "target/debug/out.rs", "README.md")
	writeFile(t, filepath.Join(dir, ".gitignore"), "target/\n")

	out, err := execute(t, "files", "*.rs", "--relative", "--cwd", filepath.Join(dir, "src"))
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join("src", "lib.rs"),
		filepath.Join("src", "main.rs"),
	}, strings.Fields(out))

	out, err = execute(t, "files", "--cwd", dir, "-o", "json")
	require.NoError(t, err)

	var files []string
	require.NoError(t, json.Unmarshal([]byte(out), &files))
	require.Equal(t, []string{
		filepath.Join(dir, ".gitignore"),
		filepath.Join(dir, "Cargo.toml"),
		filepath.Join(dir, "README.md"),
		filepath.Join(dir, "src", "lib.rs"),
		filepath.Join(dir, "src", "main.rs"),
	}, files)
}

func TestFilesCommandSkipVCSMetadata(t *testing.T) {
	isolateConfig(t)
	dir := tempDir(t)
	createTree(t, dir, "go.mod", ".git/HEAD")

	out, err := execute(t, "files", "--relative", "--cwd", dir)
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(".git", "HEAD"), "go.mod"}, strings.Fields(out))

	_, err = execute(t, "config", "set", "indexing.skipVcsMetadata", "true")
	require.NoError(t, err)

	out, err = execute(t, "files", "--relative", "--cwd", dir)
	require.NoError(t, err)
	require.Equal(t, []string{"go.mod"}, strings.Fields(out))
}

func TestFilesCommandIgnorePatterns(t *testing.T) {
	isolateConfig(t)
	dir := tempDir(t)
	createTree(t, dir, "go.mod", "main.go", "gen/api.go")

	_, err := execute(t, "config", "set", "indexing.ignorePatterns", `["gen"]`)
	require.NoError(t, err)

	out, err := execute(t, "files", "*.go", "--relative", "--cwd", dir)
	require.NoError(t, err)
	require.Equal(t, "main.go\n", out)
}

func workspace(t *testing.T) string {
	t.Helper()

	dir := tempDir(t)
	createTree(t, dir,
		"api/go.mod",
		"api/tools/gen/go.mod",
		"web/package.json",
		"web/Dockerfile",
		".cache/Cargo.toml",
		"notes/todo.txt",
	)
	return dir
}

func TestDiscoverCommand(t *testing.T) {
	isolateConfig(t)
	dir := workspace(t)

	out, err := execute(t, "discover", dir, "--depth", "1")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "api"), filepath.Join(dir, "web")}, strings.Fields(out))

	out, err = execute(t, "discover", dir)
	require.NoError(t, err)
	require.Equal(t, []string{
		filepath.Join(dir, "api"),
		filepath.Join(dir, "api", "tools", "gen"),
		filepath.Join(dir, "web"),
	}, strings.Fields(out))

	out, err = execute(t, "discover", dir, "--no-descend")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "api"), filepath.Join(dir, "web")}, strings.Fields(out))

	out, err = execute(t, "discover", dir, dir, "-d", "1", "-o", "json")
	require.NoError(t, err)

	var projects []discoveredProject
	require.NoError(t, json.Unmarshal([]byte(out), &projects))
	require.Len(t, projects, 2, "repeated search roots are deduplicated")
	require.Equal(t, "web", projects[1].Name)
	require.Equal(t, "node, docker", projects[1].Ecosystems.String())

	out, err = execute(t, "discover", dir, "-d", "1", "-o", "table")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "NAME"))
	require.Contains(t, lines[2], "node, docker")
}

func TestDiscoverCommandSettings(t *testing.T) {
	isolateConfig(t)
	dir := workspace(t)
	t.Setenv("PADO_TEST_WORKSPACE", dir)

	_, err := execute(t, "config", "set", "discovery.roots", `["${PADO_TEST_WORKSPACE}"]`)
	require.NoError(t, err)
	_, err = execute(t, "config", "set", "discovery.descendIntoProjects", "false")
	require.NoError(t, err)

	out, err := execute(t, "discover")
	require.NoError(t, err)
	require.Equal(t, []string{filepath.Join(dir, "api"), filepath.Join(dir, "web")}, strings.Fields(out))

	_, err = execute(t, "config", "set", "discovery.maxDepth", "0")
	require.NoError(t, err)

	out, err = execute(t, "discover")
	require.NoError(t, err)
	require.Empty(t, out)
}

func TestInfoCommand(t *testing.T) {
	isolateConfig(t)
	dir := tempDir(t)
	createTree(t, dir,
		"turbo.json",
		"package.json",
		"apps/site/package.json",
		"apps/site/index.ts",
		"apps/api/go.mod",
	)

	out, err := execute(t, "info", filepath.Join(dir, "apps"), "-o", "json")
	require.NoError(t, err)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	require.Equal(t, dir, info["root"])
	require.Equal(t, true, info["isMonorepo"])
	require.Equal(t, float64(5), info["fileCount"])
	require.Equal(t, []any{filepath.Join(dir, "apps", "api"), filepath.Join(dir, "apps", "site")}, info["subprojects"])
	require.Equal(t, "npm", info["buildSystem"].(map[string]any)["name"])

	out, err = execute(t, "info", dir)
	require.NoError(t, err)
	require.Contains(t, out, "Files:")
	require.Contains(t, out, "yes, 2 subprojects")
	require.Contains(t, out, "  apps/api\n")
}

func TestCommandsCommand(t *testing.T) {
	isolateConfig(t)
	dir := tempDir(t)
	createTree(t, dir, "go.mod", "cmd/tool/")

	out, err := execute(t, "commands", filepath.Join(dir, "cmd", "tool"))
	require.NoError(t, err)
	require.Contains(t, out, "go test ./...")
	require.Contains(t, out, "go run .")

	out, err = execute(t, "commands", dir, "-o", "json")
	require.NoError(t, err)
	require.JSONEq(t, `{
		"name": "go",
		"ecosystem": "go",
		"build": "go build",
		"test": "go test ./...",
		"run": "go run ."
	}`, out)

	other := tempDir(t)
	createTree(t, other, ".git/")
	out, err = execute(t, "commands", other)
	require.NoError(t, err)
	require.Contains(t, out, "No build system detected")
}

func TestCustomMarker(t *testing.T) {
	isolateConfig(t)
	dir := tempDir(t)
	createTree(t, dir, "go.mod", "services/billing/.pado", "services/billing/src/")

	out, err := execute(t, "root", filepath.Join(dir, "services", "billing", "src"))
	require.NoError(t, err)
	require.Equal(t, dir+"\n", out)

	_, err = execute(t, "config", "set", "markers.additional", `[".pado"]`)
	require.NoError(t, err)

	out, err = execute(t, "root", filepath.Join(dir, "services", "billing", "src"))
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "services", "billing")+"\n", out)
}
