// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package buildsys detects the build tool a project root uses and the conventional commands that
// go with it.
package buildsys

import (
	"log"

	"github.com/pado-dev/pado/pkg/markers"
)

// Name identifies a build tool.
type Name string

const (
	Cargo     Name = "cargo"
	Npm       Name = "npm"
	Yarn      Name = "yarn"
	Pnpm      Name = "pnpm"
	Bun       Name = "bun"
	Uv        Name = "uv"
	Poetry    Name = "poetry"
	Pip       Name = "pip"
	Maven     Name = "maven"
	Gradle    Name = "gradle"
	Sbt       Name = "sbt"
	Go        Name = "go"
	Mix       Name = "mix"
	Swift     Name = "swift"
	Dotnet    Name = "dotnet"
	Stack     Name = "stack"
	Cabal     Name = "cabal"
	Dune      Name = "dune"
	Zig       Name = "zig"
	Terraform Name = "terraform"
	Luarocks  Name = "luarocks"
	Nix       Name = "nix"
	CMake     Name = "cmake"
	Make      Name = "make"
	Unknown   Name = "unknown"
)

// BuildSystem is a detected build tool together with its build, test and run commands. An empty
// command means the tool has no conventional command for that step.
type BuildSystem struct {
	Name      Name              `json:"name"`
	Ecosystem markers.Ecosystem `json:"ecosystem,omitempty"`
	Build     string            `json:"build,omitempty"`
	Test      string            `json:"test,omitempty"`
	Run       string            `json:"run,omitempty"`

	rule markers.Rule
}

// Known reports whether a build tool was detected.
func (b BuildSystem) Known() bool {
	return b.Name != Unknown && b.Name != ""
}

// Commands returns the non-empty commands keyed by step.
func (b BuildSystem) Commands() map[string]string {
	commands := map[string]string{}
	for step, cmd := range map[string]string{"build": b.Build, "test": b.Test, "run": b.Run} {
		if cmd != "" {
			commands[step] = cmd
		}
	}
	return commands
}

func anyOf(tokens ...string) markers.Rule {
	return markers.Rule{AnyOf: tokens}
}

func allOf(tokens ...string) markers.Rule {
	return markers.Rule{AllOf: tokens}
}

// systems is evaluated in order and the first match wins. Lockfile variants precede their generic
// fallback.
var systems = []BuildSystem{
	{Name: Cargo, Ecosystem: markers.Rust, rule: anyOf("Cargo.toml"),
		Build: "cargo build", Test: "cargo test", Run: "cargo run"},
	{Name: Bun, Ecosystem: markers.Node, rule: allOf("package.json", "bun.lockb"),
		Build: "bun run build", Test: "bun test", Run: "bun run start"},
	{Name: Pnpm, Ecosystem: markers.Node, rule: allOf("package.json", "pnpm-lock.yaml"),
		Build: "pnpm build", Test: "pnpm test", Run: "pnpm start"},
	{Name: Yarn, Ecosystem: markers.Node, rule: allOf("package.json", "yarn.lock"),
		Build: "yarn build", Test: "yarn test", Run: "yarn start"},
	{Name: Npm, Ecosystem: markers.Node, rule: anyOf("package.json"),
		Build: "npm run build", Test: "npm test", Run: "npm start"},
	{Name: Uv, Ecosystem: markers.Python, rule: anyOf("uv.lock"),
		Build: "uv build", Test: "uv run pytest", Run: "uv run python"},
	{Name: Poetry, Ecosystem: markers.Python, rule: anyOf("pyproject.toml"),
		Build: "poetry build", Test: "poetry run pytest", Run: "poetry run python"},
	{Name: Pip, Ecosystem: markers.Python, rule: anyOf("requirements.txt", "setup.py"),
		Test: "pytest", Run: "python"},
	{Name: Maven, Ecosystem: markers.Java, rule: anyOf("pom.xml"),
		Build: "mvn compile", Test: "mvn test", Run: "mvn exec:java"},
	{Name: Gradle, Ecosystem: markers.Java, rule: anyOf("build.gradle", "build.gradle.kts"),
		Build: "gradle build", Test: "gradle test", Run: "gradle run"},
	{Name: Sbt, Ecosystem: markers.Scala, rule: anyOf("build.sbt"),
		Build: "sbt compile", Test: "sbt test", Run: "sbt run"},
	{Name: Go, Ecosystem: markers.Go, rule: anyOf("go.mod"),
		Build: "go build", Test: "go test ./...", Run: "go run ."},
	{Name: Mix, Ecosystem: markers.Elixir, rule: anyOf("mix.exs"),
		Build: "mix compile", Test: "mix test", Run: "mix run"},
	{Name: Swift, Ecosystem: markers.Swift, rule: anyOf("Package.swift"),
		Build: "swift build", Test: "swift test", Run: "swift run"},
	{Name: Dotnet, Ecosystem: markers.DotNet, rule: anyOf("*.csproj", "*.fsproj", "*.sln", "global.json"),
		Build: "dotnet build", Test: "dotnet test", Run: "dotnet run"},
	{Name: Stack, Ecosystem: markers.Haskell, rule: anyOf("stack.yaml"),
		Build: "stack build", Test: "stack test", Run: "stack run"},
	{Name: Cabal, Ecosystem: markers.Haskell, rule: anyOf("*.cabal", "cabal.project"),
		Build: "cabal build", Test: "cabal test", Run: "cabal run"},
	{Name: Dune, Ecosystem: markers.OCaml, rule: anyOf("dune", "dune-project"),
		Build: "dune build", Test: "dune runtest", Run: "dune exec"},
	{Name: Zig, Ecosystem: markers.Zig, rule: anyOf("build.zig"),
		Build: "zig build", Test: "zig build test", Run: "zig build run"},
	{Name: Terraform, Ecosystem: markers.Terraform, rule: anyOf("*.tf", ".terraform"),
		Build: "terraform plan", Test: "terraform validate", Run: "terraform apply"},
	{Name: Luarocks, Ecosystem: markers.Lua, rule: anyOf("*.rockspec")},
	{Name: Nix, Ecosystem: markers.Nix, rule: anyOf("flake.nix", "default.nix", "shell.nix"),
		Build: "nix build", Test: "nix flake check", Run: "nix run"},
	{Name: CMake, Ecosystem: markers.CMake, rule: anyOf("CMakeLists.txt"),
		Build: "cmake --build build", Test: "ctest"},
	{Name: Make, Ecosystem: markers.C, rule: anyOf("Makefile", "makefile"),
		Build: "make", Test: "make test"},
}

// All returns the known build systems in detection order.
func All() []BuildSystem {
	out := make([]BuildSystem, len(systems))
	copy(out, systems)
	return out
}

// Lookup returns the build system with the given name.
func Lookup(name Name) (BuildSystem, bool) {
	for _, system := range systems {
		if system.Name == name {
			return system, true
		}
	}

	return BuildSystem{Name: Unknown}, false
}

// Detect returns the first build system whose markers are present in the listed directory, or
// Unknown.
func Detect(l *markers.Listing) BuildSystem {
	for _, system := range systems {
		if system.rule.Matches(l) {
			return system
		}
	}

	return BuildSystem{Name: Unknown}
}

// DetectDir reads dir and detects its build system. Unreadable directories yield Unknown.
func DetectDir(dir string) BuildSystem {
	l, err := markers.ReadListing(dir)
	if err != nil {
		log.Printf("detecting build system in %s: %v", dir, err)
		return BuildSystem{Name: Unknown}
	}

	return Detect(l)
}
