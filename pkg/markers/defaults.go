// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markers

// defaultBoundaryMarkers decide whether a directory is the top of a project, independent of its type.
var defaultBoundaryMarkers = []string{
	// Version control
	".git",
	".hg",
	".fslckout",
	"_FOSSIL_",
	".bzr",
	"_darcs",
	".pijul",
	".svn",
	".sl",
	".jj",
	".cvsignore",
	".gitignore",
	".gitattributes",
	"CVS",
	"GTAGS",
	"TAGS",
	"cscope.out",

	// Rust
	"Cargo.toml",
	"Cargo.lock",
	"rust-toolchain",
	"rustfmt.toml",
	"clippy.toml",

	// Python
	"pyproject.toml",
	"setup.py",
	"setup.cfg",
	"requirements.txt",
	"Pipfile",
	"Pipfile.lock",
	"tox.ini",
	"pytest.ini",
	"MANIFEST.in",
	"poetry.lock",
	"pyvenv.cfg",
	"requirements.lock",
	"uv.lock",
	".python-version",

	// JavaScript / TypeScript
	"package.json",
	"package-lock.json",
	"pnpm-workspace.yaml",
	"pnpm-lock.yaml",
	"yarn.lock",
	"bun.lockb",
	"tsconfig.json",
	"jsconfig.json",
	"webpack.config.js",
	"vite.config.js",
	"rollup.config.js",
	"gulpfile.js",
	"Gruntfile.js",
	"angular.json",
	".angular-cli.json",
	"eslint.config.js",
	".eslintrc",
	".eslintrc.js",
	".eslintrc.json",
	".prettierrc",
	".prettierrc.js",
	".prettierrc.json",
	".npmrc",

	// JVM
	"pom.xml",
	"build.gradle",
	"build.gradle.kts",
	"settings.gradle",
	"settings.gradle.kts",
	"gradlew",
	"gradlew.bat",
	"gradle.properties",
	"mvnw",
	"mvnw.cmd",
	"build.sbt",
	"build.sc",
	"build.mill",
	"project/build.properties",
	".bloop/bloop.settings.json",

	// C / C++ and generic build systems
	"CMakeLists.txt",
	"CMakePresets.json",
	"CMakeUserPresets.json",
	"Makefile",
	"makefile",
	"GNUMakefile",
	"configure",
	"configure.ac",
	"configure.in",
	"meson.build",
	"meson_options.txt",
	"build.ninja",
	"SConstruct",
	"xmake.lua",

	// Containers and deployment
	"Dockerfile",
	"docker-compose.yml",
	"docker-compose.yaml",
	".dockerignore",
	"Chart.yaml",
	"kustomization.yaml",
	".helm/",

	// CI/CD
	"ansible.cfg",
	"playbook.yml",
	".circleci/",
	".github/",
	".gitlab-ci.yml",
	".travis.yml",
	".jenkinsfile",
	"azure-pipelines.yml",
	"Taskfile.yml",

	// PHP
	"composer.json",
	"composer.lock",
	"phpunit.xml",
	"phpunit.xml.dist",

	// OCaml
	"dune",
	"dune-project",
	"opam",

	// Ruby
	"Gemfile",
	"Gemfile.lock",
	"Rakefile",
	"config.ru",

	// Go
	"go.mod",
	"go.sum",
	"go.work",

	// Zig
	"zig.mod",
	"build.zig",
	"build.zig.zon",

	// Elixir
	"mix.exs",
	"mix.lock",

	// Swift
	"Package.swift",
	"Package.resolved",

	// .NET
	"global.json",
	"nuget.config",
	"*.csproj",
	"*.sln",
	"*.fsproj",
	"*.vbproj",

	// Haskell
	"stack.yaml",
	"stack.yaml.lock",
	"*.cabal",
	"cabal.project",

	// Terraform
	"main.tf",
	"*.tf",
	".terragrunt.hcl",
	"terraform.tfstate",
	".terraform/",

	// Lua
	"*.rockspec",

	// Nix
	"flake.lock",
	"flake.nix",
	"default.nix",
	"shell.nix",

	// Other languages
	"info.rkt",
	"pubspec.yaml",
	"elm.json",
	"Project.toml",
	"Cask",
	"Eask",
	"Eldev",
	"Eldev-local",
	"DESCRIPTION",
	"shard.yml",
	"project.clj",
	".midje.clj",
	"build.boot",
	"deps.edn",
	"application.yml",
	"debian/control",
	"WORKSPACE",

	// Editors and environments
	".venv/",
	"env/",
	".vscode/",
	".idea/",
	".editorconfig",
	".code-workspace",
	".projectile",
}

// defaultRules is evaluated in order. Manifest based rules come first and version control last, so
// that a VCS directory never hides a more specific ecosystem.
var defaultRules = []Rule{
	{Tag: Rust, AnyOf: []string{"Cargo.toml"}},
	{Tag: Node, AnyOf: []string{"package.json", "pnpm-workspace.yaml", "bun.lockb"}},
	{Tag: Python, AnyOf: []string{
		"uv.lock", "pyproject.toml", "setup.py", "requirements.txt", "Pipfile", "Pipfile.lock",
	}},
	{Tag: Go, AnyOf: []string{"go.mod"}},
	{Tag: Java, AnyOf: []string{
		"pom.xml", "build.gradle", "build.gradle.kts", "settings.gradle", "settings.gradle.kts",
	}},
	{Tag: Scala, AnyOf: []string{"build.sbt"}},
	{Tag: Kotlin, AnyOf: []string{".bloop/bloop.settings.json"}},
	{Tag: Rails, AllOf: []string{"Gemfile", "application.yml"}},
	{Tag: Ruby, AnyOf: []string{"Gemfile"}},
	{Tag: PHP, AnyOf: []string{"composer.json"}},
	{Tag: Elixir, AnyOf: []string{"mix.exs"}},
	{Tag: Swift, AnyOf: []string{"Package.swift"}},
	{Tag: DotNet, AnyOf: []string{"global.json", "*.csproj", "*.sln", "*.fsproj"}},
	{Tag: Haskell, AnyOf: []string{"stack.yaml", "*.cabal"}},
	{Tag: OCaml, AnyOf: []string{"dune", "dune-project", "opam"}},
	{Tag: Zig, AnyOf: []string{"build.zig"}},
	{Tag: Terraform, AnyOf: []string{"*.tf", ".terraform"}},
	{Tag: Lua, AnyOf: []string{"*.rockspec"}},
	{Tag: Nix, AnyOf: []string{"flake.nix", "default.nix", "shell.nix"}},
	{Tag: Docker, AnyOf: []string{"Dockerfile", "docker-compose.yml", "docker-compose.yaml"}},
	{Tag: Bazel, AnyOf: []string{"WORKSPACE"}},
	{Tag: C, AnyOf: []string{"Makefile", "makefile", "GNUMakefile"}},
	{Tag: CMake, AnyOf: []string{"CMakeLists.txt", "CMakePresets.json", "CMakeUserPresets.json"}},
	{Tag: Clojure, AnyOf: []string{"project.clj", "deps.edn", "build.boot"}},
	{Tag: Dart, AnyOf: []string{"pubspec.yaml"}},
	{Tag: Elm, AnyOf: []string{"elm.json"}},
	{Tag: Julia, AnyOf: []string{"Project.toml"}},
	{Tag: Crystal, AnyOf: []string{"shard.yml"}},
	{Tag: R, AnyOf: []string{"DESCRIPTION"}},
	{Tag: Debian, AnyOf: []string{"debian/control"}},
	{Tag: Emacs, AnyOf: []string{"Cask", "Eask", "Eldev", "Eldev-local"}},
	{Tag: Git, AnyOf: []string{".git"}},
}

var defaultMonorepo = MonorepoIndicators{
	Workspace: []string{
		"pnpm-workspace.yaml",
		"lerna.json",
		"turbo.json",
		"nx.json",
		"Cargo.toml",
		"WORKSPACE",
		"go.work",
		"flake.nix",
	},
	Dirs: []string{"packages", "apps", "crates", "modules"},
}
