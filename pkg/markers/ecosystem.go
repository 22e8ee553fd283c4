// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markers

import "strings"

// Ecosystem identifies the toolchain or language ecosystem a project root belongs to.
type Ecosystem string

const (
	Rust      Ecosystem = "rust"
	Node      Ecosystem = "node"
	Python    Ecosystem = "python"
	Go        Ecosystem = "go"
	Java      Ecosystem = "java"
	Scala     Ecosystem = "scala"
	Kotlin    Ecosystem = "kotlin"
	Ruby      Ecosystem = "ruby"
	Rails     Ecosystem = "rails"
	PHP       Ecosystem = "php"
	Elixir    Ecosystem = "elixir"
	Swift     Ecosystem = "swift"
	DotNet    Ecosystem = "dotnet"
	Haskell   Ecosystem = "haskell"
	OCaml     Ecosystem = "ocaml"
	Zig       Ecosystem = "zig"
	Terraform Ecosystem = "terraform"
	Lua       Ecosystem = "lua"
	Nix       Ecosystem = "nix"
	Docker    Ecosystem = "docker"
	Bazel     Ecosystem = "bazel"
	C         Ecosystem = "c"
	CMake     Ecosystem = "cmake"
	Clojure   Ecosystem = "clojure"
	Dart      Ecosystem = "dart"
	Elm       Ecosystem = "elm"
	Julia     Ecosystem = "julia"
	Crystal   Ecosystem = "crystal"
	R         Ecosystem = "r"
	Debian    Ecosystem = "debian"
	Emacs     Ecosystem = "emacs"
	Git       Ecosystem = "git"
	Unknown   Ecosystem = "unknown"
)

var displayNames = map[Ecosystem]string{
	Rust:      "Rust",
	Node:      "Node.js",
	Python:    "Python",
	Go:        "Go",
	Java:      "Java",
	Scala:     "Scala",
	Kotlin:    "Kotlin",
	Ruby:      "Ruby",
	Rails:     "Ruby on Rails",
	PHP:       "PHP",
	Elixir:    "Elixir",
	Swift:     "Swift",
	DotNet:    ".NET",
	Haskell:   "Haskell",
	OCaml:     "OCaml",
	Zig:       "Zig",
	Terraform: "Terraform",
	Lua:       "Lua",
	Nix:       "Nix",
	Docker:    "Docker",
	Bazel:     "Bazel",
	C:         "C",
	CMake:     "CMake",
	Clojure:   "Clojure",
	Dart:      "Dart",
	Elm:       "Elm",
	Julia:     "Julia",
	Crystal:   "Crystal",
	R:         "R",
	Debian:    "Debian",
	Emacs:     "Emacs Lisp",
	Git:       "Git",
	Unknown:   "Unknown",
}

func (e Ecosystem) String() string {
	return string(e)
}

// Display returns the human readable name of the ecosystem.
func (e Ecosystem) Display() string {
	if name, has := displayNames[e]; has {
		return name
	}

	return string(e)
}

// Ecosystems is an ordered set of ecosystem tags. The order is the order in which the tags were
// produced, which for classification is the order of the rule table.
type Ecosystems []Ecosystem

// Contains reports whether tag is a member of the set.
func (e Ecosystems) Contains(tag Ecosystem) bool {
	for _, t := range e {
		if t == tag {
			return true
		}
	}

	return false
}

// Primary returns the first tag, or Unknown for an empty set.
func (e Ecosystems) Primary() Ecosystem {
	if len(e) == 0 {
		return Unknown
	}

	return e[0]
}

func (e Ecosystems) Strings() []string {
	res := make([]string, 0, len(e))
	for _, t := range e {
		res = append(res, string(t))
	}

	return res
}

// String joins the tags with ", ", returning "unknown" for an empty set.
func (e Ecosystems) String() string {
	if len(e) == 0 {
		return string(Unknown)
	}

	return strings.Join(e.Strings(), ", ")
}

func (e Ecosystems) add(tag Ecosystem) Ecosystems {
	if e.Contains(tag) {
		return e
	}

	return append(e, tag)
}
