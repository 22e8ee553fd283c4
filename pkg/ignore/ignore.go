// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package ignore decides which paths below a directory are excluded by ignore files.
//
// The following sources are consulted, first match wins:
//  1. `.ignore` files anywhere below the root, nearest first
//  2. `.gitignore` files anywhere below the root, nearest first
//  3. `.gitignore` files in ancestors of the root, nearest first, up to the enclosing repository top
//  4. `.git/info/exclude` of the enclosing repository
//  5. caller supplied doublestar patterns
//
// A path below an ignored directory is ignored as well.
package ignore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/denormal/go-gitignore"
)

const (
	gitIgnoreFile = ".gitignore"
	ignoreFile    = ".ignore"
)

// vcsMetadataDirs hold version control metadata rather than project content.
var vcsMetadataDirs = []string{".git", ".hg", ".svn", ".jj", ".pijul", "_darcs", ".bzr"}

// IsVCSMetadata reports whether a directory called name holds version control metadata.
func IsVCSMetadata(name string) bool {
	return slices.Contains(vcsMetadataDirs, name)
}

// Matcher reports whether paths relative to its root are ignored. Ignore files below the root are
// read lazily and cached, so a Matcher is not safe for concurrent use.
type Matcher struct {
	root      string
	readFiles bool
	ancestors []gitignore.GitIgnore
	patterns  []string

	// nested caches the parsed ignore file of each path; nil when the file is absent or unreadable.
	nested map[string]gitignore.GitIgnore
	// dirs caches the ignore decision of each directory, keyed by its relative path.
	dirs map[string]bool
}

// New creates a Matcher for root. patterns are doublestar patterns matched against slash separated
// paths relative to root. An error is returned when root cannot be read as a directory or when a
// pattern is malformed.
func New(root string, patterns []string) (*Matcher, error) {
	return newMatcher(root, patterns, true)
}

// NewPatterns creates a Matcher that only applies the doublestar patterns and reads no ignore files.
func NewPatterns(root string, patterns []string) (*Matcher, error) {
	return newMatcher(root, patterns, false)
}

func newMatcher(root string, patterns []string, readFiles bool) (*Matcher, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	for _, pattern := range patterns {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid ignore pattern '%s'", pattern)
		}
	}

	m := &Matcher{
		root:      abs,
		readFiles: readFiles,
		patterns:  slices.Clone(patterns),
		nested:    map[string]gitignore.GitIgnore{},
		dirs:      map[string]bool{},
	}

	if !readFiles {
		return m, nil
	}

	ancestors, err := ReadAncestorIgnoreFiles(abs)
	if err != nil {
		return nil, err
	}
	m.ancestors = ancestors

	return m, nil
}

// Root returns the directory paths are matched relative to.
func (m *Matcher) Root() string {
	return m.root
}

// Ignored reports whether the path rel, relative to the matcher root, is excluded.
func (m *Matcher) Ignored(rel string, isDir bool) bool {
	rel = filepath.Clean(rel)
	if rel == "." || rel == "" {
		return false
	}

	if parent := filepath.Dir(rel); parent != "." && m.dirIgnored(parent) {
		return true
	}

	return m.matches(rel, isDir)
}

func (m *Matcher) dirIgnored(rel string) bool {
	if ignored, has := m.dirs[rel]; has {
		return ignored
	}

	ignored := m.Ignored(rel, true)
	m.dirs[rel] = ignored
	return ignored
}

func (m *Matcher) matches(rel string, isDir bool) bool {
	if m.readFiles {
		for _, name := range []string{ignoreFile, gitIgnoreFile} {
			if match := m.nestedMatch(name, rel, isDir); match != nil {
				return match.Ignore()
			}
		}

		abs := filepath.Join(m.root, rel)
		for _, matcher := range m.ancestors {
			if match := matcher.Absolute(abs, isDir); match != nil {
				return match.Ignore()
			}
		}
	}

	return m.matchesPattern(filepath.ToSlash(rel))
}

// nestedMatch looks for a rule matching rel in the ignore files called name, from the directory
// containing rel up to the root.
func (m *Matcher) nestedMatch(name string, rel string, isDir bool) gitignore.Match {
	dir := filepath.Dir(rel)
	for {
		if rules := m.nestedFile(filepath.Join(dir, name)); rules != nil {
			local := rel
			if dir != "." {
				local = rel[len(dir)+1:]
			}

			if match := rules.Relative(filepath.ToSlash(local), isDir); match != nil {
				return match
			}
		}

		if dir == "." {
			return nil
		}
		dir = filepath.Dir(dir)
	}
}

func (m *Matcher) nestedFile(rel string) gitignore.GitIgnore {
	if rules, has := m.nested[rel]; has {
		return rules
	}

	path := filepath.Join(m.root, rel)
	rules, err := readIgnoreFile(path, filepath.Dir(path))
	if err != nil {
		log.Printf("skipping ignore file: %v", err)
	}

	m.nested[rel] = rules
	return rules
}

func (m *Matcher) matchesPattern(rel string) bool {
	for _, pattern := range m.patterns {
		// patterns are validated in New, so Match cannot fail here.
		if matched, _ := doublestar.Match(pattern, rel); matched {
			return true
		}
	}

	return false
}

// ReadAncestorIgnoreFiles reads the `.gitignore` files in the ancestors of root, nearest first, and
// the repository's `.git/info/exclude`. Nothing is returned when root is not inside a repository.
// Ignore files that cannot be read are logged and skipped.
func ReadAncestorIgnoreFiles(root string) ([]gitignore.GitIgnore, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, err
	}

	var ignoreMatchers []gitignore.GitIgnore

	top := ""
	current := abs
	for {
		if current != abs {
			ignoreMatcher, err := readIgnoreFile(filepath.Join(current, gitIgnoreFile), current)
			if err != nil {
				log.Printf("skipping ignore file: %v", err)
			} else if ignoreMatcher != nil {
				ignoreMatchers = append(ignoreMatchers, ignoreMatcher)
			}
		}

		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			top = current
			break
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	if top == "" {
		return nil, nil
	}

	// Patterns in the exclude file are relative to the repository top, not to .git/info.
	exclude, err := readIgnoreFile(filepath.Join(top, ".git", "info", "exclude"), top)
	if err != nil {
		log.Printf("skipping exclude file: %v", err)
	} else if exclude != nil {
		ignoreMatchers = append(ignoreMatchers, exclude)
	}

	return ignoreMatchers, nil
}

// readIgnoreFile parses the ignore file at path with rules relative to base. A missing file yields
// a nil GitIgnore and no error. Anything but a regular file is an error.
func readIgnoreFile(path string, base string) (gitignore.GitIgnore, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%s is not a regular file", path)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// The rules are parsed from memory so the only errors left are malformed rules.
	return gitignore.New(bytes.NewReader(contents), base, func(e gitignore.Error) bool {
		log.Printf("ignoring malformed rule in %s: %v", path, e)
		return true
	}), nil
}
