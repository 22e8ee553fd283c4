// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markers

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pado-dev/pado/pkg/glob"
)

// token is a parsed marker token.
//
// A token is one of: a plain entry name, a directory name (written with a trailing `/`), a
// single-wildcard pattern matched against entry names, or a nested relative path such as
// `debian/control` which is checked for existence.
type token struct {
	raw     string
	name    string
	dirOnly bool
	pattern bool
	nested  bool
}

func parseToken(raw string) token {
	t := token{raw: raw, name: raw}
	if strings.HasSuffix(t.name, "/") {
		t.name = strings.TrimRight(t.name, "/")
		t.dirOnly = true
	}

	switch {
	case strings.Contains(t.name, "/"):
		t.nested = true
	case glob.HasWildcard(t.name):
		t.pattern = true
	}

	return t
}

// matchesName reports whether an entry called name satisfies the token, ignoring entry type.
func (t token) matchesName(name string) bool {
	switch {
	case t.pattern:
		return glob.Match(t.name, name)
	default:
		return t.name == name
	}
}

// Listing is a one-level snapshot of the entries of a directory.
type Listing struct {
	dir   string
	names []string
	isDir map[string]bool
}

// ReadListing reads the immediate children of dir. Symbolic links are resolved to decide whether
// a child is a directory; broken links are kept as non-directories.
func ReadListing(dir string) (*Listing, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	return NewListing(dir, entries), nil
}

// NewListing builds a listing from already read directory entries.
func NewListing(dir string, entries []fs.DirEntry) *Listing {
	l := &Listing{
		dir:   dir,
		names: make([]string, 0, len(entries)),
		isDir: make(map[string]bool, len(entries)),
	}

	for _, entry := range entries {
		isDir := entry.IsDir()
		if entry.Type()&fs.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(dir, entry.Name())); err == nil {
				isDir = info.IsDir()
			}
		}

		l.names = append(l.names, entry.Name())
		l.isDir[entry.Name()] = isDir
	}

	return l
}

// Dir returns the directory the listing was read from.
func (l *Listing) Dir() string {
	return l.dir
}

// Names returns the entry names, in directory read order.
func (l *Listing) Names() []string {
	return l.names
}

// HasDir reports whether the listing contains a directory called name.
func (l *Listing) HasDir(name string) bool {
	return l.isDir[name]
}

// Has reports whether the marker token is present in the listed directory.
func (l *Listing) Has(marker string) bool {
	return l.has(parseToken(marker))
}

func (l *Listing) has(t token) bool {
	if t.nested {
		info, err := os.Stat(filepath.Join(l.dir, filepath.FromSlash(t.name)))
		if err != nil {
			return false
		}

		return !t.dirOnly || info.IsDir()
	}

	if t.pattern {
		for _, name := range l.names {
			if glob.Match(t.name, name) && (!t.dirOnly || l.isDir[name]) {
				return true
			}
		}

		return false
	}

	isDir, has := l.isDir[t.name]
	if !has {
		return false
	}

	return !t.dirOnly || isDir
}
