// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// canonical returns the absolute, symlink-free form of path.
func canonical(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	return filepath.EvalSymlinks(abs)
}

// canonicalDir resolves path and requires it to be a directory.
func canonicalDir(path string) (string, error) {
	resolved, err := canonical(path)
	if err != nil {
		return "", err
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", err
	}

	if !info.IsDir() {
		return "", &fs.PathError{Op: "open", Path: path, Err: fmt.Errorf("not a directory")}
	}

	return resolved, nil
}

// entryKind reports whether a directory entry is a directory or a regular file, following symbolic
// links. ok is false for dangling links.
func entryKind(path string, entry fs.DirEntry) (isDir bool, isRegular bool, ok bool) {
	if entry.Type()&fs.ModeSymlink == 0 {
		return entry.IsDir(), entry.Type().IsRegular(), true
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, false, false
	}

	return info.IsDir(), info.Mode().IsRegular(), true
}
