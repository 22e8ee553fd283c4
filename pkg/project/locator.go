// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pado-dev/pado/pkg/markers"
)

// Locator finds the project root enclosing a path.
type Locator struct {
	markers *markers.Registry
}

func NewLocator(registry *markers.Registry) *Locator {
	return &Locator{markers: registry}
}

// FindRoot returns the nearest directory, starting at start and walking toward the filesystem
// root, that directly contains a boundary marker. When start is a file the search begins at its
// parent directory. A start path that does not exist is an error wrapping fs.ErrNotExist.
func (l *Locator) FindRoot(start string) (string, error) {
	dir, err := canonical(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	if !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for {
		listing, err := markers.ReadListing(dir)
		if err != nil {
			log.Printf("skipping unreadable directory %s while locating project root: %v", dir, err)
		} else if l.markers.HasBoundary(listing) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("%w from %s", ErrNoProjectRoot, start)
}

// IsRoot reports whether path directly contains a boundary marker. Unreadable paths are not roots.
func (l *Locator) IsRoot(path string) bool {
	ok, err := l.markers.ContainsBoundary(path)
	if err != nil {
		log.Printf("checking %s for boundary markers: %v", path, err)
		return false
	}

	return ok
}
