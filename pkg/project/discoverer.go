// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/pado-dev/pado/pkg/ignore"
	"github.com/pado-dev/pado/pkg/markers"
)

// Predicate reports whether a directory should be reported by discovery. It receives the canonical
// path of the directory.
type Predicate func(dir string) bool

// Discoverer searches a directory tree for project roots.
type Discoverer struct {
	markers *markers.Registry
	config  config
}

func NewDiscoverer(registry *markers.Registry, options ...Option) *Discoverer {
	return &Discoverer{
		markers: registry,
		config:  newConfig(options),
	}
}

// Discover returns the project roots strictly below searchRoot, at most maxDepth directory levels
// deep. Children of searchRoot are at depth 1, so a maxDepth of zero or less yields nothing.
//
// Hidden directories are skipped. Results are canonical, unique, and in depth-first lexical order.
// searchRoot itself is never reported.
func (d *Discoverer) Discover(ctx context.Context, searchRoot string, maxDepth int) ([]string, error) {
	return d.DiscoverFunc(ctx, searchRoot, maxDepth, d.isRoot)
}

// DiscoverFunc is like Discover but reports the directories for which match returns true.
func (d *Discoverer) DiscoverFunc(
	ctx context.Context,
	searchRoot string,
	maxDepth int,
	match Predicate,
) ([]string, error) {
	root, err := canonicalDir(searchRoot)
	if err != nil {
		return nil, fmt.Errorf("discovering projects under %s: %w", searchRoot, err)
	}

	var matcher *ignore.Matcher
	if d.config.respectIgnoreFiles {
		matcher, err = ignore.New(root, d.config.ignorePatterns)
	} else {
		matcher, err = ignore.NewPatterns(root, d.config.ignorePatterns)
	}
	if err != nil {
		return nil, fmt.Errorf("discovering projects under %s: %w", searchRoot, err)
	}

	s := &dirScan{
		ctx:      ctx,
		matcher:  matcher,
		match:    match,
		maxDepth: maxDepth,
		descend:  d.config.descendIntoMatches,
		visited:  map[string]int{root: 0},
		reported: map[string]struct{}{root: {}},
		found:    []string{},
	}

	if maxDepth <= 0 {
		return s.found, nil
	}

	if err := s.walk(root, "", 0); err != nil {
		return nil, err
	}

	return s.found, nil
}

func (d *Discoverer) isRoot(dir string) bool {
	ok, err := d.markers.ContainsBoundary(dir)
	if err != nil {
		log.Printf("checking %s for boundary markers: %v", dir, err)
		return false
	}

	return ok
}

type dirScan struct {
	ctx      context.Context
	matcher  *ignore.Matcher
	match    Predicate
	maxDepth int
	descend  bool

	// visited maps each canonical directory to the shallowest depth it was expanded at.
	visited  map[string]int
	reported map[string]struct{}
	found    []string
}

func (s *dirScan) walk(dir string, rel string, depth int) error {
	if depth >= s.maxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		if depth == 0 {
			return fmt.Errorf("reading %s: %w", dir, err)
		}

		log.Printf("skipping unreadable directory %s: %v", dir, err)
		return nil
	}

	for _, entry := range entries {
		if err := s.ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		path := filepath.Join(dir, name)
		isDir, _, ok := entryKind(path, entry)
		if !ok || !isDir {
			continue
		}

		entryRel := filepath.Join(rel, name)
		if s.matcher.Ignored(entryRel, true) {
			continue
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			log.Printf("skipping %s: %v", path, err)
			continue
		}

		// A visible link must not expose a hidden directory.
		if strings.HasPrefix(filepath.Base(resolved), ".") {
			continue
		}

		childDepth := depth + 1
		if seenAt, seen := s.visited[resolved]; seen && seenAt <= childDepth {
			continue
		}
		s.visited[resolved] = childDepth

		matched := s.match(resolved)
		if matched {
			if _, dup := s.reported[resolved]; !dup {
				s.reported[resolved] = struct{}{}
				s.found = append(s.found, resolved)
			}

			if !s.descend {
				continue
			}
		}

		if err := s.walk(resolved, entryRel, childDepth); err != nil {
			return err
		}
	}

	return nil
}
