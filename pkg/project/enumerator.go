// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/pado-dev/pado/pkg/glob"
	"github.com/pado-dev/pado/pkg/ignore"
)

// Enumerator lists the files of a project, honoring ignore files.
type Enumerator struct {
	config config
}

func NewEnumerator(options ...Option) *Enumerator {
	return &Enumerator{config: newConfig(options)}
}

// ListFiles returns every regular file under root that is not excluded by ignore rules, in lexical
// walk order. Hidden files are included. When pattern is non-empty only files whose name matches
// it are returned.
//
// Symbolic links are followed and each resolved directory is visited once. Version control metadata
// directories are only left out when WithSkipVCSMetadata is set.
func (e *Enumerator) ListFiles(ctx context.Context, root string, pattern string) ([]string, error) {
	dir, err := canonicalDir(root)
	if err != nil {
		return nil, fmt.Errorf("listing files under %s: %w", root, err)
	}

	matcher, err := ignore.New(dir, e.config.ignorePatterns)
	if err != nil {
		return nil, fmt.Errorf("listing files under %s: %w", root, err)
	}

	w := &fileWalker{
		ctx:     ctx,
		matcher: matcher,
		pattern: pattern,
		skipVCS: e.config.skipVCSMetadata,
		visited: map[string]struct{}{dir: {}},
		files:   []string{},
	}

	if err := w.walk(dir, ""); err != nil {
		return nil, err
	}

	return w.files, nil
}

type fileWalker struct {
	ctx     context.Context
	matcher *ignore.Matcher
	pattern string
	skipVCS bool
	visited map[string]struct{}
	files   []string
}

func (w *fileWalker) walk(dir string, rel string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if rel == "" {
			return fmt.Errorf("reading %s: %w", dir, err)
		}

		log.Printf("skipping unreadable directory %s: %v", dir, err)
		return nil
	}

	for _, entry := range entries {
		if err := w.ctx.Err(); err != nil {
			return err
		}

		name := entry.Name()
		path := filepath.Join(dir, name)
		entryRel := filepath.Join(rel, name)

		isDir, isRegular, ok := entryKind(path, entry)
		if !ok {
			log.Printf("skipping broken symlink %s", path)
			continue
		}

		if isDir && w.skipVCS && ignore.IsVCSMetadata(name) {
			continue
		}

		if w.matcher.Ignored(entryRel, isDir) {
			continue
		}

		if isDir {
			resolved, err := filepath.EvalSymlinks(path)
			if err != nil {
				log.Printf("skipping %s: %v", path, err)
				continue
			}

			if _, seen := w.visited[resolved]; seen {
				continue
			}
			w.visited[resolved] = struct{}{}

			if err := w.walk(resolved, entryRel); err != nil {
				return err
			}
			continue
		}

		if !isRegular {
			continue
		}

		if w.pattern != "" && !glob.Match(w.pattern, name) {
			continue
		}

		w.files = append(w.files, path)
	}

	return nil
}
