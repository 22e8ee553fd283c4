// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/pado-dev/pado/pkg/buildsys"
	"github.com/pado-dev/pado/pkg/markers"
)

// Info summarizes a project root.
type Info struct {
	Root        string               `json:"root"`
	Name        string               `json:"name"`
	Ecosystems  markers.Ecosystems   `json:"ecosystems"`
	FileCount   int                  `json:"fileCount"`
	IsMonorepo  bool                 `json:"isMonorepo"`
	Subprojects []string             `json:"subprojects"`
	BuildSystem buildsys.BuildSystem `json:"buildSystem"`
}

// Engine combines root location, classification, file enumeration and discovery over a single
// marker registry.
type Engine struct {
	markers    *markers.Registry
	locator    *Locator
	classifier *Classifier
	enumerator *Enumerator
	discoverer *Discoverer
}

func NewEngine(registry *markers.Registry, options ...Option) *Engine {
	return &Engine{
		markers:    registry,
		locator:    NewLocator(registry),
		classifier: NewClassifier(registry),
		enumerator: NewEnumerator(options...),
		discoverer: NewDiscoverer(registry, options...),
	}
}

// Markers returns the registry the engine was built with.
func (e *Engine) Markers() *markers.Registry {
	return e.markers
}

func (e *Engine) FindRoot(start string) (string, error) {
	return e.locator.FindRoot(start)
}

func (e *Engine) IsRoot(path string) bool {
	return e.locator.IsRoot(path)
}

func (e *Engine) DetectTypes(root string) markers.Ecosystems {
	return e.classifier.Classify(root)
}

func (e *Engine) ListFiles(ctx context.Context, root string, pattern string) ([]string, error) {
	return e.enumerator.ListFiles(ctx, root, pattern)
}

func (e *Engine) Discover(ctx context.Context, searchRoot string, maxDepth int) ([]string, error) {
	return e.discoverer.Discover(ctx, searchRoot, maxDepth)
}

func (e *Engine) IsMonorepo(root string) bool {
	return IsMonorepo(e.markers, root)
}

// Subprojects returns the project roots within SubprojectDepth levels below root.
func (e *Engine) Subprojects(ctx context.Context, root string) ([]string, error) {
	return e.discoverer.Discover(ctx, root, SubprojectDepth)
}

func (e *Engine) BuildSystem(root string) buildsys.BuildSystem {
	return buildsys.DetectDir(root)
}

// Info gathers the ecosystems, file count, monorepo layout and build system of root. Subprojects
// are only searched for when root is a monorepo.
func (e *Engine) Info(ctx context.Context, root string) (*Info, error) {
	dir, err := canonicalDir(root)
	if err != nil {
		return nil, fmt.Errorf("reading project info for %s: %w", root, err)
	}

	files, err := e.ListFiles(ctx, dir, "")
	if err != nil {
		return nil, fmt.Errorf("reading project info for %s: %w", root, err)
	}

	info := &Info{
		Root:        dir,
		Name:        filepath.Base(dir),
		Ecosystems:  e.DetectTypes(dir),
		FileCount:   len(files),
		IsMonorepo:  e.IsMonorepo(dir),
		Subprojects: []string{},
		BuildSystem: e.BuildSystem(dir),
	}

	if info.IsMonorepo {
		subprojects, err := e.Subprojects(ctx, dir)
		if err != nil {
			return nil, fmt.Errorf("reading project info for %s: %w", root, err)
		}
		info.Subprojects = subprojects
	}

	return info, nil
}
