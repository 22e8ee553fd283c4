// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package markers holds the marker registry: the tokens whose presence marks a directory as the top
// of a project, the ordered rules that tag a project root with ecosystems, and the monorepo
// indicators.
//
// A Registry is immutable once built. Use Default for the built-in table and Extend to layer
// user supplied boundary markers on top of it.
package markers

import (
	"slices"
	"sync"
)

type Registry struct {
	tokens   []string
	names    map[string]struct{}
	dirs     map[string]struct{}
	patterns []token
	nested   []token

	rules    []Rule
	monorepo MonorepoIndicators
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return New(defaultBoundaryMarkers, defaultRules, defaultMonorepo)
})

// Default returns the built-in registry. The same instance is returned on every call.
func Default() *Registry {
	return defaultRegistry()
}

// New creates a registry from boundary marker tokens, ordered classification rules and monorepo
// indicators. The inputs are copied.
func New(boundary []string, rules []Rule, monorepo MonorepoIndicators) *Registry {
	r := &Registry{
		names: map[string]struct{}{},
		dirs:  map[string]struct{}{},
		rules: slices.Clone(rules),
		monorepo: MonorepoIndicators{
			Workspace: slices.Clone(monorepo.Workspace),
			Dirs:      slices.Clone(monorepo.Dirs),
		},
	}

	r.addBoundary(boundary)
	return r
}

func (r *Registry) addBoundary(markers []string) {
	for _, raw := range markers {
		if raw == "" || slices.Contains(r.tokens, raw) {
			continue
		}

		r.tokens = append(r.tokens, raw)

		t := parseToken(raw)
		switch {
		case t.nested:
			r.nested = append(r.nested, t)
		case t.pattern:
			r.patterns = append(r.patterns, t)
		case t.dirOnly:
			r.dirs[t.name] = struct{}{}
		default:
			r.names[t.name] = struct{}{}
		}
	}
}

// Extend returns a new registry with additional boundary-only markers. The receiver is unchanged.
func (r *Registry) Extend(markers ...string) *Registry {
	if len(markers) == 0 {
		return r
	}

	extended := New(r.tokens, r.rules, r.monorepo)
	extended.addBoundary(markers)
	return extended
}

// BoundaryTokens returns the boundary marker tokens in registration order.
func (r *Registry) BoundaryTokens() []string {
	return slices.Clone(r.tokens)
}

// Rules returns the classification rules in evaluation order.
func (r *Registry) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Monorepo returns the monorepo indicators.
func (r *Registry) Monorepo() MonorepoIndicators {
	return r.monorepo
}

// IsBoundaryMarker reports whether an entry called name is a boundary marker. Directory-only
// tokens match by name here since no entry type is available.
func (r *Registry) IsBoundaryMarker(name string) bool {
	if _, has := r.names[name]; has {
		return true
	}

	if _, has := r.dirs[name]; has {
		return true
	}

	for _, t := range r.patterns {
		if t.matchesName(name) {
			return true
		}
	}

	for _, t := range r.nested {
		if t.name == name {
			return true
		}
	}

	return false
}

// TagsFor returns the ecosystems an entry called name can contribute to on its own, in rule order.
// Rules that require several markers together (AllOf) never contribute here.
func (r *Registry) TagsFor(name string) Ecosystems {
	tags := Ecosystems{}
	for _, rule := range r.rules {
		if len(rule.AllOf) > 0 {
			continue
		}

		for _, marker := range rule.AnyOf {
			if parseToken(marker).matchesName(name) {
				tags = tags.add(rule.Tag)
				break
			}
		}
	}

	return tags
}

// HasBoundary reports whether the listed directory contains at least one boundary marker.
func (r *Registry) HasBoundary(l *Listing) bool {
	for _, name := range l.names {
		if _, has := r.names[name]; has {
			return true
		}

		if _, has := r.dirs[name]; has && l.isDir[name] {
			return true
		}

		for _, t := range r.patterns {
			if t.matchesName(name) && (!t.dirOnly || l.isDir[name]) {
				return true
			}
		}
	}

	for _, t := range r.nested {
		if l.has(t) {
			return true
		}
	}

	return false
}

// ContainsBoundary reads dir and reports whether it contains a boundary marker.
func (r *Registry) ContainsBoundary(dir string) (bool, error) {
	l, err := ReadListing(dir)
	if err != nil {
		return false, err
	}

	return r.HasBoundary(l), nil
}

// Classify returns the tags of every rule that matches the listed directory, in rule order.
func (r *Registry) Classify(l *Listing) Ecosystems {
	tags := Ecosystems{}
	for _, rule := range r.rules {
		if rule.Matches(l) {
			tags = tags.add(rule.Tag)
		}
	}

	return tags
}
