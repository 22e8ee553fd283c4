// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package markers

// Rule tags a directory with an ecosystem when its marker tokens are present.
//
// A rule matches when every AllOf token is present and, if AnyOf is non-empty, at least one AnyOf
// token is present. A rule with neither list never matches.
type Rule struct {
	Tag   Ecosystem
	AnyOf []string
	AllOf []string
}

// Matches reports whether the rule holds for the listed directory.
func (r Rule) Matches(l *Listing) bool {
	if len(r.AnyOf) == 0 && len(r.AllOf) == 0 {
		return false
	}

	for _, marker := range r.AllOf {
		if !l.Has(marker) {
			return false
		}
	}

	if len(r.AnyOf) == 0 {
		return true
	}

	for _, marker := range r.AnyOf {
		if l.Has(marker) {
			return true
		}
	}

	return false
}

// MonorepoIndicators describes what makes a root a monorepo: at least one Workspace marker and at
// least one of the conventional subproject directories.
type MonorepoIndicators struct {
	Workspace []string
	Dirs      []string
}

// Matches reports whether the listed directory looks like a monorepo root.
func (m MonorepoIndicators) Matches(l *Listing) bool {
	hasWorkspace := false
	for _, marker := range m.Workspace {
		if l.Has(marker) {
			hasWorkspace = true
			break
		}
	}

	if !hasWorkspace {
		return false
	}

	for _, dir := range m.Dirs {
		if l.HasDir(dir) {
			return true
		}
	}

	return false
}
