// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import "slices"

type config struct {
	ignorePatterns     []string
	descendIntoMatches bool
	respectIgnoreFiles bool
	skipVCSMetadata    bool
}

func newConfig(options []Option) config {
	c := config{
		descendIntoMatches: true,
		respectIgnoreFiles: true,
	}

	for _, opt := range options {
		opt(&c)
	}

	return c
}

// Option configures the enumerator, discoverer and engine.
type Option func(*config)

// WithIgnorePatterns excludes paths matching any of the doublestar patterns, in addition to ignore
// files. Patterns are matched against slash-separated paths relative to the walk root.
func WithIgnorePatterns(patterns ...string) Option {
	return func(c *config) {
		c.ignorePatterns = append(slices.Clone(c.ignorePatterns), patterns...)
	}
}

// WithDescendIntoMatches controls whether discovery keeps searching inside a directory that was
// itself reported as a project. Enabled by default.
func WithDescendIntoMatches(descend bool) Option {
	return func(c *config) {
		c.descendIntoMatches = descend
	}
}

// WithIgnoreFiles controls whether discovery honors .gitignore and .ignore files. File enumeration
// always honors them. Enabled by default.
func WithIgnoreFiles(respect bool) Option {
	return func(c *config) {
		c.respectIgnoreFiles = respect
	}
}

// WithSkipVCSMetadata controls whether file enumeration leaves out version control metadata
// directories such as .git and .hg. Disabled by default, so they are listed like any other hidden
// directory unless an ignore rule excludes them.
func WithSkipVCSMetadata(skip bool) Option {
	return func(c *config) {
		c.skipVCSMetadata = skip
	}
}
