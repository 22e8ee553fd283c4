// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package config

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pado-dev/pado/pkg/osutil"
)

const (
	DefaultMaxDepth = 3

	MarkersKey   = "markers"
	IndexingKey  = "indexing"
	DiscoveryKey = "discovery"
)

// Settings are the typed pado settings read from a Config.
type Settings struct {
	Markers   MarkerSettings    `json:"markers"`
	Indexing  IndexingSettings  `json:"indexing"`
	Discovery DiscoverySettings `json:"discovery"`
}

type MarkerSettings struct {
	// Additional boundary markers appended to the built-in registry.
	Additional []string `json:"additional,omitempty"`
}

type IndexingSettings struct {
	// IgnorePatterns are doublestar patterns excluded from file enumeration and discovery.
	IgnorePatterns []string `json:"ignorePatterns,omitempty"`
	// SkipVCSMetadata leaves .git, .hg and similar directories out of file enumeration.
	SkipVCSMetadata *bool `json:"skipVcsMetadata,omitempty"`
}

type DiscoverySettings struct {
	MaxDepth            *int                      `json:"maxDepth,omitempty"`
	DescendIntoProjects *bool                     `json:"descendIntoProjects,omitempty"`
	RespectIgnoreFiles  *bool                     `json:"respectIgnoreFiles,omitempty"`
	Roots               []osutil.ExpandableString `json:"roots,omitempty"`
}

func DefaultSettings() Settings {
	maxDepth := DefaultMaxDepth
	descend := true
	respect := true

	return Settings{
		Discovery: DiscoverySettings{
			MaxDepth:            &maxDepth,
			DescendIntoProjects: &descend,
			RespectIgnoreFiles:  &respect,
		},
	}
}

// LoadSettings decodes the pado sections of c, fills unset values from DefaultSettings and validates the result.
func LoadSettings(c Config) (Settings, error) {
	var s Settings

	sections := []struct {
		key    string
		target any
	}{
		{MarkersKey, &s.Markers},
		{IndexingKey, &s.Indexing},
		{DiscoveryKey, &s.Discovery},
	}

	for _, section := range sections {
		if _, err := c.GetSection(section.key, section.target); err != nil {
			return Settings{}, fmt.Errorf("reading '%s' settings: %w", section.key, err)
		}
	}

	if err := mergo.Merge(&s, DefaultSettings(), mergo.WithoutDereference); err != nil {
		return Settings{}, fmt.Errorf("applying default settings: %w", err)
	}

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}

	return s, nil
}

// Validate checks that the settings can be used to build a marker registry and a discovery engine.
func (s Settings) Validate() error {
	for _, marker := range s.Markers.Additional {
		if marker == "" {
			return fmt.Errorf("markers.additional: empty marker")
		}
	}

	for _, pattern := range s.Indexing.IgnorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("indexing.ignorePatterns: invalid pattern '%s'", pattern)
		}
	}

	if s.Discovery.MaxDepth != nil && *s.Discovery.MaxDepth < 0 {
		return fmt.Errorf("discovery.maxDepth: must not be negative, got %d", *s.Discovery.MaxDepth)
	}

	return nil
}

func (s Settings) MaxDepth() int {
	if s.Discovery.MaxDepth == nil {
		return DefaultMaxDepth
	}

	return *s.Discovery.MaxDepth
}

func (s Settings) DescendIntoProjects() bool {
	return s.Discovery.DescendIntoProjects == nil || *s.Discovery.DescendIntoProjects
}

func (s Settings) RespectIgnoreFiles() bool {
	return s.Discovery.RespectIgnoreFiles == nil || *s.Discovery.RespectIgnoreFiles
}

func (s Settings) SkipVCSMetadata() bool {
	return s.Indexing.SkipVCSMetadata != nil && *s.Indexing.SkipVCSMetadata
}

// DiscoveryRoots expands the configured roots against the process environment.
func (s Settings) DiscoveryRoots() ([]string, error) {
	roots := make([]string, 0, len(s.Discovery.Roots))
	for _, root := range s.Discovery.Roots {
		expanded, err := root.Envsubst(os.Getenv)
		if err != nil {
			return nil, fmt.Errorf("expanding discovery root '%s': %w", root.Template(), err)
		}

		if expanded != "" {
			roots = append(roots, expanded)
		}
	}

	return roots, nil
}
