// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package internal

import (
	"strings"

	"github.com/blang/semver/v4"
)

// Version is the version string stamped at build time, in the form "<semver> (commit <sha>)".
//
// Set it with -ldflags "-X github.com/pado-dev/pado/internal.Version=...".
var Version = "0.0.0-dev.0 (commit 0000000000000000000000000000000000000000)"

type VersionSpec struct {
	Version semver.Version `json:"version"`
	Commit  string         `json:"commit"`
}

// VersionInfo parses Version. Components that cannot be parsed are left zero.
func VersionInfo() VersionSpec {
	number, rest, _ := strings.Cut(Version, " ")

	var versionSpec VersionSpec
	if v, err := semver.Parse(number); err == nil {
		versionSpec.Version = v
	}

	if commit, ok := strings.CutPrefix(rest, "(commit "); ok {
		versionSpec.Commit = strings.TrimSuffix(commit, ")")
	}

	return versionSpec
}

// GetVersionNumber returns the semantic version of this build, or "unknown" if Version is malformed.
func GetVersionNumber() string {
	number, _, _ := strings.Cut(Version, " ")
	v, err := semver.Parse(number)
	if err != nil {
		return "unknown"
	}

	return v.String()
}

// IsDevVersion reports whether this is an unreleased development build.
func IsDevVersion() bool {
	versionSpec := VersionInfo()
	return versionSpec.Version.Major == 0 && versionSpec.Version.Minor == 0 && versionSpec.Version.Patch == 0
}
