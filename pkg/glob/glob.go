// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package glob implements the single-wildcard filename matcher used for marker patterns such as
// `*.csproj` and for user supplied file filters.
//
// Supported grammar:
//   - no `*`: exact equality
//   - `*` alone: matches any text
//   - `*suffix`: text ends with suffix
//   - `prefix*`: text starts with prefix
//   - `prefix*suffix`: text starts with prefix and ends with suffix (the two may overlap)
//
// Patterns with more than one `*` are compared for exact equality. There are no character classes,
// no escaping and no backtracking.
package glob

import "strings"

const wildcard = "*"

// HasWildcard reports whether pattern contains a `*`.
func HasWildcard(pattern string) bool {
	return strings.Contains(pattern, wildcard)
}

// Match reports whether text matches pattern.
func Match(pattern, text string) bool {
	if strings.Count(pattern, wildcard) != 1 {
		return pattern == text
	}

	if pattern == wildcard {
		return true
	}

	prefix, suffix, _ := strings.Cut(pattern, wildcard)
	switch {
	case prefix == "":
		return strings.HasSuffix(text, suffix)
	case suffix == "":
		return strings.HasPrefix(text, prefix)
	default:
		return strings.HasPrefix(text, prefix) && strings.HasSuffix(text, suffix)
	}
}

// MatchAny reports whether text matches at least one of patterns.
func MatchAny(patterns []string, text string) bool {
	for _, pattern := range patterns {
		if Match(pattern, text) {
			return true
		}
	}

	return false
}
