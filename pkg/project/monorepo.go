// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"log"

	"github.com/pado-dev/pado/pkg/markers"
)

// SubprojectDepth is how deep below a monorepo root subprojects are searched for.
const SubprojectDepth = 3

// IsMonorepo reports whether root holds a workspace marker together with a conventional
// subproject directory such as packages/ or crates/.
func IsMonorepo(registry *markers.Registry, root string) bool {
	listing, err := markers.ReadListing(root)
	if err != nil {
		log.Printf("checking %s for monorepo indicators: %v", root, err)
		return false
	}

	return registry.Monorepo().Matches(listing)
}
