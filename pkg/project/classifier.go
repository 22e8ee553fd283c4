// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import (
	"log"

	"github.com/pado-dev/pado/pkg/markers"
)

// Classifier tags a project root with the ecosystems whose markers it contains.
type Classifier struct {
	markers *markers.Registry
}

func NewClassifier(registry *markers.Registry) *Classifier {
	return &Classifier{markers: registry}
}

// Classify returns every ecosystem detected in root, in registry rule order. An unreadable root or
// one with no recognized markers yields an empty result.
func (c *Classifier) Classify(root string) markers.Ecosystems {
	listing, err := markers.ReadListing(root)
	if err != nil {
		log.Printf("classifying %s: %v", root, err)
		return markers.Ecosystems{}
	}

	return c.markers.Classify(listing)
}
