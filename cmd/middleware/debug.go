// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package middleware

import (
	"context"
	"log"
	"time"

	"github.com/pado-dev/pado/cmd/actions"
)

// DebugMiddleware logs when an action starts and how long it took.
type DebugMiddleware struct {
}

func NewDebugMiddleware() Middleware {
	return &DebugMiddleware{}
}

func (m *DebugMiddleware) Run(ctx context.Context, options Options, next NextFn) (*actions.ActionResult, error) {
	start := time.Now()
	log.Printf("command '%s' started", options.Name)

	result, err := next(ctx)
	if err != nil {
		log.Printf("command '%s' failed after %s: %v", options.Name, time.Since(start), err)
	} else {
		log.Printf("command '%s' finished in %s", options.Name, time.Since(start))
	}

	return result, err
}
