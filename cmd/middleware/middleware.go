// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package middleware runs cross-cutting logic around pado actions.
package middleware

import (
	"context"
	"fmt"
	"log"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/pkg/ioc"
)

// Defines a middleware component
type Middleware interface {
	Run(ctx context.Context, options Options, nextFn NextFn) (*actions.ActionResult, error)
}

// Middleware Run options
type Options struct {
	Name    string
	Aliases []string
}

// Executes the next middleware in the command chain
type NextFn func(ctx context.Context) (*actions.ActionResult, error)

// MiddlewareRunner resolves registered middleware from the container and runs them around an action.
type MiddlewareRunner struct {
	chain     []string
	container *ioc.NestedContainer
}

func NewMiddlewareRunner(container *ioc.NestedContainer) *MiddlewareRunner {
	return &MiddlewareRunner{
		container: container,
		chain:     []string{},
	}
}

// Executes the middleware chain for the specified action
func (r *MiddlewareRunner) RunAction(
	ctx context.Context,
	options Options,
	action actions.Action,
) (*actions.ActionResult, error) {
	chainLength := len(r.chain)
	index := 0

	var nextFn NextFn

	// Middleware run in registration order. Each one decides whether to call nextFn, and the action
	// runs once the chain is exhausted.
	nextFn = func(nextContext context.Context) (*actions.ActionResult, error) {
		if index < chainLength {
			middlewareName := r.chain[index]
			index++

			var middleware Middleware
			if err := r.container.ResolveNamed(middlewareName, &middleware); err != nil {
				log.Printf("failed resolving middleware '%s' : %s\n", middlewareName, err.Error())
				return nextFn(nextContext)
			}

			log.Printf("running middleware '%s'\n", middlewareName)
			return middleware.Run(nextContext, options, nextFn)
		}

		return action.Run(nextContext)
	}

	return nextFn(ctx)
}

// Registers middleware components that will be run for all actions
func (r *MiddlewareRunner) Use(name string, resolveFn any) error {
	if err := r.container.RegisterNamedSingleton(name, resolveFn); err != nil {
		return fmt.Errorf("registering middleware '%s': %w", name, err)
	}

	r.chain = append(r.chain, name)
	return nil
}
