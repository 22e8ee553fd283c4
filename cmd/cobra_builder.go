// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/cmd/middleware"
	"github.com/pado-dev/pado/pkg/ioc"
	"github.com/pado-dev/pado/pkg/output"
	"github.com/spf13/cobra"
)

// CobraBuilder manages the construction of the cobra command tree from nested ActionDescriptors
type CobraBuilder struct {
	container *ioc.NestedContainer
	runner    *middleware.MiddlewareRunner
}

// Creates a new instance of the Cobra builder
func NewCobraBuilder(container *ioc.NestedContainer) *CobraBuilder {
	return &CobraBuilder{
		container: container,
		runner:    middleware.NewMiddlewareRunner(container),
	}
}

// Builds a cobra Command for the specified action descriptor
func (cb *CobraBuilder) BuildCommand(descriptor *actions.ActionDescriptor) (*cobra.Command, error) {
	cmd := descriptor.Options.Command
	if cmd.Use == "" {
		cmd.Use = descriptor.Name
	}

	// Build the full command tree
	for _, childDescriptor := range descriptor.Children() {
		childCmd, err := cb.BuildCommand(childDescriptor)
		if err != nil {
			return nil, err
		}

		cmd.AddCommand(childCmd)
	}

	// Bind root command after command tree has been established
	// This ensures the command path is ready and consistent across all nested commands
	if descriptor.Parent() == nil {
		if err := cb.bindCommand(cmd, descriptor); err != nil {
			return nil, err
		}
	}

	cb.configureActionResolver(cmd, descriptor)

	return cmd, nil
}

// Configures the cobra command 'RunE' function to running the composed middleware and action for the
// current action descriptor
func (cb *CobraBuilder) configureActionResolver(cmd *cobra.Command, descriptor *actions.ActionDescriptor) {
	// Only bind command to action if an action resolver had been defined
	// and when a RunE hasn't already been set
	if descriptor.Options.ActionResolver == nil || cmd.RunE != nil {
		return
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		// Registers the following to enable injection into actions that require them
		ioc.RegisterInstance(cb.container, ctx)
		ioc.RegisterInstance(cb.container, cmd)
		ioc.RegisterInstance(cb.container, args)

		if err := cb.registerMiddleware(descriptor); err != nil {
			return err
		}

		actionName := createActionName(cmd)
		var action actions.Action
		if err := cb.container.ResolveNamed(actionName, &action); err != nil {
			return fmt.Errorf(
				"failed resolving action '%s'. Ensure the ActionResolver returns an `actions.Action`, %w",
				actionName,
				err,
			)
		}

		runOptions := middleware.Options{
			Name:    cmd.CommandPath(),
			Aliases: cmd.Aliases,
		}

		result, err := cb.runner.RunAction(ctx, runOptions, action)
		if err != nil {
			return err
		}

		var writer io.Writer
		if err := cb.container.Resolve(&writer); err != nil {
			return err
		}
		actions.ShowActionResults(writer, result)

		return nil
	}
}

// Binds the intersection of cobra command options and action descriptor options
func (cb *CobraBuilder) bindCommand(cmd *cobra.Command, descriptor *actions.ActionDescriptor) error {
	actionName := createActionName(cmd)

	// Automatically adds a consistent help flag
	cmd.Flags().BoolP("help", "h", false, fmt.Sprintf("Gets help for %s.", descriptor.Name))

	// Consistently registers output formats for the descriptor
	if len(descriptor.Options.OutputFormats) > 0 {
		output.AddOutputParam(cmd, descriptor.Options.OutputFormats, descriptor.Options.DefaultFormat)
	}

	// The flags resolver is constructed and bound to the cobra command via dependency injection
	if descriptor.Options.FlagsResolver != nil {
		log.Printf("registering flags for action '%s'\n", actionName)
		ioc.RegisterInstance(cb.container, cmd)

		if err := cb.container.RegisterSingletonAndInvoke(descriptor.Options.FlagsResolver); err != nil {
			return fmt.Errorf(
				"failed registering FlagsResolver for action '%s'. Ensure the resolver is a valid go function. %w",
				actionName,
				err,
			)
		}
	}

	// Action resolvers are typically the constructor function for the action, ex) newInfoAction(...)
	// Their dependencies are instantiated via the IoC container
	if descriptor.Options.ActionResolver != nil {
		log.Printf("registering resolver for action '%s'\n", actionName)
		if err := cb.container.RegisterNamedSingleton(actionName, descriptor.Options.ActionResolver); err != nil {
			return fmt.Errorf(
				"failed registering ActionResolver for action '%s'. Ensure the resolver is a valid go function. %w",
				actionName,
				err,
			)
		}
	}

	// Bind the child commands for the current descriptor
	for _, childDescriptor := range descriptor.Children() {
		if err := cb.bindCommand(childDescriptor.Options.Command, childDescriptor); err != nil {
			return err
		}
	}

	return nil
}

// Registers all middleware components for the current command and any parent descriptors
// Middleware registered higher up the command structure run before lower registrations
func (cb *CobraBuilder) registerMiddleware(descriptor *actions.ActionDescriptor) error {
	chain := []*actions.MiddlewareRegistration{}
	for current := descriptor; current != nil; current = current.Parent() {
		middleware := current.Middleware()
		for i := len(middleware) - 1; i > -1; i-- {
			chain = append(chain, middleware[i])
		}
	}

	for i := len(chain) - 1; i > -1; i-- {
		registration := chain[i]
		if err := cb.runner.Use(registration.Name, registration.Resolver); err != nil {
			return err
		}
	}

	return nil
}

// Composes a consistent action name for the specified cobra command
// ex) pado config get becomes 'pado-config-get-action'
func createActionName(cmd *cobra.Command) string {
	actionName := cmd.CommandPath()
	actionName = strings.TrimSpace(actionName)
	actionName = strings.ReplaceAll(actionName, " ", "-")
	actionName = fmt.Sprintf("%s-action", actionName)

	return strings.ToLower(actionName)
}
