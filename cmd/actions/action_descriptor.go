// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package actions

import (
	"github.com/pado-dev/pado/pkg/output"
	"github.com/spf13/cobra"
)

// MiddlewareRegistration is a middleware resolver registered on a descriptor.
type MiddlewareRegistration struct {
	Name     string
	Resolver any
}

// ActionDescriptor describes a command, how its flags and action are resolved, and its children.
type ActionDescriptor struct {
	Name       string
	Options    *ActionDescriptorOptions
	parent     *ActionDescriptor
	children   []*ActionDescriptor
	middleware []*MiddlewareRegistration
}

func NewActionDescriptor(name string, options *ActionDescriptorOptions) *ActionDescriptor {
	if options == nil {
		options = &ActionDescriptorOptions{}
	}

	if options.Command == nil {
		options.Command = &cobra.Command{
			Use: name,
		}
	}

	return &ActionDescriptor{
		Name:       name,
		Options:    options,
		middleware: []*MiddlewareRegistration{},
		children:   []*ActionDescriptor{},
	}
}

func (ad *ActionDescriptor) Children() []*ActionDescriptor {
	return ad.children
}

func (ad *ActionDescriptor) Parent() *ActionDescriptor {
	return ad.parent
}

func (ad *ActionDescriptor) Middleware() []*MiddlewareRegistration {
	return ad.middleware
}

// Add creates a child descriptor.
func (ad *ActionDescriptor) Add(name string, options *ActionDescriptorOptions) *ActionDescriptor {
	descriptor := NewActionDescriptor(name, options)
	descriptor.parent = ad
	ad.children = append(ad.children, descriptor)

	return descriptor
}

// UseMiddleware registers a middleware for this descriptor and all of its children.
func (ad *ActionDescriptor) UseMiddleware(name string, middlewareResolver any) *ActionDescriptor {
	ad.middleware = append(ad.middleware, &MiddlewareRegistration{
		Name:     name,
		Resolver: middlewareResolver,
	})

	return ad
}

type ActionDescriptorOptions struct {
	// Cobra command configuration
	*cobra.Command
	// Function to resolve / create the flags instance required for the action
	FlagsResolver any
	// Function to resolve / create the action instance. It must return actions.Action.
	ActionResolver any
	// The output formats supported by the action
	OutputFormats []output.Format
	// The default output format if not specified
	DefaultFormat output.Format
}
