// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package ioc

import (
	"errors"
	"os"
	"testing"

	"github.com/pado-dev/pado/pkg/markers"
	"github.com/pado-dev/pado/pkg/project"
	"github.com/stretchr/testify/require"
)

type projectRoot string

func Test_Resolve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		container := NewNestedContainer(nil)
		container.RegisterSingleton(func() string {
			return "Test"
		})

		var instance string
		err := container.Resolve(&instance)

		require.NoError(t, err)
		require.Equal(t, "Test", instance)
	})

	t.Run("Dependencies", func(t *testing.T) {
		container := NewNestedContainer(nil)
		RegisterInstance(container, markers.Default())
		container.RegisterSingleton(project.NewLocator)

		var locator *project.Locator
		require.NoError(t, container.Resolve(&locator))
		require.NotNil(t, locator)
	})

	t.Run("FailWithContainerError", func(t *testing.T) {
		container := NewNestedContainer(nil)

		var instance *project.Locator
		// No resolver was registered for Locator
		err := container.Resolve(&instance)

		require.Error(t, err)
		require.True(t, errors.Is(err, ErrResolveInstance))
		require.False(t, errors.Is(err, project.ErrNoProjectRoot))
	})

	t.Run("FailWithOtherError", func(t *testing.T) {
		container := NewNestedContainer(nil)
		container.RegisterSingleton(func() (projectRoot, error) {
			root, err := project.NewLocator(markers.New([]string{"pado-test-boundary.marker"}, nil,
				markers.MonorepoIndicators{})).FindRoot(os.TempDir())
			return projectRoot(root), err
		})

		var instance projectRoot
		err := container.Resolve(&instance)

		require.Error(t, err)
		require.False(t, errors.Is(err, ErrResolveInstance))
		require.True(t, errors.Is(err, project.ErrNoProjectRoot))
	})
}

func Test_NestedContainer(t *testing.T) {
	parent := NewNestedContainer(nil)
	RegisterInstance(parent, markers.Default())

	child := NewNestedContainer(parent)
	require.NoError(t, child.RegisterNamedSingleton("extended", func(registry *markers.Registry) *markers.Registry {
		return registry.Extend("pado-test-boundary.marker")
	}))

	var registry *markers.Registry
	require.NoError(t, child.Resolve(&registry))
	require.Same(t, markers.Default(), registry)

	var extended *markers.Registry
	require.NoError(t, child.ResolveNamed("extended", &extended))
	require.True(t, extended.IsBoundaryMarker("pado-test-boundary.marker"))

	require.ErrorIs(t, parent.ResolveNamed("extended", &extended), ErrResolveInstance)
}

func Test_RegisterSingletonAndInvoke(t *testing.T) {
	container := NewNestedContainer(nil)

	calls := 0
	require.NoError(t, container.RegisterSingletonAndInvoke(func() *markers.Registry {
		calls++
		return markers.Default()
	}))
	require.Equal(t, 1, calls, "resolver runs at registration")

	var registry *markers.Registry
	require.NoError(t, container.Resolve(&registry))
	require.Equal(t, 1, calls)
}
