// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package project locates, classifies and enumerates software projects on disk.
//
// A project root is a directory that directly contains a boundary marker from a markers.Registry.
// All paths returned by this package are absolute, and the directories in them have symbolic links
// resolved.
package project
