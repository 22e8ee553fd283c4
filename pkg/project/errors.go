// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package project

import "errors"

// ErrNoProjectRoot is returned when no directory from the start path up to the filesystem root
// contains a boundary marker.
var ErrNoProjectRoot = errors.New("no project root found")
