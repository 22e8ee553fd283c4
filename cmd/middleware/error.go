// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package middleware

import (
	"context"
	"errors"
	"io/fs"

	"github.com/pado-dev/pado/cmd/actions"
	"github.com/pado-dev/pado/internal"
	"github.com/pado-dev/pado/pkg/project"
)

// ErrorMiddleware attaches a suggestion to errors the user can act on.
type ErrorMiddleware struct {
}

func NewErrorMiddleware() Middleware {
	return &ErrorMiddleware{}
}

func (m *ErrorMiddleware) Run(ctx context.Context, options Options, next NextFn) (*actions.ActionResult, error) {
	result, err := next(ctx)
	if err == nil {
		return result, nil
	}

	var withSuggestion *internal.ErrorWithSuggestion
	if errors.As(err, &withSuggestion) {
		return result, err
	}

	switch {
	case errors.Is(err, project.ErrNoProjectRoot):
		return result, &internal.ErrorWithSuggestion{
			Err: err,
			Suggestion: "Run the command inside a project or pass --cwd. Custom markers can be added to " +
				"the markers.additional setting with 'pado config set'.",
		}
	case errors.Is(err, fs.ErrNotExist):
		return result, &internal.ErrorWithSuggestion{
			Err:        err,
			Suggestion: "Check that the path exists and is readable.",
		}
	}

	return result, err
}
