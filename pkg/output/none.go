// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"errors"
	"io"
)

// NoneFormatter marks commands that write plain text themselves.
type NoneFormatter struct {
}

func (f *NoneFormatter) Kind() Format {
	return NoneFormat
}

func (f *NoneFormatter) Format(_ interface{}, _ io.Writer, _ interface{}) error {
	return errors.New("the 'none' format does not render values")
}

var _ Formatter = (*NoneFormatter)(nil)
