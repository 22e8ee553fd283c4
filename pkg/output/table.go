// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"text/tabwriter"
	"text/template"
)

type Column struct {
	// Heading is printed in upper case at the top of the column.
	Heading string
	// ValueTemplate is a text/template executed against each row.
	ValueTemplate string
}

type TableFormatterOptions struct {
	Columns []Column
}

type TableFormatter struct {
}

func (f *TableFormatter) Kind() Format {
	return TableFormat
}

// Format writes obj, a slice of rows or a single row, as aligned columns.
func (f *TableFormatter) Format(obj interface{}, writer io.Writer, opts interface{}) error {
	options, ok := opts.(TableFormatterOptions)
	if !ok {
		return errors.New("invalid formatter options, TableFormatterOptions expected")
	}

	if len(options.Columns) == 0 {
		return errors.New("no columns were defined, table format is not supported for this command")
	}

	templates := make([]*template.Template, len(options.Columns))
	headings := make([]string, len(options.Columns))
	for i, col := range options.Columns {
		tmpl, err := template.New(col.Heading).Parse(col.ValueTemplate)
		if err != nil {
			return fmt.Errorf("parsing template for column '%s': %w", col.Heading, err)
		}

		templates[i] = tmpl
		headings[i] = strings.ToUpper(col.Heading)
	}

	tabs := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tabs, strings.Join(headings, "\t")); err != nil {
		return err
	}

	for _, row := range rows(obj) {
		cells := make([]string, len(templates))
		for i, tmpl := range templates {
			var cell bytes.Buffer
			if err := tmpl.Execute(&cell, row); err != nil {
				return fmt.Errorf("rendering column '%s': %w", options.Columns[i].Heading, err)
			}

			cells[i] = cell.String()
		}

		if _, err := fmt.Fprintln(tabs, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}

	return tabs.Flush()
}

func rows(obj interface{}) []interface{} {
	v := reflect.ValueOf(obj)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return []interface{}{obj}
	}

	res := make([]interface{}, v.Len())
	for i := 0; i < v.Len(); i++ {
		res[i] = v.Index(i).Interface()
	}

	return res
}

var _ Formatter = (*TableFormatter)(nil)
