// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name       string `json:"name"`
	Ecosystems string `json:"ecosystems"`
}

func TestJsonFormatter(t *testing.T) {
	var buf bytes.Buffer
	err := (&JsonFormatter{}).Format([]row{{Name: "api", Ecosystems: "go"}}, &buf, nil)
	require.NoError(t, err)
	require.Equal(t, "[\n  {\n    \"name\": \"api\",\n    \"ecosystems\": \"go\"\n  }\n]\n", buf.String())

	buf.Reset()
	require.NoError(t, (&JsonFormatter{}).Format("/src/r&d/<app>", &buf, nil))
	require.Equal(t, "\"/src/r&d/<app>\"\n", buf.String())
}

func TestTableFormatter(t *testing.T) {
	opts := TableFormatterOptions{
		Columns: []Column{
			{Heading: "Name", ValueTemplate: "{{.Name}}"},
			{Heading: "Ecosystems", ValueTemplate: "{{.Ecosystems}}"},
		},
	}

	var buf bytes.Buffer
	err := (&TableFormatter{}).Format([]row{
		{Name: "api", Ecosystems: "go"},
		{Name: "frontend", Ecosystems: "node, docker"},
	}, &buf, opts)
	require.NoError(t, err)
	require.Equal(t,
		"NAME      ECOSYSTEMS\n"+
			"api       go\n"+
			"frontend  node, docker\n",
		buf.String())

	buf.Reset()
	require.NoError(t, (&TableFormatter{}).Format(row{Name: "single", Ecosystems: "rust"}, &buf, opts))
	require.Equal(t, "NAME    ECOSYSTEMS\nsingle  rust\n", buf.String())
}

func TestTableFormatterErrors(t *testing.T) {
	f := &TableFormatter{}
	var buf bytes.Buffer

	require.Error(t, f.Format([]row{}, &buf, nil))
	require.Error(t, f.Format([]row{}, &buf, TableFormatterOptions{}))
	require.Error(t, f.Format([]row{}, &buf, TableFormatterOptions{
		Columns: []Column{{Heading: "Bad", ValueTemplate: "{{.Name"}},
	}))
	require.Error(t, f.Format([]row{{Name: "x"}}, &buf, TableFormatterOptions{
		Columns: []Column{{Heading: "Missing", ValueTemplate: "{{.Missing}}"}},
	}))
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []Format{JsonFormat, TableFormat, NoneFormat} {
		f, err := NewFormatter(string(format))
		require.NoError(t, err)
		require.Equal(t, format, f.Kind())
	}

	_, err := NewFormatter("yaml")
	require.Error(t, err)

	require.Error(t, (&NoneFormatter{}).Format(row{}, &bytes.Buffer{}, nil))
}

func TestGetCommandFormatter(t *testing.T) {
	cmd := &cobra.Command{Use: "info"}
	f, err := GetCommandFormatter(cmd)
	require.NoError(t, err)
	require.Equal(t, NoneFormat, f.Kind())

	AddOutputParam(cmd, []Format{JsonFormat, NoneFormat}, NoneFormat)
	f, err = GetCommandFormatter(cmd)
	require.NoError(t, err)
	require.Equal(t, NoneFormat, f.Kind())

	require.NoError(t, cmd.Flags().Set("output", " JSON "))
	f, err = GetCommandFormatter(cmd)
	require.NoError(t, err)
	require.Equal(t, JsonFormat, f.Kind())

	require.NoError(t, cmd.Flags().Set("output", "table"))
	_, err = GetCommandFormatter(cmd)
	require.Error(t, err)
}

func TestContext(t *testing.T) {
	ctx := context.Background()
	require.Equal(t, NoneFormat, GetFormatterFromContext(ctx).Kind())
	require.NotNil(t, GetWriter(ctx))

	var buf bytes.Buffer
	ctx = WithWriter(WithFormatter(ctx, &JsonFormatter{}), &buf)
	require.Equal(t, JsonFormat, GetFormatterFromContext(ctx).Kind())
	require.Same(t, &buf, GetWriter(ctx))
}
