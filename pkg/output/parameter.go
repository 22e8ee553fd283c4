// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package output

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
)

const (
	outputFlagName               = "output"
	supportedFormatterAnnotation = "github.com/pado-dev/pado/pkg/output/supportedOutputFormatters"
)

func AddOutputParam(cmd *cobra.Command, supportedFormats []Format, defaultFormat Format) *cobra.Command {
	formatNames := make([]string, len(supportedFormats))
	for i, f := range supportedFormats {
		formatNames[i] = string(f)
	}

	description := fmt.Sprintf("Output format (supported formats are %s)", strings.Join(formatNames, ", "))
	cmd.Flags().StringP(outputFlagName, "o", string(defaultFormat), description)

	// Only error that can occur is "flag not found", which is not possible given we just added the flag on the previous line
	_ = cmd.Flags().SetAnnotation(outputFlagName, supportedFormatterAnnotation, formatNames)

	return cmd
}

// GetCommandFormatter returns the formatter selected by the --output flag of cmd. Commands without the flag use
// NoneFormatter.
func GetCommandFormatter(cmd *cobra.Command) (Formatter, error) {
	f := cmd.Flags().Lookup(outputFlagName)
	if f == nil {
		return &NoneFormatter{}, nil
	}

	desiredFormatter := strings.ToLower(strings.TrimSpace(f.Value.String()))
	supportedFormatters, hasFormatters := f.Annotations[supportedFormatterAnnotation]
	if hasFormatters && !slices.Contains(supportedFormatters, desiredFormatter) {
		return nil, fmt.Errorf("unsupported format '%s'", desiredFormatter)
	}

	return NewFormatter(desiredFormatter)
}
