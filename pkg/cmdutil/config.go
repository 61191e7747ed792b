// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/oracle-cne/components-versions/pkg/config"
	"github.com/oracle-cne/components-versions/pkg/config/types"
)

// GetFullConfig merges the settings given on the command line over the
// defaults.
func GetFullConfig(flagConfig *types.Config) (*types.Config, error) {
	df, err := config.GetDefaultConfig()
	if err != nil {
		return nil, err
	}

	ndf := types.MergeConfig(df, flagConfig)
	return &ndf, nil
}

// StringFlag returns a pointer to the value of a flag if it was given on the
// command line, and nil otherwise.
func StringFlag(cmd *cobra.Command, name string, value string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}

// BoolFlag returns a pointer to the value of a flag if it was given on the
// command line, and nil otherwise.
func BoolFlag(cmd *cobra.Command, name string, value bool) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &value
}
