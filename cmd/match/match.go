// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package match

import (
	"github.com/spf13/cobra"

	"github.com/oracle-cne/components-versions/cmd/constants"
	"github.com/oracle-cne/components-versions/pkg/cmdutil"
	"github.com/oracle-cne/components-versions/pkg/commands/match"
	"github.com/oracle-cne/components-versions/pkg/config/types"
)

const (
	CommandName = "match"
	helpShort   = "Match a saved snapshot against the release definitions"
	helpLong    = `Read the output of a previous detect command and compare it with the known release definitions.
This does not need access to the cluster.`
	helpExample = `
  components-versions detect -o json > cluster.json
  components-versions match -s cluster.json -d ./releases
`
)

var snapshotPath string
var output string
var versionsDir string
var productsFile string

const (
	flagSnapshot      = "snapshot"
	flagSnapshotShort = "s"
	flagSnapshotHelp  = "A json or yaml file written by the detect command"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName,
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.Flags().StringVarP(&snapshotPath, flagSnapshot, flagSnapshotShort, "", flagSnapshotHelp)
	cmd.Flags().StringVarP(&output, constants.FlagOutput, constants.FlagOutputShort, "", constants.FlagOutputHelp)
	cmd.Flags().StringVarP(&versionsDir, constants.FlagVersionsDir, constants.FlagVersionsDirShort, "", constants.FlagVersionsDirHelp)
	cmd.Flags().StringVarP(&productsFile, constants.FlagProducts, constants.FlagProductsShort, "", constants.FlagProductsHelp)
	cmd.MarkFlagRequired(flagSnapshot)

	return cmd
}

// RunCmd runs the "components-versions match" command
func RunCmd(cmd *cobra.Command) error {
	conf, err := cmdutil.GetFullConfig(&types.Config{
		VersionsDir:  cmdutil.StringFlag(cmd, constants.FlagVersionsDir, versionsDir),
		ProductsFile: cmdutil.StringFlag(cmd, constants.FlagProducts, productsFile),
		Output:       cmdutil.StringFlag(cmd, constants.FlagOutput, output),
	})
	if err != nil {
		return err
	}

	return match.Match(match.Options{
		SnapshotPath: snapshotPath,
		VersionsDir:  types.Value(conf.VersionsDir),
		ProductsFile: types.Value(conf.ProductsFile),
		Output:       types.Value(conf.Output),
	})
}
