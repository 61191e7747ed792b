// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package catalog

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oracle-cne/components-versions/cmd/catalog/list"
	"github.com/oracle-cne/components-versions/cmd/catalog/show"
	"github.com/oracle-cne/components-versions/cmd/constants"
	"github.com/oracle-cne/components-versions/pkg/cmdutil"
)

const (
	CommandName = "catalog"
	helpShort   = "Inspect the release definitions"
	helpLong    = `Inspect the release definitions that detect and match compare a cluster with`
	helpExample = `
components-versions catalog <subcommand>
`
)

var versionsDir string

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       CommandName,
		Short:     helpShort,
		Long:      helpLong,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{list.CommandName, show.CommandName},
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.PersistentFlags().StringVarP(&versionsDir, constants.FlagVersionsDir, constants.FlagVersionsDirShort, "", constants.FlagVersionsDirHelp)

	cmd.AddCommand(list.NewCmd())
	cmd.AddCommand(show.NewCmd())

	return cmd
}

// RunCmd runs the "components-versions catalog" command
func RunCmd(cmd *cobra.Command) error {
	log.Infof("Run \"%s %s --help\" for the list of subcommands", cmd.Root().Name(), CommandName)
	return nil
}
