// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package show

import (
	"fmt"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	"github.com/oracle-cne/components-versions/cmd/constants"
	"github.com/oracle-cne/components-versions/pkg/cmdutil"
	"github.com/oracle-cne/components-versions/pkg/commands/catalog/show"
	"github.com/oracle-cne/components-versions/pkg/config/types"
	"github.com/oracle-cne/components-versions/pkg/util"
)

const (
	CommandName = "show"
	helpShort   = "Shows a release definition"
	helpLong    = `Shows the Kubernetes versions and the component versions of a single release`
	helpExample = `
components-versions catalog show 3.2.1
`
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   CommandName + " <version>",
		Short: helpShort,
		Long:  helpLong,
		Args:  cobra.ExactArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd, args[0])
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	return cmd
}

// RunCmd runs the "components-versions catalog show" command
func RunCmd(cmd *cobra.Command, version string) error {
	versionsDir, _ := cmd.Flags().GetString(constants.FlagVersionsDir)
	conf, err := cmdutil.GetFullConfig(&types.Config{
		VersionsDir: cmdutil.StringFlag(cmd, constants.FlagVersionsDir, versionsDir),
	})
	if err != nil {
		return err
	}

	def, err := show.Show(types.Value(conf.VersionsDir), version)
	if err != nil {
		return err
	}

	fmt.Printf("Release %s (%s)\n\n", def.Version, def.Source)

	table := uitable.New()
	table.AddRow("PRODUCT", "VERSION")
	for _, k := range def.KubernetesVersions {
		table.AddRow("kubernetes", k)
	}
	for _, name := range util.Sorted(util.NewSetFromMapKeys(def.Components)) {
		table.AddRow(name, def.Components[name])
	}
	fmt.Println(table)

	return nil
}
