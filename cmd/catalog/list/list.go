// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package list

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gosuri/uitable"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/oracle-cne/components-versions/cmd/constants"
	"github.com/oracle-cne/components-versions/pkg/cmdutil"
	"github.com/oracle-cne/components-versions/pkg/commands/catalog/ls"
	"github.com/oracle-cne/components-versions/pkg/config/types"
)

const (
	CommandName = "list"
	Alias       = "ls"
	helpShort   = "Lists the release definitions"
	helpLong    = `Lists the release definitions found in the versions directory along with the Kubernetes
versions each one accepts`
	helpExample = `
components-versions catalog list

components-versions catalog list --sort -d ./releases
`
)

var newest bool

const (
	flagSort      = "sort"
	flagSortShort = "s"
	flagSortHelp  = "Sort the releases newest first instead of by file name"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     CommandName,
		Aliases: []string{Alias},
		Short:   helpShort,
		Long:    helpLong,
		Args:    cobra.MatchAll(cobra.ExactArgs(0), cobra.OnlyValidArgs),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return RunCmd(cmd)
	}
	cmd.Example = helpExample
	cmdutil.SilenceUsage(cmd)

	cmd.Flags().BoolVarP(&newest, flagSort, flagSortShort, false, flagSortHelp)

	return cmd
}

// RunCmd runs the "components-versions catalog list" command
func RunCmd(cmd *cobra.Command) error {
	versionsDir, _ := cmd.Flags().GetString(constants.FlagVersionsDir)
	conf, err := cmdutil.GetFullConfig(&types.Config{
		VersionsDir: cmdutil.StringFlag(cmd, constants.FlagVersionsDir, versionsDir),
	})
	if err != nil {
		return err
	}

	releases, warnings, err := ls.Ls(ls.Options{
		VersionsDir: types.Value(conf.VersionsDir),
		Newest:      newest,
	})
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.Warn(w)
	}

	table := uitable.New()
	table.AddRow("VERSION", "KUBERNETES", "COMPONENTS", "FILE")
	for _, r := range releases {
		table.AddRow(r.Version, strings.Join(r.KubernetesVersions, ","), len(r.Components), filepath.Base(r.Source))
	}
	fmt.Println(table)

	return nil
}
