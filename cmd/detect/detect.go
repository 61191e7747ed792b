// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package detect

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/oracle-cne/components-versions/cmd/constants"
	"github.com/oracle-cne/components-versions/pkg/cmdutil"
	"github.com/oracle-cne/components-versions/pkg/commands/detect"
	"github.com/oracle-cne/components-versions/pkg/config/types"
	"github.com/oracle-cne/components-versions/pkg/util/strutil"
)

const (
	CommandName = "detect"
	helpShort   = "Detect the release a cluster is running"
	helpLong    = `Collect the node information and the versions of the helm charts installed in a cluster and
compare them with the known release definitions.  The release that matches every item is reported.
If there is none, the release that matches the most items is reported as a possible match.`
	helpExample = `
  components-versions detect

  # use a specific kubeconfig and show tables
  components-versions detect -k /etc/rancher/rke2/rke2.yaml -o table

  # only inspect some charts and include the resources they deploy
  components-versions detect -c longhorn,metallb -r

  # only print the detected release
  components-versions detect -o none
`
)

var kubeConfig string
var charts string
var output string
var getResources bool
var versionsDir string
var productsFile string

const (
	flagCharts      = "charts"
	flagChartsShort = "c"
	flagChartsHelp  = "A comma separated list of the helm releases to inspect, default is all known components"

	flagGetResources      = "get-resources"
	flagGetResourcesShort = "r"
	flagGetResourcesHelp  = "Include the resources deployed by each helm release"
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

	cmd.Flags().StringVarP(&kubeConfig, constants.FlagKubeconfig, constants.FlagKubeconfigShort, "", constants.FlagKubeconfigHelp)
	cmd.Flags().StringVarP(&charts, flagCharts, flagChartsShort, "", flagChartsHelp)
	cmd.Flags().StringVarP(&output, constants.FlagOutput, constants.FlagOutputShort, "", constants.FlagOutputHelp)
	cmd.Flags().BoolVarP(&getResources, flagGetResources, flagGetResourcesShort, false, flagGetResourcesHelp)
	cmd.Flags().StringVarP(&versionsDir, constants.FlagVersionsDir, constants.FlagVersionsDirShort, "", constants.FlagVersionsDirHelp)
	cmd.Flags().StringVarP(&productsFile, constants.FlagProducts, constants.FlagProductsShort, "", constants.FlagProductsHelp)

	return cmd
}

// RunCmd runs the "components-versions detect" command
func RunCmd(cmd *cobra.Command) error {
	flagConfig := &types.Config{
		KubeConfig:   cmdutil.StringFlag(cmd, constants.FlagKubeconfig, kubeConfig),
		VersionsDir:  cmdutil.StringFlag(cmd, constants.FlagVersionsDir, versionsDir),
		ProductsFile: cmdutil.StringFlag(cmd, constants.FlagProducts, productsFile),
		Output:       cmdutil.StringFlag(cmd, constants.FlagOutput, output),
		GetResources: cmdutil.BoolFlag(cmd, flagGetResources, getResources),
	}
	if len(charts) > 0 {
		flagConfig.Charts = strutil.TrimArray(strings.Split(strings.Trim(charts, "\""), ","))
	}

	conf, err := cmdutil.GetFullConfig(flagConfig)
	if err != nil {
		return err
	}

	return detect.Detect(detect.Options{
		KubeConfigPath: types.Value(conf.KubeConfig),
		Charts:         conf.Charts,
		GetResources:   types.Value(conf.GetResources),
		VersionsDir:    types.Value(conf.VersionsDir),
		ProductsFile:   types.Value(conf.ProductsFile),
		Output:         types.Value(conf.Output),
	})
}
