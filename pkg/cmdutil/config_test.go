// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package cmdutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"

	"github.com/oracle-cne/components-versions/pkg/config/types"
	"github.com/oracle-cne/components-versions/pkg/constants"
)

func newTestCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("output", "", "")
	cmd.Flags().Bool("get-resources", false, "")
	return cmd
}

// TestFlagsOnlyWhenChanged tests that flags that were not given do not override
// the defaults
// GIVEN a command where only the output flag was given
// WHEN the flag helpers are called
// THEN only the output flag has a value
func TestFlagsOnlyWhenChanged(t *testing.T) {
	asserts := assert.New(t)
	cmd := newTestCmd()
	asserts.NoError(cmd.Flags().Parse([]string{"--output", "yaml"}))

	out := StringFlag(cmd, "output", "yaml")
	asserts.NotNil(out)
	asserts.Equal("yaml", *out)
	asserts.Nil(BoolFlag(cmd, "get-resources", false))
}

// TestGetFullConfig tests merging the command line over the defaults
// GIVEN a defaults file that sets the versions directory and the output
// WHEN the command line sets the output
// THEN the command line output wins and the versions directory comes from the file
func TestGetFullConfig(t *testing.T) {
	asserts := assert.New(t)
	path := filepath.Join(t.TempDir(), "defaults.yaml")
	asserts.NoError(os.WriteFile(path, []byte("versionsDir: /tmp/releases\noutput: json\n"), 0600))
	t.Setenv(constants.UserConfigDefaultsEnvironmentVariable, path)

	output := "table"
	conf, err := GetFullConfig(&types.Config{Output: &output})
	asserts.NoError(err)
	asserts.Equal("/tmp/releases", types.Value(conf.VersionsDir))
	asserts.Equal("table", types.Value(conf.Output))
	asserts.Equal(constants.DefaultCharts, conf.Charts)
}

// TestSilenceUsage tests that runtime errors are returned without usage
// GIVEN a command that fails
// WHEN it is executed
// THEN the error is returned and usage and cobra's error output are silenced
func TestSilenceUsage(t *testing.T) {
	asserts := assert.New(t)
	cmd := &cobra.Command{Use: "fail"}
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return errors.New("boom")
	}
	SilenceUsage(cmd)
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	asserts.EqualError(err, "boom")
	asserts.True(cmd.SilenceUsage)
	asserts.True(cmd.SilenceErrors)
}
