// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package match

import (
	"io"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/oracle-cne/components-versions/pkg/commands/detect"
	"github.com/oracle-cne/components-versions/pkg/snapshot"
)

// Options are the options for the match command
type Options struct {
	// SnapshotPath is a snapshot written by the detect command
	SnapshotPath string

	// VersionsDir is the directory holding the release definitions
	VersionsDir string

	// ProductsFile is an optional product table
	ProductsFile string

	// Output is the output format
	Output string

	// Writer receives the output. Default is os.Stdout
	Writer io.Writer
}

// Match matches a saved snapshot against the release catalog
func Match(o Options) error {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if err := detect.ValidateOutput(o.Output); err != nil {
		return err
	}

	s, err := snapshot.ReadFile(o.SnapshotPath)
	if err != nil {
		return err
	}
	log.Debugf("Read %d charts and %d nodes from %s", len(s.Charts), len(s.Nodes), o.SnapshotPath)

	m, err := detect.NewMatcher(o.VersionsDir, o.ProductsFile)
	if err != nil {
		return err
	}
	m.CheckCharts(s.ChartNames())

	return detect.Display(o.Writer, o.Output, s, m.Match(s))
}
