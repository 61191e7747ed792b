// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package ls

import (
	"github.com/oracle-cne/components-versions/pkg/release"
	"github.com/oracle-cne/components-versions/pkg/release/catalog"
	"github.com/oracle-cne/components-versions/pkg/util"
)

// Options are the options for Ls
type Options struct {
	// VersionsDir is the directory holding the release definitions
	VersionsDir string

	// Newest sorts the releases newest first instead of catalog order
	Newest bool
}

// Ls - return the release definitions of a catalog and the warnings for
// the files that could not be read
func Ls(o Options) ([]release.Definition, []string, error) {
	cat, err := catalog.Load(o.VersionsDir)
	if err != nil {
		return nil, nil, err
	}

	releases := append([]release.Definition{}, cat.Releases...)
	if o.Newest {
		util.SortNewestFirst(releases, func(d release.Definition) string { return d.Version })
	}
	return releases, cat.Warnings, nil
}
