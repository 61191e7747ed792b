// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package show

import (
	"fmt"

	"github.com/oracle-cne/components-versions/pkg/release"
	"github.com/oracle-cne/components-versions/pkg/release/catalog"
)

// Show returns the release definition with the given version.  If several
// files define the same version the first one in catalog order is returned.
func Show(versionsDir string, version string) (*release.Definition, error) {
	cat, err := catalog.Load(versionsDir)
	if err != nil {
		return nil, err
	}

	def, ok := cat.Find(version)
	if !ok {
		return nil, fmt.Errorf("release %s is not defined in %s", version, versionsDir)
	}
	return def, nil
}
