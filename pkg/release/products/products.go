// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package products

import (
	"fmt"
	"os"
	"sort"

	"github.com/agnivade/levenshtein"
	"gopkg.in/yaml.v3"

	"github.com/oracle-cne/components-versions/pkg/release"
)

// Table maps a component identifier to the product names it is known by in
// release definitions.  When an identifier has several names they are listed
// in priority order.
type Table map[string][]string

// defaultTable holds the product names used by the published release
// catalogs.  Several products were renamed over time, the current name is
// listed first.
var defaultTable = Table{
	"akri":                      {"Akri (tech-preview)"},
	"cdi":                       {"Containerized Data Importer"},
	"elemental-operator":        {"Elemental"},
	"endpoint-copier-operator":  {"Endpoint Copier Operator"},
	"kubevirt":                  {"KubeVirt"},
	"longhorn":                  {"SUSE Storage", "Longhorn"},
	"metal3":                    {"Metal3"},
	"metallb":                   {"MetalLB"},
	"neuvector":                 {"SUSE Security", "NeuVector"},
	"rancher":                   {"SUSE Rancher Prime", "Rancher Prime"},
	"rancher-turtles":           {"Rancher Turtles (CAPI)"},
	"sriov-network-operator":    {"SR-IOV Network Operator"},
	"system-upgrade-controller": {"System Upgrade Controller"},
	"upgrade-controller":        {"Upgrade Controller"},
}

// DefaultTable returns a copy of the built in product table.
func DefaultTable() Table {
	t := Table{}
	for id, names := range defaultTable {
		t[id] = append([]string{}, names...)
	}
	return t
}

// LoadTable reads a product table from a yaml file of the form
//
//	longhorn:
//	- SUSE Storage
//	- Longhorn
func LoadTable(path string) (Table, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t := Table{}
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("could not parse product table %s: %v", path, err)
	}
	for id, names := range t {
		if len(names) == 0 {
			return nil, fmt.Errorf("product table %s has no product names for %s", path, id)
		}
	}
	return t, nil
}

// Merge returns a new table with the entries of overlay replacing the
// entries of t.
func (t Table) Merge(overlay Table) Table {
	ret := Table{}
	for id, names := range t {
		ret[id] = names
	}
	for id, names := range overlay {
		ret[id] = names
	}
	return ret
}

// Resolver maps component identifiers to the product names used by a
// specific release definition.
type Resolver struct {
	table Table
}

// NewResolver creates a resolver for the given table.
func NewResolver(t Table) *Resolver {
	return &Resolver{table: t}
}

// Resolve returns the product name of the component in the release.
//
// If the identifier has a single product name it is returned whether or not
// the release has a record for it.  If there are several names the first one
// present in the release wins.  Identifiers that are unknown, or none of
// whose names are present, are absent from the release.
func (r *Resolver) Resolve(componentID string, def *release.Definition) (string, bool) {
	names := r.table[componentID]
	switch len(names) {
	case 0:
		return "", false
	case 1:
		return names[0], true
	}

	for _, name := range names {
		if def.HasComponent(name) {
			return name, true
		}
	}
	return "", false
}

// Known returns true if the identifier is in the table.
func (r *Resolver) Known(componentID string) bool {
	_, ok := r.table[componentID]
	return ok
}

// Identifiers returns the sorted component identifiers of the table.
func (r *Resolver) Identifiers() []string {
	ids := make([]string, 0, len(r.table))
	for id := range r.table {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Suggest returns the known identifier closest to the given one, or an empty
// string if nothing is reasonably close.
func (r *Resolver) Suggest(componentID string) string {
	best := ""
	bestDistance := len(componentID)/2 + 1
	for _, id := range r.Identifiers() {
		d := levenshtein.ComputeDistance(componentID, id)
		if d < bestDistance {
			best = id
			bestDistance = d
		}
	}
	return best
}
