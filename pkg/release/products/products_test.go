// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package products

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oracle-cne/components-versions/pkg/release"
)

func definition(components map[string]string) *release.Definition {
	return &release.Definition{Version: "1.0", Components: components}
}

// TestResolve tests product name resolution
// GIVEN a table with single and multiple product names
//
//	WHEN I call Resolve for a release definition
//	THEN the product name used by that release is returned
func TestResolve(t *testing.T) {
	r := NewResolver(Table{
		"longhorn": {"SUSE Storage", "Longhorn"},
		"metallb":  {"MetalLB"},
	})

	tests := []struct {
		name       string
		id         string
		components map[string]string
		product    string
		ok         bool
	}{
		{"current name", "longhorn", map[string]string{"SUSE Storage": "106.2.0", "Longhorn": "105.0.0"}, "SUSE Storage", true},
		{"old name", "longhorn", map[string]string{"Longhorn": "105.0.0"}, "Longhorn", true},
		{"neither name", "longhorn", map[string]string{"MetalLB": "0.14.9"}, "", false},
		{"single name present", "metallb", map[string]string{"MetalLB": "0.14.9"}, "MetalLB", true},
		{"single name missing", "metallb", map[string]string{}, "MetalLB", true},
		{"unknown identifier", "kubevirt", map[string]string{"KubeVirt": "1.4.0"}, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asserts := assert.New(t)
			product, ok := r.Resolve(tt.id, definition(tt.components))
			asserts.Equal(tt.ok, ok)
			asserts.Equal(tt.product, product)
		})
	}
}

// TestDefaultTableIsCopy tests that callers cannot modify the built in table
func TestDefaultTableIsCopy(t *testing.T) {
	asserts := assert.New(t)
	t1 := DefaultTable()
	t1["longhorn"][0] = "changed"
	delete(t1, "rancher")

	t2 := DefaultTable()
	asserts.Equal([]string{"SUSE Storage", "Longhorn"}, t2["longhorn"])
	asserts.Contains(t2, "rancher")
}

// TestSuggest tests that close identifiers are suggested and far ones are not
func TestSuggest(t *testing.T) {
	asserts := assert.New(t)
	r := NewResolver(DefaultTable())
	asserts.Equal("longhorn", r.Suggest("longorn"))
	asserts.Equal("metallb", r.Suggest("metal-lb"))
	asserts.Equal("", r.Suggest("postgresql"))
	asserts.True(r.Known("kubevirt"))
	asserts.False(r.Known("kube-virt"))
}

// TestLoadTable tests reading a product table from a file
// GIVEN a yaml product table
//
//	WHEN I load it and merge it over the default table
//	THEN the entries of the file replace the defaults
func TestLoadTable(t *testing.T) {
	asserts := assert.New(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "products.yaml")
	err := os.WriteFile(path, []byte("longhorn:\n- Storage\nmy-chart:\n- My Product\n"), 0644)
	asserts.NoError(err)

	tbl, err := LoadTable(path)
	asserts.NoError(err)
	merged := DefaultTable().Merge(tbl)
	asserts.Equal([]string{"Storage"}, merged["longhorn"])
	asserts.Equal([]string{"My Product"}, merged["my-chart"])
	asserts.Equal([]string{"MetalLB"}, merged["metallb"])

	err = os.WriteFile(path, []byte("longhorn: []\n"), 0644)
	asserts.NoError(err)
	_, err = LoadTable(path)
	asserts.Error(err)

	_, err = LoadTable(filepath.Join(dir, "missing.yaml"))
	asserts.Error(err)
}
