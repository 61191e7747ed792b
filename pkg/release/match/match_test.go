// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package match

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oracle-cne/components-versions/pkg/release"
	"github.com/oracle-cne/components-versions/pkg/release/products"
)

var testResolver = products.NewResolver(products.Table{
	"longhorn": {"SUSE Storage", "Longhorn"},
	"metallb":  {"MetalLB"},
	"rancher":  {"Rancher Prime"},
})

func def(version string, kube []string, components map[string]string) release.Definition {
	return release.Definition{Version: version, KubernetesVersions: kube, Components: components}
}

// twoReleases is a catalog where R1 and R2 differ in both Kubernetes and
// storage versions.
func twoReleases() []release.Definition {
	return []release.Definition{
		def("R1", []string{"1.28.5"}, map[string]string{"Longhorn": "1.2.0"}),
		def("R2", []string{"1.29.1"}, map[string]string{"Longhorn": "1.3.0"}),
	}
}

func observed(kubelet string, components map[string]string) *release.Observed {
	return &release.Observed{
		KubeletVersions: []string{kubelet},
		OSImages:        []string{"SUSE Linux Micro 6.0"},
		KernelVersions:  []string{"6.4.0-18-default"},
		Components:      components,
	}
}

// TestReconcile tests release selection
// GIVEN a release catalog and an observed cluster
//
//	WHEN I call Reconcile
//	THEN the expected release is selected with the expected items
func TestReconcile(t *testing.T) {
	tests := []struct {
		name        string
		releases    []release.Definition
		observed    *release.Observed
		label       string
		matching    map[string]string
		notMatching map[string]string
	}{
		{
			name:        "exact match on the second release",
			releases:    twoReleases(),
			observed:    observed("v1.29.1+rke2r1", map[string]string{"longhorn": "1.3.0"}),
			label:       "R2",
			matching:    map[string]string{"kubeversion": "v1.29.1+rke2r1", "longhorn": "1.3.0"},
			notMatching: map[string]string{},
		},
		{
			name:        "partial tie goes to the first release",
			releases:    twoReleases(),
			observed:    observed("v1.29.1+rke2r1", map[string]string{"longhorn": "1.2.0"}),
			label:       "Possible R1",
			matching:    map[string]string{"longhorn": "1.2.0"},
			notMatching: map[string]string{"kubeversion": "v1.29.1+rke2r1"},
		},
		{
			name:        "empty catalog",
			releases:    nil,
			observed:    observed("v1.29.1+rke2r1", map[string]string{"longhorn": "1.2.0"}),
			label:       "unknown",
			matching:    map[string]string{},
			notMatching: map[string]string{},
		},
		{
			name:        "nothing matches",
			releases:    twoReleases(),
			observed:    observed("v1.30.0+k3s1", map[string]string{"longhorn": "1.4.0"}),
			label:       "unknown",
			matching:    map[string]string{},
			notMatching: map[string]string{},
		},
		{
			name: "first of several exact matches wins",
			releases: []release.Definition{
				def("3.0.0", []string{"1.30.5"}, map[string]string{"MetalLB": "0.14.8"}),
				def("3.1.0", []string{"1.30.5"}, map[string]string{"MetalLB": "0.14.9"}),
				def("3.1.1", []string{"1.30.5"}, map[string]string{"MetalLB": "0.14.9"}),
			},
			observed:    observed("v1.30.5+k3s1", map[string]string{"metallb": "0.14.9"}),
			label:       "3.1.0",
			matching:    map[string]string{"kubeversion": "v1.30.5+k3s1", "metallb": "0.14.9"},
			notMatching: map[string]string{},
		},
		{
			name: "most matching items wins over catalog order",
			releases: []release.Definition{
				def("3.0.0", []string{"1.30.5"}, map[string]string{"MetalLB": "0.14.8", "Rancher Prime": "2.9.0"}),
				def("3.1.0", []string{"1.30.5"}, map[string]string{"MetalLB": "0.14.9", "Rancher Prime": "2.9.0"}),
			},
			observed:    observed("v1.30.5+k3s1", map[string]string{"metallb": "0.14.9", "rancher": "2.9.3"}),
			label:       "Possible 3.1.0",
			matching:    map[string]string{"kubeversion": "v1.30.5+k3s1", "metallb": "0.14.9"},
			notMatching: map[string]string{"rancher": "2.9.3"},
		},
		{
			name: "component without a product name in the release is absent",
			releases: []release.Definition{
				def("3.2.0", []string{"1.31.3"}, map[string]string{"MetalLB": "0.14.9"}),
			},
			observed:    observed("v1.31.3+k3s1", map[string]string{"metallb": "0.14.9", "longhorn": "1.7.2"}),
			label:       "3.2.0",
			matching:    map[string]string{"kubeversion": "v1.31.3+k3s1", "metallb": "0.14.9"},
			notMatching: map[string]string{},
		},
		{
			name: "component missing from a release is absent",
			releases: []release.Definition{
				def("3.2.0", []string{"1.31.3"}, map[string]string{"Longhorn": "1.7.2"}),
			},
			observed:    observed("v1.31.3+k3s1", map[string]string{"metallb": "0.14.9", "longhorn": "1.7.2"}),
			label:       "3.2.0",
			matching:    map[string]string{"kubeversion": "v1.31.3+k3s1", "longhorn": "1.7.2"},
			notMatching: map[string]string{},
		},
		{
			name: "component unknown to the resolver is absent",
			releases: []release.Definition{
				def("3.2.0", []string{"1.31.3"}, map[string]string{"KubeVirt": "1.4.0"}),
			},
			observed:    observed("v1.31.3+k3s1", map[string]string{"kubevirt": "1.3.0"}),
			label:       "3.2.0",
			matching:    map[string]string{"kubeversion": "v1.31.3+k3s1"},
			notMatching: map[string]string{},
		},
		{
			name: "renamed product resolves to the name the release uses",
			releases: []release.Definition{
				def("3.1.0", []string{"1.30.5"}, map[string]string{"Longhorn": "104.2.0"}),
				def("3.2.0", []string{"1.31.3"}, map[string]string{"SUSE Storage": "105.1.0"}),
			},
			observed:    observed("v1.31.3+k3s1", map[string]string{"longhorn": "105.1.0"}),
			label:       "3.2.0",
			matching:    map[string]string{"kubeversion": "v1.31.3+k3s1", "longhorn": "105.1.0"},
			notMatching: map[string]string{},
		},
		{
			name: "no components observed",
			releases: []release.Definition{
				def("3.1.0", []string{"1.30.5"}, map[string]string{"MetalLB": "0.14.9"}),
			},
			observed:    observed("v1.30.5", nil),
			label:       "3.1.0",
			matching:    map[string]string{"kubeversion": "v1.30.5"},
			notMatching: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asserts := assert.New(t)
			result := Reconcile(tt.observed, tt.releases, testResolver)
			asserts.Equal(tt.label, result.Release)
			asserts.Equal(tt.matching, result.ItemsMatching)
			asserts.Equal(tt.notMatching, result.ItemsNotMatching)
			asserts.Empty(result.Warnings)
		})
	}
}

// TestReconcileWarnings tests the warnings about inconsistent nodes
// GIVEN nodes that disagree on their versions
//
//	WHEN I call Reconcile
//	THEN the smallest kubelet version is used and each disagreement is reported
func TestReconcileWarnings(t *testing.T) {
	asserts := assert.New(t)
	obs := &release.Observed{
		KubeletVersions: []string{"v1.29.1+rke2r1", "v1.28.5+rke2r1", "v1.29.1+rke2r1"},
		OSImages:        []string{"SUSE Linux Micro 6.0", "SUSE Linux Micro 6.0"},
		KernelVersions:  []string{"6.4.0-18-default", "6.4.0-19-default"},
		Components:      map[string]string{"longhorn": "1.2.0"},
	}

	result := Reconcile(obs, twoReleases(), testResolver)
	asserts.Equal("R1", result.Release)
	asserts.Equal("v1.28.5+rke2r1", result.ItemsMatching["kubeversion"])
	asserts.Equal([]string{
		"Kubelet Versions mismatch! [v1.28.5+rke2r1 v1.29.1+rke2r1], using v1.28.5+rke2r1 as reference",
		"Node kernel mismatch! [6.4.0-18-default 6.4.0-19-default], using 6.4.0-18-default as reference",
	}, result.Warnings)
}

// TestReconcileNoNodes tests matching when no kubelet version was observed
// GIVEN an observed cluster without nodes
//
//	WHEN I call Reconcile
//	THEN the Kubernetes version counts as not matching, the best result is a
//	possible match and a warning is returned
func TestReconcileNoNodes(t *testing.T) {
	asserts := assert.New(t)
	obs := &release.Observed{Components: map[string]string{"longhorn": "1.3.0"}}

	result := Reconcile(obs, twoReleases(), testResolver)
	asserts.Equal("Possible R2", result.Release)
	asserts.False(result.IsExact())
	asserts.Equal(map[string]string{"longhorn": "1.3.0"}, result.ItemsMatching)
	asserts.Equal(map[string]string{"kubeversion": ""}, result.ItemsNotMatching)
	asserts.Len(result.Warnings, 1)

	// Nothing evaluated at all is not a match
	result = Reconcile(&release.Observed{}, twoReleases(), testResolver)
	asserts.Equal("unknown", result.Release)
}

// TestReconcileDisjoint tests that no item is reported as both matching and
// not matching, for many combinations of observed versions.
func TestReconcileDisjoint(t *testing.T) {
	asserts := assert.New(t)
	releases := []release.Definition{
		def("1", []string{"1.28.5"}, map[string]string{"Longhorn": "1.2.0", "MetalLB": "0.14.8"}),
		def("2", []string{"1.29.1", "1.29.2"}, map[string]string{"SUSE Storage": "1.3.0", "MetalLB": "0.14.9"}),
		def("3", []string{"1.29.1"}, map[string]string{"SUSE Storage": "1.3.0", "Rancher Prime": "2.9.0"}),
	}
	for _, kube := range []string{"v1.28.5+k3s1", "v1.29.1+rke2r1", "1.29.2", "v1.30.0"} {
		for _, lh := range []string{"", "1.2.0", "1.3.0"} {
			for _, mlb := range []string{"", "0.14.8", "0.14.9"} {
				for _, rp := range []string{"", "2.9.0", "2.10.0"} {
					components := map[string]string{}
					for id, v := range map[string]string{"longhorn": lh, "metallb": mlb, "rancher": rp} {
						if v != "" {
							components[id] = v
						}
					}
					result := Reconcile(observed(kube, components), releases, testResolver)
					for k := range result.ItemsMatching {
						asserts.NotContains(result.ItemsNotMatching, k, fmt.Sprintf("%s %v", kube, components))
					}
				}
			}
		}
	}
}

// TestReconcileMonotonic tests that observing a component that every release
// agrees on never makes the result worse.
func TestReconcileMonotonic(t *testing.T) {
	asserts := assert.New(t)
	releases := []release.Definition{
		def("1", []string{"1.28.5"}, map[string]string{"Longhorn": "1.2.0", "MetalLB": "0.14.9"}),
		def("2", []string{"1.29.1"}, map[string]string{"Longhorn": "1.3.0", "MetalLB": "0.14.9"}),
	}

	for _, kube := range []string{"v1.28.5", "v1.29.1", "v1.30.0"} {
		for _, lh := range []string{"1.2.0", "1.3.0", "1.4.0"} {
			before := Reconcile(observed(kube, map[string]string{"longhorn": lh}), releases, testResolver)
			after := Reconcile(observed(kube, map[string]string{"longhorn": lh, "metallb": "0.14.9"}), releases, testResolver)

			asserts.GreaterOrEqual(len(after.ItemsMatching), len(before.ItemsMatching))
			if before.IsExact() {
				asserts.True(after.IsExact())
				asserts.Equal(before.Release, after.Release)
			}
		}
	}
}
