// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package release

import (
	"slices"
	"strings"
)

const (
	// KubeVersionItem is the item name used for the Kubernetes version check
	// in a MatchResult.
	KubeVersionItem = "kubeversion"

	// Unknown is the release label reported when no release matches at all.
	Unknown = "unknown"

	// PossiblePrefix prefixes the label of a partially matching release.
	PossiblePrefix = "Possible "
)

// Definition describes the expected component versions of one known release.
type Definition struct {
	// Version is the label of the release, for example 3.2.1
	Version string `json:"version"`

	// KubernetesVersions are the Kubernetes versions acceptable for this release
	KubernetesVersions []string `json:"kubernetesVersions"`

	// Components maps a product name to the required chart version
	Components map[string]string `json:"components"`

	// Source is the name of the catalog file the definition came from
	Source string `json:"-"`
}

// ComponentVersion returns the version required for a product, if the
// release has one.
func (d *Definition) ComponentVersion(product string) (string, bool) {
	v, ok := d.Components[product]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// HasComponent returns true if the release carries a record for the product.
func (d *Definition) HasComponent(product string) bool {
	_, ok := d.Components[product]
	return ok
}

// AcceptsKubernetesVersion returns true if the normalized version is one of
// the Kubernetes versions of this release.
func (d *Definition) AcceptsKubernetesVersion(version string) bool {
	return slices.Contains(d.KubernetesVersions, version)
}

// Observed is the state collected from a live cluster, reduced to what the
// release matcher needs.
type Observed struct {
	KubeletVersions []string
	OSImages        []string
	KernelVersions  []string

	// Components maps a component identifier (chart name) to the installed
	// chart version.  Components that are not installed are not present.
	Components map[string]string
}

// MatchResult is the outcome of matching an observed cluster against a
// release catalog.
type MatchResult struct {
	Release          string            `json:"release"`
	ItemsMatching    map[string]string `json:"items_matching"`
	ItemsNotMatching map[string]string `json:"items_not_matching"`
	Warnings         []string          `json:"warnings,omitempty"`
}

// NewMatchResult returns a result with the given label and empty item maps.
func NewMatchResult(label string) MatchResult {
	return MatchResult{
		Release:          label,
		ItemsMatching:    map[string]string{},
		ItemsNotMatching: map[string]string{},
	}
}

// IsExact returns true if the result names a release without qualification.
func (r *MatchResult) IsExact() bool {
	return r.Release != Unknown && !strings.HasPrefix(r.Release, PossiblePrefix)
}

// NormalizeKubernetesVersion strips build metadata and a leading "v" from a
// Kubernetes version string.  v1.29.1+rke2r1 becomes 1.29.1
func NormalizeKubernetesVersion(version string) string {
	version, _, _ = strings.Cut(strings.TrimSpace(version), "+")
	return strings.TrimPrefix(version, "v")
}
