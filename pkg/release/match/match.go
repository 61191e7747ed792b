// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package match

import (
	"fmt"
	"sort"

	"github.com/oracle-cne/components-versions/pkg/release"
	"github.com/oracle-cne/components-versions/pkg/util"
)

// Resolver finds the product name a release definition uses for a
// component identifier.
type Resolver interface {
	Resolve(componentID string, def *release.Definition) (string, bool)
}

// Reconcile finds the release that best describes an observed cluster.
//
// Releases are evaluated in catalog order.  The first release where every
// evaluated item matches is returned as is.  Otherwise the release with the
// most matching items is returned with a "Possible " prefix, with ties going
// to the earliest release.  If no release matches a single item the result
// is "unknown".
//
// Components that a release does not describe are not evaluated for that
// release.  The Kubernetes version is always evaluated, so a cluster without
// an observed kubelet version is never an exact match.
func Reconcile(observed *release.Observed, releases []release.Definition, resolver Resolver) release.MatchResult {
	var warnings []string
	kubelet, haveKubelet := reference("Kubelet Versions", observed.KubeletVersions, &warnings)
	reference("Node osImage", observed.OSImages, &warnings)
	reference("Node kernel", observed.KernelVersions, &warnings)
	if !haveKubelet {
		warnings = append(warnings, "No kubelet version observed, the Kubernetes version check cannot match")
	}
	kubeVersion := release.NormalizeKubernetesVersion(kubelet)

	componentIDs := make([]string, 0, len(observed.Components))
	for id, v := range observed.Components {
		if v != "" {
			componentIDs = append(componentIDs, id)
		}
	}
	sort.Strings(componentIDs)

	var candidates []release.MatchResult
	for i := range releases {
		def := &releases[i]
		result := release.NewMatchResult(def.Version)

		// Without a kubelet version the check still counts, as a mismatch
		if haveKubelet && def.AcceptsKubernetesVersion(kubeVersion) {
			result.ItemsMatching[release.KubeVersionItem] = kubelet
		} else {
			result.ItemsNotMatching[release.KubeVersionItem] = kubelet
		}

		for _, id := range componentIDs {
			required, ok := requiredVersion(resolver, id, def)
			if !ok {
				continue
			}
			if observed.Components[id] == required {
				result.ItemsMatching[id] = observed.Components[id]
			} else {
				result.ItemsNotMatching[id] = observed.Components[id]
			}
		}

		switch {
		case len(result.ItemsMatching) == 0:
			continue
		case len(result.ItemsNotMatching) == 0:
			result.Warnings = warnings
			return result
		}
		candidates = append(candidates, result)
	}

	if len(candidates) == 0 {
		result := release.NewMatchResult(release.Unknown)
		result.Warnings = warnings
		return result
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if len(c.ItemsMatching) > len(best.ItemsMatching) {
			best = c
		}
	}
	best.Release = release.PossiblePrefix + best.Release
	best.Warnings = warnings
	return best
}

// requiredVersion returns the version of a component required by a release.
// A component is absent from a release if the identifier does not resolve
// to a product of the release or if the release has no version for it.
func requiredVersion(resolver Resolver, componentID string, def *release.Definition) (string, bool) {
	product, ok := resolver.Resolve(componentID, def)
	if !ok {
		return "", false
	}
	return def.ComponentVersion(product)
}

// reference picks the smallest of the observed values as the reference
// value.  A warning is recorded if the values are not all the same.
func reference(what string, values []string, warnings *[]string) (string, bool) {
	set := util.NewSet[string]()
	for _, v := range values {
		if v != "" {
			set.Add(v)
		}
	}
	if set.Size() == 0 {
		return "", false
	}
	distinct := util.Sorted(set)
	if len(distinct) > 1 {
		*warnings = append(*warnings, fmt.Sprintf("%s mismatch! %v, using %s as reference", what, distinct, distinct[0]))
	}
	return distinct[0], true
}
