// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package helm

import (
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"helm.sh/helm/v3/pkg/action"
	"helm.sh/helm/v3/pkg/release"
	"helm.sh/helm/v3/pkg/releaseutil"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/cli-runtime/pkg/genericclioptions"
	"sigs.k8s.io/yaml"

	"github.com/oracle-cne/components-versions/pkg/k8s/client"
	"github.com/oracle-cne/components-versions/pkg/util"
)

// EnvVarHelmDriver selects the helm storage driver, as it does for helm
const EnvVarHelmDriver = "HELM_DRIVER"

type ActionConfigFnType func(kubeInfo *client.KubeInfo, namespace string) (*action.Configuration, error)

var actionConfigFn ActionConfigFnType = getActionConfig

func SetActionConfigFunction(f ActionConfigFnType) {
	actionConfigFn = f
}

// SetDefaultActionConfigFunction Resets the action config function
func SetDefaultActionConfigFunction() {
	actionConfigFn = getActionConfig
}

// Resource identifies one object deployed by a release.
type Resource struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

// GetReleasesAllNamespaces gets the releases of every namespace.  Listing
// is retried for a short while to ride out transient API errors.
func GetReleasesAllNamespaces(kubeInfo *client.KubeInfo) ([]*release.Release, error) {
	actionConfig, err := actionConfigFn(kubeInfo, "")
	if err != nil {
		return nil, err
	}

	list := action.NewList(actionConfig)
	list.AllNamespaces = true
	list.All = true
	list.StateMask = action.ListAll

	return util.ExponentialRetry(func() ([]*release.Release, bool, error) {
		releases, err := list.Run()
		if err != nil {
			log.Debugf("Error listing helm releases: %v", err)
		}
		return releases, false, err
	})
}

// ChartVersion returns the version of the chart a release was installed
// from, or an empty string if the release carries no chart metadata.
func ChartVersion(rel *release.Release) string {
	if rel == nil || rel.Chart == nil || rel.Chart.Metadata == nil {
		return ""
	}
	return rel.Chart.Metadata.Version
}

// ManifestResources returns the kind and name of every object in the
// manifest of a release, in manifest order.  Documents that do not describe
// a named object are skipped.
func ManifestResources(rel *release.Release) []Resource {
	manifests := releaseutil.SplitManifests(rel.Manifest)
	keys := make([]string, 0, len(manifests))
	for k := range manifests {
		keys = append(keys, k)
	}
	sort.Sort(releaseutil.BySplitManifestsOrder(keys))

	resources := []Resource{}
	for _, k := range keys {
		obj := metav1.PartialObjectMetadata{}
		if err := yaml.Unmarshal([]byte(manifests[k]), &obj); err != nil {
			log.Warnf("Skipping invalid resource in release %s/%s: %v", rel.Namespace, rel.Name, err)
			continue
		}
		if obj.Kind == "" || obj.Name == "" {
			log.Debugf("Skipping resource without kind or name in release %s/%s", rel.Namespace, rel.Name)
			continue
		}
		resources = append(resources, Resource{Kind: obj.Kind, Name: obj.Name})
	}
	return resources
}

func debugLog(format string, v ...interface{}) {
	log.Tracef(format, v...)
}

func getActionConfig(kubeInfo *client.KubeInfo, namespace string) (*action.Configuration, error) {
	actionConfig := new(action.Configuration)

	config := &genericclioptions.ConfigFlags{}
	if kubeInfo != nil {
		config.KubeConfig = &kubeInfo.KubeconfigPath
		config.Namespace = &namespace
	}

	if err := actionConfig.Init(config, namespace, os.Getenv(EnvVarHelmDriver), debugLog); err != nil {
		return nil, err
	}
	return actionConfig, nil
}
