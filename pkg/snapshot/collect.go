// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package snapshot

import (
	"errors"
	"fmt"

	log "github.com/sirupsen/logrus"
	helmrelease "helm.sh/helm/v3/pkg/release"

	"github.com/oracle-cne/components-versions/pkg/helm"
	"github.com/oracle-cne/components-versions/pkg/k8s"
	"github.com/oracle-cne/components-versions/pkg/k8s/client"
	"github.com/oracle-cne/components-versions/pkg/util"
	"github.com/oracle-cne/components-versions/pkg/util/logutils"
)

// listReleasesFn is overridden by unit tests
var listReleasesFn = helm.GetReleasesAllNamespaces

// Options are the options for Collect
type Options struct {
	// KubeInfo is the cluster to inspect
	KubeInfo *client.KubeInfo

	// Charts are the names of the helm releases to collect
	Charts []string

	// GetResources also collects the resources deployed by each release
	GetResources bool
}

// Collect inspects the nodes and the tracked helm releases of a cluster.
// A failure to collect part of the information is logged and leaves that
// part of the snapshot empty.
func Collect(o Options) (*Snapshot, error) {
	if o.KubeInfo == nil || o.KubeInfo.Client == nil {
		return nil, errors.New("no cluster to collect from")
	}

	s := New()
	logutils.WaitForSerial(logutils.Info, log.InfoLevel, []*logutils.Waiter{
		{
			Message:      "Collecting node information",
			WaitFunction: func() error { return collectNodes(o, s) },
		},
		{
			Message:      "Collecting helm chart information",
			WaitFunction: func() error { return collectCharts(o, s) },
		},
	})
	return s, nil
}

func collectNodes(o Options, s *Snapshot) error {
	nodes, err := k8s.GetNodeList(o.KubeInfo.Client)
	if err != nil {
		return fmt.Errorf("Error retrieving node information: %v", err)
	}

	for _, n := range nodes.Items {
		info := n.Status.NodeInfo
		s.Nodes[n.Name] = Node{
			Architecture:    info.Architecture,
			KernelVersion:   info.KernelVersion,
			KubeletVersion:  info.KubeletVersion,
			OperatingSystem: info.OperatingSystem,
			OSImage:         info.OSImage,
		}
	}
	return nil
}

func collectCharts(o Options, s *Snapshot) error {
	releases, err := listReleasesFn(o.KubeInfo)
	if err != nil {
		return fmt.Errorf("Error retrieving helm chart information: %v", err)
	}

	wanted := util.NewSet(o.Charts...)
	pods := map[string]map[string][]string{}
	for _, rel := range releases {
		if !wanted.Contains(rel.Name) {
			continue
		}
		if existing, ok := s.Charts[rel.Name]; ok {
			log.Warnf("Release %s is installed in namespaces %s and %s, using %s", rel.Name, existing.Namespace, rel.Namespace, existing.Namespace)
			continue
		}

		version := helm.ChartVersion(rel)
		if version == "" {
			log.Warnf("Release %s/%s has no chart metadata", rel.Namespace, rel.Name)
			continue
		}

		if _, ok := pods[rel.Namespace]; !ok {
			pods[rel.Namespace] = podImages(o, rel.Namespace)
		}

		s.Charts[rel.Name] = Chart{
			Version:   version,
			Namespace: rel.Namespace,
			Revision:  rel.Version,
			Resources: resources(o, rel),
			Pods:      pods[rel.Namespace],
		}
	}
	return nil
}

func resources(o Options, rel *helmrelease.Release) *[]helm.Resource {
	if !o.GetResources {
		return nil
	}
	r := helm.ManifestResources(rel)
	return &r
}

// podImages returns the container images of every pod in a namespace.  The
// pods of a namespace are usually the ones deployed by the chart installed
// there.
func podImages(o Options, namespace string) map[string][]string {
	ret := map[string][]string{}
	podList, err := k8s.GetPods(o.KubeInfo.Client, namespace)
	if err != nil {
		log.Errorf("Error retrieving pods in namespace %s: %v", namespace, err)
		return ret
	}
	for i := range podList.Items {
		ret[podList.Items[i].Name] = k8s.ContainerImages(&podList.Items[i])
	}
	return ret
}
