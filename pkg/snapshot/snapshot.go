// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package snapshot

import (
	"fmt"
	"os"
	"sort"

	"sigs.k8s.io/yaml"

	"github.com/oracle-cne/components-versions/pkg/helm"
	"github.com/oracle-cne/components-versions/pkg/k8s/client"
	"github.com/oracle-cne/components-versions/pkg/release"
)

// ErrKubeconfigNotFound is returned when there are no credentials for the
// cluster to inspect.
var ErrKubeconfigNotFound = client.ErrKubeConfigNotFound

// Chart describes an installed helm release of a tracked component.
type Chart struct {
	Version   string `json:"version"`
	Namespace string `json:"namespace"`
	Revision  int    `json:"revision"`

	// Resources are nil unless they were requested.  A chart without
	// resources then has an empty list.
	Resources *[]helm.Resource `json:"resources,omitempty"`

	// Pods maps the pods of the chart namespace to their container images
	Pods map[string][]string `json:"pods"`
}

// Node holds the system information of a cluster node.
type Node struct {
	Architecture    string `json:"architecture"`
	KernelVersion   string `json:"kernelVersion"`
	KubeletVersion  string `json:"kubeletVersion"`
	OperatingSystem string `json:"operatingSystem"`
	OSImage         string `json:"osImage"`
}

// Snapshot is everything collected from one cluster.
type Snapshot struct {
	Charts map[string]Chart `json:"helm_charts"`
	Nodes  map[string]Node  `json:"nodes"`
}

// New returns an empty snapshot.
func New() *Snapshot {
	return &Snapshot{
		Charts: map[string]Chart{},
		Nodes:  map[string]Node{},
	}
}

// NodeNames returns the names of the nodes in sorted order.
func (s *Snapshot) NodeNames() []string {
	return sortedKeys(s.Nodes)
}

// ChartNames returns the names of the charts in sorted order.
func (s *Snapshot) ChartNames() []string {
	return sortedKeys(s.Charts)
}

// Observed reduces the snapshot to the values used to match releases.
// Node values are listed in node name order.
func (s *Snapshot) Observed() *release.Observed {
	o := &release.Observed{Components: map[string]string{}}
	for _, name := range s.NodeNames() {
		n := s.Nodes[name]
		o.KubeletVersions = append(o.KubeletVersions, n.KubeletVersion)
		o.OSImages = append(o.OSImages, n.OSImage)
		o.KernelVersions = append(o.KernelVersions, n.KernelVersion)
	}
	for name, c := range s.Charts {
		if c.Version != "" {
			o.Components[name] = c.Version
		}
	}
	return o
}

// ReadFile reads a snapshot written by the detect command in json or yaml
// format.  Anything besides the charts and nodes is ignored.
func ReadFile(path string) (*Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	s := New()
	if err := yaml.Unmarshal(b, s); err != nil {
		return nil, fmt.Errorf("could not parse snapshot %s: %v", path, err)
	}
	if s.Charts == nil {
		s.Charts = map[string]Chart{}
	}
	if s.Nodes == nil {
		s.Nodes = map[string]Node{}
	}
	return s, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
