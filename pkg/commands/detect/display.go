// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package detect

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/gosuri/uitable"
	"sigs.k8s.io/yaml"

	"github.com/oracle-cne/components-versions/pkg/constants"
	"github.com/oracle-cne/components-versions/pkg/release"
	"github.com/oracle-cne/components-versions/pkg/snapshot"
)

// report is the document written by the json and yaml formats
type report struct {
	Charts          map[string]snapshot.Chart `json:"helm_charts"`
	Nodes           map[string]snapshot.Node  `json:"nodes"`
	DetectedVersion release.MatchResult       `json:"detected_edge_version"`
}

// Display writes a snapshot and its match result in the given format
func Display(w io.Writer, format string, s *snapshot.Snapshot, result release.MatchResult) error {
	r := &report{
		Charts:          s.Charts,
		Nodes:           s.Nodes,
		DetectedVersion: result,
	}

	switch format {
	case constants.OutputJSON:
		b, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(b))
	case constants.OutputYAML:
		b, err := yaml.Marshal(r)
		if err != nil {
			return err
		}
		fmt.Fprint(w, string(b))
	case constants.OutputTable:
		displayCharts(w, s)
		displayNodes(w, s)
		displayResult(w, result)
	case constants.OutputNone:
		fmt.Fprintf(w, "Detected version: %s\n", result.Release)
	default:
		return ValidateOutput(format)
	}
	return nil
}

func displayCharts(w io.Writer, s *snapshot.Snapshot) {
	for _, name := range s.ChartNames() {
		c := s.Charts[name]
		fmt.Fprintf(w, "Helm Chart: %s\n", name)

		table := uitable.New()
		table.AddRow("Version", "Namespace", "Revision")
		table.AddRow(c.Version, c.Namespace, c.Revision)
		fmt.Fprintln(w, table)

		if c.Resources != nil {
			fmt.Fprintln(w, "\nResources:")
			table = uitable.New()
			table.AddRow("Kind", "Name")
			for _, r := range *c.Resources {
				table.AddRow(r.Kind, r.Name)
			}
			fmt.Fprintln(w, table)
		}

		if len(c.Pods) > 0 {
			fmt.Fprintln(w, "\nPods:")
			table = uitable.New()
			table.AddRow("Pod Name", "Images")
			pods := make([]string, 0, len(c.Pods))
			for p := range c.Pods {
				pods = append(pods, p)
			}
			sort.Strings(pods)
			for _, p := range pods {
				table.AddRow(p, strings.Join(c.Pods[p], ", "))
			}
			fmt.Fprintln(w, table)
		}
		fmt.Fprintln(w)
	}
}

func displayNodes(w io.Writer, s *snapshot.Snapshot) {
	fmt.Fprintln(w, "Nodes:")
	table := uitable.New()
	table.AddRow("Node Name", "Architecture", "Kernel Version", "Kubelet Version", "Operating System", "OS Image")
	for _, name := range s.NodeNames() {
		n := s.Nodes[name]
		table.AddRow(name, n.Architecture, n.KernelVersion, n.KubeletVersion, n.OperatingSystem, n.OSImage)
	}
	fmt.Fprintln(w, table)
	fmt.Fprintln(w)
}

func displayResult(w io.Writer, result release.MatchResult) {
	fmt.Fprintf(w, "Detected version: %s\n", result.Release)
	displayItems(w, "Matching items:", result.ItemsMatching)
	displayItems(w, "Not matching items:", result.ItemsNotMatching)
}

func displayItems(w io.Writer, title string, items map[string]string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(w, "\n%s\n", title)
	table := uitable.New()
	table.AddRow("Item", "Version")
	names := make([]string, 0, len(items))
	for name := range items {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		table.AddRow(name, items[name])
	}
	fmt.Fprintln(w, table)
}
