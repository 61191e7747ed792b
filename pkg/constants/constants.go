// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	UserConfigDir                         = ".components-versions"
	UserConfigDefaults                    = ".components-versions/defaults.yaml"
	UserConfigDefaultsEnvironmentVariable = "COMPONENTS_VERSIONS_DEFAULTS"

	// VersionsDir is where the release definitions are installed
	VersionsDir = "/usr/share/suse-edge-components-versions"

	// Output formats
	OutputJSON  = "json"
	OutputYAML  = "yaml"
	OutputTable = "table"
	OutputNone  = "none"

	DefaultOutput = OutputJSON
)

// OutputFormats are all the supported output formats
var OutputFormats = []string{OutputJSON, OutputYAML, OutputTable, OutputNone}

// DefaultCharts are the helm releases inspected when no list is given
var DefaultCharts = []string{
	"cdi",
	"elemental-operator",
	"endpoint-copier-operator",
	"kubevirt",
	"longhorn",
	"metal3",
	"metallb",
	"neuvector",
	"rancher",
	"rancher-turtles",
	"sriov-network-operator",
	"system-upgrade-controller",
	"upgrade-controller",
}
