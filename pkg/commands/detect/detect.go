// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package detect

import (
	"fmt"
	"io"
	"os"
	"slices"

	log "github.com/sirupsen/logrus"

	"github.com/oracle-cne/components-versions/pkg/constants"
	"github.com/oracle-cne/components-versions/pkg/k8s/client"
	"github.com/oracle-cne/components-versions/pkg/release"
	"github.com/oracle-cne/components-versions/pkg/release/catalog"
	"github.com/oracle-cne/components-versions/pkg/release/match"
	"github.com/oracle-cne/components-versions/pkg/release/products"
	"github.com/oracle-cne/components-versions/pkg/snapshot"
)

// Options are the options for the detect command
type Options struct {
	// KubeConfigPath is the path to the optional kubeconfig file
	KubeConfigPath string

	// KubeInfo is the optional cluster to inspect.  If it is not set, one is
	// created from KubeConfigPath.
	KubeInfo *client.KubeInfo

	// Charts are the helm releases to inspect
	Charts []string

	// GetResources includes the resources deployed by each release
	GetResources bool

	// VersionsDir is the directory holding the release definitions
	VersionsDir string

	// ProductsFile is an optional product table that overrides the built in
	// one
	ProductsFile string

	// Output is the output format
	Output string

	// Writer receives the output. Default is os.Stdout
	Writer io.Writer
}

// Matcher matches snapshots against a release catalog.
type Matcher struct {
	Catalog  *catalog.Catalog
	Resolver *products.Resolver
}

// NewMatcher loads the release catalog and the product table.
func NewMatcher(versionsDir string, productsFile string) (*Matcher, error) {
	table := products.DefaultTable()
	if productsFile != "" {
		overrides, err := products.LoadTable(productsFile)
		if err != nil {
			return nil, err
		}
		table = table.Merge(overrides)
	}

	cat, err := catalog.Load(versionsDir)
	if err != nil {
		return nil, err
	}
	if len(cat.Releases) == 0 {
		log.Warnf("No release definitions found in %s", versionsDir)
	}

	return &Matcher{
		Catalog:  cat,
		Resolver: products.NewResolver(table),
	}, nil
}

// Match finds the release that best describes a snapshot.
func (m *Matcher) Match(s *snapshot.Snapshot) release.MatchResult {
	result := match.Reconcile(s.Observed(), m.Catalog.Releases, m.Resolver)
	for _, w := range result.Warnings {
		log.Warn(w)
	}
	log.Debugf("Matching items: %v, not matching items: %v", result.ItemsMatching, result.ItemsNotMatching)
	if !result.IsExact() {
		log.Infof("No release matches every item, %d items differ from the closest release", len(result.ItemsNotMatching))
	}
	return result
}

// CheckCharts warns about chart names the product table does not know.
// Those charts are collected but never matched.
func (m *Matcher) CheckCharts(charts []string) {
	for _, c := range charts {
		if m.Resolver.Known(c) {
			continue
		}
		if suggestion := m.Resolver.Suggest(c); suggestion != "" {
			log.Warnf("Chart %s has no known product name, did you mean %s?", c, suggestion)
		} else {
			log.Warnf("Chart %s has no known product name and will not be matched", c)
		}
	}
}

// ValidateOutput returns an error if the output format is not supported
func ValidateOutput(output string) error {
	if !slices.Contains(constants.OutputFormats, output) {
		return fmt.Errorf("output must be one of %v, but got %q", constants.OutputFormats, output)
	}
	return nil
}

func (o *Options) validate() error {
	if o.Writer == nil {
		o.Writer = os.Stdout
	}
	if len(o.Charts) == 0 {
		o.Charts = constants.DefaultCharts
	}
	return ValidateOutput(o.Output)
}

// Detect inspects a cluster and reports the release it matches
func Detect(o Options) error {
	if err := o.validate(); err != nil {
		return err
	}

	kubeInfo := o.KubeInfo
	if kubeInfo == nil {
		var err error
		kubeInfo, err = client.CreateKubeInfo(o.KubeConfigPath)
		if err != nil {
			return err
		}
	}
	log.Debugf("Using kubeconfig %s", kubeInfo.KubeconfigPath)

	m, err := NewMatcher(o.VersionsDir, o.ProductsFile)
	if err != nil {
		return err
	}
	m.CheckCharts(o.Charts)

	s, err := snapshot.Collect(snapshot.Options{
		KubeInfo:     kubeInfo,
		Charts:       o.Charts,
		GetResources: o.GetResources,
	})
	if err != nil {
		return err
	}

	return Display(o.Writer, o.Output, s, m.Match(s))
}
