// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"

	"github.com/oracle-cne/components-versions/pkg/release"
	"github.com/oracle-cne/components-versions/pkg/util"
)

const (
	// K3sRecord and RKE2Record name the records that hold the Kubernetes
	// distribution versions of a release.
	K3sRecord  = "K3s"
	RKE2Record = "RKE2"

	chartVersionField  = "Helm Chart Version"
	distroVersionField = "Version"
)

// eligibleExtensions are the file extensions read from a catalog directory.
var eligibleExtensions = util.NewSet(".json", ".yaml", ".yml")

// document is the on-disk form of one release definition.
type document struct {
	Version string                     `json:"Version" validate:"required,printascii"`
	Data    map[string]json.RawMessage `json:"Data"`
}

// Catalog is an ordered collection of release definitions.
type Catalog struct {
	// Releases are in catalog order, which is the lexical order of the
	// file names they were read from.
	Releases []release.Definition

	// Warnings describe the files that were skipped.
	Warnings []string
}

// Load reads every release definition in a directory.
func Load(dir string) (*Catalog, error) {
	c, err := LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", dir, err)
	}
	return c, nil
}

// LoadFS reads every release definition at the root of a file system.
// Only a failure to list the root is an error, and it wraps both
// ErrCatalogUnreadable and the cause.  Files that cannot be parsed are
// skipped and reported in the Warnings of the catalog.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnreadable, err)
	}

	c := &Catalog{}
	for _, entry := range entries {
		if entry.IsDir() || !eligibleExtensions.Contains(strings.ToLower(filepath.Ext(entry.Name()))) {
			continue
		}

		def, err := readDefinition(fsys, entry.Name())
		if err != nil {
			log.Warnf("%v", err)
			c.Warnings = append(c.Warnings, err.Error())
			continue
		}
		log.Debugf("Loaded release %s from %s", def.Version, def.Source)
		c.Releases = append(c.Releases, *def)
	}
	return c, nil
}

// Find returns the first release definition with the given version.
func (c *Catalog) Find(version string) (*release.Definition, bool) {
	for i := range c.Releases {
		if c.Releases[i].Version == version {
			return &c.Releases[i], true
		}
	}
	return nil, false
}

func readDefinition(fsys fs.FS, name string) (*release.Definition, error) {
	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, &EntryError{File: name, Err: err}
	}

	doc := document{}
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, &EntryError{File: name, Err: err}
	}
	doc.Version = strings.TrimSpace(doc.Version)
	if err := validateDocument(&doc); err != nil {
		return nil, &EntryError{File: name, Err: err}
	}

	return toDefinition(name, &doc), nil
}

// toDefinition converts a document.  Data records that are not objects or
// lack a version string are left out, which makes those components absent
// from the release rather than making the whole file malformed.
func toDefinition(name string, doc *document) *release.Definition {
	def := &release.Definition{
		Version:    doc.Version,
		Components: map[string]string{},
		Source:     name,
	}

	kubeVersions := util.NewSet[string]()
	for _, distro := range []string{K3sRecord, RKE2Record} {
		v, ok := recordField(doc.Data[distro], distroVersionField)
		if !ok {
			continue
		}
		v = release.NormalizeKubernetesVersion(v)
		if kubeVersions.Add(v) {
			def.KubernetesVersions = append(def.KubernetesVersions, v)
		}
	}

	for product, raw := range doc.Data {
		if product == K3sRecord || product == RKE2Record {
			continue
		}
		v, ok := recordField(raw, chartVersionField)
		if !ok {
			log.Debugf("Release %s has no chart version for %s", doc.Version, product)
			continue
		}
		def.Components[product] = v
	}
	return def
}

func recordField(raw json.RawMessage, field string) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	rec := map[string]interface{}{}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return "", false
	}
	v, ok := rec[field].(string)
	v = strings.TrimSpace(v)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
