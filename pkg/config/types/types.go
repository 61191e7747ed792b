// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package types

// Config holds the settings that can be given in the defaults file.
// Unset values are nil so that overrides can be told apart from zero
// values.
type Config struct {
	KubeConfig   *string  `yaml:"kubeconfig"`
	VersionsDir  *string  `yaml:"versionsDir"`
	ProductsFile *string  `yaml:"productsFile"`
	Output       *string  `yaml:"output"`
	Charts       []string `yaml:"charts"`
	GetResources *bool    `yaml:"getResources"`
}

// ies is "if empty set".  It returns the override if it is set and the
// default otherwise.
func ies[T any](def *T, ovr *T) *T {
	if ovr != nil {
		return ovr
	}
	return def
}

// MergeConfig takes two Configs and merges them into a third.
// The default values for the result come from the first argument.  If a value
// is set in the second argument, that value takes precedence.
func MergeConfig(def *Config, ovr *Config) Config {
	if ovr == nil {
		return *def
	}

	charts := def.Charts
	if len(ovr.Charts) > 0 {
		charts = ovr.Charts
	}

	return Config{
		KubeConfig:   ies(def.KubeConfig, ovr.KubeConfig),
		VersionsDir:  ies(def.VersionsDir, ovr.VersionsDir),
		ProductsFile: ies(def.ProductsFile, ovr.ProductsFile),
		Output:       ies(def.Output, ovr.Output),
		Charts:       charts,
		GetResources: ies(def.GetResources, ovr.GetResources),
	}
}

// Value returns the value of a setting or the zero value if it is not set
func Value[T any](v *T) T {
	var ret T
	if v != nil {
		ret = *v
	}
	return ret
}
