// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/oracle-cne/components-versions/pkg/config/types"
	"github.com/oracle-cne/components-versions/pkg/constants"
)

// ParseConfig takes a yaml-encoded string and parses it
// into a Config structure.
func ParseConfig(in string) (*types.Config, error) {
	ret := &types.Config{}
	err := yaml.Unmarshal([]byte(in), ret)
	if err != nil {
		return nil, err
	}
	if ret.Output != nil && !slices.Contains(constants.OutputFormats, *ret.Output) {
		return nil, fmt.Errorf("output must be one of %v, but got %q", constants.OutputFormats, *ret.Output)
	}
	return ret, nil
}

// ParseConfigFile takes the path to a file, reads the contents,
// and parses it into a Config structure.
func ParseConfigFile(configPath string) (*types.Config, error) {
	configBytes, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}

	conf, err := ParseConfig(string(configBytes))
	if err != nil {
		return nil, fmt.Errorf("could not parse config file %s: %s", configPath, err.Error())
	}
	return conf, nil
}

// GetDefaultConfig returns the global default config.  It starts
// with a hard-coded set of defaults.  It then attempts to read a
// global overrides file.  If such a file is found, the entries in
// that file are merged into the hard-coded defaults.
func GetDefaultConfig() (*types.Config, error) {
	defaultConfig := types.Config{
		KubeConfig:   GenerateStringPointer(""),
		VersionsDir:  GenerateStringPointer(constants.VersionsDir),
		ProductsFile: GenerateStringPointer(""),
		Output:       GenerateStringPointer(constants.DefaultOutput),
		Charts:       append([]string{}, constants.DefaultCharts...),
		GetResources: GenerateBooleanPointer(false),
	}

	// Load in the defaults.  Prefer the path set by
	// COMPONENTS_VERSIONS_DEFAULTS.  If that is not set, use the
	// default path.
	defaultPath := os.Getenv(constants.UserConfigDefaultsEnvironmentVariable)
	if defaultPath == "" {
		homedir, err := os.UserHomeDir()
		if err != nil {
			return &defaultConfig, nil
		}
		defaultPath = filepath.Join(homedir, constants.UserConfigDefaults)
	}

	configFileDefaults, err := ParseConfigFile(defaultPath)
	if errors.Is(err, fs.ErrNotExist) {
		return &defaultConfig, nil
	} else if err != nil {
		return nil, err
	}
	ret := types.MergeConfig(&defaultConfig, configFileDefaults)
	return &ret, nil
}

// GenerateStringPointer is a helper function used to generate a string pointer
// This is useful when working with constants
func GenerateStringPointer(s string) *string {
	return &s
}

// GenerateBooleanPointer is a helper function used to generate an boolean pointer
// This is useful when working with constants
func GenerateBooleanPointer(b bool) *bool {
	return &b
}
