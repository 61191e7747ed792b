// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package constants

const (
	FlagKubeconfig      = "kubeconfig"
	FlagKubeconfigShort = "k"
	FlagKubeconfigHelp  = "the kubeconfig filepath"

	FlagVersionsDir      = "versions-dir"
	FlagVersionsDirShort = "d"
	FlagVersionsDirHelp  = "The directory that holds the release definitions"

	FlagProducts      = "products"
	FlagProductsShort = "p"
	FlagProductsHelp  = "A yaml file that maps chart names to the product names used by the release definitions. Its entries replace the built in ones"

	FlagOutput      = "output"
	FlagOutputShort = "o"
	FlagOutputHelp  = "The output format. Valid values are \"json\", \"yaml\", \"table\", and \"none\""
)
