// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package strutil

import "strings"

// TrimArray trims every string in a list and drops the ones that are empty
// or repeated.
func TrimArray(a []string) []string {
	var out []string
	seen := map[string]bool{}
	for _, s := range a {
		s = strings.TrimSpace(s)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
