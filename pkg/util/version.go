// Copyright (c) 2025, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CompareVersions compares two version strings that roughly conform
// to the Semantic Version specification.
func CompareVersions(v1 string, v2 string) (int, error) {
	ver1, err := semver.NewVersion(v1)
	if err != nil {
		return 0, err
	}

	ver2, err := semver.NewVersion(v2)
	if err != nil {
		return 0, err
	}

	return ver1.Compare(ver2), nil
}

// SortNewestFirst sorts items by the version returned for each, newest
// first.  Versions that cannot be parsed go last in lexical order.  Items
// with equal versions keep their order.
func SortNewestFirst[T any](items []T, version func(T) string) {
	slices.SortStableFunc(items, func(a T, b T) int {
		cmp, err := CompareVersions(version(b), version(a))
		if err == nil {
			return cmp
		}

		_, errA := semver.NewVersion(version(a))
		_, errB := semver.NewVersion(version(b))
		switch {
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
		return strings.Compare(version(a), version(b))
	})
}
