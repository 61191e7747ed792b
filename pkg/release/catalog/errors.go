// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrCatalogUnreadable is returned when the catalog directory cannot be
	// listed.
	ErrCatalogUnreadable = errors.New("release catalog is unreadable")

	// ErrEntryMalformed matches any EntryError.
	ErrEntryMalformed = errors.New("release catalog entry is malformed")
)

// EntryError describes a catalog file that was skipped.
type EntryError struct {
	File string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("skipping release catalog file %s: %v", e.File, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrEntryMalformed) true for every EntryError.
func (e *EntryError) Is(target error) bool {
	return target == ErrEntryMalformed
}
