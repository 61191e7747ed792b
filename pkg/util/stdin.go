// Copyright (c) 2024, 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package util

import (
	"os"
)

// FileIsTTY gives a best guess that a given file represents
// a TTY or PTY.  The current best guess is that the file is
// a character device.
func FileIsTTY(f *os.File) (bool, error) {
	fi, err := f.Stat()
	if err != nil {
		return false, err
	}

	return fi.Mode()&os.ModeCharDevice != 0, nil
}
