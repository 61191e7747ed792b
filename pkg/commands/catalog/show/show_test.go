// Copyright (c) 2026, Oracle and/or its affiliates.
// Licensed under the Universal Permissive License v 1.0 as shown at https://oss.oracle.com/licenses/upl.

package show

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShow tests finding one release definition
func TestShow(t *testing.T) {
	asserts := assert.New(t)
	dir := t.TempDir()
	doc := `{"Version": "3.2.1", "Data": {"MetalLB": {"Helm Chart Version": "0.14.9"}}}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "3.2.1.json"), []byte(doc), 0644))

	def, err := Show(dir, "3.2.1")
	asserts.NoError(err)
	asserts.Equal(map[string]string{"MetalLB": "0.14.9"}, def.Components)
	asserts.Equal("3.2.1.json", def.Source)

	_, err = Show(dir, "3.3.0")
	asserts.Error(err)
}
