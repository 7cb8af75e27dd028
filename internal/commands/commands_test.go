package commands

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheck_ShippedCatalogPasses(t *testing.T) {
	// Test: The embedded catalog passes the pre-flight check
	ctrl := &Controller{Flags: &Flags{}}
	assert.NoError(t, ctrl.Check(context.Background()))
}

func TestList_ShippedCatalog(t *testing.T) {
	// Test: Listing the catalog never fails
	ctrl := &Controller{Flags: &Flags{}}
	assert.NoError(t, ctrl.List(context.Background()))
}

func TestGenerate_WritesCatalogToOutputDir(t *testing.T) {
	// Test: The generate command drives the full catalog end to end
	dir := t.TempDir()
	ctrl := &Controller{Flags: &Flags{OutputDir: dir, Jobs: 2}}

	require.NoError(t, ctrl.Generate(context.Background()))

	assert.FileExists(t, filepath.Join(dir, "html5", "html5.go"))
	assert.FileExists(t, filepath.Join(dir, "html5", "attributes", "attributes.go"))
	assert.FileExists(t, filepath.Join(dir, "html4", "strict", "strict.go"))
	assert.FileExists(t, filepath.Join(dir, "xhtml1", "frameset", "attributes", "attributes.go"))
}
