package dialect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_AcceptsWellFormedDialect(t *testing.T) {
	// Test: A dialect with disjoint sets and unique identifiers passes
	d := Extend(Dialect{}, []string{"mini"}, []string{"<!DOCTYPE x>"}, true, Additions{
		Containers: []string{"div"},
		Voids:      []string{"br"},
		Attributes: []string{"class"},
	})
	assert.NoError(t, Validate(d))
}

func TestValidate_RejectsContainerVoidOverlap(t *testing.T) {
	// Test: An element listed as both container and void is a
	// configuration error
	d := Dialect{
		Path:       []string{"bad"},
		Containers: []string{"div", "br"},
		Voids:      []string{"br"},
	}
	err := Validate(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"br"`)
	assert.Contains(t, err.Error(), "both container and void")
}

func TestValidate_RejectsIdentifierCollision(t *testing.T) {
	// Test: Two raw names sanitizing to the same identifier in one unit
	// is a configuration error
	d := Dialect{
		Path:       []string{"bad"},
		Attributes: []string{"http-equiv", "httpEquiv"},
	}
	err := Validate(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"HttpEquiv"`)
}

func TestValidate_AllowsElementAttributeOverlap(t *testing.T) {
	// Test: A raw name used as element and attribute is legal; the two
	// generated packages are separate namespaces
	d := Dialect{
		Path:       []string{"ok"},
		Containers: []string{"style", "title"},
		Attributes: []string{"style", "title"},
	}
	assert.NoError(t, Validate(d))
}

func TestHasCollision_ElementAndAttribute(t *testing.T) {
	// Test: HasCollision reports names recognized as both
	d := Dialect{
		Path:       []string{"d"},
		Containers: []string{"style", "div"},
		Voids:      []string{"br"},
		Attributes: []string{"style", "class"},
	}

	assert.True(t, HasCollision(d, "style"))
	assert.False(t, HasCollision(d, "div"))
	assert.False(t, HasCollision(d, "class"))
	assert.False(t, HasCollision(d, "br"))
}

func TestSharedNames_SortedOverlap(t *testing.T) {
	// Test: SharedNames lists the element/attribute overlap in order
	d := Dialect{
		Path:       []string{"d"},
		Containers: []string{"title", "style", "div"},
		Attributes: []string{"style", "title", "class"},
	}
	assert.Equal(t, []string{"style", "title"}, SharedNames(d))
}

func TestValidateAll_WrapsDialectName(t *testing.T) {
	// Test: Catalog validation names the offending dialect
	bad := Dialect{
		Path:       []string{"bad", "one"},
		Containers: []string{"br"},
		Voids:      []string{"br"},
	}
	err := ValidateAll([]Dialect{bad})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad/one")
}

func TestValidateAll_RejectsDuplicatePaths(t *testing.T) {
	// Test: Two catalog entries sharing a version path are rejected
	d := Extend(Dialect{}, []string{"dup"}, nil, false, Additions{
		Containers: []string{"div"},
	})
	err := ValidateAll([]Dialect{d, d})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate catalog entry")
}
