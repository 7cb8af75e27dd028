package dialect

import (
	"fmt"

	"github.com/tagforge/tagforge/internal/ident"
)

// HasCollision reports whether name is used ambiguously in d: either the
// name is both a recognized element and a recognized attribute, or its
// sanitized form still lands on a reserved identifier. The first case is
// common in real vocabularies ("style", "title") and is harmless as long
// as elements and attributes live in separate generated packages; the
// check command surfaces it so catalog authors can see the overlap.
func HasCollision(d Dialect, name string) bool {
	isElement := contains(d.Containers, name) || contains(d.Voids, name)
	if isElement && contains(d.Attributes, name) {
		return true
	}
	return ident.Reserved(ident.Sanitize(name))
}

// SharedNames returns the raw names d uses as both element and attribute,
// in sorted order.
func SharedNames(d Dialect) []string {
	var shared []string
	for _, e := range d.Elements() {
		if contains(d.Attributes, e.Name) {
			shared = append(shared, e.Name)
		}
	}
	return shared
}

// Validate is the mandatory pre-flight check run before any file is
// written for d. It fails on the collisions sanitization cannot resolve:
// an element listed as both container and void, two names in one output
// unit sanitizing to the same identifier, or a sanitized identifier that
// is still reserved. A failure is a configuration error and must abort
// the run before emission.
func Validate(d Dialect) error {
	for _, name := range d.Containers {
		if contains(d.Voids, name) {
			return fmt.Errorf("element %q is listed as both container and void", name)
		}
	}

	if err := uniqueIdentifiers("element", elementNames(d)); err != nil {
		return err
	}
	return uniqueIdentifiers("attribute", d.Attributes)
}

// ValidateAll runs Validate over every dialect in the catalog and wraps
// the first failure with the offending dialect's name.
func ValidateAll(catalog []Dialect) error {
	seen := make(map[string]bool, len(catalog))
	for _, d := range catalog {
		if seen[d.Name()] {
			return fmt.Errorf("dialect %s: duplicate catalog entry", d.Name())
		}
		seen[d.Name()] = true

		if err := Validate(d); err != nil {
			return fmt.Errorf("dialect %s: %w", d.Name(), err)
		}
	}
	return nil
}

func elementNames(d Dialect) []string {
	names := make([]string, 0, len(d.Containers)+len(d.Voids))
	for _, e := range d.Elements() {
		names = append(names, e.Name)
	}
	return names
}

func uniqueIdentifiers(unit string, names []string) error {
	byIdent := make(map[string]string, len(names))
	for _, name := range names {
		id := ident.Sanitize(name)
		if ident.Reserved(id) {
			return fmt.Errorf("%s %q sanitizes to reserved identifier %q", unit, name, id)
		}
		if prev, ok := byIdent[id]; ok {
			return fmt.Errorf("%ss %q and %q collide on identifier %q", unit, prev, name, id)
		}
		byIdent[id] = name
	}
	return nil
}
