// Package dialect holds the embedded catalog of markup dialects the
// generator knows about, plus the pre-flight checks run before emission.
package dialect

import (
	"sort"
	"strings"
)

// Dialect describes one markup variant: its identity, its document type
// declaration, and the element/attribute vocabulary it allows. Values are
// immutable once constructed; later dialects are built from earlier ones
// with Extend, never by mutation.
type Dialect struct {
	// Path identifies the dialect and doubles as its output location,
	// e.g. ["html4", "strict"] or ["html5"].
	Path []string

	// DocType holds the literal document type declaration, one line per
	// entry. Emitted as raw text, never re-escaped.
	DocType []string

	// Containers lists elements that may enclose nested content.
	Containers []string

	// Voids lists elements that never enclose content.
	Voids []string

	// Attributes lists the attribute names valid in this dialect.
	Attributes []string

	// SelfClosing controls whether void elements close with " />".
	SelfClosing bool
}

// Name returns the human-readable dialect identity, e.g. "html4/strict".
func (d Dialect) Name() string {
	return strings.Join(d.Path, "/")
}

// ElementKind distinguishes the two render paths for elements.
type ElementKind int

const (
	// KindContainer marks an element that wraps nested content.
	KindContainer ElementKind = iota

	// KindVoid marks an element rendered as a single self-contained tag.
	KindVoid
)

// Element pairs an element name with its kind so the emitter can switch
// exhaustively instead of dispatching on which set the name came from.
type Element struct {
	Name string
	Kind ElementKind
}

// Elements returns the merged container and void names of d, sorted by
// name, each tagged with its kind. The result drives the element module's
// emission order.
func (d Dialect) Elements() []Element {
	merged := make([]Element, 0, len(d.Containers)+len(d.Voids))
	for _, name := range d.Containers {
		merged = append(merged, Element{Name: name, Kind: KindContainer})
	}
	for _, name := range d.Voids {
		merged = append(merged, Element{Name: name, Kind: KindVoid})
	}
	sort.Slice(merged, func(i, j int) bool { return merged[i].Name < merged[j].Name })
	return merged
}

// Additions is the vocabulary delta applied on top of a base dialect.
type Additions struct {
	Containers []string
	Voids      []string
	Attributes []string
}

// Extend builds a new dialect from base by replacing its identity and
// doctype and adding vocabulary. The base is never modified; the result's
// name sets are sorted and deduplicated.
func Extend(base Dialect, path []string, docType []string, selfClosing bool, add Additions) Dialect {
	return Dialect{
		Path:        path,
		DocType:     docType,
		Containers:  mergeNames(base.Containers, add.Containers),
		Voids:       mergeNames(base.Voids, add.Voids),
		Attributes:  mergeNames(base.Attributes, add.Attributes),
		SelfClosing: selfClosing,
	}
}

func mergeNames(base, add []string) []string {
	seen := make(map[string]bool, len(base)+len(add))
	merged := make([]string, 0, len(base)+len(add))
	for _, name := range base {
		if !seen[name] {
			seen[name] = true
			merged = append(merged, name)
		}
	}
	for _, name := range add {
		if !seen[name] {
			seen[name] = true
			merged = append(merged, name)
		}
	}
	sort.Strings(merged)
	return merged
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
