package codegen

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/tagforge/tagforge/internal/codegen/writer"
	"github.com/tagforge/tagforge/internal/dialect"
	"github.com/tagforge/tagforge/internal/ident"
)

// DefaultImportPath is the rendering library the generated files import
// under the fixed alias. The generator never calls into it; generated
// code references its primitives by name only.
const DefaultImportPath = "github.com/tagforge/markup"

// exportWrapWidth bounds the export manifest comment lines.
const exportWrapWidth = 72

// Unit is one generated source file prior to serialization: its path
// relative to the output root, its package name, the ordered list of
// exported combinators, and the rendered body.
type Unit struct {
	Path    string
	Package string
	Exports []string
	Body    []byte
}

// ElementUnit renders the element module for d: the DocType and
// Document helpers followed by every element constructor in name order.
func ElementUnit(d dialect.Dialect, importPath string) Unit {
	last := d.Path[len(d.Path)-1]
	elements := d.Elements()

	exports := []string{"DocType", "Document"}
	for _, e := range elements {
		exports = append(exports, ident.Sanitize(e.Name))
	}

	w := newUnitWriter(last, "element combinators", d.Name(), exports, importPath)

	emitDocType(w, d.Name(), d.DocType)
	w.BlankLine()
	emitDocument(w, d.DocType)
	for _, e := range elements {
		w.BlankLine()
		switch e.Kind {
		case dialect.KindContainer:
			emitContainer(w, e.Name)
		case dialect.KindVoid:
			emitVoid(w, e.Name, d.SelfClosing)
		default:
			panic(fmt.Sprintf("codegen: unknown element kind %d for %q", e.Kind, e.Name))
		}
	}

	return Unit{
		Path:    filepath.Join(filepath.Join(d.Path...), last+".go"),
		Package: last,
		Exports: exports,
		Body:    w.Finalize(),
	}
}

// AttributeUnit renders the attribute module for d, one setter per
// attribute in name order.
func AttributeUnit(d dialect.Dialect, importPath string) Unit {
	attrs := append([]string(nil), d.Attributes...)
	sort.Strings(attrs)

	exports := make([]string, 0, len(attrs))
	for _, attr := range attrs {
		exports = append(exports, ident.Sanitize(attr))
	}

	w := newUnitWriter("attributes", "attribute setters", d.Name(), exports, importPath)

	for i, attr := range attrs {
		if i > 0 {
			w.BlankLine()
		}
		emitAttribute(w, attr)
	}

	return Unit{
		Path:    filepath.Join(filepath.Join(d.Path...), "attributes", "attributes.go"),
		Package: "attributes",
		Exports: exports,
		Body:    w.Finalize(),
	}
}

// newUnitWriter emits the shared file preamble: generated-file warning,
// package documentation with the export manifest, package clause and the
// rendering-library import. An empty export list is a programmer error;
// no module may be generated without exports.
func newUnitWriter(pkg, kind, dialectName string, exports []string, importPath string) *writer.Writer {
	if len(exports) == 0 {
		panic(fmt.Sprintf("codegen: %s unit for %s has no exports", pkg, dialectName))
	}
	if importPath == "" {
		importPath = DefaultImportPath
	}

	w := writer.NewWriter("\t")
	w.WriteComment("Code generated by tagforge. DO NOT EDIT.")
	w.BlankLine()
	w.WriteLinef("// Package %s provides %s for the %s document type.", pkg, kind, dialectName)
	w.WriteComment("")
	w.WriteComment("Exported combinators:")
	w.WriteComment("")
	w.WriteWrappedComment(exports, exportWrapWidth)
	w.WriteLinef("package %s", pkg)
	w.BlankLine()
	w.WriteLine("import (")
	w.Indent()
	w.WriteLinef("%s %q", markupAlias, importPath)
	w.Dedent()
	w.WriteLine(")")
	w.BlankLine()
	return w
}
