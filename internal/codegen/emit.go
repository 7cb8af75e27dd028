// Package codegen renders the generated combinator source for one
// dialect: element constructors, the document type helpers, and
// attribute setters. All emitters are pure text producers; they know
// nothing about the filesystem.
package codegen

import (
	"strconv"
	"strings"

	"github.com/tagforge/tagforge/internal/codegen/writer"
	"github.com/tagforge/tagforge/internal/ident"
)

// markupAlias is the import alias the generated files bind the rendering
// library to. It is part of the sanitizer's reserved set.
const markupAlias = "m"

// externalTags name the elements whose payload is not markup and must
// not be escaped or traversed further (embedded script and style
// bodies). Their constructors use the externally-sourced parent
// primitive.
var externalTags = map[string]bool{
	"script": true,
	"style":  true,
}

// emitDocType renders the nullary document type constructor. The lines
// are embedded as pre-escaped raw text, each followed by a newline.
func emitDocType(w *writer.Writer, dialectName string, lines []string) {
	w.WriteLinef("// DocType is the document type declaration for %s.", dialectName)
	w.WriteComment("")
	w.WriteComment("Example:")
	w.WriteComment("")
	w.WriteLine("//\tDocType()")
	w.WriteComment("")
	w.WriteComment("Renders as:")
	w.WriteComment("")
	for _, line := range lines {
		w.WriteLinef("//\t%s", line)
	}
	w.WriteLinef("func DocType() %s.Node {", markupAlias)
	w.Indent()
	w.WriteLinef("return %s.Raw(%s)", markupAlias, quoteLines(lines))
	w.Dedent()
	w.WriteLine("}")
}

// emitDocument renders the one-argument root wrapper: the document type
// declaration followed by an <html> element around the children.
func emitDocument(w *writer.Writer, lines []string) {
	w.WriteComment("Document wraps children in the root <html> element, preceded by the")
	w.WriteComment("document type declaration.")
	w.WriteComment("")
	w.WriteComment("Example:")
	w.WriteComment("")
	w.WriteLinef("//\tDocument(%s.Text(\"Hello\"))", markupAlias)
	w.WriteComment("")
	w.WriteComment("Renders as:")
	w.WriteComment("")
	for _, line := range lines {
		w.WriteLinef("//\t%s", line)
	}
	w.WriteLine("//\t<html>Hello</html>")
	w.WriteLinef("func Document(children ...%s.Node) %s.Node {", markupAlias, markupAlias)
	w.Indent()
	w.WriteLinef("return %s.Group(DocType(), %s.Parent(\"html\", \"<html\", \"</html>\", children...))",
		markupAlias, markupAlias)
	w.Dedent()
	w.WriteLine("}")
}

// emitContainer renders the constructor for an element that encloses
// nested content.
func emitContainer(w *writer.Writer, tag string) {
	name := ident.Sanitize(tag)
	primitive := "Parent"
	if externalTags[tag] {
		primitive = "ExternalParent"
	}

	w.WriteLinef("// %s builds a <%s> element containing children.", name, tag)
	w.WriteComment("")
	w.WriteComment("Example:")
	w.WriteComment("")
	w.WriteLinef("//\t%s(%s.Text(\"foo\"))", name, markupAlias)
	w.WriteComment("")
	w.WriteComment("Renders as:")
	w.WriteComment("")
	w.WriteLinef("//\t<%s>foo</%s>", tag, tag)
	w.WriteLinef("func %s(children ...%s.Node) %s.Node {", name, markupAlias, markupAlias)
	w.Indent()
	w.WriteLinef("return %s.%s(%q, %q, %q, children...)",
		markupAlias, primitive, tag, "<"+tag, "</"+tag+">")
	w.Dedent()
	w.WriteLine("}")
}

// emitVoid renders the constructor for an element that never encloses
// content. The closing marker carries the self-closing suffix exactly
// when the dialect asks for it.
func emitVoid(w *writer.Writer, tag string, selfClosing bool) {
	name := ident.Sanitize(tag)
	closer := ">"
	if selfClosing {
		closer = " />"
	}

	w.WriteLinef("// %s builds a <%s> element.", name, tag)
	w.WriteComment("")
	w.WriteComment("Example:")
	w.WriteComment("")
	w.WriteLinef("//\t%s()", name)
	w.WriteComment("")
	w.WriteComment("Renders as:")
	w.WriteComment("")
	w.WriteLinef("//\t<%s%s", tag, closer)
	w.WriteLinef("func %s() %s.Node {", name, markupAlias)
	w.Indent()
	w.WriteLinef("return %s.Leaf(%q, %q, %q)", markupAlias, tag, "<"+tag, closer)
	w.Dedent()
	w.WriteLine("}")
}

// emitAttribute renders the setter for one attribute. The key fragment
// closes over the leading space, name, equals sign and opening quote so
// the rendering library only appends the escaped value and the closing
// quote.
func emitAttribute(w *writer.Writer, attr string) {
	name := ident.Sanitize(attr)

	w.WriteLinef("// %s sets the %s attribute.", name, attr)
	w.WriteComment("")
	w.WriteComment("Example:")
	w.WriteComment("")
	w.WriteLinef("//\t%s(\"foo\")", name)
	w.WriteComment("")
	w.WriteComment("Applied to a <div> it renders as:")
	w.WriteComment("")
	w.WriteLinef("//\t<div %s=\"foo\"></div>", attr)
	w.WriteLinef("func %s(value string) %s.Attribute {", name, markupAlias)
	w.Indent()
	w.WriteLinef("return %s.Attr(%q, %q, value)", markupAlias, attr, " "+attr+"=\"")
	w.Dedent()
	w.WriteLine("}")
}

// quoteLines builds the Go string literal for a doctype: every line is
// followed by a line terminator.
func quoteLines(lines []string) string {
	var b strings.Builder
	for _, line := range lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strconv.Quote(b.String())
}
