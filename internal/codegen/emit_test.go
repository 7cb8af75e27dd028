package codegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tagforge/tagforge/internal/codegen/writer"
)

func TestEmitContainer_RendersParentPrimitive(t *testing.T) {
	// Test: Containers close over tag name and open/close tag text
	w := writer.NewWriter("\t")
	emitContainer(w, "div")

	out := w.String()
	assert.Contains(t, out, "func Div(children ...m.Node) m.Node {")
	assert.Contains(t, out, `return m.Parent("div", "<div", "</div>", children...)`)
	assert.Contains(t, out, "// Div builds a <div> element containing children.")
	assert.Contains(t, out, "//\t<div>foo</div>")
}

func TestEmitContainer_ExternalContentTags(t *testing.T) {
	// Test: script and style bodies are externally-sourced content
	for _, tag := range []string{"script", "style"} {
		w := writer.NewWriter("\t")
		emitContainer(w, tag)
		assert.Contains(t, w.String(), "m.ExternalParent(", "tag %q", tag)
	}

	w := writer.NewWriter("\t")
	emitContainer(w, "pre")
	assert.NotContains(t, w.String(), "ExternalParent")
}

func TestEmitVoid_ClosingMarker(t *testing.T) {
	// Test: The closing marker carries the self-closing suffix only when
	// the dialect asks for it
	w := writer.NewWriter("\t")
	emitVoid(w, "br", true)
	assert.Contains(t, w.String(), `return m.Leaf("br", "<br", " />")`)
	assert.Contains(t, w.String(), "func Br() m.Node {")

	w = writer.NewWriter("\t")
	emitVoid(w, "br", false)
	assert.Contains(t, w.String(), `return m.Leaf("br", "<br", ">")`)
	assert.NotContains(t, w.String(), " />")
}

func TestEmitAttribute_KeyFragment(t *testing.T) {
	// Test: The setter closes over the literal key fragment up to the
	// opening quote
	w := writer.NewWriter("\t")
	emitAttribute(w, "class")

	out := w.String()
	assert.Contains(t, out, "func Class(value string) m.Attribute {")
	assert.Contains(t, out, `return m.Attr("class", " class=\"", value)`)
	assert.Contains(t, out, "// Class sets the class attribute.")
}

func TestEmitAttribute_SanitizedName(t *testing.T) {
	// Test: Hyphenated attributes get camel-case setters over the raw
	// attribute text
	w := writer.NewWriter("\t")
	emitAttribute(w, "http-equiv")

	out := w.String()
	assert.Contains(t, out, "func HttpEquiv(value string) m.Attribute {")
	assert.Contains(t, out, `return m.Attr("http-equiv", " http-equiv=\"", value)`)
}

func TestEmitDocType_RawTextWithLineTerminators(t *testing.T) {
	// Test: Doctype lines embed as raw text, each followed by a newline
	w := writer.NewWriter("\t")
	emitDocType(w, "mini", []string{"<!DOCTYPE x>", "<!-- second -->"})

	out := w.String()
	assert.Contains(t, out, "func DocType() m.Node {")
	assert.Contains(t, out, `return m.Raw("<!DOCTYPE x>\n<!-- second -->\n")`)
	assert.Contains(t, out, "// DocType is the document type declaration for mini.")
}

func TestEmitDocument_WrapsRootElement(t *testing.T) {
	// Test: Document chains the doctype and the <html> wrapper
	w := writer.NewWriter("\t")
	emitDocument(w, []string{"<!DOCTYPE x>"})

	out := w.String()
	assert.Contains(t, out, "func Document(children ...m.Node) m.Node {")
	assert.Contains(t, out, `return m.Group(DocType(), m.Parent("html", "<html", "</html>", children...))`)
}

func TestQuoteLines_EscapesQuotes(t *testing.T) {
	// Test: Doctype lines containing quotes become valid Go literals
	got := quoteLines([]string{`<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN">`})
	assert.Equal(t, `"<!DOCTYPE HTML PUBLIC \"-//W3C//DTD HTML 4.01//EN\">\n"`, got)
}
