// Package writer provides the indentation-aware text writer the code
// emitters build generated files on.
package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated source text with proper indentation.
type Writer struct {
	sb           strings.Builder
	indentLevel  int
	indentString string
	linePrefix   string
	needsIndent  bool
}

// NewWriter creates a writer using indentString for one indent level.
func NewWriter(indentString string) *Writer {
	return &Writer{
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level.
func (w *Writer) Indent() {
	w.indentLevel++
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}

// Dedent decreases the indentation level.
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
	}
}

// Write writes s without a trailing newline, indenting at line start.
func (w *Writer) Write(s string) {
	if w.needsIndent && s != "" {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
}

// Writef writes a formatted string without a trailing newline.
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes s followed by a newline.
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string followed by a newline.
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline terminates the current line.
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
	w.needsIndent = true
}

// BlankLine adds an empty line unless one is already pending.
func (w *Writer) BlankLine() {
	if w.sb.Len() > 0 && !strings.HasSuffix(w.sb.String(), "\n\n") {
		w.Newline()
	}
}

// WriteComment writes a single-line comment.
func (w *Writer) WriteComment(comment string) {
	if comment == "" {
		w.WriteLine("//")
		return
	}
	w.WriteLinef("// %s", comment)
}

// WriteWrappedComment writes words as comment lines wrapped at width
// columns. Used for the generated export manifests, whose single-line
// form would be unreadably long.
func (w *Writer) WriteWrappedComment(words []string, width int) {
	line := ""
	for _, word := range words {
		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) > width:
			w.WriteComment(line)
			line = word
		default:
			line += " " + word
		}
	}
	if line != "" {
		w.WriteComment(line)
	}
}

// String returns the accumulated text as-is.
func (w *Writer) String() string {
	return w.sb.String()
}

// Finalize returns the accumulated text with trailing blank lines
// trimmed to exactly one terminating newline.
func (w *Writer) Finalize() []byte {
	s := strings.TrimRight(w.sb.String(), "\n")
	return []byte(s + "\n")
}
