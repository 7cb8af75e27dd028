// Package ident maps raw tag and attribute names to exported Go
// identifiers that are safe to declare in a generated file.
package ident

import "strings"

// Names the generated preamble itself declares or imports. A sanitized
// identifier must never shadow one of these.
var preamble = map[string]bool{
	"DocType":  true,
	"Document": true,
	"m":        true, // rendering-library import alias
}

// Go keywords and predeclared identifiers. Sanitized names are exported
// and so can never equal one of these in practice, but the check is kept
// so the rewrite rule is total over arbitrary input.
var goReserved = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,

	"any": true, "append": true, "bool": true, "byte": true,
	"cap": true, "close": true, "comparable": true, "complex": true,
	"complex64": true, "complex128": true, "copy": true, "delete": true,
	"error": true, "false": true, "float32": true, "float64": true,
	"imag": true, "int": true, "int8": true, "int16": true,
	"int32": true, "int64": true, "iota": true, "len": true,
	"make": true, "new": true, "nil": true, "panic": true,
	"print": true, "println": true, "real": true, "recover": true,
	"rune": true, "string": true, "true": true, "uint": true,
	"uint8": true, "uint16": true, "uint32": true, "uint64": true,
	"uintptr": true,
}

// Reserved reports whether name may not be declared in a generated file.
func Reserved(name string) bool {
	return preamble[name] || goReserved[name]
}

// Sanitize converts a raw tag or attribute name into an exported Go
// identifier. Hyphenated names become camel case ("accept-charset" to
// "AcceptCharset"). If the result lands on a reserved identifier an
// underscore is appended until it no longer does.
//
// Sanitize is pure and deterministic; it does not resolve a raw name
// being used as both an element and an attribute. That case is handled
// by keeping elements and attributes in separate generated packages.
func Sanitize(raw string) string {
	var b strings.Builder
	for _, part := range strings.Split(raw, "-") {
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	name := b.String()
	for Reserved(name) {
		name += "_"
	}
	return name
}
