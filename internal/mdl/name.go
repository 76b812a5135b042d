// Package mdl writes the export artifacts: the geometry/attribute file,
// the hierarchy code file and the texture data files, in the layout the
// Saturn graphics library's samples expect.
package mdl

import (
	"regexp"
	"strings"
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9\s]`)

// SafeName strips every character outside alphanumerics and whitespace,
// guaranteeing downstream identifiers are valid. Idempotent.
func SafeName(name string) string {
	return unsafeChars.ReplaceAllString(name, "")
}

// CIdent collapses whitespace out of a sanitized name and lowercases it,
// the form used for transform-state variables.
func CIdent(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(SafeName(name)), ""))
}

// FuncName upper-cases the first letter of a C identifier, the form used
// for generated function names.
func FuncName(name string) string {
	id := CIdent(name)
	if id == "" {
		return id
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

// TexDefName derives the texture-number preprocessor symbol from the
// export base name, e.g. "space ship" → "SPACESHIP_TEXNO".
func TexDefName(base string) string {
	return strings.ToUpper(strings.Join(strings.Fields(SafeName(base)), "")) + "_TEXNO"
}
