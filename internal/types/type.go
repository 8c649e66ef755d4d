// Package types defines the static types of Juan values.
package types

import "github.com/kolkov/juanc/internal/token"

// Type is the static type of a Juan expression or variable.
//
// Only Integer and Text can be declared. Boolean is produced by comparison
// operators and exists only during analysis; Invalid marks an expression
// whose type could not be determined so that dependent checks stay quiet.
type Type uint8

const (
	Invalid Type = iota // Unknown or erroneous
	Integer             // entero
	Text                // cadena
	Boolean             // result of a comparison
)

// String returns the name used in diagnostics.
func (t Type) String() string {
	switch t {
	case Invalid:
		return "invalid"
	case Integer:
		return "entero"
	case Text:
		return "cadena"
	case Boolean:
		return "booleano"
	default:
		return "unknown"
	}
}

// IsDeclarable reports whether a variable may be declared with type t.
func (t Type) IsDeclarable() bool {
	return t == Integer || t == Text
}

// IsValid reports whether t is a known type.
func (t Type) IsValid() bool {
	return t == Integer || t == Text || t == Boolean
}

// FromKeyword maps a type keyword token to its Type.
// Returns Invalid for any other token.
func FromKeyword(tok token.Token) Type {
	switch tok {
	case token.ENTERO:
		return Integer
	case token.CADENA:
		return Text
	default:
		return Invalid
	}
}
