// Package semantic provides semantic analysis for Juan programs.
//
// The analyzer performs a single traversal of the tree and:
//   - Builds the symbol table: one program-wide, insertion-ordered scope
//   - Resolves every identifier use against it
//   - Infers expression types and checks operator operands
//   - Accumulates diagnostics without stopping at the first error
//
// Juan has no dedicated boolean type. Comparisons are the only
// boolean-shaped expressions; using any other expression as a condition
// is allowed but produces a warning.
package semantic

import (
	"fmt"
	"strings"

	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// ErrorKind classifies a semantic error.
type ErrorKind uint8

const (
	DuplicateDeclaration ErrorKind = iota // name declared twice
	UndeclaredIdentifier                  // use of a name never declared
	TypeMismatch                          // operand or value of the wrong type
	UnsupportedOperation                  // operator not defined for the operand type
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case DuplicateDeclaration:
		return "DuplicateDeclaration"
	case UndeclaredIdentifier:
		return "UndeclaredIdentifier"
	case TypeMismatch:
		return "TypeMismatch"
	case UnsupportedOperation:
		return "UnsupportedOperation"
	default:
		return "unknown"
	}
}

// Error represents a semantic analysis error with source location.
// Expected and Actual are set for TypeMismatch.
type Error struct {
	Kind     ErrorKind
	Pos      token.Position
	Message  string
	Expected types.Type
	Actual   types.Type
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", e.Pos, e.Message)
	}
	return e.Message
}

// WarningKind classifies a semantic warning.
type WarningKind uint8

const (
	SuspiciousCondition WarningKind = iota // condition is not a comparison
)

// String returns the kind name.
func (k WarningKind) String() string {
	if k == SuspiciousCondition {
		return "SuspiciousCondition"
	}
	return "unknown"
}

// Warning represents a semantic warning (non-fatal issue).
type Warning struct {
	Kind    WarningKind
	Pos     token.Position
	Message string
}

// String returns the warning as a formatted string.
func (w *Warning) String() string {
	if w.Pos.IsValid() {
		return fmt.Sprintf("%s: %s", w.Pos, w.Message)
	}
	return w.Message
}

// ErrorList is a collection of semantic errors in detection order.
type ErrorList []*Error

// Add appends an error to the list.
func (el *ErrorList) Add(kind ErrorKind, pos token.Position, format string, args ...any) {
	*el = append(*el, errorf(kind, pos, format, args...))
}

// Err returns an error if the list is non-empty, nil otherwise.
func (el ErrorList) Err() error {
	if len(el) == 0 {
		return nil
	}
	return el
}

// Error implements the error interface for ErrorList.
func (el ErrorList) Error() string {
	switch len(el) {
	case 0:
		return "no errors"
	case 1:
		return el[0].Error()
	default:
		var sb strings.Builder
		sb.WriteString(el[0].Error())
		for _, e := range el[1:] {
			sb.WriteByte('\n')
			sb.WriteString(e.Error())
		}
		return sb.String()
	}
}

// WarningList is a collection of semantic warnings in detection order.
type WarningList []*Warning

// Add appends a warning to the list.
func (wl *WarningList) Add(kind WarningKind, pos token.Position, format string, args ...any) {
	*wl = append(*wl, &Warning{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

// Diagnostics holds everything the analyzer reported.
// Errors block code generation; warnings never do.
type Diagnostics struct {
	ErrorList   ErrorList
	WarningList WarningList
}

// HasErrors reports whether any error was recorded.
func (d *Diagnostics) HasErrors() bool {
	return len(d.ErrorList) > 0
}

// Errors returns the error messages in detection order.
func (d *Diagnostics) Errors() []string {
	out := make([]string, len(d.ErrorList))
	for i, e := range d.ErrorList {
		out[i] = e.Error()
	}
	return out
}

// Warnings returns the warning messages in detection order.
func (d *Diagnostics) Warnings() []string {
	out := make([]string, len(d.WarningList))
	for i, w := range d.WarningList {
		out[i] = w.String()
	}
	return out
}

// InternalError reports a tree the parser should never produce.
// The analyzer panics with it instead of recording a diagnostic.
type InternalError struct {
	Pos     token.Position
	Message string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("internal error at %s: %s", e.Pos, e.Message)
}

// errorf creates a new semantic error.
func errorf(kind ErrorKind, pos token.Position, format string, args ...any) *Error {
	return &Error{
		Kind:    kind,
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	}
}

// Common error messages as constants for consistency.
const (
	errDuplicateDecl   = "variable %q already declared at %s"
	errUndeclared      = "undeclared variable %q"
	errDeclMismatch    = "cannot initialize %s variable %q with %s value"
	errAssignMismatch  = "cannot assign %s value to %s variable %q"
	errArithOperands   = "operator %s requires entero operands, got %s and %s"
	errMixedOperands   = "mismatched types %s and %s for operator %s"
	errCompareMismatch = "cannot compare %s with %s"
	errOrderingText    = "operator %s is not supported on cadena values"
	errCompareBoolean  = "operator %s cannot compare the result of another comparison"
)

// Common warning messages.
const (
	warnSuspiciousCond = "condition is a %s value, not a comparison"
)
