package juanc

import (
	"fmt"
)

// ParseError represents a syntax error in Juan source code.
// When the parser found several errors, the first one is reported
// and Count holds the total.
type ParseError struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Message string // Error description
	Count   int    // Number of syntax errors found

	// Incomplete is true when the source ended inside an open
	// si or mientras block.
	Incomplete bool
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// CompileError reports the semantic errors that blocked code generation.
type CompileError struct {
	Errors []string // Error messages in detection order
}

func (e *CompileError) Error() string {
	switch len(e.Errors) {
	case 0:
		return "compile error"
	case 1:
		return fmt.Sprintf("compile error: %s", e.Errors[0])
	default:
		return fmt.Sprintf("compile error: %s (and %d more errors)", e.Errors[0], len(e.Errors)-1)
	}
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string // Config field name
	Message string // Error description
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}
