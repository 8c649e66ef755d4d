package juanc

import (
	"github.com/kolkov/juanc/internal/ast"
	"github.com/kolkov/juanc/internal/semantic"
)

// Result is the outcome of analyzing a Juan program.
// Errors block generation; warnings do not.
type Result struct {
	program *ast.Program
	info    *semantic.Info
	config  Config
	java    string // generated source, empty when there are errors
}

// Variable describes a declared Juan variable.
type Variable struct {
	Name string // Variable name
	Type string // "entero" or "cadena"
	Line int    // Line of the declaration
	Used bool   // Whether the variable is read anywhere
}

// HasErrors reports whether the analysis found any error.
func (r *Result) HasErrors() bool {
	return r.info.Diagnostics.HasErrors()
}

// Errors returns the semantic error messages in detection order.
func (r *Result) Errors() []string {
	return r.info.Diagnostics.Errors()
}

// Warnings returns the warning messages in detection order.
func (r *Result) Warnings() []string {
	return r.info.Diagnostics.Warnings()
}

// Java returns the generated Java source, or "" if HasErrors is true.
func (r *Result) Java() string {
	return r.java
}

// ClassName returns the name of the generated Java class.
func (r *Result) ClassName() string {
	return r.config.ClassName
}

// Variables returns the declared variables in declaration order.
func (r *Result) Variables() []Variable {
	syms := r.info.Symbols.Symbols()
	vars := make([]Variable, len(syms))
	for i, sym := range syms {
		vars[i] = Variable{
			Name: sym.Name,
			Type: sym.Type.String(),
			Line: sym.Pos.Line,
			Used: sym.Used,
		}
	}
	return vars
}

// Source returns the program printed back in normalized Juan form.
func (r *Result) Source() string {
	return ast.String(r.program)
}
