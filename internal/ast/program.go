package ast

import "github.com/kolkov/juanc/internal/token"

// Program represents a complete Juan program: an ordered list of
// top-level statements.
type Program struct {
	// Source file name (for error messages and provenance)
	Filename string

	// Top-level statements in source order.
	Stmts []Stmt

	// Position information for the entire program.
	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the first token in the program.
func (p *Program) Pos() token.Position { return p.StartPos }

// End returns the position after the last token in the program.
func (p *Program) End() token.Position { return p.EndPos }

var _ Node = (*Program)(nil)
