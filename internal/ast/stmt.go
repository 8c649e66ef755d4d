package ast

import (
	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// DeclStmt declares a typed variable, optionally initialized.
// Examples:
//   - entero x
//   - cadena saludo = "hola"
type DeclStmt struct {
	BaseStmt
	Type    types.Type     // Declared type (Integer or Text)
	Name    string         // Variable name
	NamePos token.Position // Position of the name
	Init    Expr           // Initializer (nil if absent)
}

// AssignStmt assigns a new value to a declared variable.
// Example: x = x + 1
type AssignStmt struct {
	BaseStmt
	Name    string
	NamePos token.Position
	Value   Expr
}

// PrintStmt writes a value to the console.
// Example: imprimir "total: " + t
type PrintStmt struct {
	BaseStmt
	Value Expr
}

// IfStmt represents si/sino/fin.
type IfStmt struct {
	BaseStmt
	Cond Expr   // Condition expression
	Then *Block // Then branch
	Else *Block // Else branch (nil if no sino)
}

// WhileStmt represents mientras/fin.
type WhileStmt struct {
	BaseStmt
	Cond Expr   // Loop condition
	Body *Block // Loop body
}

// Block is the statement list of a si/sino arm or a mientras body.
// It does not open a new scope.
type Block struct {
	Stmts    []Stmt // Statements in the block (may be empty)
	StartPos token.Position
	EndPos   token.Position
}

// Pos returns the position of the first token in the block.
func (b *Block) Pos() token.Position { return b.StartPos }

// End returns the position after the last token in the block.
func (b *Block) End() token.Position { return b.EndPos }

// Ensure all statement types implement Stmt interface.
var (
	_ Stmt = (*DeclStmt)(nil)
	_ Stmt = (*AssignStmt)(nil)
	_ Stmt = (*PrintStmt)(nil)
	_ Stmt = (*IfStmt)(nil)
	_ Stmt = (*WhileStmt)(nil)
	_ Node = (*Block)(nil)
)
