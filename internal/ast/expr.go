package ast

import "github.com/kolkov/juanc/internal/token"

// IntLit represents an integer literal.
// Example: 42
type IntLit struct {
	BaseExpr
	Value int64  // Parsed value
	Raw   string // Original source text
}

// StrLit represents a string literal.
// Example: "hola\n"
type StrLit struct {
	BaseExpr
	Value string // Unescaped string value
	Raw   string // Source text including the quotes and escapes
}

// Ident represents a variable reference.
type Ident struct {
	BaseExpr
	Name string
}

// BinaryExpr represents an arithmetic or comparison operation.
// Examples: a + b, x * 2, s == "hola", i < 10
type BinaryExpr struct {
	BaseExpr
	Left  Expr        // Left operand
	Op    token.Token // Operator token
	Right Expr        // Right operand
}

// GroupExpr represents a parenthesized expression.
// Used to preserve explicit grouping in the source.
// Example: (a + b)
type GroupExpr struct {
	BaseExpr
	Expr Expr // Inner expression
}

// Ensure all expression types implement Expr interface.
var (
	_ Expr = (*IntLit)(nil)
	_ Expr = (*StrLit)(nil)
	_ Expr = (*Ident)(nil)
	_ Expr = (*BinaryExpr)(nil)
	_ Expr = (*GroupExpr)(nil)
)
