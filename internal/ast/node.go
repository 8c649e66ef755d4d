// Package ast defines the abstract syntax tree for Juan programs.
//
// The tree is produced once by the parser and treated as immutable by the
// semantic analyzer and the code generator. Statement and expression kinds
// are closed sums: each variant implements an unexported marker method, and
// both passes switch over every variant explicitly.
//
// Node hierarchy:
//
//	Node (interface)
//	├── Expr (interface) - expressions that produce values
//	│   ├── IntLit, StrLit - literals
//	│   ├── Ident - variable reference
//	│   ├── BinaryExpr - arithmetic and comparison
//	│   └── GroupExpr - source parentheses
//	├── Stmt (interface) - statements that perform actions
//	│   ├── DeclStmt, AssignStmt, PrintStmt - simple
//	│   └── IfStmt, WhileStmt - compound, own Blocks
//	└── Program, Block - containers
package ast

import "github.com/kolkov/juanc/internal/token"

// Node is the interface implemented by all AST nodes.
// It provides source position information for error reporting.
type Node interface {
	// Pos returns the position of the first character belonging to this node.
	Pos() token.Position

	// End returns the position of the first character immediately after this node.
	End() token.Position
}

// Expr is the interface for all expression nodes.
type Expr interface {
	Node
	exprNode() // marker method to prevent external implementations
}

// Stmt is the interface for all statement nodes.
type Stmt interface {
	Node
	stmtNode() // marker method to prevent external implementations
}

// BaseExpr provides common fields for all expression nodes.
// Embedded in concrete expression types for position tracking.
type BaseExpr struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseExpr) Pos() token.Position { return b.StartPos }
func (b *BaseExpr) End() token.Position { return b.EndPos }
func (b *BaseExpr) exprNode()           {}

// BaseStmt provides common fields for all statement nodes.
// Embedded in concrete statement types for position tracking.
type BaseStmt struct {
	StartPos token.Position // Position of first token
	EndPos   token.Position // Position after last token
}

func (b *BaseStmt) Pos() token.Position { return b.StartPos }
func (b *BaseStmt) End() token.Position { return b.EndPos }
func (b *BaseStmt) stmtNode()           {}

// Unparen strips any GroupExpr wrappers around e.
func Unparen(e Expr) Expr {
	for {
		g, ok := e.(*GroupExpr)
		if !ok {
			return e
		}
		e = g.Expr
	}
}

// IsComparison reports whether e (ignoring parentheses) is a comparison.
// Comparisons are the only boolean-shaped expressions in Juan.
func IsComparison(e Expr) bool {
	b, ok := Unparen(e).(*BinaryExpr)
	return ok && b.Op.IsComparison()
}

// -----------------------------------------------------------------------------
// Constructor helpers
// -----------------------------------------------------------------------------

// MakeBaseExpr creates a BaseExpr with the given positions.
func MakeBaseExpr(start, end token.Position) BaseExpr {
	return BaseExpr{StartPos: start, EndPos: end}
}

// MakeBaseStmt creates a BaseStmt with the given positions.
func MakeBaseStmt(start, end token.Position) BaseStmt {
	return BaseStmt{StartPos: start, EndPos: end}
}
