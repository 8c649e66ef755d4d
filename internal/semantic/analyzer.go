package semantic

import (
	"fmt"

	"github.com/kolkov/juanc/internal/ast"
	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// Info contains the results of semantic analysis.
type Info struct {
	// Symbols is the program-wide symbol table.
	Symbols *SymbolTable

	// Types maps every analyzed expression to its inferred type.
	Types map[ast.Expr]types.Type

	// Diagnostics holds the errors and warnings in detection order.
	Diagnostics *Diagnostics
}

// TypeOf returns the inferred type of e, or Invalid if e was never analyzed.
func (info *Info) TypeOf(e ast.Expr) types.Type {
	return info.Types[e]
}

// IsSuspicious reports whether cond was flagged as a condition that is
// not a comparison.
func (info *Info) IsSuspicious(cond ast.Expr) bool {
	if ast.IsComparison(cond) {
		return false
	}
	t := info.Types[cond]
	return t == types.Integer || t == types.Text
}

// Analyzer walks a program once, filling the symbol table and
// accumulating diagnostics.
type Analyzer struct {
	symbols  *SymbolTable
	types    map[ast.Expr]types.Type
	errors   ErrorList
	warnings WarningList
}

// Analyze performs semantic analysis on a parsed program.
// It never stops at the first error. A declaration whose type is not
// declarable is a malformed tree and causes a panic with *InternalError.
func Analyze(prog *ast.Program) *Info {
	a := &Analyzer{
		symbols: NewSymbolTable(),
		types:   make(map[ast.Expr]types.Type),
	}

	a.analyzeStmts(prog.Stmts)

	return &Info{
		Symbols: a.symbols,
		Types:   a.types,
		Diagnostics: &Diagnostics{
			ErrorList:   a.errors,
			WarningList: a.warnings,
		},
	}
}

func (a *Analyzer) analyzeStmts(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		a.analyzeStmt(stmt)
	}
}

func (a *Analyzer) analyzeBlock(b *ast.Block) {
	if b == nil {
		return
	}
	a.analyzeStmts(b.Stmts)
}

func (a *Analyzer) analyzeStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		a.analyzeDecl(s)

	case *ast.AssignStmt:
		valueType := a.inferExpr(s.Value)
		sym, ok := a.symbols.Lookup(s.Name)
		if !ok {
			a.errors.Add(UndeclaredIdentifier, s.NamePos, errUndeclared, s.Name)
			return
		}
		if valueType != types.Invalid && valueType != sym.Type {
			a.mismatch(s.Value.Pos(), sym.Type, valueType, errAssignMismatch, valueType, sym.Type, s.Name)
		}

	case *ast.PrintStmt:
		a.inferExpr(s.Value)

	case *ast.IfStmt:
		a.analyzeCond(s.Cond)
		a.analyzeBlock(s.Then)
		a.analyzeBlock(s.Else)

	case *ast.WhileStmt:
		a.analyzeCond(s.Cond)
		a.analyzeBlock(s.Body)

	default:
		panic(&InternalError{Pos: stmt.Pos(), Message: fmt.Sprintf("unexpected statement %T", stmt)})
	}
}

// analyzeDecl checks a declaration. The initializer is analyzed before
// the name is registered, so a variable cannot appear in its own
// initializer. The name is registered even if the initializer is ill-typed.
func (a *Analyzer) analyzeDecl(s *ast.DeclStmt) {
	if !s.Type.IsDeclarable() {
		panic(&InternalError{
			Pos:     s.Pos(),
			Message: fmt.Sprintf("declaration of %q has type %s", s.Name, s.Type),
		})
	}

	prev, duplicate := a.symbols.Lookup(s.Name)
	if duplicate {
		a.errors.Add(DuplicateDeclaration, s.NamePos, errDuplicateDecl, s.Name, prev.Pos)
	}

	if s.Init != nil {
		initType := a.inferExpr(s.Init)
		if initType != types.Invalid && initType != s.Type {
			a.mismatch(s.Init.Pos(), s.Type, initType, errDeclMismatch, s.Type, s.Name, initType)
		}
	}

	if !duplicate {
		a.symbols.Define(s.Name, s.Type, s.NamePos)
	}
}

// analyzeCond infers a condition and warns when it is not a comparison.
func (a *Analyzer) analyzeCond(cond ast.Expr) {
	t := a.inferExpr(cond)
	if ast.IsComparison(cond) {
		return
	}
	if t == types.Integer || t == types.Text {
		a.warnings.Add(SuspiciousCondition, cond.Pos(), warnSuspiciousCond, t)
	}
}

// inferExpr returns the type of e and records it.
func (a *Analyzer) inferExpr(e ast.Expr) types.Type {
	t := a.infer(e)
	a.types[e] = t
	return t
}

func (a *Analyzer) infer(e ast.Expr) types.Type {
	switch n := e.(type) {
	case *ast.IntLit:
		return types.Integer

	case *ast.StrLit:
		return types.Text

	case *ast.Ident:
		sym, ok := a.symbols.Lookup(n.Name)
		if !ok {
			a.errors.Add(UndeclaredIdentifier, n.Pos(), errUndeclared, n.Name)
			return types.Invalid
		}
		sym.Used = true
		return sym.Type

	case *ast.GroupExpr:
		return a.inferExpr(n.Expr)

	case *ast.BinaryExpr:
		left := a.inferExpr(n.Left)
		right := a.inferExpr(n.Right)
		if n.Op.IsComparison() {
			return a.checkComparison(n, left, right)
		}
		return a.checkArithmetic(n, left, right)

	default:
		panic(&InternalError{Pos: e.Pos(), Message: fmt.Sprintf("unexpected expression %T", e)})
	}
}

// checkArithmetic types + - * /. Integer operands give Integer and
// Text + Text gives Text; every other mix is a TypeMismatch.
func (a *Analyzer) checkArithmetic(n *ast.BinaryExpr, left, right types.Type) types.Type {
	if left == types.Invalid || right == types.Invalid {
		return types.Invalid
	}

	switch {
	case left == types.Integer && right == types.Integer:
		return types.Integer
	case n.Op == token.ADD && left == types.Text && right == types.Text:
		return types.Text
	case left == right || n.Op != token.ADD:
		actual := left
		if left == types.Integer {
			actual = right
		}
		a.mismatch(n.Pos(), types.Integer, actual, errArithOperands, n.Op, left, right)
	default:
		a.mismatch(n.Pos(), left, right, errMixedOperands, left, right, n.Op)
	}
	return types.Invalid
}

// checkComparison types == != < > <= >=. The result is always Boolean so
// that a broken comparison does not also trigger a condition warning.
func (a *Analyzer) checkComparison(n *ast.BinaryExpr, left, right types.Type) types.Type {
	if left == types.Invalid || right == types.Invalid {
		return types.Boolean
	}

	switch {
	case left == types.Boolean || right == types.Boolean:
		a.errors.Add(UnsupportedOperation, n.Pos(), errCompareBoolean, n.Op)
	case left != right:
		a.mismatch(n.Pos(), left, right, errCompareMismatch, left, right)
	case left == types.Text && n.Op.IsOrdering():
		a.errors.Add(UnsupportedOperation, n.Pos(), errOrderingText, n.Op)
	}
	return types.Boolean
}

// mismatch records a TypeMismatch carrying the expected and actual types.
func (a *Analyzer) mismatch(pos token.Position, expected, actual types.Type, format string, args ...any) {
	err := errorf(TypeMismatch, pos, format, args...)
	err.Expected = expected
	err.Actual = actual
	a.errors = append(a.errors, err)
}
