package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/juanc/internal/types"
)

// Printer writes Juan source text for AST nodes.
// The output is normalized (one statement per line, four-space indent)
// and parses back to an equivalent tree.
type Printer struct {
	w      io.Writer
	indent int
	err    error
}

// NewPrinter creates a new Printer that writes to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Print writes the source form of node to the writer.
func (p *Printer) Print(node Node) error {
	p.printNode(node)
	return p.err
}

func (p *Printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *Printer) writeIndent() {
	if p.err != nil {
		return
	}
	for i := 0; i < p.indent; i++ {
		_, p.err = io.WriteString(p.w, "    ")
	}
}

func (p *Printer) printNode(node Node) {
	if node == nil {
		p.printf("<nil>")
		return
	}

	switch n := node.(type) {
	case *Program:
		p.printStmts(n.Stmts)
	case *Block:
		p.printStmts(n.Stmts)
	case Expr:
		p.printExpr(n)
	case Stmt:
		p.printStmt(n)
	default:
		p.printf("<%T>", node)
	}
}

func (p *Printer) printStmts(stmts []Stmt) {
	for _, s := range stmts {
		p.writeIndent()
		p.printStmt(s)
		p.printf("\n")
	}
}

func (p *Printer) printBlock(b *Block) {
	if b == nil {
		return
	}
	p.indent++
	p.printStmts(b.Stmts)
	p.indent--
}

func (p *Printer) printStmt(s Stmt) {
	switch n := s.(type) {
	case *DeclStmt:
		p.printf("%s %s", typeKeyword(n.Type), n.Name)
		if n.Init != nil {
			p.printf(" = ")
			p.printExpr(n.Init)
		}

	case *AssignStmt:
		p.printf("%s = ", n.Name)
		p.printExpr(n.Value)

	case *PrintStmt:
		p.printf("imprimir ")
		p.printExpr(n.Value)

	case *IfStmt:
		p.printf("si ")
		p.printExpr(n.Cond)
		p.printf("\n")
		p.printBlock(n.Then)
		if n.Else != nil {
			p.writeIndent()
			p.printf("sino\n")
			p.printBlock(n.Else)
		}
		p.writeIndent()
		p.printf("fin")

	case *WhileStmt:
		p.printf("mientras ")
		p.printExpr(n.Cond)
		p.printf("\n")
		p.printBlock(n.Body)
		p.writeIndent()
		p.printf("fin")

	default:
		p.printf("<%T>", s)
	}
}

func (p *Printer) printExpr(e Expr) {
	if e == nil {
		p.printf("<nil>")
		return
	}

	switch n := e.(type) {
	case *IntLit:
		if n.Raw != "" {
			p.printf("%s", n.Raw)
		} else {
			p.printf("%d", n.Value)
		}

	case *StrLit:
		if n.Raw != "" {
			p.printf("%s", n.Raw)
		} else {
			p.printf("%s", Quote(n.Value))
		}

	case *Ident:
		p.printf("%s", n.Name)

	case *BinaryExpr:
		p.printOperand(n.Left)
		p.printf(" %s ", n.Op)
		p.printOperand(n.Right)

	case *GroupExpr:
		p.printf("(")
		p.printExpr(n.Expr)
		p.printf(")")

	default:
		p.printf("<%T>", e)
	}
}

func (p *Printer) printOperand(e Expr) {
	if needsParens(e) {
		p.printf("(")
		p.printExpr(e)
		p.printf(")")
		return
	}
	p.printExpr(e)
}

// String returns the source form of the node.
func String(node Node) string {
	var sb strings.Builder
	p := NewPrinter(&sb)
	p.Print(node)
	return sb.String()
}

// Quote returns s as a Juan string literal.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\n':
			sb.WriteString(`\n`)
		case '\t':
			sb.WriteString(`\t`)
		case '\r':
			sb.WriteString(`\r`)
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

func needsParens(e Expr) bool {
	_, ok := e.(*BinaryExpr)
	return ok
}

func typeKeyword(t types.Type) string {
	switch t {
	case types.Integer:
		return "entero"
	case types.Text:
		return "cadena"
	default:
		return "<" + t.String() + ">"
	}
}
