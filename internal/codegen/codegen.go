// Package codegen translates an analyzed Juan program into Java source.
//
// Generation is a pure structural traversal: every statement returns its
// own fragment (hoisted declarations plus body code) and enclosing
// statements combine and re-indent fragments. No buffer is shared between
// statements, so generating the same tree twice yields identical text.
//
// The generator assumes a program without semantic errors. It performs no
// checks of its own; an unknown node kind is a defect and panics.
package codegen

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/kolkov/juanc/internal/ast"
	"github.com/kolkov/juanc/internal/semantic"
	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// Default output settings.
const (
	DefaultClassName = "JuanOut"
	DefaultIndent    = "    "
)

// Options control the shape of the generated compilation unit.
type Options struct {
	// ClassName is the name of the generated public class.
	// Empty means DefaultClassName.
	ClassName string

	// SourceName, when set, is written as a provenance comment.
	SourceName string

	// Indent is one indentation unit. Empty means DefaultIndent.
	Indent string
}

// fragment is the generated form of one statement or statement list.
type fragment struct {
	decls []string // hoisted declaration lines, in declaration order
	code  string   // statement lines, newline-terminated, unindented
}

// append adds other after f.
func (f *fragment) append(other fragment) {
	f.decls = append(f.decls, other.decls...)
	f.code += other.code
}

// Generator holds the read-only inputs of a generation run.
type Generator struct {
	info   *semantic.Info
	indent string
	names  map[string]string // renamed variables, see javaNames
}

// Generate produces the Java program for prog.
// info must come from semantic.Analyze on the same tree with no errors.
func Generate(prog *ast.Program, info *semantic.Info, opts Options) string {
	if opts.ClassName == "" {
		opts.ClassName = DefaultClassName
	}
	if opts.Indent == "" {
		opts.Indent = DefaultIndent
	}

	g := &Generator{info: info, indent: opts.Indent}
	if info.Symbols != nil {
		g.names = javaNames(info.Symbols.Names(), opts.ClassName)
	}
	body := g.genStmts(prog.Stmts)

	var sb strings.Builder
	sb.WriteString("import java.util.*;\n")
	if opts.SourceName != "" {
		fmt.Fprintf(&sb, "// Generated from: %s\n", opts.SourceName)
	}
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "public class %s {\n", opts.ClassName)
	fmt.Fprintf(&sb, "%spublic static void main(String[] args) {\n", opts.Indent)

	inner := opts.Indent + opts.Indent
	for _, decl := range body.decls {
		sb.WriteString(inner)
		sb.WriteString(decl)
		sb.WriteByte('\n')
	}
	sb.WriteString(indentLines(body.code, inner))

	fmt.Fprintf(&sb, "%s}\n", opts.Indent)
	sb.WriteString("}\n")
	return sb.String()
}

// -----------------------------------------------------------------------------
// Statements
// -----------------------------------------------------------------------------

func (g *Generator) genStmts(stmts []ast.Stmt) fragment {
	var f fragment
	for _, stmt := range stmts {
		f.append(g.genStmt(stmt))
	}
	return f
}

// genBlock generates a block and indents its code one level.
// Declarations stay unindented since they are hoisted to the top.
func (g *Generator) genBlock(b *ast.Block) fragment {
	if b == nil {
		return fragment{}
	}
	f := g.genStmts(b.Stmts)
	f.code = indentLines(f.code, g.indent)
	return f
}

func (g *Generator) genStmt(stmt ast.Stmt) fragment {
	switch s := stmt.(type) {
	case *ast.DeclStmt:
		var init string
		if s.Init != nil {
			init = g.genExpr(s.Init)
		} else {
			init = defaultValue(s.Type)
		}
		return fragment{
			decls: []string{fmt.Sprintf("%s %s = %s;", javaType(s.Type), g.javaName(s.Name), init)},
		}

	case *ast.AssignStmt:
		return fragment{code: fmt.Sprintf("%s = %s;\n", g.javaName(s.Name), g.genExpr(s.Value))}

	case *ast.PrintStmt:
		return fragment{code: fmt.Sprintf("System.out.println(%s);\n", g.genExpr(s.Value))}

	case *ast.IfStmt:
		then := g.genBlock(s.Then)
		f := fragment{decls: then.decls}
		f.code = "if (" + g.genCond(s.Cond) + ") {\n" + then.code
		if s.Else != nil {
			els := g.genBlock(s.Else)
			f.decls = append(f.decls, els.decls...)
			f.code += "} else {\n" + els.code
		}
		f.code += "}\n"
		return f

	case *ast.WhileStmt:
		body := g.genBlock(s.Body)
		cond := g.genCond(s.Cond)
		if isConstant(s.Cond) {
			// javac rejects the code after while (true) and the body of
			// while (false); a method call keeps the condition non-constant.
			cond = "Boolean.valueOf(" + cond + ")"
		}
		return fragment{
			decls: body.decls,
			code:  "while (" + cond + ") {\n" + body.code + "}\n",
		}

	default:
		panic(fmt.Sprintf("codegen: unexpected statement %T", stmt))
	}
}

// genCond generates a condition. Java only accepts boolean conditions, so
// an Integer or Text condition is compared against its zero value.
func (g *Generator) genCond(cond ast.Expr) string {
	code := g.genExpr(cond)
	if !g.info.IsSuspicious(cond) {
		return code
	}
	if g.info.TypeOf(cond) == types.Text {
		return "(!" + code + ".isEmpty())"
	}
	return "(" + code + " != 0)"
}

// -----------------------------------------------------------------------------
// Expressions
// -----------------------------------------------------------------------------

func (g *Generator) genExpr(e ast.Expr) string {
	switch n := e.(type) {
	case *ast.IntLit:
		return intLiteral(n.Value)

	case *ast.StrLit:
		// Juan escapes are a subset of Java's, so the source text is reused.
		if n.Raw == "" {
			return ast.Quote(n.Value)
		}
		return n.Raw

	case *ast.Ident:
		return g.javaName(n.Name)

	case *ast.GroupExpr:
		return g.genExpr(n.Expr)

	case *ast.BinaryExpr:
		left := g.genExpr(n.Left)
		right := g.genExpr(n.Right)
		if g.info.TypeOf(n.Left) == types.Text {
			switch n.Op {
			case token.EQUALS:
				return "Objects.equals(" + left + ", " + right + ")"
			case token.NOT_EQUALS:
				return "(!Objects.equals(" + left + ", " + right + "))"
			}
		}
		return "(" + left + " " + n.Op.String() + " " + right + ")"

	default:
		panic(fmt.Sprintf("codegen: unexpected expression %T", e))
	}
}

// isConstant reports whether e refers to no variable, which makes the
// generated integer expression a Java constant expression.
func isConstant(e ast.Expr) bool {
	switch n := e.(type) {
	case *ast.Ident:
		return false
	case *ast.GroupExpr:
		return isConstant(n.Expr)
	case *ast.BinaryExpr:
		return isConstant(n.Left) && isConstant(n.Right)
	default:
		return true
	}
}

// intLiteral formats v as a Java literal. Values outside the int range
// need the long suffix.
func intLiteral(v int64) string {
	s := strconv.FormatInt(v, 10)
	if v > math.MaxInt32 || v < math.MinInt32 {
		s += "L"
	}
	return s
}

// -----------------------------------------------------------------------------
// Helper functions
// -----------------------------------------------------------------------------

// javaName returns the Java name of a Juan variable.
func (g *Generator) javaName(name string) string {
	if renamed, ok := g.names[name]; ok {
		return renamed
	}
	return name
}

// javaType maps a declarable type to its Java type.
func javaType(t types.Type) string {
	switch t {
	case types.Integer:
		return "long"
	case types.Text:
		return "String"
	default:
		panic(fmt.Sprintf("codegen: no Java type for %s", t))
	}
}

// defaultValue is the initializer of a declaration without one.
func defaultValue(t types.Type) string {
	switch t {
	case types.Integer:
		return "0"
	case types.Text:
		return `""`
	default:
		panic(fmt.Sprintf("codegen: no default value for %s", t))
	}
}

// indentLines prefixes every non-empty line of code with prefix.
func indentLines(code, prefix string) string {
	if code == "" {
		return ""
	}
	lines := strings.SplitAfter(code, "\n")
	var sb strings.Builder
	for _, line := range lines {
		if line != "" && line != "\n" {
			sb.WriteString(prefix)
		}
		sb.WriteString(line)
	}
	return sb.String()
}
