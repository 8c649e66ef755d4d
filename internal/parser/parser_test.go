package parser_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/go-test/deep"

	"github.com/kolkov/juanc/internal/ast"
	"github.com/kolkov/juanc/internal/parser"
	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// stripStmt zeroes source positions so trees can be compared structurally.
func stripStmt(s ast.Stmt) ast.Stmt {
	switch n := s.(type) {
	case *ast.DeclStmt:
		return &ast.DeclStmt{Type: n.Type, Name: n.Name, Init: stripExpr(n.Init)}
	case *ast.AssignStmt:
		return &ast.AssignStmt{Name: n.Name, Value: stripExpr(n.Value)}
	case *ast.PrintStmt:
		return &ast.PrintStmt{Value: stripExpr(n.Value)}
	case *ast.IfStmt:
		return &ast.IfStmt{Cond: stripExpr(n.Cond), Then: stripBlock(n.Then), Else: stripBlock(n.Else)}
	case *ast.WhileStmt:
		return &ast.WhileStmt{Cond: stripExpr(n.Cond), Body: stripBlock(n.Body)}
	}
	return s
}

func stripBlock(b *ast.Block) *ast.Block {
	if b == nil {
		return nil
	}
	out := &ast.Block{}
	for _, s := range b.Stmts {
		out.Stmts = append(out.Stmts, stripStmt(s))
	}
	return out
}

func stripExpr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.IntLit:
		return &ast.IntLit{Value: n.Value}
	case *ast.StrLit:
		return &ast.StrLit{Value: n.Value}
	case *ast.Ident:
		return &ast.Ident{Name: n.Name}
	case *ast.BinaryExpr:
		return &ast.BinaryExpr{Left: stripExpr(n.Left), Op: n.Op, Right: stripExpr(n.Right)}
	case *ast.GroupExpr:
		return &ast.GroupExpr{Expr: stripExpr(n.Expr)}
	}
	return e
}

func stripProgram(p *ast.Program) []ast.Stmt {
	var out []ast.Stmt
	for _, s := range p.Stmts {
		out = append(out, stripStmt(s))
	}
	return out
}

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }
func num(v int64) *ast.IntLit      { return &ast.IntLit{Value: v} }
func str(v string) *ast.StrLit     { return &ast.StrLit{Value: v} }
func bin(l ast.Expr, op token.Token, r ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Left: l, Op: op, Right: r}
}

// TestParseEmpty tests parsing an empty program.
func TestParseEmpty(t *testing.T) {
	for _, src := range []string{"", "\n\n", "# solo un comentario\n", " ; ;\n"} {
		prog, err := parser.Parse(src)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", src, err)
		}
		if prog == nil {
			t.Fatalf("Parse(%q) returned nil program", src)
		}
		if len(prog.Stmts) != 0 {
			t.Errorf("Parse(%q) statements = %d, want 0", src, len(prog.Stmts))
		}
	}
}

// TestParseStatements compares parsed trees against expected shapes.
func TestParseStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []ast.Stmt
	}{
		{
			name: "declaration without initializer",
			src:  "entero x",
			want: []ast.Stmt{&ast.DeclStmt{Type: types.Integer, Name: "x"}},
		},
		{
			name: "declarations with initializers",
			src:  "entero x = 5\ncadena s = \"hola\"",
			want: []ast.Stmt{
				&ast.DeclStmt{Type: types.Integer, Name: "x", Init: num(5)},
				&ast.DeclStmt{Type: types.Text, Name: "s", Init: str("hola")},
			},
		},
		{
			name: "assignment and print separated by semicolon",
			src:  "x = x + 1; imprimir x",
			want: []ast.Stmt{
				&ast.AssignStmt{Name: "x", Value: bin(ident("x"), token.ADD, num(1))},
				&ast.PrintStmt{Value: ident("x")},
			},
		},
		{
			name: "precedence",
			src:  "imprimir 1 + 2 * 3",
			want: []ast.Stmt{
				&ast.PrintStmt{Value: bin(num(1), token.ADD, bin(num(2), token.MUL, num(3)))},
			},
		},
		{
			name: "left associativity",
			src:  "imprimir 10 - 4 - 3",
			want: []ast.Stmt{
				&ast.PrintStmt{Value: bin(bin(num(10), token.SUB, num(4)), token.SUB, num(3))},
			},
		},
		{
			name: "grouping",
			src:  "imprimir (1 + 2) * 3",
			want: []ast.Stmt{
				&ast.PrintStmt{Value: bin(&ast.GroupExpr{Expr: bin(num(1), token.ADD, num(2))}, token.MUL, num(3))},
			},
		},
		{
			name: "comparison binds loosest",
			src:  "imprimir a + 1 >= b * 2",
			want: []ast.Stmt{
				&ast.PrintStmt{Value: bin(bin(ident("a"), token.ADD, num(1)), token.GTE, bin(ident("b"), token.MUL, num(2)))},
			},
		},
		{
			name: "if without else",
			src:  "si x > 3\n  imprimir x\nfin",
			want: []ast.Stmt{
				&ast.IfStmt{
					Cond: bin(ident("x"), token.GREATER, num(3)),
					Then: &ast.Block{Stmts: []ast.Stmt{&ast.PrintStmt{Value: ident("x")}}},
				},
			},
		},
		{
			name: "if with else",
			src:  "si s == \"a\"\n imprimir 1\nsino\n imprimir 2\nfin",
			want: []ast.Stmt{
				&ast.IfStmt{
					Cond: bin(ident("s"), token.EQUALS, str("a")),
					Then: &ast.Block{Stmts: []ast.Stmt{&ast.PrintStmt{Value: num(1)}}},
					Else: &ast.Block{Stmts: []ast.Stmt{&ast.PrintStmt{Value: num(2)}}},
				},
			},
		},
		{
			name: "empty blocks",
			src:  "si x\nsino\nfin\nmientras x\nfin",
			want: []ast.Stmt{
				&ast.IfStmt{Cond: ident("x"), Then: &ast.Block{}, Else: &ast.Block{}},
				&ast.WhileStmt{Cond: ident("x"), Body: &ast.Block{}},
			},
		},
		{
			name: "nested while and if",
			src: strings.Join([]string{
				"mientras i < 3",
				"  si i != 1",
				"    entero t = i",
				"  fin",
				"  i = i + 1",
				"fin",
			}, "\n"),
			want: []ast.Stmt{
				&ast.WhileStmt{
					Cond: bin(ident("i"), token.LESS, num(3)),
					Body: &ast.Block{Stmts: []ast.Stmt{
						&ast.IfStmt{
							Cond: bin(ident("i"), token.NOT_EQUALS, num(1)),
							Then: &ast.Block{Stmts: []ast.Stmt{
								&ast.DeclStmt{Type: types.Integer, Name: "t", Init: ident("i")},
							}},
						},
						&ast.AssignStmt{Name: "i", Value: bin(ident("i"), token.ADD, num(1))},
					}},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parser.Parse(tt.src)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			if diff := deep.Equal(stripProgram(prog), tt.want); diff != nil {
				t.Error(diff)
			}
		})
	}
}

// TestParseRoundTrip checks that printing a parsed program gives the
// normalized source back.
func TestParseRoundTrip(t *testing.T) {
	src := strings.Join([]string{
		"entero x = 0",
		`cadena s = "a\tb"`,
		"mientras x < 3",
		"    si ((x + 1) * 2) == 4",
		"        imprimir s",
		"    sino",
		"        imprimir x",
		"    fin",
		"    x = x + 1",
		"fin",
		"",
	}, "\n")

	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := ast.String(prog); got != src {
		t.Errorf("String() =\n%s\nwant\n%s", got, src)
	}
}

// TestParsePositions verifies that nodes carry source positions.
func TestParsePositions(t *testing.T) {
	prog, err := parser.ParseFile("demo.juan", []byte("entero x = 5\n  imprimir x"))
	if err != nil {
		t.Fatalf("ParseFile() error = %v", err)
	}
	if prog.Filename != "demo.juan" {
		t.Errorf("Filename = %q, want demo.juan", prog.Filename)
	}

	decl := prog.Stmts[0].(*ast.DeclStmt)
	if decl.Pos().Line != 1 || decl.Pos().Column != 1 {
		t.Errorf("decl pos = %s, want 1:1", decl.Pos())
	}
	if decl.NamePos.Column != 8 {
		t.Errorf("decl name column = %d, want 8", decl.NamePos.Column)
	}
	if decl.Init.End().Column != 13 {
		t.Errorf("init end column = %d, want 13", decl.Init.End().Column)
	}

	ps := prog.Stmts[1].(*ast.PrintStmt)
	if ps.Pos().Line != 2 || ps.Pos().Column != 3 {
		t.Errorf("print pos = %s, want 2:3", ps.Pos())
	}
	if ps.Value.Pos().Filename != "demo.juan" {
		t.Errorf("filename = %q, want demo.juan", ps.Value.Pos().Filename)
	}
}

// TestParseErrors tests syntax error reporting.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantMsg string
		line    int
	}{
		{"missing name", "entero = 5", "expected name, got =", 1},
		{"missing expression", "imprimir", "expected expression, got end of file", 1},
		{"missing assign", "x 5", "expected =, got 5", 1},
		{"stray fin", "fin", "fin without matching si or mientras", 1},
		{"stray sino", "imprimir 1\nsino", "sino without matching si or mientras", 2},
		{"chained comparison", "imprimir 1 < 2 < 3", "comparison operators cannot be chained", 1},
		{"unclosed paren", "imprimir (1 + 2", "expected ), got end of file", 1},
		{"two statements on a line", "imprimir 1 imprimir 2", "expected newline or ;, got imprimir", 1},
		{"illegal character", "entero x = 5 @", "unexpected character '@'", 1},
		{"lone bang", "imprimir !x", "unexpected '!'", 1},
		{"unterminated string", "imprimir \"abc", "unterminated string", 1},
		{"out of range", "imprimir 99999999999999999999", "integer literal 99999999999999999999 out of range", 1},
		{"keyword as name", "entero si = 1", "expected name, got si", 1},
		{"error on later line", "entero x\nx = = 2", "expected expression, got =", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			if err == nil {
				t.Fatal("Parse() expected error, got nil")
			}
			var list parser.ErrorList
			if !errors.As(err, &list) {
				t.Fatalf("error type = %T, want parser.ErrorList", err)
			}
			first := list[0]
			if !strings.Contains(first.Message, tt.wantMsg) {
				t.Errorf("message = %q, want containing %q", first.Message, tt.wantMsg)
			}
			if first.Pos.Line != tt.line {
				t.Errorf("line = %d, want %d", first.Pos.Line, tt.line)
			}
			if parser.IsIncomplete(err) {
				t.Error("IsIncomplete() = true, want false")
			}
		})
	}
}

// TestParseErrorRecovery checks that the parser reports errors on
// several lines in one pass.
func TestParseErrorRecovery(t *testing.T) {
	_, err := parser.Parse("entero = 1\nimprimir 2\nx = \ncadena")
	var list parser.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("error type = %T, want parser.ErrorList", err)
	}
	if len(list) != 3 {
		t.Fatalf("errors = %d, want 3: %v", len(list), err)
	}
	for i, line := range []int{1, 3, 4} {
		if list[i].Pos.Line != line {
			t.Errorf("error %d line = %d, want %d", i, list[i].Pos.Line, line)
		}
	}
}

// TestParseIncomplete checks detection of input that ends inside a block.
func TestParseIncomplete(t *testing.T) {
	tests := []struct {
		src        string
		incomplete bool
	}{
		{"si x > 1", true},
		{"si x > 1\n imprimir x", true},
		{"si x > 1\n imprimir x\nsino", true},
		{"mientras x < 3\n si x == 1\n imprimir x", true},
		{"si x > 1\n imprimir x\nfin", false},
		{"si x > 1\n imprimir\n", false},
		{"imprimir (", false},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			if err == nil {
				if tt.incomplete {
					t.Fatal("Parse() expected error, got nil")
				}
				return
			}
			if got := parser.IsIncomplete(err); got != tt.incomplete {
				t.Errorf("IsIncomplete() = %v, want %v (err: %v)", got, tt.incomplete, err)
			}
		})
	}
}

// TestParseExpr tests the expression entry point.
func TestParseExpr(t *testing.T) {
	expr, err := parser.ParseExpr(`"a" + s == "ab"`)
	if err != nil {
		t.Fatalf("ParseExpr() error = %v", err)
	}
	want := bin(bin(str("a"), token.ADD, ident("s")), token.EQUALS, str("ab"))
	if diff := deep.Equal(stripExpr(expr), ast.Expr(want)); diff != nil {
		t.Error(diff)
	}

	if _, err := parser.ParseExpr("1 2"); err == nil {
		t.Error("ParseExpr(\"1 2\") expected error, got nil")
	}
}
