package codegen_test

import (
	"strings"
	"testing"

	"github.com/kolkov/juanc/internal/ast"
	"github.com/kolkov/juanc/internal/codegen"
	"github.com/kolkov/juanc/internal/parser"
	"github.com/kolkov/juanc/internal/semantic"
	"github.com/kolkov/juanc/internal/token"
	"github.com/kolkov/juanc/internal/types"
)

// generate parses, analyzes and generates src with default options.
func generate(t *testing.T, src string) string {
	t.Helper()
	return generateWith(t, src, codegen.Options{})
}

func generateWith(t *testing.T, src string, opts codegen.Options) string {
	t.Helper()
	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	info := semantic.Analyze(prog)
	if info.Diagnostics.HasErrors() {
		t.Fatalf("semantic errors: %v", info.Diagnostics.Errors())
	}
	return codegen.Generate(prog, info, opts)
}

// wrap builds the expected compilation unit around body lines, which are
// given relative to the main method body.
func wrap(body ...string) string {
	var sb strings.Builder
	sb.WriteString("import java.util.*;\n\npublic class JuanOut {\n")
	sb.WriteString("    public static void main(String[] args) {\n")
	for _, line := range body {
		sb.WriteString("        " + line + "\n")
	}
	sb.WriteString("    }\n}\n")
	return sb.String()
}

func TestGenerateEmpty(t *testing.T) {
	got := generate(t, "")
	if want := wrap(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateHoisting(t *testing.T) {
	got := generate(t, "entero x = 5\nentero y = x + 3")
	want := wrap(
		"long x = 5;",
		"long y = (x + 3);",
	)
	if got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestGenerateStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "defaults",
			src:  "entero n\ncadena s",
			want: []string{"long n = 0;", `String s = "";`},
		},
		{
			name: "assignment and print",
			src:  "entero n\nn = 2 * (n + 1)\nimprimir n",
			want: []string{
				"long n = 0;",
				"n = (2 * (n + 1));",
				"System.out.println(n);",
			},
		},
		{
			name: "string literal keeps escapes",
			src:  `imprimir "hola\tmundo\n\"juan\""`,
			want: []string{`System.out.println("hola\tmundo\n\"juan\"");`},
		},
		{
			name: "text concatenation",
			src:  `cadena a = "x"` + "\n" + `imprimir a + "y"`,
			want: []string{
				`String a = "x";`,
				`System.out.println((a + "y"));`,
			},
		},
		{
			name: "large literal",
			src:  "entero big = 3000000000\nentero small = 2147483647",
			want: []string{"long big = 3000000000L;", "long small = 2147483647;"},
		},
		{
			name: "if else",
			src:  "entero x = 4\nsi x > 3\nimprimir 1\nsino\nimprimir 2\nfin",
			want: []string{
				"long x = 4;",
				"if ((x > 3)) {",
				"    System.out.println(1);",
				"} else {",
				"    System.out.println(2);",
				"}",
			},
		},
		{
			name: "empty blocks",
			src:  "entero x\nsi x == 0\nsino\nfin\nmientras x < 0\nfin",
			want: []string{
				"long x = 0;",
				"if ((x == 0)) {",
				"} else {",
				"}",
				"while ((x < 0)) {",
				"}",
			},
		},
		{
			name: "declaration in block is hoisted",
			src:  "entero i = 0\nmientras i < 2\ncadena s = \"v\"\nimprimir s\ni = i + 1\nfin\nentero z = 9",
			want: []string{
				"long i = 0;",
				`String s = "v";`,
				"long z = 9;",
				"while ((i < 2)) {",
				"    System.out.println(s);",
				"    i = (i + 1);",
				"}",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.src)
			if want := wrap(tt.want...); got != want {
				t.Errorf("got:\n%s\nwant:\n%s", got, want)
			}
		})
	}
}

func TestGenerateTextEquality(t *testing.T) {
	got := generate(t, strings.Join([]string{
		`cadena a = "hi"`,
		`cadena b = "lo"`,
		"imprimir a == b",
		"si a != b",
		"imprimir a",
		"fin",
	}, "\n"))

	if !strings.Contains(got, "System.out.println(Objects.equals(a, b));") {
		t.Errorf("equality not emitted with Objects.equals:\n%s", got)
	}
	if !strings.Contains(got, "if ((!Objects.equals(a, b))) {") {
		t.Errorf("inequality not emitted with Objects.equals:\n%s", got)
	}
	if strings.Contains(got, "a == b") || strings.Contains(got, "a != b") {
		t.Errorf("reference comparison emitted for text:\n%s", got)
	}
}

func TestGenerateIntegerEquality(t *testing.T) {
	got := generate(t, "entero a\nimprimir a == 1")
	if !strings.Contains(got, "System.out.println((a == 1));") {
		t.Errorf("integer equality changed:\n%s", got)
	}
}

func TestGenerateNestedIndentation(t *testing.T) {
	src := strings.Join([]string{
		"entero i = 0",
		"mientras i < 3",
		"  si i == 1",
		"    imprimir i",
		"  fin",
		"  i = i + 1",
		"fin",
	}, "\n")

	got := generate(t, src)
	want := wrap(
		"long i = 0;",
		"while ((i < 3)) {",
		"    if ((i == 1)) {",
		"        System.out.println(i);",
		"    }",
		"    i = (i + 1);",
		"}",
	)
	if got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}

	var whileIndent, printIndent int
	for _, line := range strings.Split(got, "\n") {
		trimmed := strings.TrimLeft(line, " ")
		switch {
		case strings.HasPrefix(trimmed, "while"):
			whileIndent = len(line) - len(trimmed)
		case strings.HasPrefix(trimmed, "System.out.println"):
			printIndent = len(line) - len(trimmed)
		}
	}
	if printIndent-whileIndent != 2*len(codegen.DefaultIndent) {
		t.Errorf("print indent = %d, while indent = %d, want two levels apart", printIndent, whileIndent)
	}

	if again := generate(t, src); again != got {
		t.Errorf("second generation differs:\n%s", again)
	}
}

func TestGenerateDeterministicFromSameTree(t *testing.T) {
	prog, err := parser.Parse("entero x = 1\nsi x > 0\nmientras x < 5\nx = x + 1\nfin\nfin")
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	info := semantic.Analyze(prog)
	first := codegen.Generate(prog, info, codegen.Options{})
	second := codegen.Generate(prog, info, codegen.Options{})
	if first != second {
		t.Errorf("outputs differ:\n%s\n---\n%s", first, second)
	}
}

func TestGenerateSuspiciousConditions(t *testing.T) {
	src := strings.Join([]string{
		"entero n = 3",
		`cadena s = "a"`,
		"mientras n",
		"n = n - 1",
		"fin",
		"si s",
		"imprimir s",
		"fin",
	}, "\n")

	prog, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	info := semantic.Analyze(prog)
	if len(info.Diagnostics.WarningList) != 2 {
		t.Fatalf("warnings = %v, want 2", info.Diagnostics.Warnings())
	}

	got := codegen.Generate(prog, info, codegen.Options{})
	for _, want := range []string{"while ((n != 0)) {", "if ((!s.isEmpty())) {"} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestGenerateReservedNames(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{
			name: "main parameter",
			src:  "entero args = 1\nimprimir args",
			want: []string{"long args_ = 1;", "System.out.println(args_);"},
		},
		{
			name: "Objects",
			src:  "cadena Objects = \"a\"\ncadena b = \"b\"\nimprimir Objects == b",
			want: []string{`String Objects_ = "a";`, "System.out.println(Objects.equals(Objects_, b));"},
		},
		{
			name: "System",
			src:  "entero System = 1\nimprimir System",
			want: []string{"long System_ = 1;", "System.out.println(System_);"},
		},
		{
			name: "java keyword",
			src:  "entero class = 2\nclass = class * 2",
			want: []string{"long class_ = 2;", "class_ = (class_ * 2);"},
		},
		{
			name: "class name",
			src:  "cadena JuanOut\nimprimir JuanOut",
			want: []string{`String JuanOut_ = "";`, "System.out.println(JuanOut_);"},
		},
		{
			name: "renamed name already taken",
			src:  "entero int_ = 1\nentero int = int_\nimprimir int",
			want: []string{"long int_ = 1;", "long int__ = int_;", "System.out.println(int__);"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generate(t, tt.src)
			for _, want := range tt.want {
				if !strings.Contains(got, want) {
					t.Errorf("output missing %q:\n%s", want, got)
				}
			}
		})
	}
}

func TestGenerateReservedClassOption(t *testing.T) {
	got := generateWith(t, "entero Hola = 1\nimprimir Hola", codegen.Options{ClassName: "Hola"})
	if !strings.Contains(got, "long Hola_ = 1;") || !strings.Contains(got, "System.out.println(Hola_);") {
		t.Errorf("variable named after the class not renamed:\n%s", got)
	}
}

func TestGenerateConstantLoopCondition(t *testing.T) {
	got := generate(t, strings.Join([]string{
		"entero n",
		"mientras 1 == 1",
		"n = n + 1",
		"fin",
		"mientras 1",
		"fin",
		"mientras n < 1",
		"fin",
		"imprimir 2",
	}, "\n"))

	for _, want := range []string{
		"while (Boolean.valueOf((1 == 1))) {",
		"while (Boolean.valueOf((1 != 0))) {",
		"while ((n < 1)) {",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestGenerateOptions(t *testing.T) {
	got := generateWith(t, "imprimir 1", codegen.Options{
		ClassName:  "Hola",
		SourceName: "hola.juan",
		Indent:     "\t",
	})
	want := "import java.util.*;\n" +
		"// Generated from: hola.juan\n" +
		"\n" +
		"public class Hola {\n" +
		"\tpublic static void main(String[] args) {\n" +
		"\t\tSystem.out.println(1);\n" +
		"\t}\n" +
		"}\n"
	if got != want {
		t.Errorf("got:\n%q\nwant:\n%q", got, want)
	}
}

func TestGenerateUnknownNodePanics(t *testing.T) {
	prog := &ast.Program{Stmts: []ast.Stmt{
		&ast.PrintStmt{Value: &ast.BinaryExpr{
			Left:  &ast.IntLit{Value: 1},
			Op:    token.ADD,
			Right: nil,
		}},
	}}
	info := &semantic.Info{Types: map[ast.Expr]types.Type{}}

	defer func() {
		if recover() == nil {
			t.Error("Generate did not panic on a nil expression")
		}
	}()
	codegen.Generate(prog, info, codegen.Options{})
}
