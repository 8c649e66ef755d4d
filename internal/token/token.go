// Package token defines lexical tokens for the Juan language.
package token

// Token represents a lexical token type.
type Token uint8

const (
	// Special tokens
	ILLEGAL Token = iota // <illegal>
	EOF                  // EOF
	NEWLINE              // <newline>

	// Operators and delimiters
	operatorStart
	arithmeticStart
	ADD // +
	SUB // -
	MUL // *
	DIV // /
	arithmeticEnd

	comparisonStart
	EQUALS     // ==
	NOT_EQUALS // !=
	LESS       // <
	LTE        // <=
	GREATER    // >
	GTE        // >=
	comparisonEnd

	ASSIGN    // =
	LPAREN    // (
	RPAREN    // )
	SEMICOLON // ;
	operatorEnd

	// Keywords
	keywordStart
	ENTERO   // entero
	CADENA   // cadena
	IMPRIMIR // imprimir
	SI       // si
	SINO     // sino
	MIENTRAS // mientras
	FIN      // fin
	keywordEnd

	// Literals
	NAME   // name
	INT    // int
	STRING // string
)

var names = [...]string{
	ILLEGAL:    "ILLEGAL",
	EOF:        "EOF",
	NEWLINE:    "NEWLINE",
	ADD:        "+",
	SUB:        "-",
	MUL:        "*",
	DIV:        "/",
	EQUALS:     "==",
	NOT_EQUALS: "!=",
	LESS:       "<",
	LTE:        "<=",
	GREATER:    ">",
	GTE:        ">=",
	ASSIGN:     "=",
	LPAREN:     "(",
	RPAREN:     ")",
	SEMICOLON:  ";",
	ENTERO:     "entero",
	CADENA:     "cadena",
	IMPRIMIR:   "imprimir",
	SI:         "si",
	SINO:       "sino",
	MIENTRAS:   "mientras",
	FIN:        "fin",
	NAME:       "name",
	INT:        "int",
	STRING:     "string",
}

// String returns the source spelling of operators and keywords,
// and a lowercase description for other tokens.
func (t Token) String() string {
	if int(t) < len(names) && names[t] != "" {
		return names[t]
	}
	return "token(?)"
}

// IsOperator returns true if the token is an operator or delimiter.
func (t Token) IsOperator() bool {
	return t > operatorStart && t < operatorEnd
}

// IsArithmetic returns true for + - * /.
func (t Token) IsArithmetic() bool {
	return t > arithmeticStart && t < arithmeticEnd
}

// IsComparison returns true for == != < <= > >=.
func (t Token) IsComparison() bool {
	return t > comparisonStart && t < comparisonEnd
}

// IsOrdering returns true for the comparison operators that need
// ordered operands (< <= > >=).
func (t Token) IsOrdering() bool {
	return t == LESS || t == LTE || t == GREATER || t == GTE
}

// IsKeyword returns true if the token is a keyword.
func (t Token) IsKeyword() bool {
	return t > keywordStart && t < keywordEnd
}

// IsType returns true for the type keywords (entero, cadena).
func (t Token) IsType() bool {
	return t == ENTERO || t == CADENA
}

// IsLiteral returns true if the token is a literal (name, int, string).
func (t Token) IsLiteral() bool {
	return t == NAME || t == INT || t == STRING
}

// keywords maps keyword strings to their token types.
var keywords = map[string]Token{
	"entero":   ENTERO,
	"cadena":   CADENA,
	"imprimir": IMPRIMIR,
	"si":       SI,
	"sino":     SINO,
	"mientras": MIENTRAS,
	"fin":      FIN,
}

// LookupIdent returns the token type for a given identifier.
// Returns a keyword token if found, otherwise NAME.
func LookupIdent(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return NAME
}

// LookupKeyword returns the token type for a keyword, or ILLEGAL if not found.
func LookupKeyword(name string) Token {
	if tok, ok := keywords[name]; ok {
		return tok
	}
	return ILLEGAL
}

// kindNames are the symbolic names used by token dumps.
var kindNames = map[Token]string{
	ENTERO:     "VAR_TYPE",
	CADENA:     "VAR_TYPE",
	SI:         "COND_IF",
	SINO:       "COND_ELSE",
	IMPRIMIR:   "PRINT",
	MIENTRAS:   "WHILE",
	FIN:        "END",
	NAME:       "ID",
	INT:        "INT",
	STRING:     "STRING",
	NEWLINE:    "NEWLINE",
	EOF:        "EOF",
	ILLEGAL:    "ILLEGAL",
	ADD:        "ADD",
	SUB:        "SUB",
	MUL:        "MUL",
	DIV:        "DIV",
	ASSIGN:     "ASSIGN",
	LPAREN:     "LPAREN",
	RPAREN:     "RPAREN",
	SEMICOLON:  "SEMICOLON",
	EQUALS:     "EQ",
	NOT_EQUALS: "NEQ",
	LESS:       "LT",
	LTE:        "LTE",
	GREATER:    "GT",
	GTE:        "GTE",
}

// KindName returns the symbolic kind shown in token dumps.
// Both type keywords share VAR_TYPE.
func (t Token) KindName() string {
	if n, ok := kindNames[t]; ok {
		return n
	}
	return t.String()
}
