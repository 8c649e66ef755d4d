// Package lexer provides Juan source code tokenization.
package lexer

import (
	"strconv"
	"unicode/utf8"

	"github.com/kolkov/juanc/internal/token"
)

// Lexer tokenizes Juan source code.
type Lexer struct {
	src     []byte         // Source code
	ch      byte           // Current character (0 at EOF)
	eof     bool           // Whole input consumed; a NUL byte in src is not EOF
	offset  int            // Current byte offset
	pos     token.Position // Current position
	nextPos token.Position // Position of next character
}

// New creates a new Lexer for the given source code.
func New(src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Line:   1,
			Column: 1,
		},
	}
	l.next() // Initialize first character
	return l
}

// NewFile creates a new Lexer whose positions carry filename.
func NewFile(filename string, src []byte) *Lexer {
	l := &Lexer{
		src: src,
		nextPos: token.Position{
			Filename: filename,
			Line:     1,
			Column:   1,
		},
	}
	l.next()
	return l
}

// NewFromString creates a new Lexer from a string.
func NewFromString(src string) *Lexer {
	return New([]byte(src))
}

// Token represents a scanned token with its position and value.
// Value holds the unescaped contents for strings and the
// error text for ILLEGAL tokens; Raw is always the exact source text.
type Token struct {
	Type  token.Token
	Pos   token.Position
	Value string
	Raw   string
}

// Scan scans and returns the next token.
func (l *Lexer) Scan() Token {
	tok := l.scan()
	if tok.Raw == "" && tok.Type != token.EOF {
		tok.Raw = string(l.src[tok.Pos.Offset:l.endOffset()])
	}
	return tok
}

// All scans the whole input, returning every token up to and including EOF.
func (l *Lexer) All() []Token {
	var toks []Token
	for {
		tok := l.Scan()
		toks = append(toks, tok)
		if tok.Type == token.EOF {
			return toks
		}
	}
}

func (l *Lexer) scan() Token {
	l.skipWhitespace()

	// Skip comments
	if l.ch == '#' {
		l.skipComment()
	}

	// Record position
	pos := l.pos

	// EOF
	if l.eof {
		return Token{Type: token.EOF, Pos: l.eofPos()}
	}

	switch l.ch {
	case '\n':
		l.next()
		return Token{Type: token.NEWLINE, Pos: pos, Value: "\n"}

	case '+':
		l.next()
		return Token{Type: token.ADD, Pos: pos, Value: "+"}
	case '-':
		l.next()
		return Token{Type: token.SUB, Pos: pos, Value: "-"}
	case '*':
		l.next()
		return Token{Type: token.MUL, Pos: pos, Value: "*"}
	case '/':
		l.next()
		return Token{Type: token.DIV, Pos: pos, Value: "/"}

	case '=':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.EQUALS, Pos: pos, Value: "=="}
		}
		return Token{Type: token.ASSIGN, Pos: pos, Value: "="}

	case '!':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.NOT_EQUALS, Pos: pos, Value: "!="}
		}
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unexpected '!'"}

	case '<':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.LTE, Pos: pos, Value: "<="}
		}
		return Token{Type: token.LESS, Pos: pos, Value: "<"}

	case '>':
		l.next()
		if l.ch == '=' {
			l.next()
			return Token{Type: token.GTE, Pos: pos, Value: ">="}
		}
		return Token{Type: token.GREATER, Pos: pos, Value: ">"}

	case '(':
		l.next()
		return Token{Type: token.LPAREN, Pos: pos, Value: "("}
	case ')':
		l.next()
		return Token{Type: token.RPAREN, Pos: pos, Value: ")"}
	case ';':
		l.next()
		return Token{Type: token.SEMICOLON, Pos: pos, Value: ";"}

	case '"':
		return l.scanString(pos)

	default:
		if isDigit(l.ch) {
			return l.scanNumber(pos)
		}
		if isIdentStart(l.ch) {
			return l.scanIdent(pos)
		}
		start := pos.Offset
		l.next()
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unexpected character " + quoteChar(l.src, start, l.endOffset())}
	}
}

func (l *Lexer) scanString(pos token.Position) Token {
	l.next() // consume opening quote

	var sb []byte
	for !l.eof && l.ch != '"' && l.ch != '\n' {
		if l.ch == '\\' {
			l.next()
			switch l.ch {
			case 'n':
				sb = append(sb, '\n')
			case 't':
				sb = append(sb, '\t')
			case 'r':
				sb = append(sb, '\r')
			case '\\':
				sb = append(sb, '\\')
			case '"':
				sb = append(sb, '"')
			default:
				return Token{Type: token.ILLEGAL, Pos: pos, Value: "invalid escape sequence in string"}
			}
			l.next()
		} else {
			sb = append(sb, l.src[l.pos.Offset:l.offset]...)
			l.next()
		}
	}

	if l.ch != '"' {
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "unterminated string"}
	}
	l.next() // consume closing quote

	return Token{Type: token.STRING, Pos: pos, Value: string(sb)}
}

func (l *Lexer) scanNumber(pos token.Position) Token {
	start := pos.Offset // Use position offset to include first character
	for isDigit(l.ch) {
		l.next()
	}
	if isIdentStart(l.ch) {
		for isIdentContinue(l.ch) {
			l.next()
		}
		return Token{Type: token.ILLEGAL, Pos: pos, Value: "malformed number " + string(l.src[start:l.endOffset()])}
	}
	return Token{Type: token.INT, Pos: pos, Value: string(l.src[start:l.endOffset()])}
}

func (l *Lexer) scanIdent(pos token.Position) Token {
	start := pos.Offset // Use position offset to include first character
	for isIdentContinue(l.ch) {
		l.next()
	}
	name := string(l.src[start:l.endOffset()])
	return Token{Type: token.LookupIdent(name), Pos: pos, Value: name}
}

// endOffset returns the correct end offset for slicing l.src.
// At EOF, l.pos is not updated, so we use len(l.src); otherwise l.pos.Offset.
func (l *Lexer) endOffset() int {
	if l.eof {
		return len(l.src)
	}
	return l.pos.Offset
}

// eofPos returns the position just past the last character.
func (l *Lexer) eofPos() token.Position {
	if len(l.src) == 0 {
		return l.nextPos
	}
	p := l.nextPos
	p.Offset = len(l.src)
	return p
}

func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' {
		l.next()
	}
}

func (l *Lexer) skipComment() {
	for !l.eof && l.ch != '\n' {
		l.next()
	}
}

func (l *Lexer) next() {
	if l.offset >= len(l.src) {
		l.ch = 0
		l.eof = true
		return
	}

	l.pos = l.nextPos

	// Multi-byte runes are represented by utf8.RuneSelf; callers that need
	// the bytes slice them from src[pos.Offset:offset].
	if l.src[l.offset] >= utf8.RuneSelf {
		_, size := utf8.DecodeRune(l.src[l.offset:])
		l.ch = utf8.RuneSelf
		l.offset += size
		l.nextPos.Column += size
		l.nextPos.Offset = l.offset
		return
	}

	l.ch = l.src[l.offset]
	l.offset++
	l.nextPos.Column++
	l.nextPos.Offset = l.offset

	if l.ch == '\n' {
		l.nextPos.Line++
		l.nextPos.Column = 1
	}
}

// Helper functions

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func quoteChar(src []byte, start, end int) string {
	if start < 0 || end > len(src) || start >= end {
		return "''"
	}
	if end-start == 1 && (src[start] < ' ' || src[start] == 0x7f) {
		return strconv.QuoteRune(rune(src[start]))
	}
	return "'" + string(src[start:end]) + "'"
}
