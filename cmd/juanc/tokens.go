package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/kolkov/juanc/internal/lexer"
	"github.com/kolkov/juanc/internal/token"
)

var lexemeEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\r", `\r`,
	"\n", `\n`,
)

// dumpTokens writes one line per token of src:
//
//	# 1 VAR_TYPE "entero" (line:1, col:1)
//
// The last line is the end of input marker.
func dumpTokens(w io.Writer, src []byte) {
	toks := lexer.New(src).All()
	for i, tok := range toks {
		n := i + 1
		if tok.Type == token.EOF {
			fmt.Fprintf(w, "# %d EOF <EOF>\n", n)
			continue
		}
		fmt.Fprintf(w, "# %d %s \"%s\" (line:%d, col:%d)\n",
			n, tok.Type.KindName(), lexemeEscaper.Replace(tok.Raw), tok.Pos.Line, tok.Pos.Column)
	}
}
