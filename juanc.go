package juanc

import (
	"errors"

	"github.com/kolkov/juanc/internal/codegen"
	"github.com/kolkov/juanc/internal/parser"
	"github.com/kolkov/juanc/internal/semantic"
)

// Version is the juanc version string.
const Version = "0.1.0"

// Translate compiles a Juan program to Java source.
// This is the convenience entry point when diagnostics other than errors
// are not needed; use Analyze to also get the warnings.
//
// Parameters:
//   - src: Juan source code
//   - config: translation configuration (can be nil for defaults)
//
// Returns the Java compilation unit, or a *ParseError, *CompileError or
// *ConfigError.
//
// Example:
//
//	java, err := juanc.Translate("entero x = 5\nimprimir x + 1", nil)
func Translate(src string, config *Config) (string, error) {
	res, err := Analyze(src, config)
	if err != nil {
		return "", err
	}
	if res.HasErrors() {
		return "", &CompileError{Errors: res.Errors()}
	}
	return res.Java(), nil
}

// Analyze parses and checks a Juan program, and generates Java when the
// check finds no errors. Semantic errors are not returned as an error:
// inspect them with Result.HasErrors and Result.Errors.
//
// Example:
//
//	res, err := juanc.Analyze(src, &juanc.Config{ClassName: "Hola"})
//	if err != nil {
//	    log.Fatal(err) // syntax or configuration error
//	}
//	for _, w := range res.Warnings() {
//	    fmt.Println("warning:", w)
//	}
func Analyze(src string, config *Config) (*Result, error) {
	cfg, err := resolve(config)
	if err != nil {
		return nil, err
	}

	// Parse
	prog, err := parser.ParseFile(cfg.SourceName, []byte(src))
	if err != nil {
		return nil, convertParseError(err)
	}

	// Analyze
	info := semantic.Analyze(prog)

	res := &Result{
		program: prog,
		info:    info,
		config:  cfg,
	}

	// Generate only from a program without errors
	if !info.Diagnostics.HasErrors() {
		res.java = codegen.Generate(prog, info, codegen.Options{
			ClassName:  cfg.ClassName,
			SourceName: cfg.SourceName,
			Indent:     cfg.Indent,
		})
	}
	return res, nil
}

// MustTranslate is like Translate with default configuration but panics
// if the program cannot be translated.
//
// Example:
//
//	var hello = juanc.MustTranslate(`imprimir "hola"`)
func MustTranslate(src string) string {
	java, err := Translate(src, nil)
	if err != nil {
		panic(err)
	}
	return java
}

// convertParseError converts a parser error to the public type.
func convertParseError(err error) error {
	var el parser.ErrorList
	if errors.As(err, &el) && len(el) > 0 {
		return &ParseError{
			Line:       el[0].Pos.Line,
			Column:     el[0].Pos.Column,
			Message:    el[0].Message,
			Count:      len(el),
			Incomplete: parser.IsIncomplete(el),
		}
	}
	var pe *parser.ParseError
	if errors.As(err, &pe) {
		return &ParseError{
			Line:       pe.Pos.Line,
			Column:     pe.Pos.Column,
			Message:    pe.Message,
			Count:      1,
			Incomplete: pe.Incomplete,
		}
	}
	return &ParseError{Message: err.Error(), Count: 1}
}
