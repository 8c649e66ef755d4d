// Package juanc translates Juan, a small Spanish-keyword teaching language,
// into Java source code.
//
// A Juan program declares variables of two types, entero (integer) and
// cadena (text), assigns them, prints values and uses si/sino/fin and
// mientras/fin for control flow:
//
//	entero i = 0
//	mientras i < 3
//	    si i == 1
//	        imprimir "uno"
//	    fin
//	    i = i + 1
//	fin
//
// # Quick Start
//
// For simple translation with default settings:
//
//	java, err := juanc.Translate(src, nil)
//
// With configuration:
//
//	java, err := juanc.Translate(src, &juanc.Config{
//	    ClassName:  "Contador",
//	    SourceName: "contador.juan",
//	})
//
// # Diagnostics
//
// [Analyze] returns a [Result] carrying the semantic errors and warnings.
// Errors (duplicate declarations, undeclared variables, type mismatches,
// unsupported operations) block generation. Warnings, raised for
// conditions that are not comparisons, never do.
//
// # Generated Code
//
// The output is a single public class with a main method. Every variable
// declaration is hoisted to the top of main in declaration order; entero
// maps to long and cadena to String. Text equality is emitted with
// Objects.equals, never with reference comparison.
//
// # Error Handling
//
// Errors are returned as specific types for detailed handling:
//   - [ParseError]: syntax errors in Juan source
//   - [CompileError]: semantic errors that block generation
//   - [ConfigError]: invalid configuration
//
// # Thread Safety
//
// Translate and Analyze keep no shared state and may be called
// concurrently.
package juanc
