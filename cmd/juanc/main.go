// juanc - Juan to Java translator
//
// Reads a Juan program, checks it and writes the equivalent Java class.
// Uses manual argument parsing like the rest of the tool family.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/kolkov/juanc"
)

// version is set at build time via -ldflags.
// For development builds, it will be "dev".
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const (
	shortUsage = "usage: juanc [-o dir] [-c class|auto] [-tokens] [-d] file.juan\n       juanc -i"
	longUsage  = `Translation arguments:
  -o dir            output directory (default "out")
  -c class          name of the generated Java class (default JuanOut);
                    "auto" derives it from the input file name

Debugging arguments:
  -tokens           print the token stream and exit
  -d                print the parsed program in normalized form and exit

Other:
  -i                start an interactive session
  -h, --help        show this help message
  -version          show juanc version and exit
`
)

// Exit codes.
const (
	exitOK       = 0
	exitSyntax   = 1
	exitSemantic = 2
	exitIO       = 3
)

// options holds the parsed command line.
type options struct {
	outDir    string
	className string
	tokens    bool
	debug     bool
}

func main() {
	opts := options{outDir: "out"}
	interactive := false

	var i int
	for i = 1; i < len(os.Args); i++ {
		arg := os.Args[i]
		if arg == "--" {
			i++
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			break
		}

		switch arg {
		case "-o":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -o")
			}
			i++
			opts.outDir = os.Args[i]
		case "-c":
			if i+1 >= len(os.Args) {
				errorExitf("flag needs an argument: -c")
			}
			i++
			opts.className = os.Args[i]
		case "-tokens":
			opts.tokens = true
		case "-d":
			opts.debug = true
		case "-i":
			interactive = true
		case "-h", "--help":
			fmt.Printf("juanc %s - Juan to Java translator\n\n%s\n\n%s", version, shortUsage, longUsage)
			os.Exit(exitOK)
		case "-version", "--version":
			fmt.Printf("juanc version %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built:  %s\n", date)
			fmt.Println("  target: java")
			os.Exit(exitOK)
		default:
			// Handle flags with no space: -oout, -cHola
			switch {
			case strings.HasPrefix(arg, "-o"):
				opts.outDir = arg[2:]
			case strings.HasPrefix(arg, "-c"):
				opts.className = arg[2:]
			default:
				errorExitf("flag provided but not defined: %s", arg)
			}
		}
	}

	args := os.Args[i:]

	if interactive {
		if len(args) > 0 {
			errorExitf("-i takes no input file")
		}
		os.Exit(runREPL(os.Stdout, os.Stderr))
	}

	if len(args) != 1 {
		errorExitf(shortUsage)
	}

	os.Exit(run(args[0], opts, os.Stdout, os.Stderr))
}

// run translates the file at path and reports the outcome.
// It returns the process exit code.
func run(path string, opts options, stdout, stderr io.Writer) int {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "juanc: cannot read %s: %v\n", path, err)
		return exitIO
	}

	if opts.tokens {
		dumpTokens(stdout, src)
		return exitOK
	}

	className := opts.className
	if className == "auto" {
		className = juanc.ClassNameFromPath(path)
	}

	res, err := juanc.Analyze(string(src), &juanc.Config{
		ClassName:  className,
		SourceName: filepath.Base(path),
	})
	if err != nil {
		return reportError(stderr, err)
	}

	if opts.debug {
		fmt.Fprint(stdout, res.Source())
		return exitOK
	}

	if warnings := res.Warnings(); len(warnings) > 0 {
		fmt.Fprintln(stderr, "Warnings:")
		for _, w := range warnings {
			fmt.Fprintf(stderr, "  - %s\n", w)
		}
	}

	if res.HasErrors() {
		fmt.Fprintln(stderr, "Semantic errors:")
		for _, e := range res.Errors() {
			fmt.Fprintf(stderr, "  - %s\n", e)
		}
		return exitSemantic
	}

	outPath, err := writeOutput(opts.outDir, res.ClassName(), res.Java())
	if err != nil {
		fmt.Fprintf(stderr, "juanc: %v\n", err)
		return exitIO
	}

	fmt.Fprintf(stdout, "[OK] Generated: %s\n", outPath)
	fmt.Fprintf(stdout, "     Compile:   javac %s\n", outPath)
	fmt.Fprintf(stdout, "     Run:       java -cp %s %s\n", opts.outDir, res.ClassName())
	return exitOK
}

// reportError prints a translation error and returns its exit code.
func reportError(stderr io.Writer, err error) int {
	var pe *juanc.ParseError
	if errors.As(err, &pe) {
		fmt.Fprintf(stderr, "[syntax] line %d:%d %s\n", pe.Line, pe.Column, pe.Message)
		if pe.Count > 1 {
			fmt.Fprintf(stderr, "[syntax] %d more errors\n", pe.Count-1)
		}
		return exitSyntax
	}
	fmt.Fprintf(stderr, "juanc: %v\n", err)
	return exitSyntax
}

// writeOutput writes java to <dir>/<className>.java, creating dir.
func writeOutput(dir, className, java string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create output directory: %w", err)
	}
	path := filepath.Join(dir, className+".java")
	if err := os.WriteFile(path, []byte(java), 0o644); err != nil {
		return "", fmt.Errorf("cannot write %s: %w", path, err)
	}
	return path, nil
}

// errorExitf prints formatted error message and exits with code 1
func errorExitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "juanc: "+format+"\n", args...)
	os.Exit(1)
}
