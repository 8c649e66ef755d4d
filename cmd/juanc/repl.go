package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/peterh/liner"

	"github.com/kolkov/juanc"
)

const (
	historyFile = ".juanc_history"
	promptMain  = "juan> "
	promptCont  = "....> "
	replBanner  = "juanc interactive session. Type :help for commands, :quit to exit."
	replHelp    = `Commands:
  :java     print the Java program for the session
  :vars     list the declared variables
  :source   print the session source
  :reset    forget every statement entered so far
  :quit     leave the session
Statements are checked as they are entered; a si or mientras block
continues on the next lines until its fin.`
)

// session accumulates the statements accepted so far. An entry is only
// kept when the whole session still checks without errors.
type session struct {
	src      string
	warnings int // warnings already reported
}

// eval checks entry in the context of the session. On success the entry
// becomes part of the session and the new warnings are returned.
func (s *session) eval(entry string) ([]string, error) {
	candidate := entry
	if s.src != "" {
		candidate = s.src + "\n" + entry
	}

	res, err := juanc.Analyze(candidate, nil)
	if err != nil {
		return nil, err
	}
	if res.HasErrors() {
		return nil, &juanc.CompileError{Errors: res.Errors()}
	}

	s.src = candidate
	all := res.Warnings()
	fresh := all[s.warnings:]
	s.warnings = len(all)
	return fresh, nil
}

// java returns the generated program for the session.
func (s *session) java() string {
	java, err := juanc.Translate(s.src, nil)
	if err != nil {
		// Every accepted entry was checked, so this cannot fail.
		panic(err)
	}
	return java
}

// vars describes the declared variables, one per line.
func (s *session) vars() string {
	res, err := juanc.Analyze(s.src, nil)
	if err != nil {
		panic(err)
	}
	var sb strings.Builder
	for _, v := range res.Variables() {
		fmt.Fprintf(&sb, "%s %s\n", v.Type, v.Name)
	}
	return sb.String()
}

func (s *session) reset() {
	*s = session{}
}

// command runs a ':' command. It reports whether the session should end.
func (s *session) command(w io.Writer, cmd string) (quit bool) {
	switch strings.ToLower(strings.TrimSpace(cmd)) {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprintln(w, replHelp)
	case ":java":
		fmt.Fprint(w, s.java())
	case ":vars":
		fmt.Fprint(w, s.vars())
	case ":source":
		if s.src != "" {
			fmt.Fprintln(w, s.src)
		}
	case ":reset":
		s.reset()
	default:
		fmt.Fprintln(w, "unknown command. Type :help for the list.")
	}
	return false
}

// runREPL runs an interactive session and returns the exit code.
func runREPL(stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, replBanner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	var s session
	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Fprintln(stdout)
			return exitOK
		}
		if strings.TrimSpace(entry) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " ; "))

		if strings.HasPrefix(strings.TrimSpace(entry), ":") {
			if s.command(stdout, entry) {
				return exitOK
			}
			continue
		}

		warnings, err := s.eval(entry)
		if err != nil {
			printEvalError(stderr, err)
			continue
		}
		for _, w := range warnings {
			fmt.Fprintf(stderr, "warning: %s\n", w)
		}
	}
}

// readEntry reads one entry, prompting for more lines while a block is
// still open. It returns false at end of input.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C drops the entry being typed.
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		if !needsMore(b.String()) {
			return b.String(), true
		}
	}
}

// needsMore reports whether src ends inside an open si or mientras block.
func needsMore(src string) bool {
	if strings.HasPrefix(strings.TrimSpace(src), ":") {
		return false
	}
	_, err := juanc.Analyze(src, nil)
	var pe *juanc.ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// printEvalError reports an entry that was rejected.
func printEvalError(w io.Writer, err error) {
	var pe *juanc.ParseError
	var ce *juanc.CompileError
	switch {
	case errors.As(err, &pe):
		fmt.Fprintf(w, "[syntax] line %d:%d %s\n", pe.Line, pe.Column, pe.Message)
	case errors.As(err, &ce):
		for _, e := range ce.Errors {
			fmt.Fprintf(w, "error: %s\n", e)
		}
	default:
		fmt.Fprintf(w, "error: %v\n", err)
	}
}
