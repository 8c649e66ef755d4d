package codegen

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/coregx/coregex"
)

var (
	// javaIdentRe matches an ASCII Java identifier.
	javaIdentRe = mustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

	// wordSepRe matches the runs that separate words in a file name.
	wordSepRe = mustCompile(`[^A-Za-z0-9]+`)
)

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(err)
	}
	return re
}

// javaReserved lists the Java keywords and literals that cannot name a
// class or a variable.
var javaReserved = map[string]bool{
	"abstract": true, "assert": true, "boolean": true, "break": true,
	"byte": true, "case": true, "catch": true, "char": true,
	"class": true, "const": true, "continue": true, "default": true,
	"do": true, "double": true, "else": true, "enum": true,
	"extends": true, "final": true, "finally": true, "float": true,
	"for": true, "goto": true, "if": true, "implements": true,
	"import": true, "instanceof": true, "int": true, "interface": true,
	"long": true, "native": true, "new": true, "package": true,
	"private": true, "protected": true, "public": true, "return": true,
	"short": true, "static": true, "strictfp": true, "super": true,
	"switch": true, "synchronized": true, "this": true, "throw": true,
	"throws": true, "transient": true, "try": true, "void": true,
	"volatile": true, "while": true, "true": true, "false": true,
	"null": true, "var": true, "record": true, "yield": true,
	"_": true,
}

// javaBuiltins are the names the generated main method refers to. A local
// variable with one of these names would shadow it.
var javaBuiltins = []string{"args", "Boolean", "Objects", "String", "System", "java"}

// javaNames maps each variable whose name cannot be used as is in the
// generated class to a fresh name with trailing underscores. Names that
// need no change are absent from the map.
func javaNames(vars []string, className string) map[string]string {
	taken := make(map[string]bool, len(vars))
	for _, v := range vars {
		taken[v] = true
	}
	clashes := func(name string) bool {
		return javaReserved[name] || slices.Contains(javaBuiltins, name) || name == className
	}

	renames := make(map[string]string)
	for _, v := range vars {
		if !clashes(v) {
			continue
		}
		name := v + "_"
		for taken[name] || clashes(name) {
			name += "_"
		}
		taken[name] = true
		renames[v] = name
	}
	return renames
}

// ValidClassName reports whether name can be used as the generated class name.
func ValidClassName(name string) bool {
	return javaIdentRe.MatchString(name) && !javaReserved[name]
}

// ClassNameFromPath derives a class name from a source file path:
// "ejemplos/mi-programa.juan" becomes "MiPrograma". It falls back to
// DefaultClassName when the file name has no usable characters.
func ClassNameFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))

	var sb strings.Builder
	for _, word := range wordSepRe.Split(base, -1) {
		if word == "" {
			continue
		}
		sb.WriteString(strings.ToUpper(word[:1]))
		sb.WriteString(word[1:])
	}

	name := sb.String()
	switch {
	case name == "":
		return DefaultClassName
	case name[0] >= '0' && name[0] <= '9':
		name = "Juan" + name
	}
	if !ValidClassName(name) {
		return DefaultClassName
	}
	return name
}
