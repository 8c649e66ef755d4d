package juanc

import (
	"fmt"
	"strings"

	"github.com/kolkov/juanc/internal/codegen"
)

// Config holds configuration options for translation.
type Config struct {
	// ClassName is the name of the generated Java class (default: "JuanOut").
	// It must be a valid Java identifier and not a Java keyword.
	ClassName string

	// SourceName names the input, usually its file path.
	// When set, it prefixes diagnostic positions and is written to the
	// output as a "// Generated from:" comment.
	SourceName string

	// Indent is one level of indentation in the output
	// (default: four spaces). Only spaces and tabs are allowed.
	Indent string
}

// applyDefaults fills in default values for unset Config fields.
func (c *Config) applyDefaults() {
	if c.ClassName == "" {
		c.ClassName = codegen.DefaultClassName
	}
	if c.Indent == "" {
		c.Indent = codegen.DefaultIndent
	}
}

// validate checks the fields that end up in the generated source.
func (c *Config) validate() error {
	if !codegen.ValidClassName(c.ClassName) {
		return &ConfigError{
			Field:   "ClassName",
			Message: fmt.Sprintf("%q is not a valid Java class name", c.ClassName),
		}
	}
	if strings.Trim(c.Indent, " \t") != "" {
		return &ConfigError{
			Field:   "Indent",
			Message: fmt.Sprintf("%q contains characters other than spaces and tabs", c.Indent),
		}
	}
	if strings.ContainsAny(c.SourceName, "\r\n") {
		return &ConfigError{
			Field:   "SourceName",
			Message: "must be a single line",
		}
	}
	return nil
}

// resolve returns a copy of config with defaults applied.
// A nil config yields the defaults.
func resolve(config *Config) (Config, error) {
	var c Config
	if config != nil {
		c = *config
	}
	c.applyDefaults()
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// ClassNameFromPath derives a Java class name from a source file path,
// for example "ejemplos/mi-programa.juan" gives "MiPrograma".
func ClassNameFromPath(path string) string {
	return codegen.ClassNameFromPath(path)
}
