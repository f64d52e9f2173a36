package token

import (
	"regexp"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Positionals is the ordered positional half of a tokenized argument vector.
type Positionals []string

// The four recognized option shapes. Each pattern is anchored so that a token
// either matches a shape in full or falls through to the next one; a token
// matching none of them is a positional value.
var (
	shortFlagPat  = regexp.MustCompile(`^-([a-zA-Z])$`)
	longFlagPat   = regexp.MustCompile(`^--([a-zA-Z][a-zA-Z-]+)$`)
	shortValuePat = regexp.MustCompile(`^-([a-zA-Z]):(.+)$`)
	longValuePat  = regexp.MustCompile(`^--([a-zA-Z][a-zA-Z-]+)=(.+)$`)
)

// Normalize converts a CLI-style option name to identifier style by
// replacing dashes with underscores ("create-new" becomes "create_new").
func Normalize(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

// Tokenize classifies each element of args as a positional value or a named
// option. The shapes are tried per token in precedence order: short flag
// (-x), long flag (--create-new), short option with inline value (-x:v),
// long option with inline value (--create-new=v). Option names are returned
// normalized. Callers strip the program name before calling.
func Tokenize(args []string) (Positionals, *Options) {
	positionals := Positionals{}
	options := NewOptions()

	for _, arg := range args {
		if m := shortFlagPat.FindStringSubmatch(arg); m != nil {
			options.Set(Normalize(m[1]), cty.True)
		} else if m := longFlagPat.FindStringSubmatch(arg); m != nil {
			options.Set(Normalize(m[1]), cty.True)
		} else if m := shortValuePat.FindStringSubmatch(arg); m != nil {
			options.Set(Normalize(m[1]), cty.StringVal(m[2]))
		} else if m := longValuePat.FindStringSubmatch(arg); m != nil {
			options.Set(Normalize(m[1]), cty.StringVal(m[2]))
		} else {
			positionals = append(positionals, arg)
		}
	}

	return positionals, options
}
