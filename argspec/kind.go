package argspec

import "fmt"

// ParamKind classifies how a caller may supply a declared parameter.
type ParamKind int

const (
	// PositionalOnly parameters are filled from the positional sequence and
	// cannot be addressed by name.
	PositionalOnly ParamKind = iota

	// Ambiguous parameters may be filled positionally or by name, whichever
	// the caller chooses for a given invocation.
	Ambiguous

	// NamedOnly parameters must be addressed by name.
	NamedOnly

	// VariadicPositional collects every positional value left over once the
	// fixed parameters are filled. At most one may be declared.
	VariadicPositional

	// VariadicNamed collects every option that matches no declared name.
	// At most one may be declared.
	VariadicNamed
)

func (k ParamKind) String() string {
	switch k {
	case PositionalOnly:
		return "positional"
	case Ambiguous:
		return "positional_or_named"
	case NamedOnly:
		return "named"
	case VariadicPositional:
		return "variadic_positional"
	case VariadicNamed:
		return "variadic_named"
	default:
		return fmt.Sprintf("ParamKind(%d)", int(k))
	}
}

// positional reports whether the kind participates in positional filling.
func (k ParamKind) positional() bool {
	return k == PositionalOnly || k == Ambiguous
}

// named reports whether the kind can be addressed by an option name.
func (k ParamKind) named() bool {
	return k == Ambiguous || k == NamedOnly
}

// variadic reports whether the kind is one of the two collector kinds.
func (k ParamKind) variadic() bool {
	return k == VariadicPositional || k == VariadicNamed
}
