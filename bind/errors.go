package bind

import (
	"fmt"
	"strings"
)

// ErrorKind discriminates the closed set of binding failures.
type ErrorKind int

const (
	// InsufficientArguments reports fewer positional values than the spec's
	// minimum.
	InsufficientArguments ErrorKind = iota

	// TooManyPositionals reports more positional values than the fixed
	// parameters can absorb when no variadic-positional collector exists.
	TooManyPositionals

	// TooManyNamed reports an option addressing a parameter that was already
	// filled positionally in the same invocation.
	TooManyNamed

	// MissingDefault reports a required parameter the caller never supplied.
	MissingDefault

	// AmbiguousOption reports an abbreviated option whose prefix matched more
	// than one remaining parameter name.
	AmbiguousOption

	// UnknownOption reports an option that matched no parameter and had no
	// variadic-named collector to fall into.
	UnknownOption
)

// Error is the typed failure produced by Bind. Binding aborts on the first
// violation, so an Error always describes exactly one violated invariant.
type Error struct {
	Kind ErrorKind

	// Name is the parameter or option name the violation concerns, for the
	// kinds that have one.
	Name string

	// Candidates lists the full parameter names an ambiguous abbreviation
	// matched, in declaration order.
	Candidates []string

	// Got and Want carry the observed and permitted positional counts for
	// the two arity kinds.
	Got, Want int
}

func (e *Error) Error() string {
	switch e.Kind {
	case InsufficientArguments:
		return fmt.Sprintf("insufficient arguments: got %d positional value(s), need at least %d", e.Got, e.Want)
	case TooManyPositionals:
		return fmt.Sprintf("too many positional arguments: got %d, at most %d accepted", e.Got, e.Want)
	case TooManyNamed:
		return fmt.Sprintf("parameter %q was supplied both positionally and by name", e.Name)
	case MissingDefault:
		return fmt.Sprintf("missing required argument %q", e.Name)
	case AmbiguousOption:
		return fmt.Sprintf("ambiguous option %q: could be %s", e.Name, strings.Join(e.Candidates, " or "))
	case UnknownOption:
		return fmt.Sprintf("unknown option %q", e.Name)
	default:
		return fmt.Sprintf("bind error (kind %d)", int(e.Kind))
	}
}
