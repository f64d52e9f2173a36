package argspec

import (
	"fmt"
	"strings"

	"github.com/zclconf/go-cty/cty"
)

// Param is one declared parameter of a target operation.
type Param struct {
	// Name is the identifier-style parameter name (underscores, not dashes).
	// It must be unique within a Spec.
	Name string

	// Kind determines how callers may supply the parameter.
	Kind ParamKind

	// Default is the value used when the caller supplies nothing. A nil
	// Default marks the parameter as required.
	Default *cty.Value
}

// Required reports whether the parameter must be supplied by the caller.
func (p Param) Required() bool { return p.Default == nil }

// Spec is the ordered parameter list of one target operation together with
// the arity bounds derived from it. A Spec is immutable once New returns and
// may be shared across concurrent binding attempts without synchronization.
type Spec struct {
	params []Param

	minPositional int
	maxPositional int
	minNamed      int
	maxNamed      int

	hasVariadicPositional bool
	hasVariadicNamed      bool
}

// New validates the declared parameter list and derives its arity bounds.
// The structural rules are: names are unique and non-empty, at most one
// variadic parameter of each kind may appear and variadics come last, and a
// positional-only parameter may not follow a positional-or-named one.
func New(params []Param) (*Spec, error) {
	var errs []string

	seen := make(map[string]bool, len(params))
	sawAmbiguous := false
	s := &Spec{params: append([]Param(nil), params...)}

	for _, p := range s.params {
		if p.Name == "" {
			errs = append(errs, "parameter with empty name")
		} else if seen[p.Name] {
			errs = append(errs, fmt.Sprintf("duplicate parameter %q", p.Name))
		}
		seen[p.Name] = true

		// The variadic-positional collector ends the positional sequence and
		// the variadic-named collector ends the declaration; named-only
		// parameters may still follow a variadic-positional.
		if s.hasVariadicNamed {
			errs = append(errs, fmt.Sprintf("parameter %q declared after the variadic-named parameter", p.Name))
		}
		if s.hasVariadicPositional && p.Kind.positional() {
			errs = append(errs, fmt.Sprintf("positional parameter %q declared after the variadic-positional parameter", p.Name))
		}

		switch p.Kind {
		case PositionalOnly:
			if sawAmbiguous {
				errs = append(errs, fmt.Sprintf("positional-only parameter %q declared after a positional-or-named parameter", p.Name))
			}
		case Ambiguous:
			sawAmbiguous = true
		case NamedOnly:
			// no ordering constraint; named matching is by name only
		case VariadicPositional:
			if s.hasVariadicPositional {
				errs = append(errs, fmt.Sprintf("second variadic-positional parameter %q", p.Name))
			}
			s.hasVariadicPositional = true
		case VariadicNamed:
			if s.hasVariadicNamed {
				errs = append(errs, fmt.Sprintf("second variadic-named parameter %q", p.Name))
			}
			s.hasVariadicNamed = true
		default:
			errs = append(errs, fmt.Sprintf("parameter %q has unknown kind %d", p.Name, int(p.Kind)))
		}

		if p.Kind.variadic() && p.Default != nil {
			errs = append(errs, fmt.Sprintf("variadic parameter %q cannot carry a default", p.Name))
		}

		if p.Kind.positional() {
			s.maxPositional++
			if p.Default == nil {
				s.minPositional++
			}
		}
		if p.Kind.named() {
			s.maxNamed++
			if p.Kind == NamedOnly && p.Default == nil {
				s.minNamed++
			}
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid parameter list:\n- %s", strings.Join(errs, "\n- "))
	}
	return s, nil
}

// Params returns the declared parameters in declaration order.
func (s *Spec) Params() []Param {
	return append([]Param(nil), s.params...)
}

// PositionalParams returns the parameters that participate in positional
// filling: positional-only first, then positional-or-named, each group in
// declaration order.
func (s *Spec) PositionalParams() []Param {
	out := make([]Param, 0, s.maxPositional)
	for _, p := range s.params {
		if p.Kind == PositionalOnly {
			out = append(out, p)
		}
	}
	for _, p := range s.params {
		if p.Kind == Ambiguous {
			out = append(out, p)
		}
	}
	return out
}

// MinPositional is the number of positional values a caller must supply.
func (s *Spec) MinPositional() int { return s.minPositional }

// MaxPositional is the number of positional values the fixed parameters can
// absorb; anything beyond it needs a variadic-positional parameter.
func (s *Spec) MaxPositional() int { return s.maxPositional }

// MinNamed is the number of options a caller must supply.
func (s *Spec) MinNamed() int { return s.minNamed }

// MaxNamed is the number of declared parameters addressable by name.
func (s *Spec) MaxNamed() int { return s.maxNamed }

// HasVariadicPositional reports whether a variadic-positional collector is
// declared.
func (s *Spec) HasVariadicPositional() bool { return s.hasVariadicPositional }

// HasVariadicNamed reports whether a variadic-named collector is declared.
func (s *Spec) HasVariadicNamed() bool { return s.hasVariadicNamed }
