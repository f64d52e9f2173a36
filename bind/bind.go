package bind

import (
	"strings"

	"github.com/vk/clibind/argspec"
	"github.com/vk/clibind/token"
	"github.com/zclconf/go-cty/cty"
)

// BoundArgs is the result of a successful binding attempt: the positional
// sequence in declared order with any variadic tail last, and the named
// mapping keyed by full parameter name, including variadic-named overflow
// and universal flags under their given names.
type BoundArgs struct {
	Positionals []cty.Value
	Named       map[string]cty.Value
}

// universalFlags are accepted into the named output of every binding,
// declared or not, so hosts can observe help and debug requests without
// threading them through every spec. They bypass prefix resolution.
var universalFlags = map[string]bool{
	"h":     true,
	"help":  true,
	"d":     true,
	"debug": true,
}

// Universal reports whether name is one of the flags every binding accepts
// regardless of the spec: h, help, d, debug.
func Universal(name string) bool { return universalFlags[name] }

// slot tracks one parameter still addressable by name during phase 2.
type slot struct {
	param argspec.Param
	taken bool
}

// Bind matches positionals and options against spec. On success it returns
// a fully populated BoundArgs; on the first violated invariant it returns a
// *Error and no partial result. Bind is pure: the same inputs always
// produce the same output, and spec is only read.
func Bind(positionals token.Positionals, options *token.Options, spec *argspec.Spec) (*BoundArgs, error) {
	// Phase 1: positional matching. Arity bounds are inclusive.
	if len(positionals) < spec.MinPositional() {
		return nil, &Error{Kind: InsufficientArguments, Got: len(positionals), Want: spec.MinPositional()}
	}
	if len(positionals) > spec.MaxPositional() && !spec.HasVariadicPositional() {
		return nil, &Error{Kind: TooManyPositionals, Got: len(positionals), Want: spec.MaxPositional()}
	}

	posParams := spec.PositionalParams()
	bound := make([]cty.Value, 0, len(positionals))
	consumed := make(map[string]bool, len(posParams))

	for i, p := range posParams {
		if i < len(positionals) {
			bound = append(bound, cty.StringVal(positionals[i]))
			consumed[p.Name] = true
			continue
		}
		if p.Kind == argspec.PositionalOnly {
			// Positional-only parameters cannot be reached by name, so an
			// unfilled one must default here or the binding fails.
			if p.Default == nil {
				return nil, &Error{Kind: MissingDefault, Name: p.Name}
			}
			bound = append(bound, *p.Default)
		}
		// Unfilled positional-or-named parameters stay available for phase 2.
	}

	// Leftover positionals form the variadic tail; their presence was
	// already rejected above when no collector exists.
	if len(positionals) > len(posParams) {
		for _, extra := range positionals[len(posParams):] {
			bound = append(bound, cty.StringVal(extra))
		}
	}

	// Phase 2: named matching against the pool of parameters not consumed
	// positionally, walking options in their first-appearance order.
	var pool []*slot
	byName := make(map[string]*slot)
	for _, p := range spec.Params() {
		if p.Kind == argspec.NamedOnly || (p.Kind == argspec.Ambiguous && !consumed[p.Name]) {
			s := &slot{param: p}
			pool = append(pool, s)
			byName[p.Name] = s
		}
	}

	named := make(map[string]cty.Value)
	for _, name := range options.Names() {
		val, _ := options.Get(name)

		if s, ok := byName[name]; ok && !s.taken {
			named[s.param.Name] = val
			s.taken = true
			continue
		}
		if universalFlags[name] {
			named[name] = val
			continue
		}
		if consumed[name] {
			return nil, &Error{Kind: TooManyNamed, Name: name}
		}

		var matches []*slot
		for _, s := range pool {
			if !s.taken && strings.HasPrefix(s.param.Name, name) {
				matches = append(matches, s)
			}
		}
		switch {
		case len(matches) == 1:
			// An unambiguous abbreviation binds under the full name.
			named[matches[0].param.Name] = val
			matches[0].taken = true
		case len(matches) > 1:
			candidates := make([]string, len(matches))
			for i, s := range matches {
				candidates[i] = s.param.Name
			}
			return nil, &Error{Kind: AmbiguousOption, Name: name, Candidates: candidates}
		case spec.HasVariadicNamed():
			named[name] = val
		default:
			return nil, &Error{Kind: UnknownOption, Name: name}
		}
	}

	// Defaults backfill whatever the options left untouched.
	for _, s := range pool {
		if s.taken {
			continue
		}
		if s.param.Default == nil {
			return nil, &Error{Kind: MissingDefault, Name: s.param.Name}
		}
		named[s.param.Name] = *s.param.Default
	}

	return &BoundArgs{Positionals: bound, Named: named}, nil
}
