// Package bind reconciles a tokenized argument vector against a declared
// parameter spec. Matching runs in two phases: positional values are
// consumed in order against the positional parameters, then options are
// resolved by exact name or unambiguous prefix against whatever remains,
// with defaults backfilling anything the caller left out. The result is
// all-or-nothing: either a complete BoundArgs or the first violated
// invariant as a typed *Error, never a partial binding.
package bind
