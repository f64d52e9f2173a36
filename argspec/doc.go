// Package argspec models the declared parameter list of a target operation:
// the kinds its parameters may be supplied in, their default values, and the
// arity bounds derived from the declaration. A Spec is built once, validated
// eagerly, and then shared read-only across any number of binding attempts.
package argspec
