// Package token splits a raw command-line argument vector into positional
// values and named options. It knows nothing about the parameter list the
// values will later bind against: every token is classified purely by shape,
// and anything that matches no option shape is a positional value taken
// verbatim. Tokenization never fails and is deterministic.
package token
