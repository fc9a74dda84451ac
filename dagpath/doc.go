// Package dagpath queries decoded DAG-CBOR value trees with a small path
// language: dotted keys, bracketed indices, and wildcards.
//
//	users[1].name        second element of "users", then key "name"
//	users[*].posts[0]    first post of every user, collected into an array
//	[0].id               paths may start with an index
//
// The parser is deliberately permissive: empty segments are skipped and
// bracket contents that are neither a non-negative decimal nor "*" produce
// no step. No path string is a parse error.
//
// Structural problems are not errors here. A missing path and a present
// null are distinct first-class outcomes, so callers can branch without
// unwrapping anything; only the typed getters report NotFound and
// TypeMismatch, as structured errors.
//
// A wildcard result is itself an array, and any remaining steps apply
// element-wise, so chained wildcards over arrays-of-arrays flatten one
// level per wildcard.
package dagpath
