// Package lookup provides defaulting and nested-map access helpers for
// dynamic JSON-style values (map[string]interface{} payloads).
//
// The package distinguishes "absent" from "falsy": the absent sentinel is an
// untyped nil interface value, and present-but-falsy values such as 0, "",
// or false always pass through unchanged.
package lookup
