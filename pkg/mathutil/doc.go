// Package mathutil provides small arithmetic helpers: generic addition and
// multiplication, and an integer factorial with input validation. These
// primitives are pure and stateless, so they are safe to call concurrently.
package mathutil
