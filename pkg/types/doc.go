// Package types defines the shared error vocabulary for the utilkit library.
// Library packages return typed error values with categorized codes so that
// callers can branch on the kind of failure without parsing messages.
package types
