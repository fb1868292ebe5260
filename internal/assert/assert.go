//go:build !zerovec_debug

// Package assert provides invariant checks that are compiled in only with the
// zerovec_debug build tag.
//
// Release builds keep the call sites but the checks are no-ops, so a violated
// invariant degrades to a logically wrong but memory-safe result.
package assert

// Enabled reports whether assertions are active in this build.
const Enabled = false

// True panics with msg when cond is false in debug builds.
func True(bool, string) {}

// Unreachable panics with msg in debug builds.
func Unreachable(string) {}
