//go:build zerovec_debug

package assert

// Enabled reports whether assertions are active in this build.
const Enabled = true

// True panics with msg when cond is false.
func True(cond bool, msg string) {
	if !cond {
		panic("zerovec: assertion failed: " + msg)
	}
}

// Unreachable panics with msg.
func Unreachable(msg string) {
	panic("zerovec: unreachable: " + msg)
}
