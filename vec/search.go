package vec

import (
	"github.com/arloliu/zerovec/codec"
)

// wireAt returns the wire bytes of element i of a collection with a known length.
type wireAt func(i int) []byte

// searchBy is a lower-bound binary search over n elements.
//
// cmp orders an element against the target. The result is the first index
// whose element is not less than the target, and whether that element equals it.
func searchBy(n int, at wireAt, cmp func([]byte) int) (int, bool) {
	lo, hi := 0, n
	for lo < hi {
		mid := int(uint(lo+hi) >> 1) //nolint:gosec
		if cmp(at(mid)) < 0 {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return lo, lo < n && cmp(at(lo)) == 0
}

// searchInRange runs searchBy over [lo, hi) with positions relative to lo.
func searchInRange(n, lo, hi int, at wireAt, cmp func([]byte) int) (int, bool, bool) {
	if lo < 0 || hi > n || lo > hi {
		return 0, false, false
	}

	pos, found := searchBy(hi-lo, func(i int) []byte { return at(lo + i) }, cmp)

	return pos, found, true
}

// keyCompare turns a logical key into an element-versus-target comparison.
func keyCompare[T any](c codec.Decoder[T], key T) func([]byte) int {
	return func(wire []byte) int {
		return -codec.CompareKey(c, key, wire)
	}
}

// isAscending reports whether every element is strictly greater than the one before it.
func isAscending[T any](c codec.Decoder[T], n int, at wireAt) bool {
	for i := 1; i < n; i++ {
		if codec.CompareWire(c, at(i-1), at(i)) >= 0 {
			return false
		}
	}

	return true
}
