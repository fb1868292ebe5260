// Package vec provides compact sequences that read directly from serialized
// bytes and copy them only when first mutated.
//
// # Sequence Types
//
//	Fixed[T]      fixed-width elements, borrowed or owned, mutable
//	Var[T]        variable-width elements with an index table, borrowed or owned, mutable
//	FixedView[T]  read-only view of fixed-width bytes
//	VarView[T]    read-only view of variable-width bytes
//
// All four implement Collection, so generic code such as a sorted map can be
// written once. Views also implement View and hand out element bytes that
// live as long as the source buffer. Fixed and Var implement Mutable.
//
// # Borrowed and Owned
//
// ParseFixed and ParseVar validate a caller buffer once and then read from it
// in place:
//
//	s, err := vec.ParseFixed[uint16](codec.Uint16{}, data)
//	if err != nil {
//	    return err
//	}
//	v, ok := s.Get(2)
//
// The first Insert, Remove, Replace, Push or MakeMut copies the bytes into a
// private buffer. From then on the sequence never touches data again, and
// Bytes returns the new wire form for persistence. The caller must keep data
// unmodified while a borrowed sequence or view refers to it.
//
// # Variable-Width Layout
//
// A Var buffer is a 5-byte header (index width, element count), an index
// table of end offsets and the concatenated payload, all little-endian. The
// builder uses 1-byte offsets for payloads up to 255 bytes, 2-byte offsets
// up to 65535 bytes and 4-byte offsets beyond that. The empty sequence is the
// empty byte string.
//
// # Searching
//
// Binary searches compare through the element codec. When the codec offers
// a wire comparison fast path, each step compares bytes and never decodes.
package vec
