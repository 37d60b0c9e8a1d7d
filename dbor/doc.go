// Package dbor implements DBOR, a minimal self-delimiting binary object
// representation, at conformance level 2.
//
// DBOR is designed to be:
//   - Byte-minimal for small values (single-byte headers for the common case)
//   - Self-delimiting (every value's length is derivable without a schema)
//   - Canonical (the shortest encoding of a value is the only valid one,
//     enforced on decode unless explicitly relaxed)
//   - Free of a wire protocol: a DBOR value is exactly the bytes that
//     describe it, nothing more
//
// # Data Model
//
// Level 2 supports five value kinds:
//   - None: a single-byte sentinel
//   - Integer: signed, spanning the combined range [-2^63, 2^64-1]
//   - ByteString: a length-prefixed sequence of arbitrary octets
//   - Utf8String: a length-prefixed sequence of well-formed UTF-8 octets
//   - Sequence: an ordered, length-prefixed list of DBOR values
//
// # Header Layout
//
// Every value except None starts with one header byte: the top 3 bits
// select the class (unsigned integer, negative integer, byte string,
// UTF-8 string, sequence), the low 5 bits carry either the value directly
// (0-23) or the length of an extended integer-token tail (24-31, meaning
// 1-8 further bytes). See token.go for the tail's bijective encoding.
//
// # Example
//
//	s, err := NewUtf8String("A")
//	v := NewSequence(NewInteger(1), s, NewByteString([]byte{1, 2}))
//	b, err := Encode(v)
//	// b == []byte{0x86, 0x01, 0x61, 0x41, 0x42, 0x01, 0x02}
package dbor
