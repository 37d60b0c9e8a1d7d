package dbor

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Kind of value, not to be confused with the error Kind in errors.go — this one
// tags the five level-2 DBOR variants.
type ValueKind uint8

const (
	KindNone ValueKind = iota
	KindInteger
	KindByteString
	KindUtf8String
	KindSequence
)

// String returns the variant name.
func (k ValueKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInteger:
		return "integer"
	case KindByteString:
		return "bytestring"
	case KindUtf8String:
		return "utf8string"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// Value is an immutable, level-2 DBOR value: None, Integer, ByteString,
// Utf8String, or Sequence. The zero Value is None.
//
// Only the field matching kind is meaningful; Value is deliberately a flat
// struct rather than an interface hierarchy so construction, equality, and
// encoding can all switch on kind without type assertions.
//
// An Integer is stored the same way DBOR itself splits it: negative
// selects the class (non-negative vs. negative) and magnitude holds either
// the value itself (non-negative, up to 2^64-1) or n where the true value
// is -(n+1) (negative, n up to 2^63-1). This mirrors the wire format
// exactly and avoids any int64 bit-pattern ambiguity between "a large
// unsigned value" and "a negative value."
type Value struct {
	kind ValueKind

	negative  bool
	magnitude uint64
	bytesVal  []byte
	strVal    string
	seqVal    []Value
}

// None is the singleton None value.
func None() Value {
	return Value{kind: KindNone}
}

// NewInteger constructs an Integer value from a signed 64-bit magnitude.
func NewInteger(v int64) Value {
	if v >= 0 {
		return Value{kind: KindInteger, magnitude: uint64(v)}
	}
	return Value{kind: KindInteger, negative: true, magnitude: uint64(-(v + 1))}
}

// NewUint64 constructs a non-negative Integer value whose magnitude may
// exceed int64's positive range, up to 2^64-1.
func NewUint64(v uint64) Value {
	return Value{kind: KindInteger, magnitude: v}
}

// newNegativeInteger constructs a negative Integer value directly from its
// DBOR magnitude n, where the true value is -(n+1). Used by the decoder,
// which already validated n against the class-1 range.
func newNegativeInteger(n uint64) Value {
	return Value{kind: KindInteger, negative: true, magnitude: n}
}

// NewByteString constructs a ByteString value. The byte slice is retained,
// not copied; callers should not mutate it afterwards.
func NewByteString(b []byte) Value {
	return Value{kind: KindByteString, bytesVal: b}
}

// NewUtf8String constructs a Utf8String value from a Go string, verifying
// it is well-formed UTF-8. A Go string has no such guarantee on its own —
// string([]byte{0xFF, 0xFE}) is a perfectly safe conversion that produces
// an ill-formed string — so this validates the same way
// NewUtf8StringFromBytes does. Returns InvalidUtf8 otherwise.
func NewUtf8String(s string) (Value, error) {
	if !utf8.ValidString(s) {
		return Value{}, newEncodeError(InvalidUtf8, "", "string is not well-formed UTF-8")
	}
	return Value{kind: KindUtf8String, strVal: s}, nil
}

// NewUtf8StringFromBytes constructs a Utf8String value from raw bytes,
// verifying they are well-formed UTF-8. Returns InvalidUtf8 otherwise.
func NewUtf8StringFromBytes(b []byte) (Value, error) {
	return NewUtf8String(string(b))
}

// NewSequence constructs a Sequence value from an ordered collection of
// children. The slice is retained, not copied.
func NewSequence(children ...Value) Value {
	return Value{kind: KindSequence, seqVal: children}
}

// Kind returns the value's variant.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsNone reports whether v is the None value.
func (v Value) IsNone() bool {
	return v.kind == KindNone
}

// Int64 returns the Integer value as a signed 64-bit integer, failing if
// the true value falls outside int64's range.
func (v Value) Int64() (int64, error) {
	if v.kind != KindInteger {
		return 0, fmt.Errorf("dbor: value is %s, not integer", v.kind)
	}
	if v.negative {
		if v.magnitude > math.MaxInt64 {
			return 0, fmt.Errorf("dbor: integer -%d-1 does not fit in int64", v.magnitude)
		}
		return -int64(v.magnitude) - 1, nil
	}
	if v.magnitude > math.MaxInt64 {
		return 0, fmt.Errorf("dbor: integer %d does not fit in int64", v.magnitude)
	}
	return int64(v.magnitude), nil
}

// Uint64 returns the Integer value as an unsigned 64-bit integer, failing
// if the true value is negative.
func (v Value) Uint64() (uint64, error) {
	if v.kind != KindInteger {
		return 0, fmt.Errorf("dbor: value is %s, not integer", v.kind)
	}
	if v.negative {
		return 0, fmt.Errorf("dbor: integer -%d-1 is negative, cannot fit in uint64", v.magnitude)
	}
	return v.magnitude, nil
}

// IsNegative reports whether an Integer value's true value is negative.
func (v Value) IsNegative() (bool, error) {
	if v.kind != KindInteger {
		return false, fmt.Errorf("dbor: value is %s, not integer", v.kind)
	}
	return v.negative, nil
}

// Bytes returns the ByteString's octets.
func (v Value) Bytes() ([]byte, error) {
	if v.kind != KindByteString {
		return nil, fmt.Errorf("dbor: value is %s, not bytestring", v.kind)
	}
	return v.bytesVal, nil
}

// String returns the Utf8String's content.
func (v Value) String() (string, error) {
	if v.kind != KindUtf8String {
		return "", fmt.Errorf("dbor: value is %s, not utf8string", v.kind)
	}
	return v.strVal, nil
}

// Sequence returns the Sequence's children in order.
func (v Value) Sequence() ([]Value, error) {
	if v.kind != KindSequence {
		return nil, fmt.Errorf("dbor: value is %s, not sequence", v.kind)
	}
	return v.seqVal, nil
}

// Len returns the number of children of a Sequence, or 0 for any other
// kind.
func (v Value) Len() int {
	if v.kind != KindSequence {
		return 0
	}
	return len(v.seqVal)
}

// Equal reports whether a and b are structurally equal DBOR values.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNone:
		return true
	case KindInteger:
		return a.negative == b.negative && a.magnitude == b.magnitude
	case KindByteString:
		return bytesEqual(a.bytesVal, b.bytesVal)
	case KindUtf8String:
		return a.strVal == b.strVal
	case KindSequence:
		if len(a.seqVal) != len(b.seqVal) {
			return false
		}
		for i := range a.seqVal {
			if !Equal(a.seqVal[i], b.seqVal[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
