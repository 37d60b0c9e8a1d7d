package dbor

import (
	"bytes"
	"math/bits"
)

// headerClass is the 3-bit class field of a DBOR header byte at
// conformance level 2.
type headerClass uint8

const (
	classUnsignedInt headerClass = 0
	classNegativeInt headerClass = 1
	classByteString  headerClass = 2
	classUtf8String  headerClass = 3
	classSequence    headerClass = 4
)

// noneByte is the single-byte None sentinel, outside the header-class
// layout entirely.
const noneByte = 0xFF

// maxDirectValue is the largest value a header can carry directly in its
// low 5 bits (p in [0,23]).
const maxDirectValue = 23

// maxTokenTailBytes is the largest tail length (p-23 for p in [24,31]).
const maxTokenTailBytes = 8

// encodeToken appends the header byte and any extended tail bytes for
// class h carrying value v to dst.
//
// The tail, when present, is not v's little-endian bytes: it is the
// bijective base-256 representation of x = v-23 (x>=1), written digit by
// digit as "subtract 1, take mod 256, divide by 256", least-significant
// digit first. This is what makes every (length, digit-string) pair map
// to exactly one non-negative integer, so the shortest encoding of any
// value is unique.
func encodeToken(dst *bytes.Buffer, h headerClass, v uint64) {
	if v <= maxDirectValue {
		dst.WriteByte(byte(h)<<5 | byte(v))
		return
	}

	var tail [maxTokenTailBytes]byte
	k := 0
	x := v - maxDirectValue
	for x > 0 {
		x--
		tail[k] = byte(x % 256)
		x /= 256
		k++
	}

	dst.WriteByte(byte(h)<<5 | byte(maxDirectValue+k))
	dst.Write(tail[:k])
}

// decodeToken reads a header byte and its extended tail (if any) from cur,
// returning the header class and decoded value.
func decodeToken(cur *cursor) (headerClass, uint64, error) {
	start := cur.pos
	b, err := cur.readByte()
	if err != nil {
		return 0, 0, err
	}

	h := headerClass(b >> 5)
	p := b & 0x1F

	if p <= maxDirectValue {
		return h, uint64(p), nil
	}

	k := int(p) - maxDirectValue
	tail, err := cur.readBytes(uint64(k))
	if err != nil {
		return 0, 0, err
	}

	value := uint64(maxDirectValue)
	scale := uint64(1)
	for i := 0; i < k; i++ {
		digit := uint64(tail[i]) + 1

		hi, term := bits.Mul64(digit, scale)
		if hi != 0 {
			return 0, 0, newDecodeError(OutOfRange, start, "integer token overflows 64 bits")
		}
		sum, carry := bits.Add64(value, term, 0)
		if carry != 0 {
			return 0, 0, newDecodeError(OutOfRange, start, "integer token overflows 64 bits")
		}
		value = sum

		if i < k-1 {
			newHi, newScale := bits.Mul64(scale, 256)
			if newHi != 0 {
				return 0, 0, newDecodeError(OutOfRange, start, "integer token overflows 64 bits")
			}
			scale = newScale
		}
	}

	if cur.strictCanonical {
		if want := canonicalTailLen(value); want != k {
			return 0, 0, newDecodeError(NonCanonical, start, "value %d encoded with %d tail bytes, canonical form uses %d", value, k, want)
		}
	}

	return h, value, nil
}

// canonicalTailLen returns the number of tail bytes encodeToken would emit
// for value v, i.e. the minimal k for which v is representable. Used only
// to detect NonCanonical encodings during strict decoding.
func canonicalTailLen(v uint64) int {
	if v <= maxDirectValue {
		return 0
	}
	k := 0
	x := v - maxDirectValue
	for x > 0 {
		x--
		x /= 256
		k++
	}
	return k
}
