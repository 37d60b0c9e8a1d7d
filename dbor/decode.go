package dbor

import (
	"unicode/utf8"
)

// cursor tracks position while decoding a single byte slice. Returned
// ByteString values reference sub-slices of the original input; Utf8String
// payloads are copied into a Go string.
type cursor struct {
	data []byte
	pos  int

	strictCanonical bool
	maxDepth        int
	maxSeqWidth     int
}

func (c *cursor) readByte() (byte, error) {
	if c.pos >= len(c.data) {
		return 0, newDecodeError(Truncated, c.pos, "expected a byte, found end of input")
	}
	b := c.data[c.pos]
	c.pos++
	return b, nil
}

// readBytes reads n bytes, where n arrives straight from a decoded token
// and may be as large as 2^64-1 — compare against remaining() as a uint64
// before ever narrowing to int, so an oversized declared length fails
// Truncated instead of wrapping negative and panicking on the slice below.
func (c *cursor) readBytes(n uint64) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	if n > uint64(c.remaining()) {
		return nil, newDecodeError(Truncated, c.pos, "expected %d bytes, found %d", n, c.remaining())
	}
	b := c.data[c.pos : c.pos+int(n)]
	c.pos += int(n)
	return b, nil
}

func (c *cursor) remaining() int {
	return len(c.data) - c.pos
}

// Decode parses a single top-level DBOR value from data. Any bytes after
// the value produce a TrailingBytes error; the package has no exported
// decode entry point that tolerates trailing data.
func Decode(data []byte, opts ...Option) (Value, error) {
	cfg := defaultDecodeConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	cur := &cursor{
		data:            data,
		strictCanonical: cfg.strictCanonical,
		maxDepth:        cfg.maxDepth,
		maxSeqWidth:     cfg.maxSeqWidth,
	}

	v, err := decodeValue(cur, 0)
	if err != nil {
		return Value{}, err
	}
	if cur.remaining() > 0 {
		return Value{}, newDecodeError(TrailingBytes, cur.pos, "%d byte(s) remain after top-level value", cur.remaining())
	}
	return v, nil
}

// decodeValue decodes exactly one value starting at the cursor's current
// position, recursing into Sequence children with depth+1.
func decodeValue(cur *cursor, depth int) (Value, error) {
	if cur.maxDepth > 0 && depth > cur.maxDepth {
		return Value{}, newDecodeError(NestingTooDeep, cur.pos, "exceeded max depth %d", cur.maxDepth)
	}

	start := cur.pos
	if cur.remaining() == 0 {
		return Value{}, newDecodeError(Truncated, start, "expected a value, found end of input")
	}

	if cur.data[cur.pos] == noneByte {
		cur.pos++
		return None(), nil
	}

	h := headerClass(cur.data[cur.pos] >> 5)
	switch h {
	case classUnsignedInt:
		_, v, err := decodeToken(cur)
		if err != nil {
			return Value{}, err
		}
		return NewUint64(v), nil

	case classNegativeInt:
		_, magnitude, err := decodeToken(cur)
		if err != nil {
			return Value{}, err
		}
		if magnitude > 1<<63-1 {
			return Value{}, newDecodeError(OutOfRange, start, "negative integer magnitude %d exceeds 2^63-1", magnitude)
		}
		return newNegativeInteger(magnitude), nil

	case classByteString:
		_, n, err := decodeToken(cur)
		if err != nil {
			return Value{}, err
		}
		payload, err := cur.readBytes(n)
		if err != nil {
			return Value{}, err
		}
		return NewByteString(payload), nil

	case classUtf8String:
		_, n, err := decodeToken(cur)
		if err != nil {
			return Value{}, err
		}
		payload, err := cur.readBytes(n)
		if err != nil {
			return Value{}, err
		}
		if !utf8.Valid(payload) {
			return Value{}, newDecodeError(InvalidUtf8, start, "payload is not well-formed UTF-8")
		}
		// Already validated above; the error return exists for callers
		// building a Utf8String from an unchecked Go string.
		v, _ := NewUtf8String(string(payload))
		return v, nil

	case classSequence:
		return decodeSequence(cur, depth, start)

	default:
		return Value{}, newDecodeError(UnsupportedType, start, "header class %d is not defined at conformance level 2", h)
	}
}

// decodeSequence reads a Sequence's declared payload length, then decodes
// children from a bounded sub-range until that range is exhausted.
func decodeSequence(cur *cursor, depth int, start int) (Value, error) {
	_, length, err := decodeToken(cur)
	if err != nil {
		return Value{}, err
	}

	if length > uint64(cur.remaining()) {
		return Value{}, newDecodeError(Truncated, cur.pos, "sequence declares %d payload bytes, only %d remain", length, cur.remaining())
	}
	end := cur.pos + int(length)

	var children []Value
	for cur.pos < end {
		if cur.maxSeqWidth > 0 && len(children) >= cur.maxSeqWidth {
			return Value{}, newDecodeError(SequenceTooWide, start, "sequence exceeds max width %d", cur.maxSeqWidth)
		}
		child, err := decodeValue(cur, depth+1)
		if err != nil {
			return Value{}, err
		}
		children = append(children, child)
	}
	if cur.pos != end {
		return Value{}, newDecodeError(TrailingBytes, cur.pos, "sequence child overran its declared payload boundary")
	}

	return NewSequence(children...), nil
}
