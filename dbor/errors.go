package dbor

import "fmt"

// Kind identifies the category of a codec failure, independent of the
// message text, so callers can branch on it with errors.Is/errors.As.
type Kind uint8

const (
	// Truncated means the input ended before a declared payload, token
	// tail, or sequence body was fully consumed.
	Truncated Kind = iota

	// TrailingBytes means bytes remain after the expected top-level value,
	// or a sequence child ran past the end of the sequence's declared
	// payload.
	TrailingBytes

	// OutOfRange means an integer token decoded to a magnitude outside the
	// representable signed/unsigned combined range.
	OutOfRange

	// InvalidUtf8 means a Utf8String's payload is not well-formed UTF-8.
	InvalidUtf8

	// UnsupportedType means a header class not defined at conformance
	// level 2 was encountered.
	UnsupportedType

	// NonCanonical means the encoding used a larger integer-token form
	// than necessary for its value.
	NonCanonical

	// NestingTooDeep means sequence recursion exceeded the configured
	// depth limit.
	NestingTooDeep

	// EncodedSizeOverflow means a sequence's payload would exceed the
	// integer-token domain (2^64-1+24 bytes).
	EncodedSizeOverflow

	// SequenceTooWide means a Sequence declared more direct children than
	// a configured WithMaxSequenceWidth limit allows. Distinct from
	// OutOfRange, which is reserved for integer-token magnitudes.
	SequenceTooWide
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case Truncated:
		return "truncated"
	case TrailingBytes:
		return "trailing bytes"
	case OutOfRange:
		return "out of range"
	case InvalidUtf8:
		return "invalid utf-8"
	case UnsupportedType:
		return "unsupported type"
	case NonCanonical:
		return "non-canonical encoding"
	case NestingTooDeep:
		return "nesting too deep"
	case EncodedSizeOverflow:
		return "encoded size overflow"
	case SequenceTooWide:
		return "sequence too wide"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// DecodeError reports a decode failure at a specific byte offset.
type DecodeError struct {
	Kind    Kind
	Offset  int
	Message string
}

func (e *DecodeError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("dbor: decode: %s at offset %d: %s", e.Kind, e.Offset, e.Message)
	}
	return fmt.Sprintf("dbor: decode: %s at offset %d", e.Kind, e.Offset)
}

// Is reports whether target is a *DecodeError with the same Kind, so
// errors.Is(err, Truncated) style checks are not possible directly — callers
// compare via a DecodeError{Kind: ...} target instead.
func (e *DecodeError) Is(target error) bool {
	other, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newDecodeError(kind Kind, offset int, format string, args ...interface{}) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Message: fmt.Sprintf(format, args...)}
}

// EncodeError reports an encode failure at a specific path in the value
// tree being encoded (a chain of sequence indices from the root).
type EncodeError struct {
	Kind    Kind
	Path    string
	Message string
}

func (e *EncodeError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("dbor: encode: %s at %s: %s", e.Kind, e.Path, e.Message)
	}
	return fmt.Sprintf("dbor: encode: %s: %s", e.Kind, e.Message)
}

func (e *EncodeError) Is(target error) bool {
	other, ok := target.(*EncodeError)
	if !ok {
		return false
	}
	return e.Kind == other.Kind
}

func newEncodeError(kind Kind, path string, format string, args ...interface{}) *EncodeError {
	return &EncodeError{Kind: kind, Path: path, Message: fmt.Sprintf(format, args...)}
}
