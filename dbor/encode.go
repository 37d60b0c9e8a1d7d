package dbor

import (
	"bytes"
	"strconv"
)

// Encode renders v as a DBOR byte sequence.
func Encode(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeInto(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeInto renders v into dst, appending to whatever dst already holds.
func EncodeInto(dst *bytes.Buffer, v Value) error {
	return encodeValue(dst, v, "")
}

func encodeValue(dst *bytes.Buffer, v Value, path string) error {
	switch v.kind {
	case KindNone:
		dst.WriteByte(noneByte)
		return nil

	case KindInteger:
		if v.negative {
			encodeToken(dst, classNegativeInt, v.magnitude)
		} else {
			encodeToken(dst, classUnsignedInt, v.magnitude)
		}
		return nil

	case KindByteString:
		encodeToken(dst, classByteString, uint64(len(v.bytesVal)))
		dst.Write(v.bytesVal)
		return nil

	case KindUtf8String:
		encodeToken(dst, classUtf8String, uint64(len(v.strVal)))
		dst.WriteString(v.strVal)
		return nil

	case KindSequence:
		return encodeSequence(dst, v, path)

	default:
		return newEncodeError(UnsupportedType, path, "value kind %s has no DBOR encoding", v.kind)
	}
}

// encodeSequence encodes children into a scratch buffer first so the
// payload's byte length is known before its length token is written.
func encodeSequence(dst *bytes.Buffer, v Value, path string) error {
	var payload bytes.Buffer
	for i, child := range v.seqVal {
		childPath := seqPath(path, i)
		if err := encodeValue(&payload, child, childPath); err != nil {
			return err
		}
	}

	encodeToken(dst, classSequence, uint64(payload.Len()))
	dst.Write(payload.Bytes())
	return nil
}

func seqPath(parent string, index int) string {
	if parent == "" {
		return strconv.Itoa(index)
	}
	return parent + "." + strconv.Itoa(index)
}
