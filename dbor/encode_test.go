package dbor

import (
	"bytes"
	"testing"
)

func TestEncode_Scalars(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		hex  string
	}{
		{"none", None(), "ff"},
		{"zero", NewInteger(0), "00"},
		{"one", NewInteger(1), "01"},
		{"twenty-three", NewInteger(23), "17"},
		{"twenty-four", NewInteger(24), "1800"},
		{"neg-one", NewInteger(-1), "20"},
		{"neg-two", NewInteger(-2), "21"},
		{"neg-twenty-four", NewInteger(-24), "37"},
		{"neg-twenty-five", NewInteger(-25), "3800"},
		{"min-int64", NewInteger(-1 << 63), "3fe7fefefefefefe7e"},
		{"max-uint64", NewUint64(1<<64 - 1), "1fe7fefefefefefefe"},
		{"empty string", mustUtf8String(t, ""), "60"},
		{"ascii string", mustUtf8String(t, "A"), "6141"},
		{"latin-1 string", mustUtf8String(t, "Olé"), "644f6cc3a9"},
		{"emoji string", mustUtf8String(t, "😀"), "64f09f9880"},
		{"mixed string", mustUtf8String(t, "¡Olé!"), "67c2a14f6cc3a921"},
		{"empty sequence", NewSequence(), "80"},
		{"singleton sequence", NewSequence(None()), "81ff"},
		{"nested sequence", NewSequence(NewSequence(None()), NewSequence()), "8381ff80"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Encode(tt.v)
			if err != nil {
				t.Fatalf("Encode(%v): %v", tt.v, err)
			}
			want := mustHex(t, tt.hex)
			if !bytes.Equal(got, want) {
				t.Errorf("Encode(%v) = %x, want %x", tt.v, got, want)
			}
		})
	}
}

func TestEncode_ByteStrings(t *testing.T) {
	tests := []struct {
		n      int
		prefix string
	}{
		{0, "40"},
		{23, "57"},
		{24, "5800"},
		{279, "58ff"},
		{280, "590000"},
	}
	for _, tt := range tests {
		b := make([]byte, tt.n)
		for i := range b {
			b[i] = byte(i)
		}
		got, err := Encode(NewByteString(b))
		if err != nil {
			t.Fatalf("Encode(bytestring len %d): %v", tt.n, err)
		}
		want := mustHex(t, tt.prefix)
		if !bytes.HasPrefix(got, want) {
			t.Errorf("Encode(bytestring len %d) header = %x, want prefix %x", tt.n, got, want)
		}
		if !bytes.HasSuffix(got, b) {
			t.Errorf("Encode(bytestring len %d) payload mismatch", tt.n)
		}
	}
}

func TestEncode_Sequence(t *testing.T) {
	v := NewSequence(NewInteger(1), mustUtf8String(t, "A"), NewByteString([]byte{1, 2}))
	got, err := Encode(v)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := mustHex(t, "86016141420102")
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(sequence) = %x, want %x", got, want)
	}
}

func TestEncode_MinInt64Boundary(t *testing.T) {
	// -2^63 is int64's most negative value and DBOR's most negative
	// representable integer; both boundaries coincide exactly.
	v := NewInteger(-1 << 63)
	if _, err := Encode(v); err != nil {
		t.Fatalf("Encode(-2^63): %v", err)
	}
}
