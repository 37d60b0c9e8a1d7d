package dbor

import "testing"

func TestValue_Constructors(t *testing.T) {
	if !None().IsNone() {
		t.Error("None() is not None")
	}

	i := NewInteger(-5)
	got, err := i.Int64()
	if err != nil || got != -5 {
		t.Errorf("Int64() = (%d, %v), want (-5, nil)", got, err)
	}

	u := NewUint64(1 << 63)
	ug, err := u.Uint64()
	if err != nil || ug != 1<<63 {
		t.Errorf("Uint64() = (%d, %v), want (%d, nil)", ug, err, uint64(1)<<63)
	}

	bs := NewByteString([]byte{1, 2, 3})
	bg, err := bs.Bytes()
	if err != nil || !bytesEqual(bg, []byte{1, 2, 3}) {
		t.Errorf("Bytes() = (%v, %v), want ([1 2 3], nil)", bg, err)
	}

	s, err := NewUtf8String("hello")
	if err != nil {
		t.Fatalf("NewUtf8String(hello): %v", err)
	}
	sg, err := s.String()
	if err != nil || sg != "hello" {
		t.Errorf("String() = (%q, %v), want (hello, nil)", sg, err)
	}
}

func TestValue_WrongKindAccessors(t *testing.T) {
	v := NewInteger(1)
	if _, err := v.Bytes(); err == nil {
		t.Error("Bytes() on Integer should error")
	}
	if _, err := v.String(); err == nil {
		t.Error("String() on Integer should error")
	}
	if _, err := v.Sequence(); err == nil {
		t.Error("Sequence() on Integer should error")
	}
}

func TestNewUtf8StringFromBytes_RejectsInvalidUtf8(t *testing.T) {
	_, err := NewUtf8StringFromBytes([]byte{0xff, 0xfe})
	ee, ok := err.(*EncodeError)
	if !ok || ee.Kind != InvalidUtf8 {
		t.Fatalf("NewUtf8StringFromBytes(invalid) = %v, want InvalidUtf8", err)
	}
}

func TestNewUtf8String_RejectsInvalidUtf8(t *testing.T) {
	// A plain, safe byte-to-string conversion produces an ill-formed string
	// with no unsafe involved; NewUtf8String must catch it, not just
	// NewUtf8StringFromBytes.
	_, err := NewUtf8String(string([]byte{0xff, 0xfe}))
	ee, ok := err.(*EncodeError)
	if !ok || ee.Kind != InvalidUtf8 {
		t.Fatalf("NewUtf8String(invalid) = %v, want InvalidUtf8", err)
	}
}

func TestValue_IsNegative(t *testing.T) {
	neg, err := NewInteger(-5).IsNegative()
	if err != nil || !neg {
		t.Errorf("IsNegative(-5) = (%v, %v), want (true, nil)", neg, err)
	}

	pos, err := NewInteger(5).IsNegative()
	if err != nil || pos {
		t.Errorf("IsNegative(5) = (%v, %v), want (false, nil)", pos, err)
	}

	if _, err := NewByteString(nil).IsNegative(); err == nil {
		t.Error("IsNegative() on ByteString should error")
	}
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"none==none", None(), None(), true},
		{"none!=int", None(), NewInteger(0), false},
		{"int==int", NewInteger(7), NewInteger(7), true},
		{"int!=int", NewInteger(7), NewInteger(8), false},
		{"bytes==bytes", NewByteString([]byte{1, 2}), NewByteString([]byte{1, 2}), true},
		{"bytes!=bytes", NewByteString([]byte{1, 2}), NewByteString([]byte{1, 3}), false},
		{"str==str", mustUtf8String(t, "a"), mustUtf8String(t, "a"), true},
		{"seq==seq", NewSequence(NewInteger(1), None()), NewSequence(NewInteger(1), None()), true},
		{"seq!=seq len", NewSequence(NewInteger(1)), NewSequence(NewInteger(1), None()), false},
		{"seq!=seq elem", NewSequence(NewInteger(1)), NewSequence(NewInteger(2)), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
