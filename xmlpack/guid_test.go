package xmlpack

import (
	"encoding/base64"
	"testing"
)

func TestDecodeGUIDUsesFirst16Of20Bytes(t *testing.T) {
	buf := make([]byte, 20)
	for i := range buf {
		buf[i] = byte(i)
	}
	s := base64.StdEncoding.EncodeToString(buf)
	if len(s) != 28 {
		t.Fatalf("test fixture assumption broken: base64 of 20 bytes should be 28 chars, got %d", len(s))
	}

	g, ok := decodeGUID(s)
	if !ok {
		t.Fatal("decodeGUID failed on valid 28-char base64 string")
	}
	for i := 0; i < 16; i++ {
		if g[i] != byte(i) {
			t.Fatalf("g[%d] = %d, want %d", i, g[i], i)
		}
	}
}

func TestDecodeGUIDRejectsShortBuffer(t *testing.T) {
	s := base64.StdEncoding.EncodeToString([]byte{1, 2, 3})
	if _, ok := decodeGUID(s); ok {
		t.Fatal("expected decodeGUID to reject a buffer shorter than 16 bytes")
	}
}

func TestDecodeGUIDRejectsEmptyAndGarbage(t *testing.T) {
	if _, ok := decodeGUID(""); ok {
		t.Fatal("expected empty string to fail")
	}
	if _, ok := decodeGUID("not valid base64!!"); ok {
		t.Fatal("expected garbage string to fail")
	}
}

func TestNewGUIDIsNonZeroAndVaries(t *testing.T) {
	a, b := NewGUID(), NewGUID()
	if a == (GUID{}) {
		t.Fatal("NewGUID returned the zero value")
	}
	if a == b {
		t.Fatal("two consecutive NewGUID calls collided; crypto/rand must be broken")
	}
}
