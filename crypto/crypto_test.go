package crypto

import (
	"bytes"
	"errors"
	"testing"
)

func TestDigestIsDeterministic(t *testing.T) {
	d1 := Digest([]byte("hello"), []byte("world"))
	d2 := Digest([]byte("hello"), []byte("world"))
	if !bytes.Equal(d1, d2) {
		t.Fatal("Digest of the same input differs")
	}
	if len(d1) != HashSizeByte {
		t.Fatal("Unexpected digest length", len(d1))
	}
	if bytes.Equal(d1, Digest([]byte("hello"))) {
		t.Error("Digest of different inputs collides")
	}
}

func TestHashHexRoundTrip(t *testing.T) {
	h, err := HashFromBytes(Digest([]byte("node")))
	if err != nil {
		t.Fatal(err)
	}
	got, err := HashFromHex(h.String())
	if err != nil {
		t.Fatal(err)
	}
	if got != h {
		t.Error("Expect", h, "got", got)
	}
	b := h.Bytes()
	b[0] ^= 0xff
	if h[0] == b[0] {
		t.Error("Bytes should return a copy")
	}
}

func TestHashFromBytesBadLength(t *testing.T) {
	if _, err := HashFromBytes([]byte{1, 2, 3}); !errors.Is(err, ErrHashSize) {
		t.Fatal("Expect", ErrHashSize, "got", err)
	}
	if _, err := HashFromHex("zz"); err == nil {
		t.Fatal("Expect an error for malformed hex")
	}
}
