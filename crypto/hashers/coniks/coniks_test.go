package coniks

import (
	"bytes"
	"crypto/sha512"
	"testing"

	"github.com/coniks-sys/trieproof-go/crypto/hashers"
)

func TestHasherIsRegistered(t *testing.T) {
	h, err := hashers.Hasher(CONIKS_Hash_SHA512_256)
	if err != nil {
		t.Fatal(err)
	}
	if h.ID() != CONIKS_Hash_SHA512_256 {
		t.Error("Unexpected hasher ID", h.ID())
	}
	if h.Size() != sha512.Size256 {
		t.Error("Expect output size", sha512.Size256, "got", h.Size())
	}
}

func TestDigestMatchesSHA512_256(t *testing.T) {
	want := sha512.Sum512_256([]byte("foobar"))
	got := New().Digest([]byte("foo"), []byte("bar"))
	if !bytes.Equal(want[:], got) {
		t.Errorf("Digest(foo, bar): %x, want %x", got, want)
	}
}

func TestHashNodeIsDomainSeparated(t *testing.T) {
	h := New()
	enc := []byte("node encoding")
	id := h.HashNode(enc)
	if bytes.Equal(id[:], h.Digest(enc)) {
		t.Error("Node hash must not equal the plain digest of its encoding")
	}
	want := sha512.Sum512_256(append([]byte{nodeIdentifier}, enc...))
	if id != want {
		t.Errorf("HashNode: %x, want %x", id, want)
	}
	if h.HashNode([]byte("other")) == id {
		t.Error("Different encodings hash to the same identity")
	}
}
