package shake

import (
	"bytes"
	"testing"

	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
)

func TestHasher(t *testing.T) {
	h, err := hashers.Hasher(SHAKE128)
	if err != nil {
		t.Fatal(err)
	}
	if h.Size() != crypto.HashSizeByte {
		t.Error("Unexpected size", h.Size())
	}
	enc := []byte("enc")
	id := h.HashNode(enc)
	if !bytes.Equal(id[:], crypto.Digest([]byte{nodeIdentifier}, enc)) {
		t.Error("HashNode should be H(Identifier || encoding)")
	}
}
