// Package coniks implements the CONIKS_Hash_SHA512_256 node hashing
// strategy. Import it with a blank identifier to register it.
package coniks

import (
	"crypto"
	_ "crypto/sha512"

	ccrypto "github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
)

func init() {
	hashers.RegisterHasher(CONIKS_Hash_SHA512_256, New)
}

const (
	// CONIKS_Hash_SHA512_256 is the identity of the hashing strategy
	// specified in the Coniks paper with SHA512_256 as the hash algorithm.
	CONIKS_Hash_SHA512_256 = "CONIKS_Hash_SHA512_256"

	nodeIdentifier = 'N'
)

type hasher struct {
	crypto.Hash
}

// New returns an instance of CONIKS_Hash_SHA512_256.
func New() hashers.TrieHasher {
	return &hasher{Hash: crypto.SHA512_256}
}

func (ch *hasher) Digest(ms ...[]byte) []byte {
	h := ch.New()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

func (hasher) ID() string {
	return CONIKS_Hash_SHA512_256
}

func (ch *hasher) Size() int {
	return ch.Hash.Size()
}

// HashNode computes the identity of a trie node as:
// H(Identifier || encoding).
func (ch *hasher) HashNode(enc []byte) ccrypto.Hash {
	var ret ccrypto.Hash
	copy(ret[:], ch.Digest([]byte{nodeIdentifier}, enc))
	return ret
}
