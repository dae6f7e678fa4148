// Package shake implements a SHAKE128 node hashing strategy, the
// digest the crypto package uses by default.
package shake

import (
	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
)

func init() {
	hashers.RegisterHasher(SHAKE128, New)
}

const (
	// SHAKE128 is the identity of the hashing strategy that uses
	// SHAKE128 with a 32-byte output.
	SHAKE128 = crypto.HashID

	nodeIdentifier = 'N'
)

type hasher struct{}

// New returns an instance of SHAKE128.
func New() hashers.TrieHasher {
	return hasher{}
}

func (hasher) ID() string {
	return SHAKE128
}

func (hasher) Size() int {
	return crypto.HashSizeByte
}

func (hasher) Digest(ms ...[]byte) []byte {
	return crypto.Digest(ms...)
}

func (hasher) HashNode(enc []byte) crypto.Hash {
	var ret crypto.Hash
	copy(ret[:], crypto.Digest([]byte{nodeIdentifier}, enc))
	return ret
}
