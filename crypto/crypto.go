package crypto

import (
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/sha3"
)

const (
	// HashSizeByte is the size of the hash output in bytes.
	HashSizeByte = 32
	// HashID identifies the default hash as a string.
	HashID = "SHAKE128"
)

var (
	// ErrHashSize indicates a digest of the wrong length.
	ErrHashSize = errors.New("[crypto] Bad hash length")
)

// Hash is the identity of a trie node: the digest of its serialized
// contents. It is comparable and can be used as a map key.
type Hash [HashSizeByte]byte

// HashFromBytes copies b into a Hash.
// It returns ErrHashSize if b is not exactly HashSizeByte long.
func HashFromBytes(b []byte) (Hash, error) {
	var h Hash
	if len(b) != HashSizeByte {
		return h, fmt.Errorf("%w: got %d bytes", ErrHashSize, len(b))
	}
	copy(h[:], b)
	return h, nil
}

// HashFromHex parses a hex-encoded digest as printed by Hash.String.
func HashFromHex(s string) (Hash, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, err
	}
	return HashFromBytes(b)
}

// Bytes returns a copy of the digest as a byte slice.
func (h Hash) Bytes() []byte {
	return append([]byte{}, h[:]...)
}

func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// Digest hashes all passed byte slices.
// The passed slices won't be mutated.
func Digest(ms ...[]byte) []byte {
	h := sha3.NewShake128()
	for _, m := range ms {
		h.Write(m)
	}
	ret := make([]byte, HashSizeByte)
	h.Read(ret)
	return ret
}
