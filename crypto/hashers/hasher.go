// Package hashers provides the registry of hash functions a trie can
// use to derive node identities. Implementations register themselves
// from an init function; import them with a blank identifier.
package hashers

import (
	"fmt"

	"github.com/coniks-sys/trieproof-go/crypto"
)

// TrieHasher provides hash functions for the trie implementations.
type TrieHasher interface {
	// ID returns the name of the cryptographic hash function.
	ID() string
	// Size returns the size of the hash output in bytes.
	Size() int
	// Digest hashes all passed byte slices. The passed slices won't be mutated.
	Digest(ms ...[]byte) []byte
	// HashNode computes the identity of a trie node from its canonical
	// encoding as: H(Identifier || encoding)
	HashNode(enc []byte) crypto.Hash
}

var hashers = make(map[string]TrieHasher)

// RegisterHasher registers a hasher for use.
func RegisterHasher(h string, f func() TrieHasher) {
	if _, ok := hashers[h]; ok {
		panic(fmt.Sprintf("RegisterHasher(%v) is already registered", h))
	}
	hashers[h] = f()
}

// Hasher returns a TrieHasher.
func Hasher(h string) (TrieHasher, error) {
	if f, ok := hashers[h]; ok {
		return f, nil
	}
	return nil, fmt.Errorf("Hasher(%v) is unknown hasher", h)
}
