package trie

import (
	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/proof"
	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

// ProofStore is a proof over this package's tries.
type ProofStore = proof.Store[crypto.Hash, byte, []byte]

// NewProofStore returns an empty ProofStore.
func NewProofStore() *ProofStore {
	return proof.NewStore[crypto.Hash, byte, []byte]()
}

// Prove returns the proof for key: the nodes on the path from the root
// to the node reached by key. It fails with proof.ErrPathBroken if the
// path does not exist.
func (t *Trie) Prove(key []byte) (*ProofStore, error) {
	return proof.Generate[crypto.Hash, byte, []byte](t, key)
}

// VerifyProof checks ps against the trusted root hash and returns the
// value proven for key.
func VerifyProof(root crypto.Hash, key []byte, ps proof.Getter[crypto.Hash, byte, []byte]) (bool, maybe.Maybe[[]byte]) {
	return proof.Verify[crypto.Hash, byte, []byte](root, key, ps)
}
