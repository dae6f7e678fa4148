// Defines the JSON envelope proofs travel in between a prover and a
// verifier. The proof itself is the RLP encoding produced by
// trie.MarshalProof.

package application

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
	"github.com/coniks-sys/trieproof-go/trie"
	"github.com/coniks-sys/trieproof-go/utils"
)

// ErrMalformedMessage indicates a proof message that cannot be decoded.
var ErrMalformedMessage = errors.New("[application] Malformed proof message")

// ProofMessage carries a membership proof for Key against Root. Hasher
// names the hashing strategy the nodes in Proof were hashed with.
type ProofMessage struct {
	Root   string `json:"root"`
	Key    []byte `json:"key"`
	Hasher string `json:"hasher"`
	Proof  []byte `json:"proof"`
}

// NewProofMessage encodes ps, the proof for key in the trie with the
// given root.
func NewProofMessage(hasher string, root crypto.Hash, key []byte, ps *trie.ProofStore) (*ProofMessage, error) {
	enc, err := trie.MarshalProof(ps)
	if err != nil {
		return nil, err
	}
	return &ProofMessage{
		Root:   root.String(),
		Key:    key,
		Hasher: hasher,
		Proof:  enc,
	}, nil
}

// RootHash parses the message's root hash.
func (m *ProofMessage) RootHash() (crypto.Hash, error) {
	root, err := crypto.HashFromHex(m.Root)
	if err != nil {
		return crypto.Hash{}, fmt.Errorf("%w: root: %v", ErrMalformedMessage, err)
	}
	return root, nil
}

// Store decodes the message's proof with the hasher it names.
func (m *ProofMessage) Store() (*trie.ProofStore, error) {
	h, err := hashers.Hasher(m.Hasher)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	ps, err := trie.UnmarshalProof(h, m.Proof)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return ps, nil
}

// MarshalProofMessage returns a JSON encoding of m.
func MarshalProofMessage(m *ProofMessage) ([]byte, error) {
	return json.MarshalIndent(m, "", "  ")
}

// UnmarshalProofMessage parses a JSON-encoded proof message.
func UnmarshalProofMessage(msg []byte) (*ProofMessage, error) {
	m := new(ProofMessage)
	if err := json.Unmarshal(msg, m); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return m, nil
}

// WriteProofFile writes the JSON encoding of m to path. It refuses to
// overwrite an existing file.
func WriteProofFile(path string, m *ProofMessage) error {
	b, err := MarshalProofMessage(m)
	if err != nil {
		return err
	}
	return utils.WriteFile(path, b, 0644)
}

// ReadProofFile reads a proof message written by WriteProofFile.
func ReadProofFile(path string) (*ProofMessage, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalProofMessage(b)
}
