package trie

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
	"github.com/coniks-sys/trieproof-go/utils/maybe"
	"github.com/ethereum/go-ethereum/rlp"
)

var (
	// ErrMalformedNode indicates a node encoding that is not canonical.
	ErrMalformedNode = errors.New("[trie] Malformed node encoding")
	// ErrMalformedProof indicates a proof that cannot be decoded.
	ErrMalformedProof = errors.New("[trie] Malformed proof")
)

type rlpBranch struct {
	Symbol byte
	Child  []byte
}

type rlpNode struct {
	Branch []rlpBranch
	Value  [][]byte
}

// Encode returns the canonical encoding of n, the input of its hash.
func (n *Node) Encode() []byte {
	w := rlp.NewEncoderBuffer(nil)
	outer := w.List()
	branches := w.List()
	for _, sym := range n.symbols() {
		child := n.branch[sym]
		pair := w.List()
		w.WriteUint64(uint64(sym))
		w.WriteBytes(child[:])
		w.ListEnd(pair)
	}
	w.ListEnd(branches)
	value := w.List()
	if n.value.HasValue() {
		w.WriteBytes(n.value.Value())
	}
	w.ListEnd(value)
	w.ListEnd(outer)
	enc := w.ToBytes()
	w.Flush()
	return enc
}

// DecodeNode parses a canonical node encoding and hashes it with h.
func DecodeNode(h hashers.TrieHasher, enc []byte) (*Node, error) {
	var dec rlpNode
	if err := rlp.DecodeBytes(enc, &dec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
	}
	if len(dec.Value) > 1 {
		return nil, fmt.Errorf("%w: %d values", ErrMalformedNode, len(dec.Value))
	}
	branch := make(map[byte]crypto.Hash, len(dec.Branch))
	for _, b := range dec.Branch {
		child, err := crypto.HashFromBytes(b.Child)
		if err != nil {
			return nil, fmt.Errorf("%w: branch %d: %v", ErrMalformedNode, b.Symbol, err)
		}
		branch[b.Symbol] = child
	}
	value := maybe.Nothing[[]byte]()
	if len(dec.Value) == 1 {
		value = maybe.Some(dec.Value[0])
	}
	n := NewNode(h, branch, value)
	// rejects unsorted or repeated symbols
	if !bytes.Equal(n.Encode(), enc) {
		return nil, fmt.Errorf("%w: not in canonical form", ErrMalformedNode)
	}
	return n, nil
}

type proofRecord struct {
	Hash []byte
	Node rlp.RawValue
}

// MarshalProof encodes ps as an RLP list of [hash, node] records in
// the store's order.
func MarshalProof(ps *ProofStore) ([]byte, error) {
	records := make([]proofRecord, 0, ps.Len())
	for _, h := range ps.Hashes() {
		pn, _ := ps.Get(h)
		n, ok := pn.(*Node)
		if !ok {
			return nil, fmt.Errorf("%w: unsupported node type %T", ErrMalformedProof, pn)
		}
		records = append(records, proofRecord{
			Hash: h.Bytes(),
			Node: n.Encode(),
		})
	}
	return rlp.EncodeToBytes(records)
}

// UnmarshalProof rebuilds a proof store from the output of MarshalProof.
// Each node is stored under the hash given by its record, whether or not
// it hashes to it; VerifyProof rejects such entries.
func UnmarshalProof(h hashers.TrieHasher, b []byte) (*ProofStore, error) {
	var records []proofRecord
	if err := rlp.DecodeBytes(b, &records); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedProof, err)
	}
	ps := NewProofStore()
	for i, r := range records {
		key, err := crypto.HashFromBytes(r.Hash)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedProof, i, err)
		}
		if _, ok := ps.Get(key); ok {
			return nil, fmt.Errorf("%w: record %d: duplicate hash %v", ErrMalformedProof, i, key)
		}
		n, err := DecodeNode(h, r.Node)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", ErrMalformedProof, i, err)
		}
		ps.Put(key, n)
	}
	return ps, nil
}
