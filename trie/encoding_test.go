package trie

import (
	"testing"

	"github.com/ethereum/go-ethereum/rlp"
	"github.com/stretchr/testify/require"

	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers/coniks"
	"github.com/coniks-sys/trieproof-go/proof"
	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

func mustEncode(t *testing.T, v interface{}) []byte {
	t.Helper()
	enc, err := rlp.EncodeToBytes(v)
	require.NoError(t, err)
	return enc
}

func TestMarshalProofRoundTrip(t *testing.T) {
	require := require.New(t)
	h := coniks.New()
	tr := newTestTrie(t, h, NewMemoryDB(), testPairs)

	for key, value := range testPairs {
		ps, err := tr.Prove([]byte(key))
		require.NoError(err)

		b, err := MarshalProof(ps)
		require.NoError(err)
		dec, err := UnmarshalProof(h, b)
		require.NoError(err)
		require.Equal(ps.Hashes(), dec.Hashes())

		ok, got := VerifyProof(tr.RootHash(), []byte(key), dec)
		require.True(ok, key)
		require.Equal([]byte(value), got.Value())
	}
}

func TestUnmarshalProofTamperedValue(t *testing.T) {
	require := require.New(t)
	h := coniks.New()
	tr := newTestTrie(t, h, NewMemoryDB(), testPairs)

	ps, err := tr.Prove([]byte("abc"))
	require.NoError(err)
	last := ps.Hashes()[ps.Len()-1]

	// replace the terminal node's encoding, keeping its claimed hash
	forged := NewNode(h, nil, maybe.Some([]byte("forged")))
	records := []proofRecord{}
	for _, hash := range ps.Hashes() {
		n, _ := ps.Get(hash)
		enc := n.(*Node).Encode()
		if hash == last {
			enc = forged.Encode()
		}
		records = append(records, proofRecord{Hash: hash.Bytes(), Node: enc})
	}

	dec, err := UnmarshalProof(h, mustEncode(t, records))
	require.NoError(err)
	ok, _ := VerifyProof(tr.RootHash(), []byte("abc"), dec)
	require.False(ok)
}

func TestUnmarshalProofRejectsMalformed(t *testing.T) {
	h := coniks.New()
	node := emptyNode(h)

	tests := []struct {
		name string
		in   []byte
	}{
		{"garbage", []byte{0xff, 0x01}},
		{"short hash", mustEncode(t, []proofRecord{{Hash: []byte{1}, Node: node.Encode()}})},
		{"bad node", mustEncode(t, []proofRecord{{Hash: node.Hash().Bytes(), Node: mustEncode(t, []byte("x"))}})},
		{"duplicate", mustEncode(t, []proofRecord{
			{Hash: node.Hash().Bytes(), Node: node.Encode()},
			{Hash: node.Hash().Bytes(), Node: node.Encode()},
		})},
		{"trailing bytes", append(mustEncode(t, []proofRecord{}), 0xc0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalProof(h, tt.in)
			require.ErrorIs(t, err, ErrMalformedProof)
		})
	}
}

type foreignNode struct{}

func (foreignNode) Hash() crypto.Hash              { return crypto.Hash{} }
func (foreignNode) Child(byte) (crypto.Hash, bool) { return crypto.Hash{}, false }
func (foreignNode) Value() maybe.Maybe[[]byte]     { return maybe.Nothing[[]byte]() }

func TestMarshalProofForeignNode(t *testing.T) {
	ps := NewProofStore()
	ps.Put(crypto.Hash{}, foreignNode{})
	_, err := MarshalProof(ps)
	require.ErrorIs(t, err, ErrMalformedProof)
}

var _ proof.Node[crypto.Hash, byte, []byte] = foreignNode{}
