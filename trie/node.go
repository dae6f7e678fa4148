package trie

import (
	"sort"

	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
	"github.com/coniks-sys/trieproof-go/proof"
	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

// Node is an immutable trie node. Its hash is computed once, at
// construction, from its branch table and value.
type Node struct {
	branch map[byte]crypto.Hash
	value  maybe.Maybe[[]byte]
	hash   crypto.Hash
}

var _ proof.Node[crypto.Hash, byte, []byte] = (*Node)(nil)

// NewNode returns a node with a copy of branch and value, hashed with h.
func NewNode(h hashers.TrieHasher, branch map[byte]crypto.Hash, value maybe.Maybe[[]byte]) *Node {
	n := &Node{
		branch: make(map[byte]crypto.Hash, len(branch)),
		value:  maybe.Bind(value, copyBytes),
	}
	for sym, child := range branch {
		n.branch[sym] = child
	}
	n.hash = h.HashNode(n.Encode())
	return n
}

func emptyNode(h hashers.TrieHasher) *Node {
	return NewNode(h, nil, maybe.Nothing[[]byte]())
}

func copyBytes(b []byte) []byte {
	return append([]byte{}, b...)
}

// Hash returns the node's identity.
func (n *Node) Hash() crypto.Hash {
	return n.hash
}

// Child returns the hash of the child reached through sym.
func (n *Node) Child(sym byte) (crypto.Hash, bool) {
	child, ok := n.branch[sym]
	return child, ok
}

// Value returns the payload stored at the node. The returned slice must
// not be modified.
func (n *Node) Value() maybe.Maybe[[]byte] {
	return n.value
}

// Branch returns a copy of the node's branch table.
func (n *Node) Branch() map[byte]crypto.Hash {
	branch := make(map[byte]crypto.Hash, len(n.branch))
	for sym, child := range n.branch {
		branch[sym] = child
	}
	return branch
}

// symbols returns the branch symbols in ascending order.
func (n *Node) symbols() []byte {
	syms := make([]byte, 0, len(n.branch))
	for sym := range n.branch {
		syms = append(syms, sym)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })
	return syms
}

func (n *Node) withChild(h hashers.TrieHasher, sym byte, child crypto.Hash) *Node {
	branch := n.Branch()
	branch[sym] = child
	return NewNode(h, branch, n.value)
}

func (n *Node) withValue(h hashers.TrieHasher, value []byte) *Node {
	return NewNode(h, n.branch, maybe.Some(value))
}
