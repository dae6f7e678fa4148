package merkletree

import (
	"bytes"
	"errors"
	"hash"

	"github.com/coniks-sys/trieproof-go/crypto/hashers"
)

var (
	// ErrEmptyTree indicates an attempt to build a tree without content.
	ErrEmptyTree = errors.New("[merkletree] Cannot build a tree without content")
	// ErrContentNotFound indicates a content that is not a leaf of the tree.
	ErrContentNotFound = errors.New("[merkletree] Content not found")
)

// Content is an element stored in a leaf.
type Content interface {
	CalculateHash() ([]byte, error)
	Equal(other Content) (bool, error)
}

// Hasher computes interior node hashes. Any hashers.TrieHasher is a
// Hasher; HashFunc adapts a hash.Hash constructor.
type Hasher interface {
	Digest(ms ...[]byte) []byte
}

var _ Hasher = (hashers.TrieHasher)(nil)

type hashFunc func() hash.Hash

// HashFunc returns a Hasher digesting with a fresh hash from f.
func HashFunc(f func() hash.Hash) Hasher {
	return hashFunc(f)
}

func (f hashFunc) Digest(ms ...[]byte) []byte {
	h := f()
	for _, m := range ms {
		h.Write(m)
	}
	return h.Sum(nil)
}

type node struct {
	parent  *node
	left    *node
	right   *node
	leaf    bool
	dup     bool
	hash    []byte
	content Content
}

// MerkleTree is a binary Merkle tree. It is not safe for concurrent
// use while being rebuilt.
type MerkleTree struct {
	root   *node
	leaves []*node
	hasher Hasher
}

// New builds the tree over cs, in order, with h for interior nodes.
func New(cs []Content, h Hasher) (*MerkleTree, error) {
	m := &MerkleTree{hasher: h}
	if err := m.RebuildWithContent(cs); err != nil {
		return nil, err
	}
	return m, nil
}

// RebuildWithContent replaces the tree's contents with cs.
func (m *MerkleTree) RebuildWithContent(cs []Content) error {
	if len(cs) == 0 {
		return ErrEmptyTree
	}
	leaves := make([]*node, 0, len(cs)+1)
	for _, c := range cs {
		h, err := c.CalculateHash()
		if err != nil {
			return err
		}
		leaves = append(leaves, &node{leaf: true, hash: h, content: c})
	}
	if len(leaves)%2 == 1 {
		last := leaves[len(leaves)-1]
		leaves = append(leaves, &node{
			leaf:    true,
			dup:     true,
			hash:    last.hash,
			content: last.content,
		})
	}
	m.root = m.buildIntermediate(leaves)
	m.leaves = leaves
	return nil
}

// Rebuild rebuilds the tree from its current contents, recomputing
// every hash.
func (m *MerkleTree) Rebuild() error {
	return m.RebuildWithContent(m.Contents())
}

// buildIntermediate hashes level pairwise until one node is left.
// level always has at least two nodes.
func (m *MerkleTree) buildIntermediate(level []*node) *node {
	for {
		next := make([]*node, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			left, right := level[i], level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			n := &node{
				left:  left,
				right: right,
				hash:  m.hasher.Digest(left.hash, right.hash),
			}
			left.parent = n
			right.parent = n
			next = append(next, n)
		}
		if len(next) == 1 {
			return next[0]
		}
		level = next
	}
}

// RootHash returns a copy of the root hash.
func (m *MerkleTree) RootHash() []byte {
	return append([]byte{}, m.root.hash...)
}

// Contents returns the tree's contents in order, without the padding
// duplicate.
func (m *MerkleTree) Contents() []Content {
	cs := make([]Content, 0, len(m.leaves))
	for _, l := range m.leaves {
		if !l.dup {
			cs = append(cs, l.content)
		}
	}
	return cs
}

func (m *MerkleTree) findLeaf(c Content) (*node, error) {
	for _, l := range m.leaves {
		ok, err := l.content.Equal(c)
		if err != nil {
			return nil, err
		}
		if ok {
			return l, nil
		}
	}
	return nil, ErrContentNotFound
}

// calculateHash recomputes n's hash from its content or from its
// children's stored hashes.
func (m *MerkleTree) calculateHash(n *node) ([]byte, error) {
	if n.leaf {
		return n.content.CalculateHash()
	}
	return m.hasher.Digest(n.left.hash, n.right.hash), nil
}

// verifyHash recomputes n's hash from the leaves up.
func (m *MerkleTree) verifyHash(n *node) ([]byte, error) {
	if n.leaf {
		return n.content.CalculateHash()
	}
	left, err := m.verifyHash(n.left)
	if err != nil {
		return nil, err
	}
	right, err := m.verifyHash(n.right)
	if err != nil {
		return nil, err
	}
	return m.hasher.Digest(left, right), nil
}

// Verify recomputes the whole tree from its contents and compares the
// result with the stored root hash.
func (m *MerkleTree) Verify() (bool, error) {
	root, err := m.verifyHash(m.root)
	if err != nil {
		return false, err
	}
	return bytes.Equal(root, m.root.hash), nil
}

// VerifyContent reports whether c is a leaf of the tree and every node
// from its leaf up to the root matches the hashes of its children.
func (m *MerkleTree) VerifyContent(c Content) (bool, error) {
	l, err := m.findLeaf(c)
	if err == ErrContentNotFound {
		return false, nil
	} else if err != nil {
		return false, err
	}
	for n := l.parent; n != nil; n = n.parent {
		left, err := m.calculateHash(n.left)
		if err != nil {
			return false, err
		}
		right, err := m.calculateHash(n.right)
		if err != nil {
			return false, err
		}
		if !bytes.Equal(m.hasher.Digest(left, right), n.hash) {
			return false, nil
		}
	}
	return true, nil
}
