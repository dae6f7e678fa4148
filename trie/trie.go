package trie

import (
	"fmt"

	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
	"github.com/coniks-sys/trieproof-go/proof"
	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

// Trie is a content-addressed prefix tree stored in a NodeDB.
// Reads are safe for concurrent use as long as no Put runs.
type Trie struct {
	db     NodeDB
	hasher hashers.TrieHasher
	root   *Node
}

var _ proof.Trie[crypto.Hash, byte, []byte] = (*Trie)(nil)

// New returns an empty trie whose root is written to db.
func New(db NodeDB, h hashers.TrieHasher) (*Trie, error) {
	root := emptyNode(h)
	if err := db.Put(root); err != nil {
		return nil, err
	}
	return &Trie{db: db, hasher: h, root: root}, nil
}

// Open returns the trie rooted at the node stored under root.
func Open(db NodeDB, h hashers.TrieHasher, root crypto.Hash) (*Trie, error) {
	n, err := db.Get(root)
	if err != nil {
		return nil, fmt.Errorf("[trie] Cannot open root %v: %w", root, err)
	}
	return &Trie{db: db, hasher: h, root: n}, nil
}

// Root returns the root node.
func (t *Trie) Root() proof.Node[crypto.Hash, byte, []byte] {
	return t.root
}

// RootHash returns the hash of the root node, the commitment to the
// whole trie.
func (t *Trie) RootHash() crypto.Hash {
	return t.root.Hash()
}

// Resolve returns the node stored under h.
func (t *Trie) Resolve(h crypto.Hash) (proof.Node[crypto.Hash, byte, []byte], error) {
	n, err := t.db.Get(h)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// Get returns the value stored at key, or Nothing if the key's path does
// not exist or ends in a node without value.
func (t *Trie) Get(key []byte) (maybe.Maybe[[]byte], error) {
	n := t.root
	for _, sym := range key {
		child, ok := n.Child(sym)
		if !ok {
			return maybe.Nothing[[]byte](), nil
		}
		var err error
		if n, err = t.db.Get(child); err != nil {
			return maybe.Nothing[[]byte](), err
		}
	}
	return n.Value(), nil
}

// Put sets the value stored at key. Every node on the key's path is
// replaced by an updated copy; the old nodes stay in the NodeDB.
func (t *Trie) Put(key, value []byte) error {
	var dirty []*Node
	root, err := t.update(t.root, key, value, &dirty)
	if err != nil {
		return err
	}
	if err := t.db.Put(dirty...); err != nil {
		return err
	}
	t.root = root
	return nil
}

func (t *Trie) update(n *Node, key, value []byte, dirty *[]*Node) (*Node, error) {
	if len(key) == 0 {
		updated := n.withValue(t.hasher, value)
		*dirty = append(*dirty, updated)
		return updated, nil
	}
	child := emptyNode(t.hasher)
	if h, ok := n.Child(key[0]); ok {
		var err error
		if child, err = t.db.Get(h); err != nil {
			return nil, err
		}
	}
	child, err := t.update(child, key[1:], value, dirty)
	if err != nil {
		return nil, err
	}
	updated := n.withChild(t.hasher, key[0], child.Hash())
	*dirty = append(*dirty, updated)
	return updated, nil
}

// VerifyIntegrity checks that every node reachable from the root is
// stored and hashes to the reference its parent holds.
func (t *Trie) VerifyIntegrity() error {
	return t.verifyNode(t.root.Hash(), make(map[crypto.Hash]bool))
}

func (t *Trie) verifyNode(h crypto.Hash, seen map[crypto.Hash]bool) error {
	if seen[h] {
		return nil
	}
	n, err := t.db.Get(h)
	if err != nil {
		return fmt.Errorf("[trie] Integrity check failed: %w", err)
	}
	if n.Hash() != h {
		return fmt.Errorf("%w: %v hashes to %v", ErrCorruptNode, h, n.Hash())
	}
	seen[h] = true
	for _, sym := range n.symbols() {
		if err := t.verifyNode(n.branch[sym], seen); err != nil {
			return err
		}
	}
	return nil
}
