package proof

import (
	"errors"

	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

var (
	// ErrPathBroken indicates that the key's path cannot be fully walked
	// in the trie: a branch is missing or points to an absent node.
	ErrPathBroken = errors.New("[proof] Key path is broken")
	// ErrNodeNotFound is returned by a Trie when no node is stored under
	// the requested hash.
	ErrNodeNotFound = errors.New("[proof] Node not found")
)

// Node is the read-only view of a content-addressed trie node.
// Two nodes with equal contents have equal hashes.
type Node[H, S comparable, V any] interface {
	// Hash returns the digest of the node's branch table and value.
	Hash() H
	// Child returns the hash of the child reached through sym,
	// and false if the node has no child for sym.
	Child(sym S) (H, bool)
	// Value returns the payload stored at this node, if any.
	Value() maybe.Maybe[V]
}

// Trie is the collaborator Generate reads from. Resolve must return
// ErrNodeNotFound (possibly wrapped) for a hash it does not know.
// Implementations used by concurrent generators must be safe for
// concurrent reads.
type Trie[H, S comparable, V any] interface {
	Root() Node[H, S, V]
	Resolve(h H) (Node[H, S, V], error)
}
