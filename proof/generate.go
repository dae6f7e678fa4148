package proof

import (
	"errors"
	"fmt"
)

// Generate walks t from its root along key and returns a Store holding
// every node on the path, each indexed by its own hash, the terminal
// node included. An empty key yields a Store with the root alone.
//
// If a symbol has no branch in the current node, or its child is not in
// the trie, Generate fails with ErrPathBroken. Other errors from
// t.Resolve are returned wrapped. In both cases no Store is returned.
func Generate[H, S comparable, V any](t Trie[H, S, V], key []S) (*Store[H, S, V], error) {
	current := t.Root()
	if current == nil {
		return nil, fmt.Errorf("%w: trie has no root", ErrPathBroken)
	}
	ps := NewStore[H, S, V]()
	for depth, sym := range key {
		ps.Put(current.Hash(), current)
		childHash, ok := current.Child(sym)
		if !ok {
			return nil, fmt.Errorf("%w: no branch for symbol %v at depth %d",
				ErrPathBroken, sym, depth)
		}
		child, err := t.Resolve(childHash)
		switch {
		case errors.Is(err, ErrNodeNotFound):
			return nil, fmt.Errorf("%w: dangling reference %v at depth %d",
				ErrPathBroken, childHash, depth)
		case err != nil:
			return nil, fmt.Errorf("[proof] Cannot resolve %v at depth %d: %w",
				childHash, depth, err)
		case child == nil:
			return nil, fmt.Errorf("%w: dangling reference %v at depth %d",
				ErrPathBroken, childHash, depth)
		}
		current = child
	}
	ps.Put(current.Hash(), current)
	return ps, nil
}
