package proof

import (
	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

// Verify replays the walk for key starting at the trusted root hash,
// using only the nodes in ps. It returns true and the terminal node's
// value if ps holds an unbroken chain of nodes from root down to the
// node reached by exactly the symbols of key. The value may be Nothing
// if no payload is stored at key; that is still a valid proof.
//
// Any failed lookup rejects the proof. A node found under a hash it does
// not hash to counts as a failed lookup, since ps is untrusted. So does a
// node whose methods panic, such as a typed nil pointer.
func Verify[H, S comparable, V any](root H, key []S, ps Getter[H, S, V]) (ok bool, value maybe.Maybe[V]) {
	defer func() {
		if r := recover(); r != nil {
			ok, value = false, maybe.Nothing[V]()
		}
	}()
	target := root
	for i := 0; ; i++ {
		n, found := ps.Get(target)
		if !found || n == nil || n.Hash() != target {
			return false, maybe.Nothing[V]()
		}
		if i == len(key) {
			return true, n.Value()
		}
		next, found := n.Child(key[i])
		if !found {
			// nothing to look up at the next hop
			return false, maybe.Nothing[V]()
		}
		target = next
	}
}
