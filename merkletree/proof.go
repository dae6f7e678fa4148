package merkletree

import (
	"bytes"
)

// AuthenticationPath holds the sibling hashes on the way from a leaf to
// the root, bottom-up. Right[i] reports whether Siblings[i] is the right
// child of its parent.
type AuthenticationPath struct {
	Siblings [][]byte
	Right    []bool
}

// AuthPath returns the authentication path of c's leaf. It returns
// ErrContentNotFound if c is not in the tree.
func (m *MerkleTree) AuthPath(c Content) (*AuthenticationPath, error) {
	l, err := m.findLeaf(c)
	if err != nil {
		return nil, err
	}
	ap := new(AuthenticationPath)
	for n := l; n.parent != nil; n = n.parent {
		if n.parent.left == n {
			ap.Siblings = append(ap.Siblings, append([]byte{}, n.parent.right.hash...))
			ap.Right = append(ap.Right, true)
		} else {
			ap.Siblings = append(ap.Siblings, append([]byte{}, n.parent.left.hash...))
			ap.Right = append(ap.Right, false)
		}
	}
	return ap, nil
}

func (ap *AuthenticationPath) authPathHash(h Hasher, leaf []byte) []byte {
	hash := leaf
	for i, sibling := range ap.Siblings {
		if ap.Right[i] {
			hash = h.Digest(hash, sibling)
		} else {
			hash = h.Digest(sibling, hash)
		}
	}
	return hash
}

// Verify recomputes the root from c and the path with h, and compares
// it to treeHash.
func (ap *AuthenticationPath) Verify(h Hasher, c Content, treeHash []byte) bool {
	if len(ap.Siblings) != len(ap.Right) {
		return false
	}
	leaf, err := c.CalculateHash()
	if err != nil {
		return false
	}
	return bytes.Equal(treeHash, ap.authPathHash(h, leaf))
}
