/*
Package merkletree implements a binary Merkle tree over an ordered list
of contents.

Leaves are the contents' own hashes; every interior node is the digest
of its two children's hashes, left then right. A level with an odd
number of nodes pairs its last node with itself, and an odd number of
contents duplicates the last leaf.

AuthPath returns the sibling hashes from a leaf up to the root. With
the tree's root hash and the content, a verifier recomputes the root
from the path without the tree (AuthenticationPath.Verify).
*/
package merkletree
