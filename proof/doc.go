/*
Package proof implements generation and verification of membership
proofs over a hash-linked trie.

A trie node is identified by the digest of its contents: its branch
table (symbol to child hash) and its optional value. Generate walks a
live trie from the root along the symbols of a key and records every
visited node, indexed by its own hash, into a fresh Store. Verify
replays the same walk holding only a trusted root hash, the key and
that Store, and reports the value found at the end of the path.

Both operations are generic over the hash type H, the key symbol type S
and the payload type V, so the hash function and key alphabet stay
opaque to this package.

Generation fails with ErrPathBroken when the path cannot be followed to
the end of the key; no partial proof is ever returned. Verification
never returns an error: any missing or inconsistent node rejects the
proof with a false result, without saying why.
*/
package proof
