/*
Package trie implements a content-addressed prefix tree over byte keys,
one key byte per level, and wires it to the generic proof package.

Every Node is identified by the hash of its canonical RLP encoding:

	[ [ [symbol, childHash], ... ], [value]? ]

with branches sorted by symbol and an empty value list when no value is
stored. Nodes are immutable; Trie.Put copies the nodes on the key's path
and writes the new versions to a NodeDB, so earlier roots stay valid and
can be reopened with Open.

Proofs are generated with Trie.Prove, checked with VerifyProof and moved
between processes with MarshalProof and UnmarshalProof.
*/
package trie
