// Package crypto contains the hashing primitives of the trie, to:
// - hash arbitrary data (`Digest`) using sha3 (shake128)
// - represent a fixed-size node digest (`Hash`) usable as a map key
// - parse and print digests in hex.
//
// The hash function used for node identities is pluggable, see the
// hashers package.
package crypto
