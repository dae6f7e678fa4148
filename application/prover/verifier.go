package prover

import (
	"github.com/coniks-sys/trieproof-go/application"
	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/trie"
	"github.com/coniks-sys/trieproof-go/utils/maybe"
)

// A Verifier checks proof messages against a trusted root. It needs no
// access to the trie.
type Verifier struct {
	logger *application.Logger
}

// NewVerifier returns a Verifier logging to logger.
func NewVerifier(logger *application.Logger) *Verifier {
	return &Verifier{logger: logger}
}

// Verify checks msg against root, ignoring the root the message claims.
// The error is non-nil only if msg cannot be decoded; a decodable proof
// that does not check out yields false.
func (v *Verifier) Verify(root crypto.Hash, msg *application.ProofMessage) (bool, maybe.Maybe[[]byte], error) {
	ps, err := msg.Store()
	if err != nil {
		v.logger.Warn(err.Error(), "key", string(msg.Key))
		return false, maybe.Nothing[[]byte](), err
	}
	if msg.Root != root.String() {
		v.logger.Warn("proof message claims another root",
			"claimed", msg.Root,
			"trusted", root)
	}
	ok, value := trie.VerifyProof(root, msg.Key, ps)
	if !ok {
		v.logger.Info("proof rejected", "key", string(msg.Key), "root", root)
		return false, value, nil
	}
	v.logger.Debug("proof verified", "key", string(msg.Key), "value", value)
	return true, value, nil
}
