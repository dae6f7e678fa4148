// Package prover keeps a persistent trie and serves membership proofs
// for its keys.
package prover

import (
	"errors"
	"fmt"
	"sync"

	"github.com/coniks-sys/trieproof-go/application"
	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
	"github.com/coniks-sys/trieproof-go/proof"
	"github.com/coniks-sys/trieproof-go/storage/kv"
	"github.com/coniks-sys/trieproof-go/storage/kv/boltkv"
	"github.com/coniks-sys/trieproof-go/storage/kv/leveldbkv"
	"github.com/coniks-sys/trieproof-go/trie"
	"github.com/coniks-sys/trieproof-go/utils/maybe"

	// supported hashers
	_ "github.com/coniks-sys/trieproof-go/crypto/hashers/coniks"
	_ "github.com/coniks-sys/trieproof-go/crypto/hashers/shake"
)

// ErrUnknownBackend indicates a storage backend the prover cannot open.
var ErrUnknownBackend = errors.New("[prover] Unknown storage backend")

// rootKey is where the current root hash is stored. Node keys start
// with trie.NodeKeyIdentifier, so the two never collide.
var rootKey = []byte("R")

// A Prover owns a trie stored in a kv.DB. All methods are safe for
// concurrent use.
type Prover struct {
	sync.RWMutex
	hasher   hashers.TrieHasher
	db       kv.DB
	trie     *trie.Trie
	verifier *Verifier
	logger   *application.Logger
}

// New opens the storage and hasher named in conf and loads the trie
// whose root was last persisted there, or creates an empty one.
func New(conf *Config) (*Prover, error) {
	logger, err := application.NewLogger(conf.Logger)
	if err != nil {
		return nil, err
	}
	return NewWithLogger(conf, logger)
}

// NewWithLogger is New with a caller-provided logger.
func NewWithLogger(conf *Config, logger *application.Logger) (*Prover, error) {
	h, err := hashers.Hasher(conf.Hasher)
	if err != nil {
		return nil, err
	}
	db, err := openStorage(conf.Storage)
	if err != nil {
		return nil, err
	}
	t, err := openTrie(db, h, conf.CacheSize)
	if err != nil {
		db.Close()
		return nil, err
	}
	logger.Info("trie opened",
		"backend", conf.Storage.Backend,
		"hasher", h.ID(),
		"root", t.RootHash())
	return &Prover{
		hasher:   h,
		db:       db,
		trie:     t,
		verifier: NewVerifier(logger),
		logger:   logger,
	}, nil
}

func openStorage(conf *StorageConfig) (kv.DB, error) {
	if conf == nil {
		return nil, fmt.Errorf("%w: no storage configured", ErrUnknownBackend)
	}
	switch conf.Backend {
	case LevelDB:
		return leveldbkv.OpenDB(conf.Path)
	case Bolt:
		return boltkv.OpenDB(conf.Path)
	case Memory:
		return leveldbkv.OpenMemDB()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, conf.Backend)
	}
}

func openTrie(db kv.DB, h hashers.TrieHasher, cacheSize int) (*trie.Trie, error) {
	ndb, err := trie.NewKVDB(db, h, cacheSize)
	if err != nil {
		return nil, err
	}
	b, err := db.Get(rootKey)
	switch {
	case err == db.ErrNotFound():
		t, err := trie.New(ndb, h)
		if err != nil {
			return nil, err
		}
		if err := db.Put(rootKey, t.RootHash().Bytes()); err != nil {
			return nil, err
		}
		return t, nil
	case err != nil:
		return nil, err
	}
	root, err := crypto.HashFromBytes(b)
	if err != nil {
		return nil, fmt.Errorf("[prover] Stored root: %w", err)
	}
	return trie.Open(ndb, h, root)
}

// Insert stores value under key and persists the new root. The root is
// written after the nodes it refers to.
func (p *Prover) Insert(key, value []byte) error {
	p.Lock()
	defer p.Unlock()
	if err := p.trie.Put(key, value); err != nil {
		p.logger.Error(err.Error(), "key", string(key))
		return err
	}
	root := p.trie.RootHash()
	if err := p.db.Put(rootKey, root.Bytes()); err != nil {
		p.logger.Error(err.Error(), "key", string(key))
		return err
	}
	p.logger.Debug("key inserted", "key", string(key), "root", root)
	return nil
}

// Lookup returns the value stored under key.
func (p *Prover) Lookup(key []byte) (maybe.Maybe[[]byte], error) {
	p.RLock()
	defer p.RUnlock()
	return p.trie.Get(key)
}

// RootHash returns the current root hash.
func (p *Prover) RootHash() crypto.Hash {
	p.RLock()
	defer p.RUnlock()
	return p.trie.RootHash()
}

// Prove returns the proof message for key against the current root.
// It fails with an error wrapping proof.ErrPathBroken if key's path is
// not in the trie.
func (p *Prover) Prove(key []byte) (*application.ProofMessage, error) {
	p.RLock()
	defer p.RUnlock()
	ps, err := p.trie.Prove(key)
	if errors.Is(err, proof.ErrPathBroken) {
		p.logger.Info("no proof", "key", string(key), "reason", err.Error())
		return nil, err
	} else if err != nil {
		p.logger.Error(err.Error(), "key", string(key))
		return nil, err
	}
	msg, err := application.NewProofMessage(p.hasher.ID(), p.trie.RootHash(), key, ps)
	if err != nil {
		return nil, err
	}
	p.logger.Debug("proof generated",
		"key", string(key),
		"nodes", ps.Len(),
		"root", p.trie.RootHash())
	return msg, nil
}

// Verify checks msg against the prover's current root.
func (p *Prover) Verify(msg *application.ProofMessage) (bool, maybe.Maybe[[]byte], error) {
	return p.verifier.Verify(p.RootHash(), msg)
}

// Close closes the underlying storage.
func (p *Prover) Close() error {
	p.Lock()
	defer p.Unlock()
	p.logger.Sync()
	return p.db.Close()
}
