package trie

import (
	"errors"
	"fmt"
	"sync"

	"github.com/coniks-sys/trieproof-go/crypto"
	"github.com/coniks-sys/trieproof-go/crypto/hashers"
	"github.com/coniks-sys/trieproof-go/proof"
	"github.com/coniks-sys/trieproof-go/storage/kv"
	lru "github.com/hashicorp/golang-lru"
)

// NodeKeyIdentifier prefixes the kv key of every stored node.
const NodeKeyIdentifier = 'N'

// ErrCorruptNode indicates a stored node that does not hash to the key
// it was stored under.
var ErrCorruptNode = errors.New("[trie] Corrupt node")

// NodeDB resolves node hashes to nodes. Get returns an error wrapping
// proof.ErrNodeNotFound for an unknown hash. Implementations are safe
// for concurrent use.
type NodeDB interface {
	Get(h crypto.Hash) (*Node, error)
	Put(nodes ...*Node) error
}

type memoryDB struct {
	sync.RWMutex
	nodes map[crypto.Hash]*Node
}

// NewMemoryDB returns an empty in-memory NodeDB.
func NewMemoryDB() NodeDB {
	return &memoryDB{nodes: make(map[crypto.Hash]*Node)}
}

func (db *memoryDB) Get(h crypto.Hash) (*Node, error) {
	db.RLock()
	defer db.RUnlock()
	n, ok := db.nodes[h]
	if !ok {
		return nil, fmt.Errorf("%w: %v", proof.ErrNodeNotFound, h)
	}
	return n, nil
}

func (db *memoryDB) Put(nodes ...*Node) error {
	db.Lock()
	defer db.Unlock()
	for _, n := range nodes {
		db.nodes[n.Hash()] = n
	}
	return nil
}

type kvDB struct {
	db     kv.DB
	hasher hashers.TrieHasher
	cache  *lru.Cache
}

// NewKVDB returns a NodeDB persisting node encodings in db. Decoded
// nodes are kept in an LRU cache of cacheSize entries; a cacheSize of 0
// disables the cache.
func NewKVDB(db kv.DB, h hashers.TrieHasher, cacheSize int) (NodeDB, error) {
	kdb := &kvDB{db: db, hasher: h}
	if cacheSize > 0 {
		cache, err := lru.New(cacheSize)
		if err != nil {
			return nil, err
		}
		kdb.cache = cache
	}
	return kdb, nil
}

func serializeKvKey(h crypto.Hash) []byte {
	// NodeKeyIdentifier + hash
	key := make([]byte, 0, 1+crypto.HashSizeByte)
	key = append(key, NodeKeyIdentifier)
	key = append(key, h[:]...)
	return key
}

func (db *kvDB) Get(h crypto.Hash) (*Node, error) {
	if db.cache != nil {
		if n, ok := db.cache.Get(h); ok {
			return n.(*Node), nil
		}
	}
	enc, err := db.db.Get(serializeKvKey(h))
	if err == db.db.ErrNotFound() {
		return nil, fmt.Errorf("%w: %v", proof.ErrNodeNotFound, h)
	} else if err != nil {
		return nil, err
	}
	n, err := DecodeNode(db.hasher, enc)
	if err != nil {
		return nil, fmt.Errorf("%w: %v: %v", ErrCorruptNode, h, err)
	}
	if n.Hash() != h {
		return nil, fmt.Errorf("%w: %v hashes to %v", ErrCorruptNode, h, n.Hash())
	}
	if db.cache != nil {
		db.cache.Add(h, n)
	}
	return n, nil
}

func (db *kvDB) Put(nodes ...*Node) error {
	switch len(nodes) {
	case 0:
		return nil
	case 1:
		if err := db.db.Put(serializeKvKey(nodes[0].Hash()), nodes[0].Encode()); err != nil {
			return err
		}
	default:
		wb := db.db.NewBatch()
		for _, n := range nodes {
			wb.Put(serializeKvKey(n.Hash()), n.Encode())
		}
		if err := db.db.Write(wb); err != nil {
			return err
		}
	}
	if db.cache != nil {
		for _, n := range nodes {
			db.cache.Add(n.Hash(), n)
		}
	}
	return nil
}
