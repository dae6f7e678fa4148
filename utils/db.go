package utils

import (
	"os"

	"github.com/coniks-sys/trieproof-go/storage/kv"
	"github.com/coniks-sys/trieproof-go/storage/kv/leveldbkv"
)

// WithDB runs f with a fresh leveldb-backed kv.DB in a temporary
// directory, which is removed afterwards.
func WithDB(f func(kv.DB)) {
	dir, err := os.MkdirTemp("", "trieproof")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	db, err := leveldbkv.OpenDB(dir)
	if err != nil {
		panic(err)
	}
	defer db.Close()
	f(db)
}
