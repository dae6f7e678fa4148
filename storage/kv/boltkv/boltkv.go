// Package boltkv implements the kv interface using a single bbolt bucket.
package boltkv

import (
	"errors"
	"fmt"
	"time"

	"github.com/coniks-sys/trieproof-go/storage/kv"
	bbolt "go.etcd.io/bbolt"
)

var (
	// ErrNotFound is returned by Get for a missing key.
	ErrNotFound = errors.New("[boltkv] Key not found")

	bucketName = []byte("trieproof")
)

type boltkv struct {
	db *bbolt.DB
}

// OpenDB opens (or creates) the bbolt database file at path.
func OpenDB(path string) (kv.DB, error) {
	db, err := bbolt.Open(path, 0600, &bbolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("boltkv: cannot open %s: %w", path, err)
	}
	return Wrap(db)
}

// Wrap uses db as a kv.DB, creating the bucket if needed.
func Wrap(db *bbolt.DB) (kv.DB, error) {
	err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &boltkv{db: db}, nil
}

func (b *boltkv) Get(key []byte) ([]byte, error) {
	var value []byte
	err := b.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(bucketName).Get(key)
		if v == nil {
			return ErrNotFound
		}
		// v is only valid for the life of the transaction
		value = append([]byte{}, v...)
		return nil
	})
	return value, err
}

func (b *boltkv) Put(key, value []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put(key, value)
	})
}

func (b *boltkv) Delete(key []byte) error {
	return b.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Delete(key)
	})
}

type op struct {
	key, value []byte
	del        bool
}

type batch struct {
	ops []op
}

func (wb *batch) Reset() {
	wb.ops = wb.ops[:0]
}

func (wb *batch) Put(key, value []byte) {
	wb.ops = append(wb.ops, op{
		key:   append([]byte{}, key...),
		value: append([]byte{}, value...),
	})
}

func (wb *batch) Delete(key []byte) {
	wb.ops = append(wb.ops, op{key: append([]byte{}, key...), del: true})
}

func (b *boltkv) NewBatch() kv.Batch {
	return new(batch)
}

// Write applies all operations of wb in a single transaction.
func (b *boltkv) Write(wb kv.Batch) error {
	bb, ok := wb.(*batch)
	if !ok {
		return fmt.Errorf("boltkv.Write: expected *boltkv.batch, got %T", wb)
	}
	return b.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		for _, o := range bb.ops {
			var err error
			if o.del {
				err = bucket.Delete(o.key)
			} else {
				err = bucket.Put(o.key, o.value)
			}
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *boltkv) Close() error {
	return b.db.Close()
}

func (b *boltkv) ErrNotFound() error {
	return ErrNotFound
}
