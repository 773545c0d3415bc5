package db

import "errors"

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("kv-store: key not found")

// KVStore is the key-value storage the golden records are kept in.
type KVStore interface {
	Writer
	Get(key []byte) ([]byte, error)
	Delete(key []byte) error
	NewBatch() Batch
	// NewIterator walks the keys in [start, end). A nil bound is open.
	NewIterator(start, end []byte) (Iterator, error)
	Close() error
}

type Writer interface {
	Put(key []byte, value []byte) error
}

// Batch groups writes that are applied together on Commit.
type Batch interface {
	Writer
	Delete(key []byte) error
	Commit() error
	Close() error
}

// Iterator must be closed after use. Next positions it on the first key
// when called on a fresh iterator.
type Iterator interface {
	Next() bool
	Key() []byte
	Value() ([]byte, error)
	Close() error
}

// PrefixEnd returns the smallest key greater than every key with the
// given prefix, nil if there is none.
func PrefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		end[i]++
		if end[i] != 0 {
			return end[:i+1]
		}
	}
	return nil
}
