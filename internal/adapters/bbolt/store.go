// Package bbolt implements the ports.CounterStore interface using bbolt
// (embedded B+ tree). Each classifier prefix gets its own top-level bucket;
// within it, one sub-bucket per namespace holds 8-byte big-endian int64
// counters. Increments run inside Update transactions, which serializes
// writers — concurrent trainers cannot lose updates. There is no multi-key
// transaction across reads; that matches the CounterStore contract.
package bbolt

import (
	"encoding/binary"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/corey/tally/internal/ports"
)

// Namespace sub-bucket names.
var (
	bucketVocab      = []byte("vocab")
	bucketCategories = []byte("cats")
	tokenBucketPfx   = "tok:"
)

// Store implements ports.CounterStore backed by bbolt.
type Store struct {
	db     *bolt.DB
	prefix []byte
}

// NewStore opens (or creates) a bbolt database at path, scoped to the given
// classifier prefix. Classifiers opened with the same path and prefix share
// counters.
func NewStore(path, prefix string) (*Store, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("bbolt open: %w", err)
	}
	return &Store{db: db, prefix: []byte(prefix)}, nil
}

// Close closes the underlying bbolt database.
func (s *Store) Close() error {
	return s.db.Close()
}

// bucketName maps a namespace to its sub-bucket name.
func bucketName(ns ports.Namespace) []byte {
	switch ns.Kind {
	case ports.KindVocabulary:
		return bucketVocab
	case ports.KindCategories:
		return bucketCategories
	default:
		return []byte(tokenBucketPfx + ns.Category)
	}
}

func encodeCount(n int64) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(n))
	return buf[:]
}

func decodeCount(v []byte) (int64, error) {
	if v == nil {
		return 0, nil
	}
	if len(v) != 8 {
		return 0, fmt.Errorf("corrupt counter value: %d bytes", len(v))
	}
	return int64(binary.BigEndian.Uint64(v)), nil
}

// Increment adjusts the counter by delta and returns the new value.
func (s *Store) Increment(key ports.CounterKey, delta int64) (int64, error) {
	var out int64
	err := s.db.Update(func(tx *bolt.Tx) error {
		root, err := tx.CreateBucketIfNotExists(s.prefix)
		if err != nil {
			return err
		}
		b, err := root.CreateBucketIfNotExists(bucketName(key.Namespace))
		if err != nil {
			return err
		}
		cur, err := decodeCount(b.Get([]byte(key.Member)))
		if err != nil {
			return err
		}
		out = cur + delta
		return b.Put([]byte(key.Member), encodeCount(out))
	})
	if err != nil {
		return 0, fmt.Errorf("increment %q: %w", key.Member, err)
	}
	return out, nil
}

// Get returns the counter value. Missing keys read as 0.
func (s *Store) Get(key ports.CounterKey) (int64, error) {
	var out int64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := s.namespaceBucket(tx, key.Namespace)
		if b == nil {
			return nil
		}
		n, err := decodeCount(b.Get([]byte(key.Member)))
		if err != nil {
			return err
		}
		out = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("get %q: %w", key.Member, err)
	}
	return out, nil
}

// Delete removes the counter. Returns true iff a value was present.
func (s *Store) Delete(key ports.CounterKey) (bool, error) {
	var present bool
	err := s.db.Update(func(tx *bolt.Tx) error {
		root := tx.Bucket(s.prefix)
		if root == nil {
			return nil
		}
		b := root.Bucket(bucketName(key.Namespace))
		if b == nil {
			return nil
		}
		if b.Get([]byte(key.Member)) == nil {
			return nil
		}
		present = true
		return b.Delete([]byte(key.Member))
	})
	if err != nil {
		return false, fmt.Errorf("delete %q: %w", key.Member, err)
	}
	return present, nil
}

// Keys enumerates the members of a namespace.
func (s *Store) Keys(ns ports.Namespace) ([]string, error) {
	var keys []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := s.namespaceBucket(tx, ns)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, _ []byte) error {
			keys = append(keys, string(k))
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	return keys, nil
}

// Len returns the number of members in a namespace.
func (s *Store) Len(ns ports.Namespace) (int, error) {
	var n int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := s.namespaceBucket(tx, ns)
		if b == nil {
			return nil
		}
		n = b.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("len: %w", err)
	}
	return n, nil
}

// Wipe removes all counters stored under this prefix.
// Idempotent: wiping an absent prefix is not an error.
func (s *Store) Wipe() error {
	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(s.prefix); err == bolt.ErrBucketNotFound {
			return nil
		} else {
			return err
		}
	})
}

func (s *Store) namespaceBucket(tx *bolt.Tx, ns ports.Namespace) *bolt.Bucket {
	root := tx.Bucket(s.prefix)
	if root == nil {
		return nil
	}
	return root.Bucket(bucketName(ns))
}
