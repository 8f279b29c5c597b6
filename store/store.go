// Package store persists tracker state in a local key-value file.
//
// Logical records are plain strings under versioned keys (for example
// "privates.items.v1"), so the schema can evolve by switching to a new key
// and falling back to a default when the old one is absent. The store is a
// pass-through mirror of the in-memory state, never a source of truth while
// the session is live.
package store

import (
	"encoding/json"
	"log"
	"time"

	"github.com/boltdb/bolt"
	"github.com/shopspring/decimal"
)

var bucketName = []byte("privates")

// Store is a string key-value store backed by a single bolt file.
//
// When the file cannot be opened or written, the store degrades to a
// process-local map: every operation still succeeds, state simply does not
// survive the session. Callers never see a storage error.
type Store struct {
	db  *bolt.DB
	mem map[string]string
}

// Open opens the store at path, creating the file if necessary. It never
// fails: on any storage error the returned store is memory-only.
func Open(path string) *Store {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		log.Printf("storage unavailable at %q (%v), state will not survive this session", path, err)
		return InMemory()
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		log.Printf("storage unusable at %q (%v), state will not survive this session", path, err)
		return InMemory()
	}
	return &Store{db: db}
}

// InMemory returns a store that holds values only for the current process.
func InMemory() *Store {
	return &Store{mem: make(map[string]string)}
}

// Close releases the underlying file lock, if any.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Get returns the raw string stored under key.
func (s *Store) Get(key string) (value string, ok bool) {
	if s.db == nil {
		value, ok = s.mem[key]
		return value, ok
	}
	err := s.db.View(func(tx *bolt.Tx) error {
		if raw := tx.Bucket(bucketName).Get([]byte(key)); raw != nil {
			value, ok = string(raw), true
		}
		return nil
	})
	if err != nil {
		log.Printf("storage read failed for key %q: %v", key, err)
		return "", false
	}
	return value, ok
}

// Put stores value under key. Write errors are absorbed and logged; the
// caller keeps its in-memory state either way.
func (s *Store) Put(key, value string) {
	if s.db == nil {
		s.mem[key] = value
		return
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), []byte(value))
	})
	if err != nil {
		log.Printf("storage write failed for key %q: %v", key, err)
	}
}

// Delete removes key from the store.
func (s *Store) Delete(key string) {
	if s.db == nil {
		delete(s.mem, key)
		return
	}
	err := s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Delete([]byte(key))
	})
	if err != nil {
		log.Printf("storage delete failed for key %q: %v", key, err)
	}
}

// LoadString returns the string stored under key, or fallback when absent.
func LoadString(s *Store, key, fallback string) string {
	if v, ok := s.Get(key); ok {
		return v
	}
	return fallback
}

// LoadNumber returns the decimal stored (as a string) under key. Absent,
// malformed or non-finite values all coerce to fallback.
func LoadNumber(s *Store, key string, fallback decimal.Decimal) decimal.Decimal {
	raw, ok := s.Get(key)
	if !ok {
		return fallback
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback
	}
	return v
}

// LoadJSON deserializes the value stored under key into a T. On absence or
// malformed content it returns fallback and never raises.
func LoadJSON[T any](s *Store, key string, fallback T) T {
	raw, ok := s.Get(key)
	if !ok {
		return fallback
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return fallback
	}
	return v
}

// SaveJSON serializes v and stores it under key. Marshal errors are absorbed
// and logged, consistent with Put.
func SaveJSON(s *Store, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("storage marshal failed for key %q: %v", key, err)
		return
	}
	s.Put(key, string(data))
}
