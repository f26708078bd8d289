// Package store implements the storage service, a bbolt database holding the
// history of REPL inputs.
package store

import (
	"fmt"
	"time"

	"github.com/nickdrozd/right-to-leftsp/pkg/logutil"
	"github.com/nickdrozd/right-to-leftsp/pkg/store/storedefs"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

const (
	bucketCmd = "cmd"
	dbTimeout = time.Second
)

// DBStore is the permanent storage backend.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens the database at the given path, creating it if needed, and
// returns a DBStore using it. Opening fails if another process holds the
// database for more than a second.
func NewStore(path string) (DBStore, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: dbTimeout})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB returns a DBStore using the given database, initializing the
// buckets it needs.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store at", db.Path())
	err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCmd))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("initialize input history: %w", err)
	}
	return &dbStore{db}, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}

func (s *dbStore) view(f func(b *bolt.Bucket) error) error {
	return s.db.View(func(tx *bolt.Tx) error {
		return f(tx.Bucket([]byte(bucketCmd)))
	})
}

func (s *dbStore) update(f func(b *bolt.Bucket) error) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return f(tx.Bucket([]byte(bucketCmd)))
	})
}
