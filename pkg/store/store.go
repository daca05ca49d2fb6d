// Package store abstracts the persistent storage used by the steep demos.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/steeptui/steep/pkg/logutil"
	"github.com/steeptui/steep/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

// initDB is assembled by the init functions of the files implementing the
// individual tables. Every entry is run when a store is created.
var initDB = map[string]func(*bolt.Tx) error{}

// DBStore is a [storedefs.Store] backed by a database file that needs to be
// closed when no longer used.
type DBStore interface {
	storedefs.Store
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new store from the given file.
func NewStore(dbPath string) (DBStore, error) {
	db, err := bolt.Open(dbPath, 0o644, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, err
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %v", name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (s *dbStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
