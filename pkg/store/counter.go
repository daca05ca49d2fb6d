package store

import (
	"strconv"

	bolt "go.etcd.io/bbolt"
	. "github.com/steeptui/steep/pkg/store/storedefs"
)

const bucketCounter = "counter"

func init() {
	initDB["initialize counter table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketCounter))
		return err
	}
}

// Counter gets the value of a named counter.
func (s *dbStore) Counter(name string) (int, error) {
	var value int
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCounter))
		v := b.Get([]byte(name))
		if v == nil {
			return ErrNoCounter
		}
		value = unmarshalCount(v)
		return nil
	})
	return value, err
}

// SetCounter sets the value of a named counter.
func (s *dbStore) SetCounter(name string, value int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketCounter))
		return b.Put([]byte(name), marshalCount(value))
	})
}

func marshalCount(value int) []byte {
	return []byte(strconv.Itoa(value))
}

func unmarshalCount(data []byte) int {
	value, _ := strconv.Atoi(string(data))
	return value
}
