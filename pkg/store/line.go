package store

import (
	"encoding/binary"
	"slices"

	bolt "go.etcd.io/bbolt"
	. "github.com/steeptui/steep/pkg/store/storedefs"
)

const bucketLine = "line"

func init() {
	initDB["initialize transcript table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketLine))
		return err
	}
}

// NextLineSeq returns the sequence number the next transcript line will get.
func (s *dbStore) NextLineSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLine))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddLine appends a new line to the transcript.
func (s *dbStore) AddLine(text string) (int, error) {
	var (
		seq uint64
		err error
	)
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLine))
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// Line queries the transcript line with the given sequence number.
func (s *dbStore) Line(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLine))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingLine
		}
		text = string(v)
		return nil
	})
	return text, err
}

// DelLine deletes the transcript line with the given sequence number.
func (s *dbStore) DelLine(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLine))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// LastLines returns the last at most n transcript lines, oldest first.
func (s *dbStore) LastLines(n int) ([]Line, error) {
	var lines []Line
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketLine))
		c := b.Cursor()
		for k, v := c.Last(); k != nil && len(lines) < n; k, v = c.Prev() {
			lines = append(lines, Line{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	slices.Reverse(lines)
	return lines, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
