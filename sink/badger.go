package sink

import (
	"bytes"
	"fmt"

	badger "github.com/dgraph-io/badger/v4"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// BadgerSink buffers flattened entries and persists them into a badger
// database on Flush, one key per path under a fixed prefix. Values are
// msgpack-encoded.
type BadgerSink struct {
	db      *badger.DB
	prefix  []byte
	pending []Entry
}

// NewBadgerSink creates a BadgerSink writing under the given key prefix.
func NewBadgerSink(db *badger.DB, prefix []byte) *BadgerSink {
	return &BadgerSink{
		db:     db,
		prefix: prefix,
	}
}

// Put implements Sink. Entries are buffered until Flush.
func (s *BadgerSink) Put(path string, value any) error {
	s.pending = append(s.pending, Entry{Path: path, Value: value})
	return nil
}

// Flush writes all buffered entries in a single transaction and clears the
// buffer on success.
func (s *BadgerSink) Flush() error {
	if len(s.pending) == 0 {
		return nil
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		enc := msgpack.GetEncoder()
		defer msgpack.PutEncoder(enc)

		for _, e := range s.pending {
			var buf bytes.Buffer
			enc.Reset(&buf)
			if err := enc.Encode(e.Value); err != nil {
				return fmt.Errorf("failed to encode value of %q: %w", e.Path, err)
			}

			key := append(bytes.Clone(s.prefix), []byte(e.Path)...)
			if err := txn.Set(key, buf.Bytes()); err != nil {
				return fmt.Errorf("failed to set %q: %w", e.Path, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.pending = nil
	return nil
}

// Get reads back the value stored for a path.
func (s *BadgerSink) Get(path string) (any, error) {
	var value any
	err := s.db.View(func(txn *badger.Txn) error {
		key := append(bytes.Clone(s.prefix), []byte(path)...)
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			dec := msgpack.GetDecoder()
			defer msgpack.PutDecoder(dec)
			dec.Reset(bytes.NewReader(val))
			return dec.Decode(&value)
		})
	})
	if err != nil {
		return nil, err
	}
	return value, nil
}
