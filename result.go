package objwalk

import (
	"bytes"
	"encoding/json"
	"iter"

	"github.com/ehsanranjbar/objwalk/internal/ordmap"
	msgpack "github.com/vmihailenco/msgpack/v5"
)

// Result is the output of one Flatten call: a mapping of synthesized path
// strings to the values found at those paths, in traversal order. Writing
// the same path twice overwrites the value but keeps the first position
// (last-write-wins).
type Result struct {
	m *ordmap.Map[string, any]
}

// NewResult creates an empty Result.
func NewResult() *Result {
	return &Result{m: ordmap.New[string, any]()}
}

// Set records a path-value pair.
func (r *Result) Set(path string, value any) {
	r.m.Set(path, value)
}

// Get returns the value at the given path.
func (r *Result) Get(path string) (any, bool) {
	return r.m.Get(path)
}

// Len returns the number of entries.
func (r *Result) Len() int {
	return r.m.Len()
}

// Keys returns all paths in traversal order.
func (r *Result) Keys() []string {
	return r.m.Keys()
}

// Iter iterates over all path-value pairs in traversal order.
func (r *Result) Iter() iter.Seq2[string, any] {
	return r.m.Iter()
}

// MarshalJSON implements json.Marshaler, producing an object whose member
// order is the traversal order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range r.m.Iter() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')

		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (r *Result) MarshalBinary() ([]byte, error) {
	keys := r.m.Keys()
	values := make([]any, 0, len(keys))
	for _, v := range r.m.Iter() {
		values = append(values, v)
	}

	enc := msgpack.GetEncoder()
	defer msgpack.PutEncoder(enc)
	var buf bytes.Buffer
	enc.Reset(&buf)

	err := enc.EncodeMulti(keys, values)
	if err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (r *Result) UnmarshalBinary(bz []byte) error {
	dec := msgpack.GetDecoder()
	defer msgpack.PutDecoder(dec)
	dec.Reset(bytes.NewReader(bz))

	var keys []string
	var values []any
	err := dec.DecodeMulti(&keys, &values)
	if err != nil {
		return err
	}

	r.m = ordmap.New[string, any]()
	for i, k := range keys {
		var v any
		if i < len(values) {
			v = values[i]
		}
		r.m.Set(k, v)
	}
	return nil
}
