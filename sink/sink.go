// Package sink provides destinations for flattened entries. A sink is always
// injected into the caller that wants one; nothing in this module captures
// output into ambient shared state.
package sink

import (
	"github.com/ehsanranjbar/objwalk"
)

// Sink re-exports the interface the flattener tees into.
type Sink = objwalk.Sink

// Entry is one captured path-value pair.
type Entry struct {
	Path  string
	Value any
}

// SliceSink collects entries in memory, in the order they were emitted.
type SliceSink struct {
	entries []Entry
}

// NewSliceSink creates an empty SliceSink.
func NewSliceSink() *SliceSink {
	return &SliceSink{}
}

// Put implements Sink.
func (s *SliceSink) Put(path string, value any) error {
	s.entries = append(s.entries, Entry{Path: path, Value: value})
	return nil
}

// Entries returns the captured entries.
func (s *SliceSink) Entries() []Entry {
	return s.entries
}

// Reset discards all captured entries.
func (s *SliceSink) Reset() {
	s.entries = nil
}
