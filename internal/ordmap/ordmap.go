package ordmap

import (
	"iter"
)

// Map is a map that maintains the order in which keys were first set.
type Map[K comparable, V any] struct {
	m     map[K]V
	order []K
}

// New creates a new Map.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		m:     make(map[K]V),
		order: []K{},
	}
}

// Set sets the value of a key. Setting an existing key overwrites its value
// but keeps its original position in the order.
func (m *Map[K, V]) Set(key K, value V) {
	if _, ok := m.m[key]; !ok {
		m.order = append(m.order, key)
	}
	m.m[key] = value
}

// Get returns the value of a key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	value, ok := m.m[key]
	return value, ok
}

// Keys returns the keys in insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, len(m.order))
	copy(keys, m.order)
	return keys
}

// Iter returns an iterator that iterates over all key-value pairs in
// insertion order.
func (m *Map[K, V]) Iter() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.order {
			if !yield(k, m.m[k]) {
				return
			}
		}
	}
}

// Len returns the number of key-value pairs in the map.
func (m *Map[K, V]) Len() int {
	return len(m.order)
}

// Delete deletes a key from the map.
func (m *Map[K, V]) Delete(key K) {
	if _, ok := m.m[key]; !ok {
		return
	}

	delete(m.m, key)
	newOrder := make([]K, 0, len(m.order)-1)
	for _, k := range m.order {
		if k != key {
			newOrder = append(newOrder, k)
		}
	}
	m.order = newOrder
}
