// Package source provides key-value sources that can be read
// into a dict using dict.Update.
package source

import (
	"fmt"
	"iter"
	"maps"
)

// Pair is a key-value pair.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

// Pairs is an ordered mapping. Keys are iterated in the order
// of their first occurrence, a later pair with the same key
// replaces the value but keeps the position.
type Pairs[K comparable, V any] struct {
	order []K
	index map[K]V
}

// NewPairs creates an ordered mapping of p.
func NewPairs[K comparable, V any](p ...Pair[K, V]) *Pairs[K, V] {
	s := &Pairs[K, V]{index: make(map[K]V, len(p))}
	for i := range p {
		s.Add(p[i].Key, p[i].Value)
	}
	return s
}

// Add associates key with value.
func (s *Pairs[K, V]) Add(key K, value V) {
	if _, ok := s.index[key]; !ok {
		s.order = append(s.order, key)
	}
	s.index[key] = value
}

// Keys returns an iterator over all distinct keys.
func (s *Pairs[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range s.order {
			if !yield(k) {
				return
			}
		}
	}
}

// Get returns the value associated with key.
func (s *Pairs[K, V]) Get(key K) (v V, err error) {
	v, ok := s.index[key]
	if !ok {
		return v, &ErrorMissing[K]{Key: key}
	}
	return v, nil
}

// Len returns the number of distinct keys.
func (s *Pairs[K, V]) Len() int { return len(s.order) }

// Map adapts a Go map. Keys are iterated in unspecified order.
type Map[K comparable, V any] map[K]V

// Keys returns an iterator over all keys of m.
func (m Map[K, V]) Keys() iter.Seq[K] { return maps.Keys(m) }

// Get returns the value associated with key.
func (m Map[K, V]) Get(key K) (v V, err error) {
	v, ok := m[key]
	if !ok {
		return v, &ErrorMissing[K]{Key: key}
	}
	return v, nil
}

// ErrorMissing is returned when reading a key the source doesn't contain.
type ErrorMissing[K comparable] struct {
	Key K
}

func (e ErrorMissing[K]) Error() string {
	return fmt.Sprintf("missing key '%v'", e.Key)
}

// ErrorIllegal is returned when a document can't be read as a mapping.
type ErrorIllegal struct {
	Format  string
	Message string
}

func (e ErrorIllegal) Error() string {
	return "illegal " + e.Format + " document: " + e.Message
}
