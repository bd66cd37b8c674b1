// Package store implements the ordered entry sequence behind omap.Map.
//
// A Store is a dense slice of key/value entries. Positions 0..Len()-1 are
// always contiguous. The store knows nothing about key uniqueness; the
// owning map keeps its key index consistent with every structural change.
//
// Store instances are not thread-safe.
package store

import (
	"fmt"
	"iter"
)

// Entry is a key/value pair held at a position.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// Store is an ordered, randomly indexable sequence of entries.
type Store[K comparable, V any] struct {
	entries []Entry[K, V]
}

// New creates a Store with an optional capacity hint.
func New[K comparable, V any](capacity int) *Store[K, V] {
	if capacity < 0 {
		capacity = 0
	}
	return &Store[K, V]{entries: make([]Entry[K, V], 0, capacity)}
}

// Len returns the number of entries.
func (s *Store[K, V]) Len() int {
	return len(s.entries)
}

// Append places e at position Len().
func (s *Store[K, V]) Append(e Entry[K, V]) {
	s.entries = append(s.entries, e)
}

// InsertAt places e at position p, moving every entry at p or later one
// position up. p == Len() appends.
func (s *Store[K, V]) InsertAt(p int, e Entry[K, V]) error {
	if p < 0 || p > len(s.entries) {
		return outOfRange(p, len(s.entries)+1)
	}
	var zero Entry[K, V]
	s.entries = append(s.entries, zero)
	copy(s.entries[p+1:], s.entries[p:])
	s.entries[p] = e
	return nil
}

// RemoveAt removes and returns the entry at p, moving every later entry one
// position down.
func (s *Store[K, V]) RemoveAt(p int) (Entry[K, V], error) {
	if p < 0 || p >= len(s.entries) {
		return Entry[K, V]{}, outOfRange(p, len(s.entries))
	}
	removed := s.entries[p]
	last := len(s.entries) - 1
	copy(s.entries[p:], s.entries[p+1:])
	// Release the references held by the vacated slot.
	s.entries[last] = Entry[K, V]{}
	s.entries = s.entries[:last]
	return removed, nil
}

// At returns the entry at p.
func (s *Store[K, V]) At(p int) (Entry[K, V], error) {
	if p < 0 || p >= len(s.entries) {
		return Entry[K, V]{}, outOfRange(p, len(s.entries))
	}
	return s.entries[p], nil
}

// SetValue replaces the value at p. The key and position are unchanged.
func (s *Store[K, V]) SetValue(p int, v V) error {
	if p < 0 || p >= len(s.entries) {
		return outOfRange(p, len(s.entries))
	}
	s.entries[p] = Entry[K, V]{Key: s.entries[p].Key, Value: v}
	return nil
}

// Clear removes all entries. The backing array is kept for reuse.
func (s *Store[K, V]) Clear() {
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Entries returns the live backing slice. Callers must not modify it or
// retain it across a structural change.
func (s *Store[K, V]) Entries() []Entry[K, V] {
	return s.entries
}

// All yields (position, entry) pairs front to back over the entries present
// when iteration starts.
func (s *Store[K, V]) All() iter.Seq2[int, Entry[K, V]] {
	return func(yield func(int, Entry[K, V]) bool) {
		entries := s.entries
		for i, e := range entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

func outOfRange(p, limit int) error {
	return fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, p, limit)
}
