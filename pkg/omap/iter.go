package omap

import (
	"fmt"
	"iter"
	"slices"

	"github.com/samber/lo"
)

// All returns an iterator over key/value pairs in position order.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	m.lazyInit()
	return func(yield func(K, V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// Backward returns an iterator over key/value pairs from the last position
// to the first.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	m.lazyInit()
	return func(yield func(K, V) bool) {
		entries := m.entries.Entries()
		for i := len(entries) - 1; i >= 0; i-- {
			if !yield(entries[i].Key, entries[i].Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in position order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	m.lazyInit()
	return func(yield func(K) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over values in position order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	m.lazyInit()
	return func(yield func(V) bool) {
		for _, e := range m.entries.All() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Entries returns a copy of the entries in position order.
func (m *Map[K, V]) Entries() []Entry[K, V] {
	m.lazyInit()
	return slices.Clone(m.entries.Entries())
}

// KeyList returns a copy of the keys in position order.
func (m *Map[K, V]) KeyList() []K {
	m.lazyInit()
	return lo.Map(m.entries.Entries(), func(e Entry[K, V], _ int) K {
		return e.Key
	})
}

// ValueList returns a copy of the values in position order.
func (m *Map[K, V]) ValueList() []V {
	m.lazyInit()
	return lo.Map(m.entries.Entries(), func(e Entry[K, V], _ int) V {
		return e.Value
	})
}

// CopyTo copies the entries in position order into dst starting at offset
// and returns the number copied.
//
// It fails with ErrInvalidArgument for a nil dst, ErrIndexOutOfRange when
// offset is outside [0, len(dst)], and ErrInsufficientCapacity when the
// entries do not fit in dst[offset:]. dst is unchanged on failure.
func (m *Map[K, V]) CopyTo(dst []Entry[K, V], offset int) (int, error) {
	m.lazyInit()
	if dst == nil {
		return 0, invalidArgument("destination")
	}
	if offset < 0 || offset > len(dst) {
		return 0, outOfRange(offset, len(dst)+1)
	}
	if n := m.entries.Len(); n > len(dst)-offset {
		return 0, fmt.Errorf("%w: need %d slots at offset %d, have %d",
			ErrInsufficientCapacity, n, offset, len(dst)-offset)
	}
	return copy(dst[offset:], m.entries.Entries()), nil
}
